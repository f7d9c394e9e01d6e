package contour

import "testing"

func TestTrackerBootstrapsFullWidth(t *testing.T) {
	tr := newTracker(4, 10, Increasing)
	for y := 0; y < 4; y++ {
		ranges := tr.rangesForRow(y)
		if len(ranges) != 1 || ranges[0] != [2]int{0, 10} {
			t.Errorf("row %d: expected single full-width range, got %v", y, ranges)
		}
	}
}

func TestTrackerStartEndFinalizeSwap(t *testing.T) {
	tr := newTracker(2, 10, Increasing)

	tr.updateNewRange(2, 0, StartRange)
	tr.updateNewRange(5, 0, EndRange)
	tr.updateNewRange(0, 1, Neither)
	tr.finalize()
	tr.swap()

	row0 := tr.rangesForRow(0)
	if len(row0) != 1 || row0[0] != [2]int{2, 7} {
		t.Fatalf("row 0: expected [2,7), got %v", row0)
	}
	row1 := tr.rangesForRow(1)
	if len(row1) != 1 || row1[0] != [2]int{0, 10} {
		t.Fatalf("row 1: expected [0,10) after Neither+finalize, got %v", row1)
	}
}

func TestTrackerEndClampedToGridWidth(t *testing.T) {
	tr := newTracker(1, 10, Increasing)
	tr.updateNewRange(0, 0, StartRange)
	tr.updateNewRange(9, 0, EndRange)
	tr.swap()
	row0 := tr.rangesForRow(0)
	if row0[0][1] != 10 {
		t.Errorf("expected end clamped to grid width 10, got %d", row0[0][1])
	}
}
