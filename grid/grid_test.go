package grid

import "testing"

func TestNewAndAt(t *testing.T) {
	g := New([]int{2, 3}, []float32{0, 1, 2, 3, 4, 5})
	if g.Rank() != 2 {
		t.Fatalf("expected rank 2, got %d", g.Rank())
	}
	if g.Len() != 6 {
		t.Fatalf("expected len 6, got %d", g.Len())
	}
	if g.At([]int{1, 2}) != 5 {
		t.Errorf("expected At([1,2]) == 5, got %v", g.At([]int{1, 2}))
	}
}

func TestMultiIndexRoundTrip(t *testing.T) {
	g := New([]int{3, 4, 2}, make([]float32, 24))
	for flat := 0; flat < g.Len(); flat++ {
		idx := g.MultiIndex(flat)
		if got := g.FlatIndex(idx); got != flat {
			t.Errorf("flat %d -> idx %v -> flat %d", flat, idx, got)
		}
	}
}

func TestNewPanicsOnShapeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	New([]int{2, 2}, []float32{1, 2, 3})
}

func TestInBounds(t *testing.T) {
	g := New([]int{3, 3}, make([]float32, 9))
	if !g.InBounds([]int{0, 0}) || !g.InBounds([]int{2, 2}) {
		t.Error("expected corners in bounds")
	}
	if g.InBounds([]int{3, 0}) || g.InBounds([]int{0, -1}) {
		t.Error("expected out-of-range indices to be rejected")
	}
}

func TestGrid2DAt(t *testing.T) {
	g := NewGrid2D(2, 3, []float32{0, 1, 2, 3, 4, 5})
	if g.At(1, 2) != 5 {
		t.Errorf("expected At(1,2) == 5, got %v", g.At(1, 2))
	}
}

func TestNewGrid2DPanicsOnNonPositiveExtent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on non-positive extent")
		}
	}()
	NewGrid2D(0, 3, nil)
}
