package contour

// rangeKind selects the active-region update performed after an edge
// case fires for a given cell column (§4.3).
type rangeKind int

const (
	// Neither is a row-touch that may open the first range at x==0.
	Neither rangeKind = iota
	// StartRange opens a new column range at the current cell.
	StartRange
	// EndRange finalizes the most recently opened column range.
	EndRange
)

// tracker records, per row, which column ranges of the next level pass
// may contain contour crossings (§4.3). The "old" description is read
// during the current pass; the "new" description is written and becomes
// "old" for the following pass via swap.
//
// Sized once per request at (rows, max(1, cols/2)) and reused across
// levels (§5 Resource sizing invariants).
type tracker struct {
	rows, cols int
	maxRanges  int
	dir        Direction

	oldCount []int
	oldStart [][]int
	oldEnd   [][]int

	newCount []int
	newStart [][]int
	newEnd   [][]int
}

// newTracker allocates a tracker sized for a grid of the given shape and
// bootstraps the "old" region to cover the full grid, as required before
// the first level pass (§4.3: "Bootstrapped as the full grid").
func newTracker(rows, cols int, dir Direction) *tracker {
	maxRanges := cols / 2
	if maxRanges < 1 {
		maxRanges = 1
	}
	t := &tracker{rows: rows, cols: cols, maxRanges: maxRanges, dir: dir}
	t.oldCount = make([]int, rows)
	t.oldStart = make2D(rows, maxRanges)
	t.oldEnd = make2D(rows, maxRanges)
	t.newCount = make([]int, rows)
	t.newStart = make2D(rows, maxRanges)
	t.newEnd = make2D(rows, maxRanges)
	t.bootstrapFull()
	return t
}

func make2D(rows, cols int) [][]int {
	out := make([][]int, rows)
	for i := range out {
		out[i] = make([]int, cols)
	}
	return out
}

// bootstrapFull makes the "old" region cover every row with a single
// range spanning the whole grid width.
func (t *tracker) bootstrapFull() {
	for y := 0; y < t.rows; y++ {
		t.oldCount[y] = 1
		t.oldStart[y][0] = 0
		t.oldEnd[y][0] = t.cols
	}
}

// rangesForRow returns the active column ranges of the old region for
// row y, as (start, end) pairs.
func (t *tracker) rangesForRow(y int) [][2]int {
	n := t.oldCount[y]
	out := make([][2]int, n)
	for i := 0; i < n; i++ {
		out[i] = [2]int{t.oldStart[y][i], t.oldEnd[y][i]}
	}
	return out
}

// updateNewRange applies one cell's range-tracking decision to the "new"
// region at row y, column x (§4.3). In Decreasing mode the caller must
// already have inverted which edge cases map to which kind, per §4.3
// ("Decreasing-level mode inverts which edge cases call StartRange vs
// EndRange"); this method itself is direction-agnostic.
func (t *tracker) updateNewRange(x, y int, kind rangeKind) {
	switch kind {
	case StartRange:
		idx := t.newCount[y]
		if idx >= t.maxRanges {
			return // more ranges than budgeted for; drop silently rather than corrupt memory
		}
		t.newStart[y][idx] = x
		t.newEnd[y][idx] = -1
		t.newCount[y]++
	case EndRange:
		idx := t.newCount[y] - 1
		if idx < 0 {
			return
		}
		end := x + 2
		if end > t.cols {
			end = t.cols
		}
		t.newEnd[y][idx] = end
	case Neither:
		if x == 0 && t.newCount[y] == 0 {
			t.newStart[y][0] = 0
			t.newEnd[y][0] = -1
			t.newCount[y] = 1
		}
	}
}

// finalize closes any range left open (end == -1) at the grid width, as
// required once a level pass completes (§4.3).
func (t *tracker) finalize() {
	for y := 0; y < t.rows; y++ {
		if t.newCount[y] == 0 {
			continue
		}
		last := t.newCount[y] - 1
		if t.newEnd[y][last] == -1 {
			t.newEnd[y][last] = t.cols
		}
	}
}

// swap moves "new" into "old" and resets "new" for the next pass.
func (t *tracker) swap() {
	t.oldCount, t.newCount = t.newCount, t.oldCount
	t.oldStart, t.newStart = t.newStart, t.oldStart
	t.oldEnd, t.newEnd = t.newEnd, t.oldEnd
	for y := range t.newCount {
		t.newCount[y] = 0
	}
}
