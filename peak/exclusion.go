package peak

import "math"

// RectExclusion rejects every grid point within an axis-aligned box,
// bounds inclusive (§6 "rect_exclusions: list<{lo: i32[N], hi: i32[N]}>").
type RectExclusion struct {
	Lo, Hi []int
}

func (r RectExclusion) contains(p []int) bool {
	for i := range p {
		if p[i] < r.Lo[i] || p[i] > r.Hi[i] {
			return false
		}
	}
	return true
}

// DiagExclusion rejects points near a diagonal band in the (I, J)
// coordinate plane: points satisfying |Ai*p[I] - Aj*p[J] + B| <= Delta
// (§3 "diagonal constraint ... test: |a_i·p_i − a_j·p_j + b| ≤ delta"),
// used to blank the diagonal ridge of a homonuclear 2-D spectrum.
type DiagExclusion struct {
	I, J      int
	Ai, Aj, B float64
	Delta     float64
}

func (d DiagExclusion) contains(p []int) bool {
	v := d.Ai*float64(p[d.I]) - d.Aj*float64(p[d.J]) + d.B
	return math.Abs(v) <= d.Delta
}

func excluded(p []int, rects []RectExclusion, diags []DiagExclusion) bool {
	for _, r := range rects {
		if r.contains(p) {
			return true
		}
	}
	for _, d := range diags {
		if d.contains(p) {
			return true
		}
	}
	return false
}
