package peak

import (
	"math"

	"nmrkernel/grid"
)

// parabolicFWHM fits the 3-point parabola y = a*x^2 + b*x + c through
// (-1, vl), (0, vm), (1, vr) and returns the full width at half the
// parabola's apex height above its own baseline (§4.8 steps b-d). It
// reports ok=false when the parabola opens upward (a >= 0) or the
// half-height crossing has no real solution (k <= 0) — there is then no
// meaningful peak width to report.
func parabolicFWHM(vl, vm, vr float32) (width float32, ok bool) {
	a := 0.5 * (vl + vr - 2*vm)
	b := 0.5 * (vr - vl)
	c := vm

	if a >= 0 {
		return 0, false
	}
	xApex := -b / (2 * a)
	hApex := a*xApex*xApex + b*xApex + c

	k := b*b - 4*a*(c-hApex/2)
	if k <= 0 {
		return 0, false
	}
	xHalf := (float32(math.Sqrt(float64(k))) - b) / (2 * a)
	return 2 * absf32(xApex-xHalf), true
}

// RefineResult is the outcome of a parabolic sub-pixel refinement
// (§4.8 step 4).
type RefineResult struct {
	Height    float32
	Position  []float32
	Linewidth []float32
}

// Refine sub-pixel localizes a seed position using independent 3-point
// parabolic fits along each axis, clipping the snapped integer center to
// stay one cell inside [first, last) on every axis so the 3-point cross
// never reads outside the fitting region (§4.8).
func Refine(g *grid.Grid, seed []float32, first, last []int) RefineResult {
	n := len(seed)
	center := make([]int, n)
	for i, s := range seed {
		c := int(s + 0.5)
		if c < first[i]+1 {
			c = first[i] + 1
		}
		if c > last[i]-2 {
			c = last[i] - 2
		}
		center[i] = c
	}

	position := make([]float32, n)
	linewidth := make([]float32, n)
	var height float32

	for axis := 0; axis < n; axis++ {
		lo := append([]int(nil), center...)
		lo[axis]--
		hi := append([]int(nil), center...)
		hi[axis]++

		vl := g.At(lo)
		vm := g.At(center)
		vr := g.At(hi)

		a := 0.5 * (vl + vr - 2*vm)
		b := 0.5 * (vr - vl)
		c := vm

		var xApex float32
		if a != 0 {
			xApex = -b / (2 * a)
		}
		hApex := a*xApex*xApex + b*xApex + c

		width, ok := parabolicFWHM(vl, vm, vr)
		if ok {
			linewidth[axis] = width
		}

		position[axis] = float32(center[axis]) + xApex
		height = hApex
	}

	return RefineResult{Height: height, Position: position, Linewidth: linewidth}
}
