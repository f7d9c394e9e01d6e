// Package peak implements the N-dimensional peak finder, the parabolic
// sub-pixel refiner, the Gaussian/Lorentzian shape models, and the
// multi-peak fit driver that sits on top of package lm (§4.7-§4.11).
package peak

import (
	"math"

	"nmrkernel/grid"
)

// Peak is one accepted extremum: an integer grid position and its
// sampled height (§4.7 output — sub-pixel refinement is a separate step).
type Peak struct {
	Position []int
	Height   float32
}

// FindOptions configures Find (§4.7, §6 "Peak-find interface").
type FindOptions struct {
	SeekMaxima, SeekMinima bool
	High, Low              float32

	Buffer      []int   // per-axis exclusion buffer around already-accepted peaks
	NonAdjacent bool    // 3^N-1 neighborhood instead of the 2N axis neighbors
	DropFactor  float32 // delta in [0,1)

	MinLinewidth []float32 // per-axis; 0 disables the gate on that axis

	RectExclusions []RectExclusion
	DiagExclusions []DiagExclusion
}

// Find locates local extrema of g under the configured criteria,
// returning them in lexicographic scan order (innermost axis fastest),
// which makes the buffer gate's "already accepted" set deterministic.
//
// Empty grids, grids with no interior point on some axis, and
// configurations with neither SeekMaxima nor SeekMinima all return an
// empty list without error (§4.7 "Failure semantics").
func Find(g *grid.Grid, opts FindOptions) ([]Peak, error) {
	if !opts.SeekMaxima && !opts.SeekMinima {
		return nil, nil
	}
	shape := g.Shape()
	n := len(shape)
	for _, s := range shape {
		if s < 3 {
			return nil, nil
		}
	}

	var accepted []Peak

	idx := make([]int, n)
	for i := range idx {
		idx[i] = 1
	}
	for {
		p := append([]int(nil), idx...)
		if tryAccept(g, p, opts, accepted) {
			v := g.At(p)
			accepted = append(accepted, Peak{Position: p, Height: v})
		}

		axis := n - 1
		for axis >= 0 {
			idx[axis]++
			if idx[axis] <= shape[axis]-2 {
				break
			}
			idx[axis] = 1
			axis--
		}
		if axis < 0 {
			break
		}
	}

	return accepted, nil
}

func tryAccept(g *grid.Grid, p []int, opts FindOptions, accepted []Peak) bool {
	v := g.At(p)

	// 1. Intensity gate. A point candidate for maxima is evaluated
	// entirely under maxima rules from here on, and likewise for
	// minima; High > Low in any sane configuration keeps the two from
	// overlapping, so candidacy for maxima is checked first.
	candidateMax := opts.SeekMaxima && v >= opts.High
	candidateMin := opts.SeekMinima && v <= opts.Low
	if !candidateMax && !candidateMin {
		return false
	}
	seekingMax := candidateMax

	// 2. Exclusion gate.
	if excluded(p, opts.RectExclusions, opts.DiagExclusions) {
		return false
	}

	// 3. Extremum gate.
	if !isExtremum(g, p, v, seekingMax, opts.NonAdjacent) {
		return false
	}

	// 4. Drop gate.
	if !passesDropGate(g, p, v, seekingMax, opts.DropFactor) {
		return false
	}

	// 5. Linewidth gate.
	if !passesLinewidthGate(g, p, opts.MinLinewidth) {
		return false
	}

	// 6. Buffer gate.
	if tooCloseToAccepted(p, accepted, opts.Buffer) {
		return false
	}

	return true
}

// isExtremum implements the adjacent and non-adjacent extremum gates of
// §4.7 step 3.
func isExtremum(g *grid.Grid, p []int, v float32, seekingMax, nonAdjacent bool) bool {
	cmp := func(neighbor float32) bool {
		if seekingMax {
			return v >= neighbor
		}
		return v <= neighbor
	}

	if !nonAdjacent {
		for axis := range p {
			for _, sign := range [2]int{-1, 1} {
				q := append([]int(nil), p...)
				q[axis] += sign
				if !cmp(g.At(q)) {
					return false
				}
			}
		}
		return true
	}

	n := len(p)
	offset := make([]int, n)
	for i := range offset {
		offset[i] = -1
	}
	for {
		allZero := true
		for _, o := range offset {
			if o != 0 {
				allZero = false
				break
			}
		}
		if !allZero {
			q := make([]int, n)
			for i := range q {
				q[i] = p[i] + offset[i]
			}
			if !cmp(g.At(q)) {
				return false
			}
		}

		axis := n - 1
		for axis >= 0 {
			offset[axis]++
			if offset[axis] <= 1 {
				break
			}
			offset[axis] = -1
			axis--
		}
		if axis < 0 {
			break
		}
	}
	return true
}

// passesDropGate implements §4.7 step 4: along each of the 2N
// axis-aligned half-lines out of p, values must monotonically move away
// from v and cross the delta*|v| threshold before reversing direction or
// leaving the grid. At least one half-line must succeed.
func passesDropGate(g *grid.Grid, p []int, v float32, seekingMax bool, dropFactor float32) bool {
	shape := g.Shape()
	threshold := dropFactor * absf32(v)

	for axis := range p {
		for _, sign := range [2]int{-1, 1} {
			if walkAchievesDrop(g, p, shape, axis, sign, v, threshold, seekingMax) {
				return true
			}
		}
	}
	return false
}

func walkAchievesDrop(g *grid.Grid, p []int, shape []int, axis, sign int, v, threshold float32, seekMaxima bool) bool {
	q := append([]int(nil), p...)
	prev := v
	for {
		q[axis] += sign
		if q[axis] < 0 || q[axis] >= shape[axis] {
			return false
		}
		val := g.At(q)
		if seekMaxima {
			if val > prev {
				return false
			}
			if val <= v-threshold {
				return true
			}
		} else {
			if val < prev {
				return false
			}
			if val >= v+threshold {
				return true
			}
		}
		prev = val
	}
}

// passesLinewidthGate implements §4.7 step 5, reusing the §4.8 parabolic
// FWHM estimate along each axis that has a configured minimum.
func passesLinewidthGate(g *grid.Grid, p []int, minlw []float32) bool {
	for axis, minWidth := range minlw {
		if minWidth <= 0 {
			continue
		}
		lo := append([]int(nil), p...)
		lo[axis]--
		hi := append([]int(nil), p...)
		hi[axis]++
		width, ok := parabolicFWHM(g.At(lo), g.At(p), g.At(hi))
		if !ok || width < minWidth {
			return false
		}
	}
	return true
}

func tooCloseToAccepted(p []int, accepted []Peak, buffer []int) bool {
	if len(buffer) == 0 {
		return false
	}
	for _, q := range accepted {
		allWithin := true
		for i := range p {
			if absInt(p[i]-q.Position[i]) > buffer[i] {
				allWithin = false
				break
			}
		}
		if allWithin {
			return true
		}
	}
	return false
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func absf32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
