package peak

import (
	"math"

	"nmrkernel/grid"

	"nmrkernel/lm"
)

// outOfRegionPenalty is the constant model value substituted for every
// residual sample once any peak's position has drifted more than one
// cell outside the fit region on some axis (§4.9 "Out-of-region penalty").
const outOfRegionPenalty = 1e20

// paramsPerPeak returns the flat parameter-block size (height, N
// positions, N linewidths) for an N-dimensional fit.
func paramsPerPeak(n int) int { return 1 + 2*n }

// FitOptions configures Fit (§4.11, §6).
type FitOptions struct {
	Shape   ShapeKind
	Weights []float64 // nil means uniform weight 1; §4.10/§4.11 "optional user weights"
	Noise   float64   // 0 triggers the §4.10 noise estimate
}

// FitResult unpacks the LM engine's output into per-peak records
// (§4.11 step 4).
type FitResult struct {
	Peaks      []RefineResult
	Sigma      [][]float64 // per-peak uncertainty, same layout as a peak's packed params; nil if not requested
	Chi2       float64
	Iterations int
}

// Fit drives a multi-peak Gaussian/Lorentzian composite fit over a
// rectangular region of g, seeded from initial peak positions (§4.11).
func Fit(g *grid.Grid, first, last []int, seeds [][]float32, opts FitOptions, withCovariance bool) (FitResult, error) {
	n := len(first)
	k := len(seeds)
	regionShape := make([]int, n)
	total := 1
	for i := range regionShape {
		regionShape[i] = last[i] - first[i]
		total *= regionShape[i]
	}

	y := make([]float64, total)
	coords := make([][]float64, total)
	for j := 0; j < total; j++ {
		idx := unflattenRowMajor(j, regionShape)
		abs := make([]int, n)
		xabs := make([]float64, n)
		for i := range idx {
			abs[i] = first[i] + idx[i]
			xabs[i] = float64(abs[i])
		}
		y[j] = float64(g.At(abs))
		coords[j] = xabs
	}

	blockSize := paramsPerPeak(n)
	initial := make([]float64, k*blockSize)
	for pk, seed := range seeds {
		base := pk * blockSize
		center := make([]int, n)
		for i, s := range seed {
			center[i] = int(s + 0.5)
			if center[i] < first[i] {
				center[i] = first[i]
			}
			if center[i] > last[i]-1 {
				center[i] = last[i] - 1
			}
		}
		h := g.At(center)
		initial[base] = float64(h)
		for i, s := range seed {
			initial[base+1+i] = float64(s)
			initial[base+1+n+i] = seedLinewidth(g, center, i, float64(h), first[i], last[i])
		}
	}

	eval := func(a []float64, j int) (float64, []float64) {
		x := coords[j]
		grad := make([]float64, len(a))

		outOfRegion := false
		for pk := 0; pk < k; pk++ {
			base := pk * blockSize
			p := unpackShape(a[base:base+blockSize], n)
			for i := 0; i < n; i++ {
				if p.pos[i] < float64(first[i])-1 || p.pos[i] > float64(last[i]) {
					outOfRegion = true
				}
			}
		}
		if outOfRegion {
			return outOfRegionPenalty, grad
		}

		total := 0.0
		for pk := 0; pk < k; pk++ {
			base := pk * blockSize
			p := unpackShape(a[base:base+blockSize], n)
			sub := make([]float64, blockSize)
			total += evalShape(opts.Shape, p, x, sub)
			copy(grad[base:base+blockSize], sub)
		}
		return total, grad
	}

	problem := lm.Problem{NumParams: k * blockSize, Y: y, Weights: opts.Weights, Eval: eval}
	result, err := lm.Fit(problem, initial, opts.Noise, withCovariance)
	if err != nil {
		return FitResult{}, err
	}

	out := FitResult{Chi2: result.Chi2, Iterations: result.Iterations}
	out.Peaks = make([]RefineResult, k)
	if withCovariance {
		out.Sigma = make([][]float64, k)
	}
	for pk := 0; pk < k; pk++ {
		base := pk * blockSize
		pos := make([]float32, n)
		lw := make([]float32, n)
		for i := 0; i < n; i++ {
			pos[i] = float32(result.Params[base+1+i])
			lw[i] = float32(result.Params[base+1+n+i])
		}
		out.Peaks[pk] = RefineResult{
			Height:    float32(result.Params[base]),
			Position:  pos,
			Linewidth: lw,
		}
		if withCovariance && result.Sigma != nil {
			out.Sigma[pk] = append([]float64(nil), result.Sigma[base:base+blockSize]...)
		}
	}
	return out, nil
}

// seedLinewidth estimates the half-max full width along axis i by
// walking outward from center until the value crosses h/2, then
// linearly interpolating between the last in-half and first out-of-half
// sample; falls back to 1.0 if no crossing is found before the region
// boundary (§4.11 step 2).
func seedLinewidth(g *grid.Grid, center []int, axis int, h float64, first, last int) float64 {
	half := h / 2
	var loCross, hiCross float64
	haveLo, haveHi := false, false

	q := append([]int(nil), center...)
	prevVal := h
	prevPos := float64(center[axis])
	for x := center[axis] - 1; x >= first; x-- {
		q[axis] = x
		v := float64(g.At(q))
		if crossesHalf(prevVal, v, half) {
			loCross = interpolateCrossing(prevPos, prevVal, float64(x), v, half)
			haveLo = true
			break
		}
		prevVal = v
		prevPos = float64(x)
	}

	q = append([]int(nil), center...)
	prevVal = h
	prevPos = float64(center[axis])
	for x := center[axis] + 1; x < last; x++ {
		q[axis] = x
		v := float64(g.At(q))
		if crossesHalf(prevVal, v, half) {
			hiCross = interpolateCrossing(prevPos, prevVal, float64(x), v, half)
			haveHi = true
			break
		}
		prevVal = v
		prevPos = float64(x)
	}

	if !haveLo || !haveHi {
		return 1.0
	}
	return math.Abs(hiCross - loCross)
}

func crossesHalf(a, b, half float64) bool {
	return (a-half >= 0) != (b-half >= 0)
}

func interpolateCrossing(xa, va, xb, vb, half float64) float64 {
	if va == vb {
		return xa
	}
	t := (half - va) / (vb - va)
	return xa + t*(xb-xa)
}

func unflattenRowMajor(flat int, shape []int) []int {
	n := len(shape)
	strides := make([]int, n)
	stride := 1
	for i := n - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		idx[i] = flat / strides[i]
		flat -= idx[i] * strides[i]
	}
	return idx
}
