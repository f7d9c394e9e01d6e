package peak

import "math"

// ln2x4 is the constant c = 4*ln(2) shared by the Gaussian and
// Lorentzian shape models (§4.9).
const ln2x4 = 4 * math.Ln2

// ShapeKind selects the peak line shape used by the fit driver.
type ShapeKind int

const (
	Gaussian ShapeKind = iota
	Lorentzian
)

// shapeParams is one peak's parameter block: height, N-dimensional
// position, and N-dimensional linewidth, packed contiguously in a
// model's flat parameter vector as [h, pos..., lw...].
type shapeParams struct {
	h   float64
	pos []float64
	lw  []float64
}

func unpackShape(a []float64, n int) shapeParams {
	return shapeParams{
		h:   a[0],
		pos: a[1 : 1+n],
		lw:  a[1+n : 1+2*n],
	}
}

// evalGaussian computes the Gaussian model value and its partial
// derivatives with respect to [h, position..., linewidth...] at sample
// point x (§4.9). grad must have length 1+2*n.
func evalGaussian(p shapeParams, x []float64, grad []float64) float64 {
	n := len(x)
	y := p.h
	dx := make([]float64, n)
	for i := 0; i < n; i++ {
		dx[i] = x[i] - p.pos[i]
		w := p.lw[i]
		y *= math.Exp(-ln2x4 * dx[i] * dx[i] / (w * w))
	}

	if grad != nil {
		grad[0] = y / p.h
		for i := 0; i < n; i++ {
			w := p.lw[i]
			grad[1+i] = y * (2 * ln2x4 * dx[i]) / (w * w)
			grad[1+n+i] = y * (2 * ln2x4 * dx[i] * dx[i]) / (w * w * w)
		}
	}
	return y
}

// evalLorentzian computes the Lorentzian model value and its partial
// derivatives at sample point x (§4.9). grad must have length 1+2*n.
func evalLorentzian(p shapeParams, x []float64, grad []float64) float64 {
	n := len(x)
	y := p.h
	dx := make([]float64, n)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		dx[i] = x[i] - p.pos[i]
		w := p.lw[i]
		d[i] = w*w + 4*dx[i]*dx[i]
		y *= w * w / d[i]
	}

	if grad != nil {
		grad[0] = y / p.h
		for i := 0; i < n; i++ {
			w := p.lw[i]
			grad[1+i] = y * (8 * dx[i]) / d[i]
			grad[1+n+i] = y * (8 * dx[i] * dx[i]) / (w * d[i])
		}
	}
	return y
}

func evalShape(kind ShapeKind, p shapeParams, x []float64, grad []float64) float64 {
	if kind == Gaussian {
		return evalGaussian(p, x, grad)
	}
	return evalLorentzian(p, x, grad)
}
