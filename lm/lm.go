// Package lm implements a Levenberg-Marquardt nonlinear least-squares
// engine against an explicit, caller-supplied model function and analytic
// Jacobian, for fitting peak-shape models to sampled spectra (§4.10).
package lm

import "math"

// initialLambda and the damping update factors below are the constants
// named in §4.10.
const (
	initialLambda  = 1e-3
	lambdaDown     = 0.1
	lambdaUp       = 10.0
	maxIterations  = 20
	convergeStreak = 4
)

// Func evaluates the model and its partial derivatives with respect to
// every parameter, for one sample index. grad must have length
// Problem.NumParams.
type Func func(params []float64, sampleIndex int) (value float64, grad []float64)

// Problem packages one least-squares fit: S weighted samples, M
// parameters, and a model function (§4.10).
type Problem struct {
	NumParams int
	Y         []float64
	Weights   []float64 // nil means every sample has weight 1
	Eval      Func
}

func (p *Problem) weight(j int) float64 {
	if p.Weights == nil {
		return 1
	}
	return p.Weights[j]
}

// Result is the outcome of a successful Fit.
type Result struct {
	Params     []float64
	Chi2       float64
	Sigma      []float64 // per-parameter uncertainty; nil unless requested
	Iterations int
}

// chi2AndNormalEquations evaluates chi^2 and, if alpha/beta are non-nil,
// accumulates the normal equations alpha[p][q] = sum w*df/dap*df/daq and
// beta[p] = sum w*(y-f)*df/dap (§4.10 "Linearization").
func chi2AndNormalEquations(p *Problem, a []float64, alpha [][]float64, beta []float64) float64 {
	chi2 := 0.0
	grad := make([]float64, p.NumParams)
	for j := 0; j < len(p.Y); j++ {
		f, g := p.Eval(a, j)
		copy(grad, g)
		w := p.weight(j)
		resid := p.Y[j] - f
		chi2 += w * resid * resid

		if alpha != nil {
			for q := 0; q < p.NumParams; q++ {
				beta[q] += w * resid * grad[q]
				for r := 0; r <= q; r++ {
					alpha[q][r] += w * grad[q] * grad[r]
					if r != q {
						alpha[r][q] = alpha[q][r]
					}
				}
			}
		}
	}
	return chi2
}

func zeroMatrix(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	return out
}

// Fit runs the damped Gauss-Newton iteration of §4.10 to completion. If
// noise <= 0, it is estimated as 0.05 * max|y| over the samples
// (§4.10 "Noise estimate"). withCovariance, when true, performs the
// final undamped linearization and returns per-parameter uncertainties
// in Result.Sigma.
func Fit(p Problem, initial []float64, noise float64, withCovariance bool) (Result, error) {
	if noise <= 0 {
		maxAbs := 0.0
		for _, y := range p.Y {
			if v := math.Abs(y); v > maxAbs {
				maxAbs = v
			}
		}
		noise = 0.05 * maxAbs
	}

	a := append([]float64(nil), initial...)
	n := p.NumParams

	alpha := zeroMatrix(n)
	beta := make([]float64, n)
	chi2 := chi2AndNormalEquations(&p, a, alpha, beta)

	lambda := initialLambda
	streak := 0
	iterations := 0

	for iterations = 1; iterations <= maxIterations; iterations++ {
		alphaPrime := cloneMatrix(alpha)
		for d := 0; d < n; d++ {
			alphaPrime[d][d] *= 1 + lambda
		}
		db := make([][]float64, n)
		for i := range db {
			db[i] = []float64{beta[i]}
		}
		solveA := cloneMatrix(alphaPrime)
		if err := gaussJordan(solveA, db); err != nil {
			return Result{}, err
		}
		delta := make([]float64, n)
		for i := range delta {
			delta[i] = db[i][0]
		}

		candidate := make([]float64, n)
		for i := range candidate {
			candidate[i] = a[i] + delta[i]
		}

		newChi2 := chi2AndNormalEquations(&p, candidate, nil, nil)

		if newChi2 < chi2 {
			improvement := chi2 - newChi2
			a = candidate
			alpha = zeroMatrix(n)
			beta = make([]float64, n)
			chi2 = chi2AndNormalEquations(&p, a, alpha, beta)
			if improvement < 0.1*noise*noise {
				streak++
			} else {
				streak = 0
			}
			lambda *= lambdaDown
		} else {
			// A rejected step leaves chi^2 unchanged: an improvement of
			// zero, which counts toward the small-improvement streak.
			lambda *= lambdaUp
			streak++
		}

		if streak >= convergeStreak {
			break
		}
	}
	if iterations > maxIterations && streak < convergeStreak {
		return Result{}, ErrDidNotConverge
	}

	result := Result{Params: a, Chi2: chi2, Iterations: iterations}

	if withCovariance {
		finalAlpha := zeroMatrix(n)
		finalBeta := make([]float64, n)
		finalChi2 := chi2AndNormalEquations(&p, a, finalAlpha, finalBeta)
		inv := identity(n)
		if err := gaussJordan(finalAlpha, inv); err == nil {
			sigma := make([]float64, n)
			for d := 0; d < n; d++ {
				v := finalAlpha[d][d]
				if v < 0 {
					v = 0
				}
				sigma[d] = math.Sqrt(finalChi2 * v)
			}
			result.Sigma = sigma
		}
	}

	return result, nil
}
