package lm

import (
	"math"
	"testing"
)

// TestFitLinearModel exercises the engine against a model with a known
// closed-form optimum: y = a0 + a1*x, noise-free samples.
func TestFitLinearModel(t *testing.T) {
	xs := []float64{-2, -1, 0, 1, 2, 3}
	const trueA0, trueA1 = 1.5, -0.75
	y := make([]float64, len(xs))
	for i, x := range xs {
		y[i] = trueA0 + trueA1*x
	}

	eval := func(params []float64, j int) (float64, []float64) {
		x := xs[j]
		return params[0] + params[1]*x, []float64{1, x}
	}

	problem := Problem{NumParams: 2, Y: y, Eval: eval}
	result, err := Fit(problem, []float64{0, 0}, 1e-6, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(result.Params[0]-trueA0) > 1e-3 {
		t.Errorf("a0: want %v, got %v", trueA0, result.Params[0])
	}
	if math.Abs(result.Params[1]-trueA1) > 1e-3 {
		t.Errorf("a1: want %v, got %v", trueA1, result.Params[1])
	}
	if result.Chi2 > 1e-6 {
		t.Errorf("expected chi2 near 0, got %v", result.Chi2)
	}
	if result.Sigma == nil {
		t.Error("expected uncertainties to be populated")
	}
}

func TestFitSingularReportsError(t *testing.T) {
	// Two parameters, the second with zero gradient at every sample: its
	// row and column of the normal matrix are zero, and the multiplicative
	// damping alpha[p][p]*(1+lambda) leaves that diagonal entry zero.
	y := []float64{1, 1, 1}
	eval := func(params []float64, j int) (float64, []float64) {
		return params[0], []float64{1, 0}
	}
	problem := Problem{NumParams: 2, Y: y, Eval: eval}
	_, err := Fit(problem, []float64{0, 0}, 0.1, false)
	if err != ErrSingular {
		t.Fatalf("expected ErrSingular, got %v", err)
	}
}

func TestGaussJordanSolvesIdentitySystem(t *testing.T) {
	a := [][]float64{{2, 0}, {0, 4}}
	b := [][]float64{{6}, {8}}
	if err := gaussJordan(a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b[0][0] != 3 || b[1][0] != 2 {
		t.Errorf("expected solution (3,2), got (%v,%v)", b[0][0], b[1][0])
	}
}
