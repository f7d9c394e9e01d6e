package peak

import (
	"math"
	"testing"

	"nmrkernel/grid"
)

// TestFitTwoPeakComposite exercises §8 end-to-end scenario 6: a
// noise-free 2-peak Gaussian composite should converge with tiny chi^2,
// parameters within 1e-3 of truth, in at most 10 iterations.
func TestFitTwoPeakComposite(t *testing.T) {
	const rows, cols = 16, 16
	type truth struct{ h, px, py, wx, wy float64 }
	peaks := []truth{
		{h: 100, px: 4.0, py: 4.0, wx: 2.0, wy: 2.0},
		{h: 60, px: 10.0, py: 11.0, wx: 2.5, wy: 2.2},
	}
	c := 4 * math.Ln2

	data := make([]float32, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := 0.0
			for _, pk := range peaks {
				dx := float64(x) - pk.px
				dy := float64(y) - pk.py
				v += pk.h * math.Exp(-c*dx*dx/(pk.wx*pk.wx)) * math.Exp(-c*dy*dy/(pk.wy*pk.wy))
			}
			// x indexes axis 0 (rows), so px/wx belong to axis 0 as the
			// seeds and assertions below expect.
			data[x*cols+y] = float32(v)
		}
	}
	g := grid.New([]int{rows, cols}, data)

	seeds := [][]float32{
		{4, 4},
		{10, 11},
	}
	result, err := Fit(g, []int{0, 0}, []int{rows, cols}, seeds, FitOptions{Shape: Gaussian, Noise: 1e-6}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Chi2 > 1e-6 {
		t.Errorf("expected chi2 <= 1e-6, got %v", result.Chi2)
	}
	if result.Iterations > 10 {
		t.Errorf("expected convergence within 10 iterations, got %d", result.Iterations)
	}
	for i, want := range peaks {
		got := result.Peaks[i]
		if math.Abs(float64(got.Height)-want.h) > 1e-3 {
			t.Errorf("peak %d height: want %v, got %v", i, want.h, got.Height)
		}
		if math.Abs(float64(got.Position[0])-want.px) > 1e-3 {
			t.Errorf("peak %d position[0]: want %v, got %v", i, want.px, got.Position[0])
		}
		if math.Abs(float64(got.Position[1])-want.py) > 1e-3 {
			t.Errorf("peak %d position[1]: want %v, got %v", i, want.py, got.Position[1])
		}
	}
}

func TestFitWithCovarianceReportsSigma(t *testing.T) {
	g := gaussian2D(12, 12, 5.0, 5.0, 50, 2.0)
	result, err := Fit(g, []int{0, 0}, []int{12, 12}, [][]float32{{5, 5}}, FitOptions{Shape: Gaussian, Noise: 1e-6}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Sigma == nil || len(result.Sigma) != 1 {
		t.Fatal("expected per-peak sigma to be populated")
	}
}
