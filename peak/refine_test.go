package peak

import (
	"math"
	"testing"

	"nmrkernel/grid"
)

// TestParabolicFWHMExactParabola exercises §8's "Parabolic refiner is
// exact for 3-sample perfect parabolas" invariant directly against the
// 1-D FWHM helper.
func TestParabolicFWHMExactParabola(t *testing.T) {
	a := -2.0
	vl := float32(a*1*1 + 10)
	vm := float32(10)
	vr := float32(a*1*1 + 10)
	width, ok := parabolicFWHM(vl, vm, vr)
	if !ok {
		t.Fatal("expected a valid FWHM")
	}
	// y = -2x^2 + 10 crosses y=5 at x = +-sqrt(2.5)
	want := float32(2 * math.Sqrt(2.5))
	if math.Abs(float64(width-want)) > 1e-4 {
		t.Errorf("want width %v, got %v", want, width)
	}
}

func TestParabolicFWHMRejectsUpwardParabola(t *testing.T) {
	_, ok := parabolicFWHM(10, 5, 10)
	if ok {
		t.Error("expected ok=false for an upward-opening parabola")
	}
}

// TestRefineGaussianScenario exercises §8 end-to-end scenario 5.
func TestRefineGaussianScenario(t *testing.T) {
	// anisotropic Gaussian: linewidth 2.5 on axis 0, 3.0 on axis 1.
	sigmaX := 2.5 / 2.3548200450309493
	sigmaY := 3.0 / 2.3548200450309493
	data := make([]float32, 9*9)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			dx := float64(x) - 3.3
			dy := float64(y) - 2.7
			v := 100 * math.Exp(-(dx*dx)/(2*sigmaX*sigmaX)-(dy*dy)/(2*sigmaY*sigmaY))
			// x indexes axis 0 (rows), matching the comment above.
			data[x*9+y] = float32(v)
		}
	}
	g := grid.New([]int{9, 9}, data)

	result := Refine(g, []float32{3, 3}, []int{0, 0}, []int{9, 9})

	if math.Abs(float64(result.Position[0]-3.3)) > 0.2 {
		t.Errorf("position[0]: want ~3.3, got %v", result.Position[0])
	}
	if math.Abs(float64(result.Position[1]-2.7)) > 0.2 {
		t.Errorf("position[1]: want ~2.7, got %v", result.Position[1])
	}
	if math.Abs(float64(result.Height-100)) > 1 {
		t.Errorf("height: want ~100, got %v", result.Height)
	}
	if math.Abs(float64(result.Linewidth[0]-2.5))/2.5 > 0.1 {
		t.Errorf("linewidth[0]: want ~2.5, got %v", result.Linewidth[0])
	}
	if math.Abs(float64(result.Linewidth[1]-3.0))/3.0 > 0.1 {
		t.Errorf("linewidth[1]: want ~3.0, got %v", result.Linewidth[1])
	}
}
