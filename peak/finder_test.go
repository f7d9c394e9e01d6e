package peak

import (
	"math"
	"testing"

	"nmrkernel/grid"
)

func gaussian2D(rows, cols int, cx, cy, height, fwhm float64) *grid.Grid {
	sigma := fwhm / 2.3548200450309493
	data := make([]float32, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			v := height * math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma))
			data[y*cols+x] = float32(v)
		}
	}
	return grid.New([]int{rows, cols}, data)
}

func TestFindPeakOnSingleSpike(t *testing.T) {
	data := []float32{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 100, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	}
	g := grid.New([]int{5, 5}, data)
	peaks, err := Find(g, FindOptions{
		SeekMaxima: true,
		High:       10,
		DropFactor: 0.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(peaks) != 1 {
		t.Fatalf("expected 1 peak, got %d", len(peaks))
	}
	if peaks[0].Position[0] != 2 || peaks[0].Position[1] != 2 {
		t.Errorf("expected peak at (2,2), got %v", peaks[0].Position)
	}
}

// TestFindTwoMaximaWithBuffer exercises §8 end-to-end scenario 4.
func TestFindTwoMaximaWithBuffer(t *testing.T) {
	const n = 9
	data := make([]float32, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := float32(1)
			if y == 4 && x == 4 {
				v = 100
			}
			if y == 4 && x == 7 {
				v = 50
			}
			data[y*n+x] = v
		}
	}
	g := grid.New([]int{n, n}, data)
	peaks, err := Find(g, FindOptions{
		SeekMaxima:  true,
		High:        40,
		Buffer:      []int{4, 4},
		DropFactor:  0.5,
		NonAdjacent: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(peaks) != 1 {
		t.Fatalf("expected exactly 1 peak, got %d: %v", len(peaks), peaks)
	}
	if peaks[0].Position[0] != 4 || peaks[0].Position[1] != 4 {
		t.Errorf("expected peak at (4,4), got %v", peaks[0].Position)
	}
}

func TestFindNoCriterionReturnsEmpty(t *testing.T) {
	g := grid.New([]int{5, 5}, make([]float32, 25))
	peaks, err := Find(g, FindOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(peaks) != 0 {
		t.Errorf("expected empty result, got %d peaks", len(peaks))
	}
}

func TestFindConstantGridReturnsEmpty(t *testing.T) {
	data := make([]float32, 25)
	for i := range data {
		data[i] = 5
	}
	g := grid.New([]int{5, 5}, data)
	peaks, err := Find(g, FindOptions{SeekMaxima: true, High: 1, DropFactor: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(peaks) != 0 {
		t.Errorf("expected no peaks on constant grid (drop gate always fails), got %d", len(peaks))
	}
}

func TestRectExclusionRejectsPoint(t *testing.T) {
	data := []float32{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 100, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	}
	g := grid.New([]int{5, 5}, data)
	peaks, err := Find(g, FindOptions{
		SeekMaxima: true,
		High:       10,
		DropFactor: 0.5,
		RectExclusions: []RectExclusion{
			{Lo: []int{1, 1}, Hi: []int{3, 3}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(peaks) != 0 {
		t.Errorf("expected the exclusion box to suppress the peak, got %d", len(peaks))
	}
}
