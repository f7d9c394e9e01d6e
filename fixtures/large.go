package fixtures

import "nmrkernel/grid"

// largeCases hold grids large enough to exercise the active-region
// tracker's benefit over a naive full-grid rescan at every level — many
// rows never touch certain column ranges across a multi-level request.
var largeCases = []Case{
	{Name: "large_single_peak_128x128", Grid: singleGaussian(128, 128, 64, 64, 1000, 10, 10)},
	{Name: "large_grid_of_peaks_256x256", Grid: gridOfPeaks(256, 256, 8, 8, 200, 4)},
}

// gridOfPeaks tiles rows x cols with an nx-by-ny array of evenly spaced
// Gaussian peaks, used to stress the active-region tracker across many
// simultaneously live column ranges.
func gridOfPeaks(rows, cols, nx, ny int, height, fwhm float64) *grid.Grid2D {
	data := make([]float32, rows*cols)
	stepX := float64(cols) / float64(nx+1)
	stepY := float64(rows) / float64(ny+1)
	for j := 1; j <= ny; j++ {
		for i := 1; i <= nx; i++ {
			addGaussian(data, rows, cols, stepX*float64(i), stepY*float64(j), height, fwhm, fwhm)
		}
	}
	return grid.NewGrid2D(rows, cols, data)
}
