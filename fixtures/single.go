package fixtures

import "nmrkernel/grid"

// singleCases hold one isolated feature each: the minimal
// single-above-level-cell case from §8 scenario 1, and a handful of
// analytic single Gaussians at varying size and position for the
// contour and peak-refinement suites (§8 scenario 2 and 5).
var singleCases = []Case{
	{
		Name: "single_elevated_cell_3x3",
		Grid: func() *grid.Grid2D {
			data := []float32{
				0, 0, 0,
				0, 10, 0,
				0, 0, 0,
			}
			return grid.NewGrid2D(3, 3, data)
		}(),
	},
	{Name: "gaussian_centered_5x5", Grid: singleGaussian(5, 5, 2.0, 2.0, 1.0, 2.0, 2.0)},
	{Name: "gaussian_offcenter_9x9", Grid: singleGaussian(9, 9, 3.3, 2.7, 100, 2.5, 3.0)},
	{Name: "gaussian_narrow_16x16", Grid: singleGaussian(16, 16, 8, 8, 50, 1.2, 1.2)},
}

func singleGaussian(rows, cols int, cx, cy, height, fwhmX, fwhmY float64) *grid.Grid2D {
	data := make([]float32, rows*cols)
	addGaussian(data, rows, cols, cx, cy, height, fwhmX, fwhmY)
	return grid.NewGrid2D(rows, cols, data)
}
