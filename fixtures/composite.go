package fixtures

import "nmrkernel/grid"

// Peak describes one Gaussian contribution to a composite grid, in the
// same height/position/linewidth shape the peak fitter reports.
type Peak struct {
	Height       float64
	X, Y         float64
	FWHMX, FWHMY float64
}

// compositeCases hold multi-peak grids for exercising the peak finder's
// buffer gate and the LM fit driver on composites (§8 scenario 4 and 6).
var compositeCases = []Case{
	{Name: "two_separated_peaks_9x9", Grid: compositeGrid(9, 9, []Peak{
		{Height: 100, X: 4, Y: 4, FWHMX: 1.5, FWHMY: 1.5},
		{Height: 50, X: 4, Y: 7, FWHMX: 1.5, FWHMY: 1.5},
	})},
	{Name: "two_overlapping_peaks_16x16", Grid: compositeGrid(16, 16, []Peak{
		{Height: 100, X: 4, Y: 4, FWHMX: 2.0, FWHMY: 2.0},
		{Height: 60, X: 10, Y: 11, FWHMX: 2.5, FWHMY: 2.2},
	})},
	{Name: "three_peaks_20x20", Grid: compositeGrid(20, 20, []Peak{
		{Height: 80, X: 5, Y: 5, FWHMX: 2.0, FWHMY: 2.0},
		{Height: 120, X: 14, Y: 6, FWHMX: 1.8, FWHMY: 2.2},
		{Height: 40, X: 9, Y: 15, FWHMX: 2.2, FWHMY: 1.8},
	})},
}

// CompositeGrid builds a grid holding the sum of several Gaussian peaks,
// exported so package-external tests (e.g. the fit driver's own suite)
// can construct ad hoc composites beyond the fixed cases above.
func CompositeGrid(rows, cols int, peaks []Peak) *grid.Grid2D {
	return compositeGrid(rows, cols, peaks)
}

func compositeGrid(rows, cols int, peaks []Peak) *grid.Grid2D {
	data := make([]float32, rows*cols)
	for _, p := range peaks {
		addGaussian(data, rows, cols, p.X, p.Y, p.Height, p.FWHMX, p.FWHMY)
	}
	return grid.NewGrid2D(rows, cols, data)
}
