package fixtures

import "nmrkernel/grid"

// constantCases are flat grids: the contour extractor must report zero
// polylines at every level, and the peak finder must report no peaks
// (§8 "A constant grid produces zero polylines at every level").
var constantCases = []Case{
	{Name: "zero_5x5", Grid: constantGrid(5, 5, 0)},
	{Name: "flat_positive_9x9", Grid: constantGrid(9, 9, 3.5)},
	{Name: "flat_negative_9x9", Grid: constantGrid(9, 9, -2.0)},
}

func constantGrid(rows, cols int, value float32) *grid.Grid2D {
	data := make([]float32, rows*cols)
	for i := range data {
		data[i] = value
	}
	return grid.NewGrid2D(rows, cols, data)
}
