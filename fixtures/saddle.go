package fixtures

import "nmrkernel/grid"

// saddleCases exercise the marching-squares saddle disambiguation
// (§4.2: "two diagonally opposite corners differ"): a checkerboard cell
// with high values on one diagonal and low values on the other.
var saddleCases = []Case{
	{
		Name: "single_saddle_cell_2x2",
		Grid: func() *grid.Grid2D {
			// bottom-right and top-left high, the other diagonal low
			// (row 0 is the bottom row).
			data := []float32{
				0, 10,
				10, 0,
			}
			return grid.NewGrid2D(2, 2, data)
		}(),
	},
	{
		Name: "saddle_checkerboard_4x4",
		Grid: func() *grid.Grid2D {
			data := make([]float32, 16)
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					if (x+y)%2 == 0 {
						data[y*4+x] = 10
					}
				}
			}
			return grid.NewGrid2D(4, 4, data)
		}(),
	},
	{
		Name: "saddle_ridge_crossing_6x6",
		Grid: func() *grid.Grid2D {
			data := make([]float32, 36)
			for y := 0; y < 6; y++ {
				for x := 0; x < 6; x++ {
					v := float32(0)
					if x == y {
						v = 10
					} else if x == 5-y {
						v = -10
					}
					data[y*6+x] = v
				}
			}
			return grid.NewGrid2D(6, 6, data)
		}(),
	},
}
