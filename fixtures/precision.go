package fixtures

import "nmrkernel/grid"

// precisionCases exercise subpixel edge-crossing precision: a peak
// positioned at fractional offsets within its cell, and a level set
// exactly equal to a sample value, which must resolve as "below" under
// the strict '>' comparison (§5 "the distinction between > and >= must
// be preserved"; §8 "Levels exactly equal to a sample value").
var precisionCases = []Case{
	{Name: "subpixel_offset_00", Grid: singleGaussian(9, 9, 4.0, 4.0, 50, 2.0, 2.0)},
	{Name: "subpixel_offset_25", Grid: singleGaussian(9, 9, 4.25, 4.25, 50, 2.0, 2.0)},
	{Name: "subpixel_offset_50", Grid: singleGaussian(9, 9, 4.5, 4.5, 50, 2.0, 2.0)},
	{Name: "subpixel_offset_75", Grid: singleGaussian(9, 9, 4.75, 4.75, 50, 2.0, 2.0)},
	{
		Name: "level_equals_sample_exactly",
		Grid: func() *grid.Grid2D {
			data := []float32{
				0, 0, 0,
				0, 5, 0,
				0, 0, 0,
			}
			return grid.NewGrid2D(3, 3, data)
		}(),
	},
}
