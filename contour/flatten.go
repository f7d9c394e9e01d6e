package contour

import "nmrkernel/grid"

// FlattenArrays implements the multi-array flattener (§4.6): it replaces
// K equal-shaped arrays with one envelope array whose value at each cell
// is max(cellsMax, 0) + min(cellsMin, 0), preserving both the positive
// and negative extremes seen across the inputs at that cell.
//
// Only meaningful for K > 1; called with a single array it returns that
// array unchanged (K == 1 has no other arrays to envelope against).
func FlattenArrays(arrays []*grid.Grid2D) (*grid.Grid2D, error) {
	if len(arrays) == 0 {
		return nil, ErrInconsistentArrayShapes
	}
	if len(arrays) == 1 {
		return arrays[0], nil
	}
	rows, cols := arrays[0].Rows, arrays[0].Cols
	for _, a := range arrays[1:] {
		if a.Rows != rows || a.Cols != cols {
			return nil, ErrInconsistentArrayShapes
		}
	}

	out := make([]float32, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var cellMax, cellMin float32
			for k, a := range arrays {
				v := a.At(i, j)
				if k == 0 || v > cellMax {
					cellMax = v
				}
				if k == 0 || v < cellMin {
					cellMin = v
				}
			}
			if cellMax < 0 {
				cellMax = 0
			}
			if cellMin > 0 {
				cellMin = 0
			}
			out[i*cols+j] = cellMax + cellMin
		}
	}
	return grid.NewGrid2D(rows, cols, out), nil
}
