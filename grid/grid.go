// Package grid provides bounds-checked access to a rectangular, row-major
// N-dimensional array of float32 samples — the sample representation
// shared by the contour and peak packages.
package grid

import "fmt"

// MaxRank is the highest dimensionality a Grid supports (§3 Data Model:
// "N-D (1 ≤ N ≤ 10)").
const MaxRank = 10

// Grid is a read-only view over a flat, row-major float32 array. Axis 0
// is the slowest-varying axis. A Grid never copies the backing slice and
// must not retain it past the caller's ownership of the request (§5:
// "must not retain references to caller-provided grid buffers past
// return" binds the packages built on top of Grid, not Grid itself,
// which is a thin accessor).
type Grid struct {
	shape   []int
	strides []int
	data    []float32
}

// New builds a Grid over data, interpreting it as row-major with the
// given shape. It panics if shape is empty, has rank > MaxRank, contains
// a non-positive extent, or if len(data) does not equal the product of
// shape — these are programming errors, not runtime conditions (§3).
func New(shape []int, data []float32) *Grid {
	if len(shape) == 0 {
		panic("grid: shape must have rank >= 1")
	}
	if len(shape) > MaxRank {
		panic(fmt.Sprintf("grid: rank %d exceeds MaxRank %d", len(shape), MaxRank))
	}
	strides := make([]int, len(shape))
	n := 1
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] <= 0 {
			panic(fmt.Sprintf("grid: non-positive extent %d on axis %d", shape[i], i))
		}
		strides[i] = n
		n *= shape[i]
	}
	if len(data) != n {
		panic(fmt.Sprintf("grid: data length %d does not match shape product %d", len(data), n))
	}
	return &Grid{shape: shape, strides: strides, data: data}
}

// Rank returns the number of axes.
func (g *Grid) Rank() int { return len(g.shape) }

// Shape returns the extent of each axis. The caller must not mutate the
// returned slice.
func (g *Grid) Shape() []int { return g.shape }

// Len returns the total number of samples.
func (g *Grid) Len() int { return len(g.data) }

// Data returns the backing flat array in row-major order. The caller
// must not mutate it.
func (g *Grid) Data() []float32 { return g.data }

// FlatIndex converts a multi-index into a flat offset into Data.
// Out-of-range components are a programming error (they will either
// panic via the bounds check below or produce a flat index outside
// Data, which then panics on use).
func (g *Grid) FlatIndex(idx []int) int {
	flat := 0
	for i, v := range idx {
		if v < 0 || v >= g.shape[i] {
			panic(fmt.Sprintf("grid: index %d out of range [0,%d) on axis %d", v, g.shape[i], i))
		}
		flat += v * g.strides[i]
	}
	return flat
}

// MultiIndex converts a flat offset into a multi-index. The returned
// slice is freshly allocated.
func (g *Grid) MultiIndex(flat int) []int {
	idx := make([]int, len(g.shape))
	for i, s := range g.strides {
		idx[i] = flat / s
		flat -= idx[i] * s
	}
	return idx
}

// At reads the sample at the given multi-index.
func (g *Grid) At(idx []int) float32 {
	return g.data[g.FlatIndex(idx)]
}

// AtFlat reads the sample at a flat offset.
func (g *Grid) AtFlat(flat int) float32 {
	return g.data[flat]
}

// InBounds reports whether idx is a valid multi-index for this grid.
func (g *Grid) InBounds(idx []int) bool {
	if len(idx) != len(g.shape) {
		return false
	}
	for i, v := range idx {
		if v < 0 || v >= g.shape[i] {
			return false
		}
	}
	return true
}

// Grid2D is a specialization for the rank-2 case used throughout
// contour: axis 0 is rows (y), axis 1 is columns (x) (§3).
type Grid2D struct {
	Rows, Cols int
	data       []float32
}

// NewGrid2D builds a Grid2D over data, which must have length
// rows*cols. Panics otherwise (programming error, §3).
func NewGrid2D(rows, cols int, data []float32) *Grid2D {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("grid: non-positive extent rows=%d cols=%d", rows, cols))
	}
	if len(data) != rows*cols {
		panic(fmt.Sprintf("grid: data length %d does not match rows*cols %d", len(data), rows*cols))
	}
	return &Grid2D{Rows: rows, Cols: cols, data: data}
}

// At returns the sample at (row, col).
func (g *Grid2D) At(row, col int) float32 {
	return g.data[row*g.Cols+col]
}

// Data returns the backing flat array in row-major order.
func (g *Grid2D) Data() []float32 { return g.data }
