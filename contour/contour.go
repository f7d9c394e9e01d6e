// Package contour extracts oriented polylines from a rectangular float32
// sample grid at a set of intensity levels, via marching squares with
// saddle disambiguation, and optionally packs the result into GPU-ready
// vertex/index/color buffers.
package contour

import "nmrkernel/grid"

// List runs the contour extractor for one array against a sequence of
// levels, returning one polyline slice per level in the same order
// (§4.1-§4.4, §6 "Contour list interface"). levels must be monotonic
// from its first pair onward; see validateLevels.
func List(g *grid.Grid2D, levels []float32) ([][]Polyline, error) {
	if g == nil {
		return nil, ErrInvalidGrid
	}
	dir, err := validateLevels(levels)
	if err != nil {
		return nil, err
	}

	tr := newTracker(g.Rows, g.Cols, dir)
	eng := newEngine()

	result := make([][]Polyline, len(levels))
	for i, level := range levels {
		eng.arena.reset()
		moreLevels := i < len(levels)-1
		eng.findVertices(g, level, tr, dir, moreLevels)
		result[i] = chainPolylines(eng.arena)
		if moreLevels {
			tr.swap()
		}
	}
	return result, nil
}

// GLOptions configures GL (§6 "Contour GL interface"). Arrays must all
// share one shape; when Flatten is true and len(Arrays) > 1 they are
// first collapsed via FlattenArrays. PosColor and NegColor are each a
// 4-element RGBA quadruplet.
type GLOptions struct {
	Arrays    []*grid.Grid2D
	PosLevels []float32
	NegLevels []float32
	PosColor  []float32
	NegColor  []float32
	Flatten   bool
}

// GL runs two independent contour passes over each of the (optionally
// flattened) Arrays — one with PosLevels/PosColor, one with
// NegLevels/NegColor — and packs them into a single GLBuffer: the
// positive pass of every array in order, then the negative ones (§4.5).
//
// Either level list may be empty, in which case that pass contributes
// nothing to the buffer.
func GL(opts GLOptions) (GLBuffer, error) {
	if len(opts.PosColor) != 4 || len(opts.NegColor) != 4 {
		return GLBuffer{}, ErrInvalidColorShape
	}
	if len(opts.Arrays) == 0 {
		return GLBuffer{}, ErrInvalidGrid
	}
	rows, cols := opts.Arrays[0].Rows, opts.Arrays[0].Cols
	for _, a := range opts.Arrays {
		if a.Rows != rows || a.Cols != cols {
			return GLBuffer{}, ErrInconsistentArrayShapes
		}
	}

	if _, err := validateLevels(opts.PosLevels); err != nil {
		return GLBuffer{}, err
	}
	if _, err := validateLevels(opts.NegLevels); err != nil {
		return GLBuffer{}, err
	}

	sources := opts.Arrays
	if opts.Flatten && len(opts.Arrays) > 1 {
		flat, err := FlattenArrays(opts.Arrays)
		if err != nil {
			return GLBuffer{}, err
		}
		sources = []*grid.Grid2D{flat}
	}

	var posColor, negColor [4]float32
	copy(posColor[:], opts.PosColor)
	copy(negColor[:], opts.NegColor)

	b := &glBuilder{}
	if len(opts.PosLevels) > 0 {
		for _, source := range sources {
			levels, err := List(source, opts.PosLevels)
			if err != nil {
				return GLBuffer{}, err
			}
			b.appendPass(levels, posColor)
		}
	}
	if len(opts.NegLevels) > 0 {
		for _, source := range sources {
			levels, err := List(source, opts.NegLevels)
			if err != nil {
				return GLBuffer{}, err
			}
			b.appendPass(levels, negColor)
		}
	}
	return b.buf, nil
}
