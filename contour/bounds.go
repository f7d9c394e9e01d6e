package contour

import (
	"seehuhn.de/go/geom/rect"

	"nmrkernel/grid"
)

// Bounds returns the coordinate-space working rectangle of g: [0, cols-1]
// x [0, rows-1], the box every vertex find_vertices emits must lie within
// (§8 invariant "v.x in [0, cols-1], v.y in [0, rows-1]"). Nothing in the
// package clamps to it: the GL packer computes GLBuffer.Bounds from the
// packed vertices alone.
func Bounds(g *grid.Grid2D) rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(g.Cols - 1),
		URy: float64(g.Rows - 1),
	}
}

// polylineBounds returns the axis-aligned box enclosing pl's vertices.
func polylineBounds(pl Polyline) rect.Rect {
	v := pl.Vertices
	r := rect.Rect{LLx: float64(v[0]), LLy: float64(v[1]), URx: float64(v[0]), URy: float64(v[1])}
	for i := 2; i+1 < len(v); i += 2 {
		x, y := float64(v[i]), float64(v[i+1])
		if x < r.LLx {
			r.LLx = x
		}
		if y < r.LLy {
			r.LLy = y
		}
		if x > r.URx {
			r.URx = x
		}
		if y > r.URy {
			r.URy = y
		}
	}
	return r
}

// boundsUnion grows r to cover s; when set is false, r holds no extent
// yet and s is returned as is.
func boundsUnion(r rect.Rect, s rect.Rect, set bool) (rect.Rect, bool) {
	if !set {
		return s, true
	}
	if s.LLx < r.LLx {
		r.LLx = s.LLx
	}
	if s.LLy < r.LLy {
		r.LLy = s.LLy
	}
	if s.URx > r.URx {
		r.URx = s.URx
	}
	if s.URy > r.URy {
		r.URy = s.URy
	}
	return r, true
}
