package contour

import "seehuhn.de/go/geom/rect"

// GLBuffer is the packed GPU-ready representation produced by GL (§4.5):
// paired line-strip indices with the final pair of each polyline
// rewritten to close the loop back to its first vertex. Bounds is the
// axis-aligned box enclosing every vertex packed in, for viewport
// fitting by the renderer; it is the zero rect.Rect when no vertex was
// ever appended.
type GLBuffer struct {
	NumIndices  uint32
	NumVertices uint32
	Indices     []uint32
	Vertices    []float32
	Colors      []float32
	Bounds      rect.Rect
}

// glBuilder accumulates polylines from one or more contour passes into a
// single GLBuffer, appending each polyline's vertices, colors and indices
// to the buffer's slices; it holds all packing state itself, with no
// module-level state (§9 Design Notes). There is no separate counting
// pass: the slices grow as polylines are appended.
type glBuilder struct {
	buf       GLBuffer
	haveBound bool
}

// appendPass packs every polyline of every level in one contour pass,
// tinting every vertex with color, and appends it after whatever the
// builder already holds.
func (b *glBuilder) appendPass(levels [][]Polyline, color [4]float32) {
	for _, polylines := range levels {
		for _, pl := range polylines {
			b.appendPolyline(pl, color)
		}
	}
}

func (b *glBuilder) appendPolyline(pl Polyline, color [4]float32) {
	v := pl.NumVertices()
	if v == 0 {
		return
	}
	base := uint32(len(b.buf.Vertices) / 2)

	b.buf.Vertices = append(b.buf.Vertices, pl.Vertices...)
	for i := 0; i < v; i++ {
		b.buf.Colors = append(b.buf.Colors, color[0], color[1], color[2], color[3])
	}
	b.buf.Bounds, b.haveBound = boundsUnion(b.buf.Bounds, polylineBounds(pl), b.haveBound)

	for i := 0; i < v; i++ {
		next := base + uint32(i) + 1
		if i == v-1 {
			next = base // line-loop closure: last segment's second index is the strip's first
		}
		b.buf.Indices = append(b.buf.Indices, base+uint32(i), next)
	}

	b.buf.NumVertices += uint32(v)
	b.buf.NumIndices = uint32(len(b.buf.Indices))
}
