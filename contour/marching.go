package contour

import (
	"golang.org/x/image/math/f32"

	"nmrkernel/grid"
)

// engine runs the marching-squares scan for one grid and emits vertices
// into its arena, reused across level passes within a request (§4.2,
// §5). Zero value is not usable; construct with newEngine.
type engine struct {
	arena *arena

	// horiz caches the horizontal-edge crossing vertex computed as the
	// "new" (top) edge of the previous row pass, for reuse as the "old"
	// (bottom) edge of the following row pass — the two describe the
	// same physical grid edge (§4.2 "Vertex allocation" + observed
	// behavior of the case table). Indexed by column.
	horiz      []int32
	horizValid []bool
	lastRow    int // row whose top edge horiz[] currently holds, or sentinel noRow
}

const noRow = -2

func newEngine() *engine {
	return &engine{arena: newArena(), lastRow: noRow}
}

// corner indices into a 2x2 cell: bl=old0, br=old1 (row y), tl=new0,
// tr=new1 (row y+1) — see §4.2/§3.
const (
	cornerBL = iota
	cornerBR
	cornerTL
	cornerTR
)

// diagOpposite maps each corner to its diagonal partner in the cell.
var diagOpposite = [4]int{cornerTR, cornerTL, cornerBR, cornerBL}

// lerpEdge returns the fractional offset along an edge from endpoint a
// (value va) to endpoint b (value vb) at which the edge crosses level,
// per §4.2: "offset = (level - a) / (b - a)". Caller guarantees a and b
// straddle level (one <= level, the other > level).
func lerpEdge(va, vb, level float32) float32 {
	return (level - va) / (vb - va)
}

// findVertices scans the rows/column-ranges recorded as "old" in tr,
// classifies each cell, emits crossing vertices linked into oriented
// chains, and (when moreLevels is true) records the cells that can hold a
// crossing at the following level into tr's "new" active region. The arena must
// have been reset by the caller before this call.
func (e *engine) findVertices(g *grid.Grid2D, level float32, tr *tracker, dir Direction, moreLevels bool) {
	if len(e.horiz) != g.Cols {
		e.horiz = make([]int32, g.Cols)
		e.horizValid = make([]bool, g.Cols)
	}
	for i := range e.horizValid {
		e.horizValid[i] = false
	}
	e.lastRow = noRow

	for y := 0; y < g.Rows-1; y++ {
		ranges := tr.rangesForRow(y)
		if len(ranges) == 0 {
			continue
		}
		contiguous := e.lastRow == y-1
		for _, rg := range ranges {
			e.scanRowRange(g, level, y, rg[0], rg[1], tr, dir, moreLevels, contiguous)
		}
		e.lastRow = y
	}
	if moreLevels {
		tr.finalize()
	}
}

// scanRowRange processes cells [xStart, xEnd) of row y, where the cell
// at column x spans corners (y,x)-(y,x+1)-(y+1,x)-(y+1,x+1).
func (e *engine) scanRowRange(g *grid.Grid2D, level float32, y, xStart, xEnd int, tr *tracker, dir Direction, moreLevels, contiguousRow bool) {
	above := func(v float32) bool { return v > level }

	var prevRight int32 = noVertex
	prevRightValid := false
	rangeOpen := false

	xEnd = min(xEnd, g.Cols-1)
	for x := xStart; x < xEnd; x++ {
		old0 := g.At(y, x)
		old1 := g.At(y, x+1)
		new0 := g.At(y+1, x)
		new1 := g.At(y+1, x+1)

		aBL, aBR, aTL, aTR := above(old0), above(old1), above(new0), above(new1)
		count := boolCount(aBL, aBR, aTL, aTR)

		positions := [4]f32.Vec2{
			{float32(x), float32(y)},
			{float32(x + 1), float32(y)},
			{float32(x), float32(y + 1)},
			{float32(x + 1), float32(y + 1)},
		}

		// lazily-computed edge crossings, reusing the horizontal buffer
		// across rows and prevRight across columns.
		var vBottom, vTop, vLeft, vRight int32 = noVertex, noVertex, noVertex, noVertex
		var pBottom, pTop, pLeft, pRight f32.Vec2

		crossBottom := aBL != aBR
		crossTop := aTL != aTR
		crossLeft := aBL != aTL
		crossRight := aBR != aTR

		if crossBottom {
			if contiguousRow && e.horizValid[x] {
				vBottom = e.horiz[x]
				pBottom = e.arena.get(vBottom).pos
			} else {
				t := lerpEdge(old0, old1, level)
				pBottom = f32.Vec2{float32(x) + t, float32(y)}
				vBottom = e.arena.alloc(pBottom)
			}
		}
		if crossTop {
			t := lerpEdge(new0, new1, level)
			pTop = f32.Vec2{float32(x) + t, float32(y + 1)}
			vTop = e.arena.alloc(pTop)
			e.horiz[x] = vTop
			e.horizValid[x] = true
		} else {
			e.horizValid[x] = false
		}
		if crossLeft {
			if prevRightValid {
				vLeft = prevRight
				pLeft = e.arena.get(vLeft).pos
			} else {
				t := lerpEdge(old0, new0, level)
				pLeft = f32.Vec2{float32(x), float32(y) + t}
				vLeft = e.arena.alloc(pLeft)
			}
		}
		if crossRight {
			t := lerpEdge(old1, new1, level)
			pRight = f32.Vec2{float32(x + 1), float32(y) + t}
			vRight = e.arena.alloc(pRight)
			prevRightValid = true
		} else {
			prevRightValid = false
		}
		prevRight = vRight

		// A cell can hold a crossing at the next level only if it has a
		// corner above this level (Increasing) or below it (Decreasing).
		active := count != 0
		if dir == Decreasing {
			active = count != 4
		}
		if moreLevels {
			if active {
				if !rangeOpen {
					tr.updateNewRange(x, y, StartRange)
					rangeOpen = true
				} else {
					tr.updateNewRange(x, y, Neither)
				}
			} else if rangeOpen {
				tr.updateNewRange(x-1, y, EndRange)
				rangeOpen = false
			}
		}

		switch {
		case count == 0 || count == 4:
			// no edges

		case count == 1 || count == 3:
			minority := minorityCorner(aBL, aBR, aTL, aTR, count)
			e1, e2 := touchingEdges(minority)
			v1, p1 := e.edgeVertex(e1, vBottom, pBottom, vLeft, pLeft, vTop, pTop, vRight, pRight)
			v2, p2 := e.edgeVertex(e2, vBottom, pBottom, vLeft, pLeft, vTop, pTop, vRight, pRight)
			ref := isolationRef(minority, count == 1, positions)
			e.linkOriented(v1, v2, p1, p2, ref, dir)

		case aBL == aBR: // bottom pair same, must differ from top pair
			ref := positions[cornerBL]
			if aTL {
				ref = positions[cornerTL]
			}
			e.linkOriented(vLeft, vRight, pLeft, pRight, ref, dir)

		case aBL == aTL: // left pair same, must differ from right pair
			ref := positions[cornerBL]
			if aBR {
				ref = positions[cornerBR]
			}
			e.linkOriented(vBottom, vTop, pBottom, pTop, ref, dir)

		default: // saddle: diagonal corners share state (aBL==aTR, aBR==aTL, and they differ)
			dVal := (old0 + old1 + new0 + new1) / 4
			belowDiagIsBLTR := !aBL // if bl/tr are the "below" diagonal
			var isolateFirst, isolateSecond int
			if (dVal > level) == belowDiagIsBLTR {
				// isolate the below-valued diagonal individually
				if belowDiagIsBLTR {
					isolateFirst, isolateSecond = cornerBL, cornerTR
				} else {
					isolateFirst, isolateSecond = cornerBR, cornerTL
				}
			} else {
				// isolate the above-valued diagonal individually
				if belowDiagIsBLTR {
					isolateFirst, isolateSecond = cornerBR, cornerTL
				} else {
					isolateFirst, isolateSecond = cornerBL, cornerTR
				}
			}
			for _, corner := range [2]int{isolateFirst, isolateSecond} {
				selfAbove := cornerAbove(corner, aBL, aBR, aTL, aTR)
				e1, e2 := touchingEdges(corner)
				v1, p1 := e.edgeVertex(e1, vBottom, pBottom, vLeft, pLeft, vTop, pTop, vRight, pRight)
				v2, p2 := e.edgeVertex(e2, vBottom, pBottom, vLeft, pLeft, vTop, pTop, vRight, pRight)
				ref := isolationRef(corner, selfAbove, positions)
				e.linkOriented(v1, v2, p1, p2, ref, dir)
			}
		}
	}
	if moreLevels && rangeOpen {
		tr.updateNewRange(xEnd-1, y, EndRange)
	}
}

// edgeKind identifies one of the four edges of a cell.
type edgeKind int

const (
	edgeBottom edgeKind = iota
	edgeLeft
	edgeTop
	edgeRight
)

// touchingEdges returns the two edges incident to a corner.
func touchingEdges(corner int) (edgeKind, edgeKind) {
	switch corner {
	case cornerBL:
		return edgeBottom, edgeLeft
	case cornerBR:
		return edgeBottom, edgeRight
	case cornerTL:
		return edgeTop, edgeLeft
	default: // cornerTR
		return edgeTop, edgeRight
	}
}

func (e *engine) edgeVertex(kind edgeKind, vBottom int32, pBottom f32.Vec2, vLeft int32, pLeft f32.Vec2, vTop int32, pTop f32.Vec2, vRight int32, pRight f32.Vec2) (int32, f32.Vec2) {
	switch kind {
	case edgeBottom:
		return vBottom, pBottom
	case edgeLeft:
		return vLeft, pLeft
	case edgeTop:
		return vTop, pTop
	default:
		return vRight, pRight
	}
}

func cornerAbove(corner int, aBL, aBR, aTL, aTR bool) bool {
	switch corner {
	case cornerBL:
		return aBL
	case cornerBR:
		return aBR
	case cornerTL:
		return aTL
	default:
		return aTR
	}
}

// minorityCorner finds the single corner whose above/below state differs
// from the other three.
func minorityCorner(aBL, aBR, aTL, aTR bool, count int) int {
	majority := count == 3
	states := [4]bool{aBL, aBR, aTL, aTR}
	for i, s := range states {
		if s != majority {
			return i
		}
	}
	return cornerBL // unreachable for valid count in {1,3}
}

// isolationRef returns the reference point used to decide which side of
// the crossing segment is "above", for a corner being isolated from its
// neighbors. When the corner itself is above level, it is its own
// reference; otherwise its diagonal opposite is used, which lies on the
// far side of the segment from the corner (it is above in the
// single-corner case; in a saddle it is below, but still on the side of
// the segment facing the cell centre) (§9 Design Notes: saddle/single-corner
// orientation).
func isolationRef(corner int, selfAbove bool, positions [4]f32.Vec2) f32.Vec2 {
	if selfAbove {
		return positions[corner]
	}
	return positions[diagOpposite[corner]]
}

// crossSign returns the signed area of the triangle (a, b, p); negative
// means p is to the right of the directed segment a->b in a
// right-handed, y-up coordinate frame.
func crossSign(a, b, p f32.Vec2) float32 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

// linkOriented links v1 and v2 (in whichever order) so that ref ends up
// on the right of the directed segment when walking `next`, for
// Increasing mode; on the left for Decreasing mode (§4.2 Link
// semantics).
func (e *engine) linkOriented(v1, v2 int32, p1, p2, ref f32.Vec2, dir Direction) {
	s := crossSign(p1, p2, ref)
	refOnRight := s < 0
	want := dir == Increasing
	if refOnRight == want {
		e.arena.link(v1, v2)
	} else {
		e.arena.link(v2, v1)
	}
}

func boolCount(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
