package contour

// Polyline is a flat, row-major-centered coordinate buffer
// [x0,y0,x1,y1,...] for one connected contour curve (§3).
type Polyline struct {
	Vertices []float32
}

// NumVertices returns the number of (x,y) points in the polyline.
func (p Polyline) NumVertices() int { return len(p.Vertices) / 2 }

// chainPolylines walks every unvisited vertex in a to produce the
// ordered list of polylines for one level pass (§4.4). For each
// unvisited vertex it walks prev to a terminus (or detects a cycle),
// then walks next from there to emit points in order.
func chainPolylines(a *arena) []Polyline {
	var out []Polyline
	for start := int32(0); int(start) < a.size(); start++ {
		v := a.get(start)
		if v.visited {
			continue
		}

		// Walk prev to a terminus, marking visited, detecting cycles.
		terminus := start
		for {
			tv := a.get(terminus)
			if tv.visited {
				// Already visited: stop walking back here.
				break
			}
			tv.visited = true
			if tv.prev == noVertex {
				break
			}
			if tv.prev == start {
				// closed chain of length > 1: prev points back to start
				break
			}
			terminus = tv.prev
		}

		// Walk next from terminus, collecting points.
		points := make([]float32, 0, 8)
		cur := terminus
		first := true
		for {
			cv := a.get(cur)
			if !first && cur == terminus {
				break // closed the loop
			}
			first = false
			points = append(points, cv.pos[0], cv.pos[1])
			cv.visited = true
			if cv.next == noVertex {
				break
			}
			if cv.next == terminus {
				cur = cv.next
				continue
			}
			cur = cv.next
		}

		out = append(out, Polyline{Vertices: points})
	}
	return out
}
