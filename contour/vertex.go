package contour

import "golang.org/x/image/math/f32"

// arenaBlockSize is the allocation granularity for the vertex arena
// (§3: "Stored in an arena of fixed-size blocks (e.g., 50 entries)").
const arenaBlockSize = 50

// noVertex is the sentinel for an absent prev/next link.
const noVertex int32 = -1

// vertex is one contour crossing point, intrusively doubly-linked via
// arena-relative indices instead of pointers (§9 Design Notes).
type vertex struct {
	pos     f32.Vec2
	prev    int32
	next    int32
	visited bool
}

// arena owns vertex storage for a single level pass. Blocks are
// allocated in units of arenaBlockSize and retained across passes; only
// the live-count and visited bits reset between levels (§5: "Vertex
// arena grows monotonically within a request; it is reset ... between
// levels").
type arena struct {
	blocks [][]vertex
	count  int
}

func newArena() *arena {
	return &arena{}
}

// reset clears the live vertex count and visited bits for a new level
// pass, without releasing any allocated blocks.
func (a *arena) reset() {
	for b := 0; b*arenaBlockSize < a.count; b++ {
		blk := a.blocks[b]
		for i := range blk {
			blk[i].visited = false
		}
	}
	a.count = 0
}

// alloc appends a new vertex at the given position and returns its id.
func (a *arena) alloc(pos f32.Vec2) int32 {
	blockIdx := a.count / arenaBlockSize
	offset := a.count % arenaBlockSize
	if blockIdx >= len(a.blocks) {
		a.blocks = append(a.blocks, make([]vertex, arenaBlockSize))
	}
	a.blocks[blockIdx][offset] = vertex{pos: pos, prev: noVertex, next: noVertex}
	id := int32(a.count)
	a.count++
	return id
}

// get returns a pointer to the vertex with the given id.
func (a *arena) get(id int32) *vertex {
	return &a.blocks[id/arenaBlockSize][id%arenaBlockSize]
}

// link sets from.next = to and to.prev = from. Each routine that calls
// link does so exactly once per endpoint (§4.2 Link semantics).
func (a *arena) link(from, to int32) {
	a.get(from).next = to
	a.get(to).prev = from
}

// size reports the number of live vertices allocated in the current pass.
func (a *arena) size() int { return a.count }
