package contour

import (
	"testing"

	"golang.org/x/image/math/f32"
)

func TestArenaAllocAndLink(t *testing.T) {
	a := newArena()
	v1 := a.alloc(f32.Vec2{0, 0})
	v2 := a.alloc(f32.Vec2{1, 1})
	a.link(v1, v2)

	if a.get(v1).next != v2 {
		t.Errorf("expected v1.next == v2")
	}
	if a.get(v2).prev != v1 {
		t.Errorf("expected v2.prev == v1")
	}
	if a.size() != 2 {
		t.Errorf("expected size 2, got %d", a.size())
	}
}

func TestArenaResetRetainsBlocksClearsVisited(t *testing.T) {
	a := newArena()
	for i := 0; i < arenaBlockSize+5; i++ {
		id := a.alloc(f32.Vec2{float32(i), 0})
		a.get(id).visited = true
	}
	blocksBefore := len(a.blocks)

	a.reset()

	if a.size() != 0 {
		t.Errorf("expected size 0 after reset, got %d", a.size())
	}
	if len(a.blocks) != blocksBefore {
		t.Errorf("expected blocks retained across reset, had %d now %d", blocksBefore, len(a.blocks))
	}

	// allocate again and confirm the reused slot isn't marked visited.
	id := a.alloc(f32.Vec2{0, 0})
	if a.get(id).visited {
		t.Error("expected visited cleared on reused slot")
	}
}
