package contour

import "errors"

// Error taxonomy for the contour package (§7). Validation errors are all
// raised at request entry, before any allocation; the contour engine
// itself never fails on "nothing found" — an empty result is success.
var (
	// ErrInvalidLevels reports a non-monotone level sequence (§3, §4.1).
	ErrInvalidLevels = errors.New("contour: levels must be monotonic")

	// ErrInvalidGrid reports a missing grid: a nil grid passed to List, or
	// no arrays passed to GL. (A Grid2D is rank-2 by construction, and
	// NewGrid2D panics on a backing array of the wrong length.)
	ErrInvalidGrid = errors.New("contour: grid must be rank-2 float32 with len(data) == rows*cols")

	// ErrInvalidColorShape reports an RGBA color slice that isn't length 4.
	ErrInvalidColorShape = errors.New("contour: color must have exactly 4 components (r,g,b,a)")

	// ErrInconsistentArrayShapes reports arrays passed to GL() or the
	// multi-array flattener that don't all share one shape.
	ErrInconsistentArrayShapes = errors.New("contour: all arrays must share the same shape")
)
