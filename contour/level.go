package contour

import "fmt"

// Direction is the monotonicity of a level sequence (§4.1).
type Direction int

const (
	// Increasing means levels[i] >= levels[i-1] for all i. A
	// single-element sequence is Increasing by convention.
	Increasing Direction = iota
	// Decreasing means levels[i] <= levels[i-1] for all i.
	Decreasing
)

func (d Direction) String() string {
	if d == Decreasing {
		return "decreasing"
	}
	return "increasing"
}

// validateLevels enforces the level-sequence invariant from §3: the
// sequence must be monotonic, with direction fixed by the first pair
// (levels[0], levels[1]). A sequence of length 0 or 1 is trivially
// Increasing. Violations after the first pair fail with ErrInvalidLevels.
func validateLevels(levels []float32) (Direction, error) {
	if len(levels) <= 1 {
		return Increasing, nil
	}
	dir := Increasing
	if levels[1] < levels[0] {
		dir = Decreasing
	}
	for i := 1; i < len(levels); i++ {
		switch dir {
		case Increasing:
			if levels[i] < levels[i-1] {
				return 0, fmt.Errorf("%w: levels initially increasing but later decrease at index %d (%v < %v)",
					ErrInvalidLevels, i, levels[i], levels[i-1])
			}
		case Decreasing:
			if levels[i] > levels[i-1] {
				return 0, fmt.Errorf("%w: levels initially decreasing but later increase at index %d (%v > %v)",
					ErrInvalidLevels, i, levels[i], levels[i-1])
			}
		}
	}
	return dir, nil
}
