package peak

import "errors"

// ErrInvalidShape names a grid whose rank or extents cannot support the
// requested operation. Find does not return it: a grid with an axis
// shorter than 3 cells (no interior point) yields an empty result.
var ErrInvalidShape = errors.New("peak: invalid grid shape")

// ErrInvalidCriterion names a configuration that can never accept a
// point. Find does not return it: with neither SeekMaxima nor SeekMinima
// set it yields an empty result (§4.7).
var ErrInvalidCriterion = errors.New("peak: invalid search criterion")
