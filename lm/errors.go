package lm

import "errors"

// ErrSingular reports that the damped normal equations could not be
// solved because Gauss-Jordan elimination found a pivot magnitude below
// epsilon (§4.10 "Damped step").
var ErrSingular = errors.New("lm: singular normal equations")

// ErrDidNotConverge reports that the iteration cap was reached before
// four consecutive small-improvement steps accumulated (§4.10 "Stopping").
var ErrDidNotConverge = errors.New("lm: did not converge")
