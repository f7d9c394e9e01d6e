// Package fixtures generates synthetic sample grids for tests: constant
// fields, single and composite Gaussian peaks, saddle patterns, and the
// boundary-condition grids exercised by the contour and peak test
// suites (§8 "Testable properties").
package fixtures

import "nmrkernel/grid"

// Case names one generated grid, grouped into a named category so tests
// can iterate a whole category the way All organizes them.
type Case struct {
	Name string // lowercase a-z, digits and _ only
	Grid *grid.Grid2D
}

// All contains every fixture case grouped by category. The category
// name is descriptive only; tests are free to pick cases by name or
// iterate a whole category.
var All = map[string][]Case{
	"constant":  constantCases,
	"single":    singleCases,
	"composite": compositeCases,
	"saddle":    saddleCases,
	"precision": precisionCases,
	"large":     largeCases,
}
