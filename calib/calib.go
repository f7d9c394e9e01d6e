// Package calib converts between fractional grid-index coordinates and
// chemical-shift (ppm) coordinates via a per-spectrum affine transform —
// the calibration every 2-D NMR processing pipeline carries alongside
// its contour and peak data, even though the contour/peak packages
// themselves work entirely in grid-index space.
package calib

import (
	"golang.org/x/image/math/f32"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Calibration holds the forward (index -> ppm) and inverse (ppm ->
// index) affine transforms for one 2-D spectrum axis pair.
type Calibration struct {
	toPPM   matrix.Matrix
	toIndex matrix.Matrix
}

// NewLinear builds a calibration where each axis maps independently:
// ppm = origin + index*scale. This is the common case — NMR spectra are
// calibrated per-axis from a reference peak and a known sweep width —
// but the general affine form also supports the same shear a fuller
// calibration (e.g. from a skewed acquisition) would need.
func NewLinear(originX, scaleX, originY, scaleY float64) Calibration {
	m := matrix.Matrix{scaleX, 0, 0, scaleY, originX, originY}
	toIndex, ok := invert(m)
	if !ok {
		toIndex = matrix.Identity
	}
	return Calibration{toPPM: m, toIndex: toIndex}
}

// ToPPM converts a grid-index coordinate to chemical shift.
func (c Calibration) ToPPM(index vec.Vec2) vec.Vec2 {
	return apply(c.toPPM, index)
}

// ToIndex converts a chemical-shift coordinate back to grid-index space.
func (c Calibration) ToIndex(ppm vec.Vec2) vec.Vec2 {
	return apply(c.toIndex, ppm)
}

// ToPPMf32 is a convenience wrapper for calibrating a contour vertex,
// whose coordinates are f32.Vec2 rather than vec.Vec2 (§3 vertex
// precision requirement; see the contour package).
func (c Calibration) ToPPMf32(index f32.Vec2) f32.Vec2 {
	p := c.ToPPM(vec.Vec2{X: float64(index[0]), Y: float64(index[1])})
	return f32.Vec2{float32(p.X), float32(p.Y)}
}

func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

func invert(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return matrix.Matrix{}, false
	}
	ia := m[3] / det
	ib := -m[1] / det
	ic := -m[2] / det
	id := m[0] / det
	ie := -(ia*m[4] + ic*m[5])
	ifd := -(ib*m[4] + id*m[5])
	return matrix.Matrix{ia, ib, ic, id, ie, ifd}, true
}
