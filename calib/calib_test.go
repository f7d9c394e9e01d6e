package calib

import (
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestLinearCalibrationRoundTrips(t *testing.T) {
	c := NewLinear(10.0, -0.01, 120.0, -1.2)

	index := vec.Vec2{X: 256, Y: 64}
	ppm := c.ToPPM(index)
	back := c.ToIndex(ppm)

	const eps = 1e-9
	if abs(back.X-index.X) > eps || abs(back.Y-index.Y) > eps {
		t.Errorf("round trip mismatch: want %v, got %v", index, back)
	}
}

func TestLinearCalibrationOrigin(t *testing.T) {
	c := NewLinear(10.0, -0.01, 120.0, -1.2)
	ppm := c.ToPPM(vec.Vec2{X: 0, Y: 0})
	if ppm.X != 10.0 || ppm.Y != 120.0 {
		t.Errorf("expected origin to map to (10,120), got %v", ppm)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
