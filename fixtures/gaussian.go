package fixtures

import "math"

// fwhmToSigma converts a Gaussian full-width-at-half-maximum to its
// standard deviation.
func fwhmToSigma(fwhm float64) float64 {
	return fwhm / (2 * math.Sqrt(2*math.Ln2))
}

// addGaussian accumulates a 2-D Gaussian peak into data (row-major,
// rows x cols), centered at (cx, cy) in grid-index coordinates.
func addGaussian(data []float32, rows, cols int, cx, cy, height, fwhmX, fwhmY float64) {
	sigmaX := fwhmToSigma(fwhmX)
	sigmaY := fwhmToSigma(fwhmY)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			v := height * math.Exp(-dx*dx/(2*sigmaX*sigmaX)-dy*dy/(2*sigmaY*sigmaY))
			data[y*cols+x] += float32(v)
		}
	}
}
