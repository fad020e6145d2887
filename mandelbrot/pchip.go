package mandelbrot

import "math"

// pchipSlopes returns the derivative at every knot of the monotone cubic
// Hermite interpolant through (xs, ys). Interior slopes are the weighted
// harmonic mean of the neighbouring secants (zero at local extrema), end
// slopes use the one-sided three point formula limited to keep the end
// segments monotone.
// Fritsch & Butland, "A method for constructing local monotone piecewise cubic interpolants", 1984
func pchipSlopes(xs, ys []float64) []float64 {
	n := len(xs)
	slopes := make([]float64, n)

	h := make([]float64, n-1)
	secants := make([]float64, n-1)
	for k := 0; k < n-1; k++ {
		h[k] = xs[k+1] - xs[k]
		secants[k] = (ys[k+1] - ys[k]) / h[k]
	}

	if n == 2 {
		slopes[0] = secants[0]
		slopes[1] = secants[0]
		return slopes
	}

	for k := 1; k < n-1; k++ {
		if secants[k-1]*secants[k] <= 0 {
			continue
		}
		w1 := 2*h[k] + h[k-1]
		w2 := h[k] + 2*h[k-1]
		slopes[k] = (w1 + w2) / (w1/secants[k-1] + w2/secants[k])
	}

	slopes[0] = endSlope(h[0], h[1], secants[0], secants[1])
	slopes[n-1] = endSlope(h[n-2], h[n-3], secants[n-2], secants[n-3])
	return slopes
}

func endSlope(h0, h1, m0, m1 float64) float64 {
	d := ((2*h0+h1)*m0 - h0*m1) / (h0 + h1)
	if sign(d) != sign(m0) {
		return 0
	}
	if sign(m0) != sign(m1) && math.Abs(d) > math.Abs(3*m0) {
		return 3 * m0
	}
	return d
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
