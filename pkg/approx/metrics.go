package approx

import (
	"gonum.org/v1/gonum/floats"
)

// Correlation returns the dot product of a and b normalized by their
// L2 norms, in [-1, 1]. A zero-norm vector yields 0.
func Correlation(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}

// MSE returns the mean squared error between a and b.
func MSE(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d / float64(len(a))
}
