package approx

import (
	"github.com/wildfunctions/closedform/pkg/expr"
)

// Fitness sentinels for unevaluable candidates (unbound variables in a
// subtree the operators produced from a malformed seed).
const (
	worstError      = 1e18
	worstSimilarity = -1e18
)

// MSEFitness builds a minimizing fitness function: the mean squared
// error between a candidate and the target over n grid points of
// [lo, hi]. The target vector is sampled once up front.
func MSEFitness(target func(float64) float64, varName string, lo, hi float64, n int) func(expr.Node) float64 {
	want := SampleFunc(target, lo, hi, n)
	return func(candidate expr.Node) float64 {
		got, err := Sample(candidate, varName, lo, hi, n)
		if err != nil {
			return worstError
		}
		return MSE(got, want)
	}
}

// CorrelationFitness builds a maximizing fitness function: the
// normalized dot product between candidate and target samples.
func CorrelationFitness(target func(float64) float64, varName string, lo, hi float64, n int) func(expr.Node) float64 {
	want := SampleFunc(target, lo, hi, n)
	return func(candidate expr.Node) float64 {
		got, err := Sample(candidate, varName, lo, hi, n)
		if err != nil {
			return worstSimilarity
		}
		return Correlation(got, want)
	}
}
