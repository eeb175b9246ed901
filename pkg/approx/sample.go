// Package approx holds the numeric collaborators around the search
// core: fixed-grid sampling of expressions, numeric integration into
// Table nodes, vector similarity metrics, and the fitness builders the
// CLI feeds to the engine.
package approx

import (
	"fmt"

	"github.com/wildfunctions/closedform/pkg/expr"
)

// Sample evaluates f at n evenly spaced points across [lo, hi],
// inclusive of both endpoints. The variable is bound through a single
// mutable slot so the sweep does not allocate per sample.
func Sample(f expr.Node, varName string, lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", n)
	}
	args := expr.Single(varName)
	step := (hi - lo) / float64(n-1)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		args.Set(lo + float64(i)*step)
		v, err := f.Eval(args)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// SampleFunc evaluates a plain Go function on the same grid Sample
// uses, so candidate and target vectors align point for point.
func SampleFunc(f func(float64) float64, lo, hi float64, n int) []float64 {
	step := (hi - lo) / float64(n-1)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = f(lo + float64(i)*step)
	}
	return out
}
