package approx

import (
	"fmt"

	"github.com/wildfunctions/closedform/pkg/expr"
)

// Integrate computes the cumulative trapezoid integral of integrand
// over [lo, hi] with the given step and packs the result into a Table
// node: Table(x) ~ integral from lo to x of integrand. The Table reads
// its argument from arg at evaluation time and clamps outside [lo, hi].
func Integrate(name string, integrand expr.Node, varName string, lo, hi, step float64, arg expr.Node) (*expr.Table, error) {
	if step <= 0 || hi <= lo {
		return nil, fmt.Errorf("bad integration domain [%g, %g] step %g", lo, hi, step)
	}

	n := int((hi-lo)/step) + 1
	args := expr.Single(varName)

	values := make([]float64, n)
	args.Set(lo)
	prev, err := integrand.Eval(args)
	if err != nil {
		return nil, err
	}

	var sum float64
	for i := 1; i < n; i++ {
		args.Set(lo + float64(i)*step)
		cur, err := integrand.Eval(args)
		if err != nil {
			return nil, err
		}
		sum += step * (prev + cur) / 2
		values[i] = sum
		prev = cur
	}

	return &expr.Table{
		Name:   name,
		Lo:     lo,
		Hi:     hi,
		Step:   step,
		Values: values,
		Arg:    arg,
	}, nil
}
