package approx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/closedform/pkg/expr"
)

func x() *expr.Var { return &expr.Var{Name: "x"} }

func TestSampleGrid(t *testing.T) {
	// Identity over [0, 1] with 5 points gives the grid itself.
	got, err := Sample(x(), "x", 0, 1, 5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, got, 1e-12)
}

func TestSampleIncludesEndpoints(t *testing.T) {
	got, err := Sample(x(), "x", -3, 7, 11)
	require.NoError(t, err)
	assert.Equal(t, -3.0, got[0])
	assert.InDelta(t, 7.0, got[len(got)-1], 1e-12)
}

func TestSampleTooFewPoints(t *testing.T) {
	_, err := Sample(x(), "x", 0, 1, 1)
	require.Error(t, err)
}

func TestSampleUnboundVariable(t *testing.T) {
	_, err := Sample(&expr.Var{Name: "y"}, "x", 0, 1, 5)
	require.Error(t, err)

	var unbound *expr.UnboundVarError
	assert.ErrorAs(t, err, &unbound)
}

func TestSampleFuncAlignsWithSample(t *testing.T) {
	sq := &expr.Binary{Op: expr.OpMul, Left: x(), Right: x()}
	fromNode, err := Sample(sq, "x", -2, 2, 17)
	require.NoError(t, err)

	fromFunc := SampleFunc(func(v float64) float64 { return v * v }, -2, 2, 17)
	assert.InDeltaSlice(t, fromFunc, fromNode, 1e-12)
}

func TestIntegrateLinear(t *testing.T) {
	// Integral of x over [0, x] is x^2/2; the trapezoid rule is exact
	// for linear integrands.
	tab, err := Integrate("I", x(), "x", 0, 2, 0.01, x())
	require.NoError(t, err)
	assert.Equal(t, 0.0, tab.Values[0])

	args := expr.Single("x")
	for _, at := range []float64{0.5, 1, 1.5, 2} {
		args.Set(at)
		v, err := tab.Eval(args)
		require.NoError(t, err)
		assert.InDelta(t, at*at/2, v, 0.02, "at x=%g", at)
	}
}

func TestIntegrateBadDomain(t *testing.T) {
	_, err := Integrate("I", x(), "x", 2, 0, 0.01, x())
	require.Error(t, err)

	_, err = Integrate("I", x(), "x", 0, 2, 0, x())
	require.Error(t, err)
}

func TestCorrelation(t *testing.T) {
	a := []float64{1, 2, 3}
	assert.InDelta(t, 1.0, Correlation(a, a), 1e-12)

	scaled := []float64{2, 4, 6}
	assert.InDelta(t, 1.0, Correlation(a, scaled), 1e-12, "scale invariant")

	flipped := []float64{-1, -2, -3}
	assert.InDelta(t, -1.0, Correlation(a, flipped), 1e-12)

	zero := []float64{0, 0, 0}
	assert.Equal(t, 0.0, Correlation(a, zero))
}

func TestMSE(t *testing.T) {
	a := []float64{1, 2, 3}
	assert.Equal(t, 0.0, MSE(a, a))

	b := []float64{2, 3, 4}
	assert.InDelta(t, 1.0, MSE(a, b), 1e-12)
}

func TestMSEFitness(t *testing.T) {
	fit := MSEFitness(math.Sin, "x", 0, math.Pi, 64)

	exact := &expr.Unary{Op: expr.OpSin, Child: x()}
	assert.InDelta(t, 0.0, fit(exact), 1e-12)

	worse := &expr.Const{Val: 0}
	assert.Greater(t, fit(worse), fit(exact))

	// An unevaluable candidate gets the worst possible error.
	unbound := &expr.Var{Name: "y"}
	assert.Equal(t, worstError, fit(unbound))
}

func TestCorrelationFitness(t *testing.T) {
	fit := CorrelationFitness(math.Sin, "x", 0, math.Pi, 64)

	exact := &expr.Unary{Op: expr.OpSin, Child: x()}
	assert.InDelta(t, 1.0, fit(exact), 1e-12)

	// Scaled copies of the target correlate perfectly too.
	scaled := &expr.Binary{Op: expr.OpMul, Left: &expr.Const{Val: 3}, Right: exact}
	assert.InDelta(t, 1.0, fit(scaled), 1e-12)

	unbound := &expr.Var{Name: "y"}
	assert.Equal(t, worstSimilarity, fit(unbound))
}
