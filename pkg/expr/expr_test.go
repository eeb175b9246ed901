package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func x() *Var { return &Var{Name: "x"} }

func c(v float64) *Const { return &Const{Val: v} }

func TestVarEval(t *testing.T) {
	args := Single("x")
	args.Set(5)

	v, err := x().Eval(args)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestVarUnbound(t *testing.T) {
	_, err := x().Eval(EmptyArgs{})
	require.Error(t, err)

	var unbound *UnboundVarError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "x", unbound.Name)
}

func TestArgsChain(t *testing.T) {
	first := MapArgs{"a": 1}
	second := MapArgs{"a": 2, "b": 3}
	chain := Chain(first, second)

	v, ok := chain.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 1.0, v, "first present binding wins")

	v, ok = chain.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = chain.Lookup("zzz")
	assert.False(t, ok)
}

func TestBinaryEval(t *testing.T) {
	args := Single("x")
	args.Set(3)

	sum := &Binary{Op: OpAdd, Left: x(), Right: c(4)}
	v, err := sum.Eval(args)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	quot := &Binary{Op: OpDiv, Left: c(10), Right: x()}
	v, err = quot.Eval(args)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/3.0, v, 1e-12)
}

func TestProtectedDivByZero(t *testing.T) {
	quot := &Binary{Op: OpDiv, Left: c(3), Right: c(0)}
	v, err := quot.Eval(EmptyArgs{})
	require.NoError(t, err)
	assert.Equal(t, BigValue, v)

	neg := &Binary{Op: OpDiv, Left: c(-3), Right: c(0)}
	v, err = neg.Eval(EmptyArgs{})
	require.NoError(t, err)
	assert.Equal(t, -BigValue, v)
}

func TestProtectedExpCeiling(t *testing.T) {
	e := &Unary{Op: OpExp, Child: c(1000)}
	v, err := e.Eval(EmptyArgs{})
	require.NoError(t, err)
	assert.Equal(t, BigValue, v)
}

func TestProtectedSqrtOfNegative(t *testing.T) {
	s := &Unary{Op: OpSqrt, Child: c(-4)}
	v, err := s.Eval(EmptyArgs{})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestEvalNeverNaNOrInf(t *testing.T) {
	// A pile of hostile expressions; none may leak NaN or Inf.
	hostile := []Node{
		&Binary{Op: OpDiv, Left: c(1), Right: c(0)},
		&Binary{Op: OpPow, Left: c(-2), Right: c(0.5)},
		&Unary{Op: OpLog, Child: c(0)},
		&Binary{Op: OpPow, Left: c(1e9), Right: c(1e9)},
		&Binary{Op: OpMul, Left: c(BigValue), Right: c(BigValue)},
	}
	for _, n := range hostile {
		v, err := n.Eval(EmptyArgs{})
		require.NoError(t, err, n.String())
		assert.False(t, math.IsNaN(v), "NaN from %s", n)
		assert.False(t, math.IsInf(v, 0), "Inf from %s", n)
	}
}

func TestNamedConstEval(t *testing.T) {
	v, err := Pi().Eval(EmptyArgs{})
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, v, 1e-12)
}

func TestBoundEval(t *testing.T) {
	// a is fixed by the wrapper, x stays free.
	body := &Binary{Op: OpMul, Left: &Var{Name: "a"}, Right: x()}
	bound := &Bound{Inner: body, Defaults: MapArgs{"a": 2}}

	args := Single("x")
	args.Set(7)
	v, err := bound.Eval(args)
	require.NoError(t, err)
	assert.Equal(t, 14.0, v)

	// The active context wins over the defaults.
	both := Chain(MapArgs{"a": 10, "x": 7})
	v, err = bound.Eval(both)
	require.NoError(t, err)
	assert.Equal(t, 70.0, v)
}

func TestTableLookupAndClamp(t *testing.T) {
	tab := &Table{
		Name: "F",
		Lo:   0, Hi: 1, Step: 0.25,
		Values: []float64{0, 1, 2, 3, 4},
		Arg:    x(),
	}
	args := Single("x")

	args.Set(0.3) // bucket floor(0.3/0.25) = 1
	v, err := tab.Eval(args)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	args.Set(-5) // below the domain clamps to the first value
	v, err = tab.Eval(args)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	args.Set(42) // above the domain clamps to the last value
	v, err = tab.Eval(args)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestRenderPriorities(t *testing.T) {
	// A child is parenthesized exactly when it is non-leaf and its
	// priority is not strictly greater than its parent's.
	cases := []struct {
		node Node
		want string
	}{
		{&Binary{Op: OpMul, Left: &Binary{Op: OpAdd, Left: x(), Right: c(1)}, Right: c(2)}, "(x + 1) * 2"},
		{&Binary{Op: OpAdd, Left: &Binary{Op: OpMul, Left: x(), Right: c(2)}, Right: c(1)}, "x * 2 + 1"},
		{&Binary{Op: OpSub, Left: x(), Right: &Binary{Op: OpAdd, Left: x(), Right: c(1)}}, "x - (x + 1)"},
		{&Binary{Op: OpMul, Left: &Binary{Op: OpMul, Left: x(), Right: x()}, Right: x()}, "(x * x) * x"},
		{&Binary{Op: OpAdd, Left: &Unary{Op: OpSin, Child: x()}, Right: c(1)}, "sin(x) + 1"},
		{&Binary{Op: OpPow, Left: &Binary{Op: OpMul, Left: x(), Right: x()}, Right: c(2)}, "(x * x) ^ 2"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.node.String())
	}
}

func TestRenderLeaves(t *testing.T) {
	assert.Equal(t, "x", x().String())
	assert.Equal(t, "2.5", c(2.5).String())
	assert.Equal(t, "-3", c(-3).String())
	assert.Equal(t, "pi", Pi().String())
}

func TestLaTeX(t *testing.T) {
	frac := &Binary{Op: OpDiv, Left: x(), Right: c(2)}
	assert.Equal(t, `\frac{x}{2}`, frac.LaTeX())

	root := &Unary{Op: OpSqrt, Child: x()}
	assert.Equal(t, `\sqrt{x}`, root.LaTeX())

	assert.Equal(t, `\pi`, Pi().LaTeX())
}

func TestConstEqualityTolerance(t *testing.T) {
	assert.True(t, c(1.0).Equal(c(1.0+ConstEps/2)))
	assert.False(t, c(1.0).Equal(c(1.0+10*ConstEps)))
}

func TestEqualConstantsAlwaysShareHash(t *testing.T) {
	// Pairs ConstEps/2 apart are equal wherever they fall on the
	// number line, so their hashes must agree everywhere too, both
	// bare and embedded in a larger tree.
	for i := 0; i < 10_000; i++ {
		v := -5.0 + float64(i)*0.001
		a := c(v)
		b := c(v + ConstEps/2)
		require.True(t, a.Equal(b))
		require.Equal(t, a.Hash(), b.Hash(), "at v=%g", v)

		ta := &Binary{Op: OpMul, Left: x(), Right: a}
		tb := &Binary{Op: OpMul, Left: x(), Right: b}
		require.True(t, ta.Equal(tb))
		require.Equal(t, ta.Hash(), tb.Hash(), "at v=%g", v)
	}
}

func TestStructuralEquality(t *testing.T) {
	lhs := &Binary{Op: OpAdd, Left: x(), Right: &Unary{Op: OpSin, Child: x()}}
	rhs := &Binary{Op: OpAdd, Left: x(), Right: &Unary{Op: OpSin, Child: x()}}
	assert.True(t, lhs.Equal(rhs))
	assert.Equal(t, lhs.Hash(), rhs.Hash())

	other := &Binary{Op: OpSub, Left: x(), Right: &Unary{Op: OpSin, Child: x()}}
	assert.False(t, lhs.Equal(other))

	assert.False(t, x().Equal(c(1)))
	assert.False(t, Pi().Equal(c(math.Pi)), "named constants compare by symbol, not value")
}

func TestArityAndDepth(t *testing.T) {
	tree := &Binary{Op: OpAdd, Left: &Unary{Op: OpNeg, Child: x()}, Right: c(1)}
	assert.Equal(t, 2, tree.Arity())
	assert.Equal(t, 0, x().Arity())
	assert.Equal(t, 1, (&Unary{Op: OpNeg, Child: x()}).Arity())
	assert.Equal(t, 3, tree.Depth())
	assert.Equal(t, 4, tree.NodeCount())
}
