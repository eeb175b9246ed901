package genetics

import (
	"github.com/wildfunctions/closedform/pkg/expr"
	"github.com/wildfunctions/closedform/pkg/rng"
)

func init() {
	Register("basic", func() Set { return &BasicSet{} })
}

// BasicSet provides the four arithmetic operators, negation and square
// root, over a single variable x with constants in [-10, 10].
type BasicSet struct{}

func (s *BasicSet) Name() string { return "basic" }

var basicVars = []string{"x"}

var basicNamed = []*expr.NamedConst{expr.Pi(), expr.E()}

func (s *BasicSet) RandomLeaf(r *rng.Source) expr.Node {
	return randomLeaf(r, basicVars, basicNamed, -10, 10)
}

var basicUnary = []expr.UnaryOp{
	expr.OpNeg,
	expr.OpSqrt,
}

func (s *BasicSet) RandomUnary(r *rng.Source) expr.UnaryOp {
	return rng.Pick(r, basicUnary)
}

var basicBinary = []expr.BinaryOp{
	expr.OpAdd,
	expr.OpSub,
	expr.OpMul,
	expr.OpDiv,
}

func (s *BasicSet) RandomBinary(r *rng.Source) expr.BinaryOp {
	return rng.Pick(r, basicBinary)
}
