package genetics

import (
	"github.com/wildfunctions/closedform/pkg/expr"
	"github.com/wildfunctions/closedform/pkg/rng"
)

func init() {
	Register("moderate", func() Set { return &ModerateSet{} })
}

// ModerateSet extends the basic blocks with the trigonometric and
// exponential operators.
type ModerateSet struct{}

func (s *ModerateSet) Name() string { return "moderate" }

func (s *ModerateSet) RandomLeaf(r *rng.Source) expr.Node {
	return randomLeaf(r, basicVars, basicNamed, -10, 10)
}

var moderateUnary = []expr.UnaryOp{
	expr.OpNeg,
	expr.OpSqrt,
	expr.OpExp,
	expr.OpSin,
	expr.OpCos,
}

func (s *ModerateSet) RandomUnary(r *rng.Source) expr.UnaryOp {
	return rng.Pick(r, moderateUnary)
}

func (s *ModerateSet) RandomBinary(r *rng.Source) expr.BinaryOp {
	return rng.Pick(r, basicBinary)
}
