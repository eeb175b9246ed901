package genetics

import (
	"github.com/wildfunctions/closedform/pkg/expr"
	"github.com/wildfunctions/closedform/pkg/rng"
)

func init() {
	Register("kitchensink", func() Set { return &KitchenSinkSet{} })
}

// KitchenSinkSet throws in every operator, including log, erf, abs and
// exponentiation, with a wider constant range and the golden ratio.
type KitchenSinkSet struct{}

func (s *KitchenSinkSet) Name() string { return "kitchensink" }

var kitchenSinkNamed = []*expr.NamedConst{expr.Pi(), expr.E(), expr.Phi()}

func (s *KitchenSinkSet) RandomLeaf(r *rng.Source) expr.Node {
	return randomLeaf(r, basicVars, kitchenSinkNamed, -100, 100)
}

func (s *KitchenSinkSet) RandomUnary(r *rng.Source) expr.UnaryOp {
	return rng.Pick(r, expr.AllUnaryOps())
}

func (s *KitchenSinkSet) RandomBinary(r *rng.Source) expr.BinaryOp {
	return rng.Pick(r, expr.AllBinaryOps())
}
