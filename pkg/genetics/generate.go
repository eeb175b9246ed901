package genetics

import (
	"github.com/wildfunctions/closedform/pkg/expr"
	"github.com/wildfunctions/closedform/pkg/rng"
)

// Generate builds a random tree of height exactly depth along every
// path: at depth 0 it emits a leaf, deeper it flips a coin between a
// unary and a binary node and recurses with depth-1 for each child.
// Full trees bias the initial population toward diversity.
func Generate(s Set, depth int, r *rng.Source) expr.Node {
	if depth <= 0 {
		return s.RandomLeaf(r)
	}
	if r.Bool() {
		return &expr.Unary{
			Op:    s.RandomUnary(r),
			Child: Generate(s, depth-1, r),
		}
	}
	return &expr.Binary{
		Op:    s.RandomBinary(r),
		Left:  Generate(s, depth-1, r),
		Right: Generate(s, depth-1, r),
	}
}
