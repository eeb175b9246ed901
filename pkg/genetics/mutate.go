package genetics

import (
	"github.com/wildfunctions/closedform/pkg/expr"
	"github.com/wildfunctions/closedform/pkg/rng"
)

// MutationKind identifies a kind of mutation.
type MutationKind int

const (
	MutJitterMul MutationKind = iota // wrap in mul by a constant near 1
	MutJitterAdd                     // wrap in add of a constant near 0
	MutRegrow                        // replace with a fresh random tree
	MutShrink                        // replace a node with one of its children
	MutGrow                          // wrap in a new unary or binary node
)

const numMutationKinds = 5

// jitter magnitude for the multiplicative and additive wraps
const jitterSpread = 0.2

// growSiblingDepth bounds the fresh subtree attached when growing into
// a binary node.
const growSiblingDepth = 1

// Mutate walks the tree top-down. At each node, with probability
// chance, the current subtree is replaced by one of the five mutation
// forms; otherwise mutation recurses into exactly one child, leaving
// the rest of the tree shared with the input. Leaves the dice never
// select are returned unchanged.
func Mutate(s Set, node expr.Node, chance float64, initialDepth int, r *rng.Source) expr.Node {
	if r.Float64() < chance {
		return applyMutation(s, node, initialDepth, r)
	}
	switch n := node.(type) {
	case *expr.Unary:
		return &expr.Unary{Op: n.Op, Child: Mutate(s, n.Child, chance, initialDepth, r)}
	case *expr.Bound:
		return &expr.Bound{Inner: Mutate(s, n.Inner, chance, initialDepth, r), Defaults: n.Defaults}
	case *expr.Binary:
		if r.Bool() {
			return &expr.Binary{Op: n.Op, Left: Mutate(s, n.Left, chance, initialDepth, r), Right: n.Right}
		}
		return &expr.Binary{Op: n.Op, Left: n.Left, Right: Mutate(s, n.Right, chance, initialDepth, r)}
	default:
		return node
	}
}

func applyMutation(s Set, node expr.Node, initialDepth int, r *rng.Source) expr.Node {
	switch MutationKind(r.IntN(numMutationKinds)) {
	case MutJitterMul:
		c := &expr.Const{Val: 1 + jitterSpread*(r.Float64()-0.5)}
		return &expr.Binary{Op: expr.OpMul, Left: c, Right: node}

	case MutJitterAdd:
		c := &expr.Const{Val: jitterSpread * (r.Float64() - 0.5)}
		return &expr.Binary{Op: expr.OpAdd, Left: c, Right: node}

	case MutRegrow:
		return Generate(s, initialDepth, r)

	case MutShrink:
		switch n := node.(type) {
		case *expr.Unary:
			return n.Child
		case *expr.Bound:
			return n.Inner
		case *expr.Binary:
			if r.Bool() {
				return n.Left
			}
			return n.Right
		default:
			return node
		}

	case MutGrow:
		if r.Bool() {
			return &expr.Unary{Op: s.RandomUnary(r), Child: node}
		}
		sibling := Generate(s, growSiblingDepth, r)
		if r.Bool() {
			return &expr.Binary{Op: s.RandomBinary(r), Left: node, Right: sibling}
		}
		return &expr.Binary{Op: s.RandomBinary(r), Left: sibling, Right: node}

	default:
		return node
	}
}
