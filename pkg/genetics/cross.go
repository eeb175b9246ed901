package genetics

import (
	"github.com/wildfunctions/closedform/pkg/expr"
	"github.com/wildfunctions/closedform/pkg/rng"
)

// Cross recombines two parent trees into one offspring.
//
// Two numeric constants blend to their midpoint, deterministically.
// When either parent is a leaf, one parent is returned uniformly at
// random; crossover never descends into a leaf. Same-shape parents
// recombine positionally under a uniformly chosen parent's operator.
// A unary-vs-binary pair crosses the unary's child against a uniformly
// chosen side of the binary and rebuilds either as the unary wrapper
// around the result, or as the binary with its other side preserved.
func Cross(a, b expr.Node, r *rng.Source) expr.Node {
	if ca, ok := a.(*expr.Const); ok {
		if cb, ok := b.(*expr.Const); ok {
			return &expr.Const{Val: (ca.Val + cb.Val) / 2}
		}
	}

	if a.Arity() == 0 || b.Arity() == 0 {
		if r.Bool() {
			return a
		}
		return b
	}

	if a.Arity() == 1 && b.Arity() == 1 {
		parent := a
		if r.Bool() {
			parent = b
		}
		return rebuildWrapper(parent, Cross(wrappedChild(a), wrappedChild(b), r))
	}

	if a.Arity() == 2 && b.Arity() == 2 {
		ba := a.(*expr.Binary)
		bb := b.(*expr.Binary)
		op := ba.Op
		if r.Bool() {
			op = bb.Op
		}
		return &expr.Binary{
			Op:    op,
			Left:  Cross(ba.Left, bb.Left, r),
			Right: Cross(ba.Right, bb.Right, r),
		}
	}

	// One side forked, one not.
	wrapper, forked := a, b
	if a.Arity() == 2 {
		wrapper, forked = b, a
	}
	bin := forked.(*expr.Binary)

	left := r.Bool()
	side := bin.Right
	if left {
		side = bin.Left
	}
	crossed := Cross(wrappedChild(wrapper), side, r)

	if r.Bool() {
		return rebuildWrapper(wrapper, crossed)
	}
	if left {
		return &expr.Binary{Op: bin.Op, Left: crossed, Right: bin.Right}
	}
	return &expr.Binary{Op: bin.Op, Left: bin.Left, Right: crossed}
}

// wrappedChild returns the single child of an arity-1 node.
func wrappedChild(n expr.Node) expr.Node {
	switch t := n.(type) {
	case *expr.Unary:
		return t.Child
	case *expr.Bound:
		return t.Inner
	default:
		return n
	}
}

// rebuildWrapper rebuilds an arity-1 parent around a new child.
func rebuildWrapper(parent, child expr.Node) expr.Node {
	switch t := parent.(type) {
	case *expr.Unary:
		return &expr.Unary{Op: t.Op, Child: child}
	case *expr.Bound:
		return &expr.Bound{Inner: child, Defaults: t.Defaults}
	default:
		return child
	}
}
