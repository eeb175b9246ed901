package genetics

import (
	"math"

	"github.com/wildfunctions/closedform/pkg/expr"
	"github.com/wildfunctions/closedform/pkg/rng"
)

// Simplify folds constant subtrees, applies algebraic identities, and
// enforces the depth budget: a non-leaf node whose remaining budget is
// exhausted is discarded and replaced by a fresh leaf, guaranteeing
// Depth(result) <= remaining. It runs bottom-up after every generate,
// mutate, and cross.
func Simplify(s Set, node expr.Node, r *rng.Source, remaining int) expr.Node {
	if node.Arity() == 0 {
		return node
	}
	if remaining <= 1 {
		return s.RandomLeaf(r)
	}

	switch n := node.(type) {
	case *expr.Unary:
		child := Simplify(s, n.Child, r, remaining-1)
		if c, ok := child.(*expr.Const); ok {
			return &expr.Const{Val: sanitize(expr.ApplyUnary(n.Op, c.Val))}
		}
		return &expr.Unary{Op: n.Op, Child: child}

	case *expr.Bound:
		return &expr.Bound{Inner: Simplify(s, n.Inner, r, remaining-1), Defaults: n.Defaults}

	case *expr.Binary:
		left := Simplify(s, n.Left, r, remaining-1)
		right := Simplify(s, n.Right, r, remaining-1)
		return simplifyBinary(n.Op, left, right)

	default:
		return node
	}
}

func simplifyBinary(op expr.BinaryOp, left, right expr.Node) expr.Node {
	lc, lok := left.(*expr.Const)
	rc, rok := right.(*expr.Const)

	if lok && rok {
		return &expr.Const{Val: sanitize(expr.ApplyBinary(op, lc.Val, rc.Val))}
	}

	switch op {
	case expr.OpAdd:
		if lok && isZero(lc.Val) {
			return right
		}
		if rok && isZero(rc.Val) {
			return left
		}

	case expr.OpSub:
		if left.Equal(right) {
			return &expr.Const{Val: 0}
		}
		if rok && isZero(rc.Val) {
			return left
		}
		if lok && isZero(lc.Val) {
			return &expr.Unary{Op: expr.OpNeg, Child: right}
		}
		// x - (-k) reads better as x + k.
		if rok && rc.Val < 0 {
			return &expr.Binary{Op: expr.OpAdd, Left: left, Right: &expr.Const{Val: -rc.Val}}
		}

	case expr.OpMul:
		if (lok && isZero(lc.Val)) || (rok && isZero(rc.Val)) {
			return &expr.Const{Val: 0}
		}
		if lok && isOne(lc.Val) {
			return right
		}
		if rok && isOne(rc.Val) {
			return left
		}

	case expr.OpDiv:
		if rok && isZero(rc.Val) {
			return &expr.Const{Val: expr.BigValue}
		}
		if left.Equal(right) {
			return &expr.Const{Val: 1}
		}
		if rok && isOne(rc.Val) {
			return left
		}
		if lok && isZero(lc.Val) {
			return &expr.Const{Val: 0}
		}

	case expr.OpPow:
		if rok && isZero(rc.Val) {
			return &expr.Const{Val: 1}
		}
		if rok && isOne(rc.Val) {
			return left
		}
	}

	return &expr.Binary{Op: op, Left: left, Right: right}
}

// sanitize zeroes any residual NaN or infinity from constant folding.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func isZero(v float64) bool { return math.Abs(v) <= expr.ConstEps }

func isOne(v float64) bool { return math.Abs(v-1) <= expr.ConstEps }
