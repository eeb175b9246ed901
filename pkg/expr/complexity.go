package expr

import "math"

func (v *Var) NodeCount() int        { return 1 }
func (c *Const) NodeCount() int      { return 1 }
func (n *NamedConst) NodeCount() int { return 1 }
func (t *Table) NodeCount() int      { return 1 + t.Arg.NodeCount() }
func (u *Unary) NodeCount() int      { return 1 + u.Child.NodeCount() }
func (b *Bound) NodeCount() int      { return 1 + b.Inner.NodeCount() }
func (b *Binary) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}

func (v *Var) Depth() int        { return 1 }
func (c *Const) Depth() int      { return 1 }
func (n *NamedConst) Depth() int { return 1 }
func (t *Table) Depth() int      { return 1 }
func (u *Unary) Depth() int      { return 1 + u.Child.Depth() }
func (b *Bound) Depth() int      { return 1 + b.Inner.Depth() }
func (b *Binary) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// WeightedComplexity returns a complexity score with heavier weight for
// transcendental operations; used as a diagnostic metric, not for
// selection.
func WeightedComplexity(node Node) float64 {
	switch n := node.(type) {
	case *Var, *NamedConst:
		return 1.0
	case *Const:
		v := math.Abs(n.Val)
		if v <= 10 {
			return 1.0
		}
		return 1.0 + math.Log10(v)
	case *Table:
		return 3.0 + WeightedComplexity(n.Arg)
	case *Unary:
		return unaryWeight(n.Op) + WeightedComplexity(n.Child)
	case *Bound:
		return 1.0 + WeightedComplexity(n.Inner)
	case *Binary:
		return binaryWeight(n.Op) + WeightedComplexity(n.Left) + WeightedComplexity(n.Right)
	default:
		return 1.0
	}
}

func unaryWeight(op UnaryOp) float64 {
	switch op {
	case OpNeg, OpAbs:
		return 1.0
	case OpSqrt:
		return 2.0
	case OpExp, OpLog, OpSin, OpCos, OpErf:
		return 3.0
	default:
		return 2.0
	}
}

func binaryWeight(op BinaryOp) float64 {
	switch op {
	case OpAdd, OpSub:
		return 1.0
	case OpMul, OpDiv:
		return 1.5
	case OpPow:
		return 2.0
	default:
		return 1.5
	}
}
