package expr

import "math"

func (v *Var) Eval(args Args) (float64, error) {
	val, ok := args.Lookup(v.Name)
	if !ok {
		return 0, &UnboundVarError{Name: v.Name}
	}
	return val, nil
}

func (c *Const) Eval(Args) (float64, error) { return c.Val, nil }

func (n *NamedConst) Eval(Args) (float64, error) { return n.Val, nil }

func (u *Unary) Eval(args Args) (float64, error) {
	child, err := u.Child.Eval(args)
	if err != nil {
		return 0, err
	}
	return ApplyUnary(u.Op, child), nil
}

func (b *Binary) Eval(args Args) (float64, error) {
	left, err := b.Left.Eval(args)
	if err != nil {
		return 0, err
	}
	right, err := b.Right.Eval(args)
	if err != nil {
		return 0, err
	}
	return ApplyBinary(b.Op, left, right), nil
}

// Eval looks the argument value up in the precomputed bucket table,
// clamping to the boundary values outside [Lo, Hi].
func (t *Table) Eval(args Args) (float64, error) {
	x, err := t.Arg.Eval(args)
	if err != nil {
		return 0, err
	}
	if len(t.Values) == 0 {
		return 0, nil
	}
	if x <= t.Lo {
		return t.Values[0], nil
	}
	if x >= t.Hi {
		return t.Values[len(t.Values)-1], nil
	}
	idx := int(math.Floor((x - t.Lo) / t.Step))
	if idx >= len(t.Values) {
		idx = len(t.Values) - 1
	}
	return t.Values[idx], nil
}

func (b *Bound) Eval(args Args) (float64, error) {
	return b.Inner.Eval(Chain(args, b.Defaults))
}
