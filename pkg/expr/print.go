package expr

import (
	"fmt"
	"sort"
	"strings"
)

// childString renders a child of a binary node, parenthesizing it when
// the child is non-leaf and its priority is not strictly greater than
// the parent's.
func childString(parent *Binary, child Node) string {
	if child.Arity() > 0 && child.Priority() <= parent.Priority() {
		return "(" + child.String() + ")"
	}
	return child.String()
}

func (v *Var) String() string { return v.Name }

func (c *Const) String() string { return fmt.Sprintf("%g", c.Val) }

func (n *NamedConst) String() string { return n.Symbol }

func (u *Unary) String() string {
	return fmt.Sprintf("%s(%s)", unaryTable[u.Op].symbol, u.Child.String())
}

func (b *Binary) String() string {
	return fmt.Sprintf("%s %s %s",
		childString(b, b.Left), binaryTable[b.Op].symbol, childString(b, b.Right))
}

func (t *Table) String() string {
	return fmt.Sprintf("%s(%s)", t.Name, t.Arg.String())
}

func (b *Bound) String() string {
	return fmt.Sprintf("(%s | %s)", b.Inner.String(), b.Defaults.bindings())
}

// bindings renders the default bindings in a stable order.
func (m MapArgs) bindings() string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, k := range names {
		parts[i] = fmt.Sprintf("%s=%g", k, m[k])
	}
	return strings.Join(parts, ", ")
}

// LaTeX rendering

var namedConstLatex = map[string]string{
	"pi":  `\pi`,
	"e":   `e`,
	"phi": `\varphi`,
}

func (v *Var) LaTeX() string { return v.Name }

func (c *Const) LaTeX() string { return fmt.Sprintf("%g", c.Val) }

func (n *NamedConst) LaTeX() string {
	if s, ok := namedConstLatex[n.Symbol]; ok {
		return s
	}
	return n.Symbol
}

func (u *Unary) LaTeX() string {
	child := u.Child.LaTeX()
	switch u.Op {
	case OpNeg:
		return fmt.Sprintf("-{%s}", child)
	case OpSqrt:
		return fmt.Sprintf(`\sqrt{%s}`, child)
	case OpAbs:
		return fmt.Sprintf(`\left|%s\right|`, child)
	default:
		return fmt.Sprintf(`%s{(%s)}`, unaryTable[u.Op].latex, child)
	}
}

func (b *Binary) LaTeX() string {
	left := b.Left.LaTeX()
	right := b.Right.LaTeX()
	switch b.Op {
	case OpAdd:
		return fmt.Sprintf("{%s} + {%s}", left, right)
	case OpSub:
		return fmt.Sprintf("{%s} - {%s}", left, right)
	case OpMul:
		return fmt.Sprintf(`{%s} \cdot {%s}`, left, right)
	case OpDiv:
		return fmt.Sprintf(`\frac{%s}{%s}`, left, right)
	case OpPow:
		return fmt.Sprintf(`{%s}^{%s}`, left, right)
	default:
		return ""
	}
}

func (t *Table) LaTeX() string {
	return fmt.Sprintf(`\operatorname{%s}(%s)`, t.Name, t.Arg.LaTeX())
}

func (b *Bound) LaTeX() string {
	return fmt.Sprintf(`\left.%s\right|_{%s}`, b.Inner.LaTeX(), b.Defaults.bindings())
}
