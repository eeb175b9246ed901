// Package expr implements the expression tree model used by the
// evolutionary search: immutable nodes, protected float64 evaluation
// against a variable binding context, structural equality and hashing,
// and priority-aware rendering.
package expr

// Node is the interface for all expression tree nodes. Trees are
// immutable: operators build new trees and may share subtrees freely.
type Node interface {
	// Eval computes the value of the node under the given bindings.
	// The only possible error is *UnboundVarError; arithmetic edge
	// cases are contained by the protected operator functions.
	Eval(args Args) (float64, error)
	// Arity is 0 for leaves, 1 for unary wrappers, 2 for binary nodes.
	Arity() int
	// Priority orders operators for rendering. A non-leaf child is
	// parenthesized when its priority is not strictly greater than
	// its parent's.
	Priority() int
	// Equal reports deep structural equality. Constants compare
	// within ConstEps.
	Equal(other Node) bool
	// Hash is consistent with Equal: equal trees always share a hash.
	// Const hashes value-blind so tolerant equality holds across
	// buckets; Hash is a bucket key, never an identity.
	Hash() uint64
	String() string
	LaTeX() string
	NodeCount() int
	Depth() int
}

// Var is a free variable resolved through the active Args chain.
type Var struct {
	Name string
}

// Const is a numeric constant. Two Consts are equal when their values
// are within ConstEps of each other.
type Const struct {
	Val float64
}

// NamedConst is a fixed irrational constant such as pi or e. Identity
// is by symbol, not by value.
type NamedConst struct {
	Symbol string
	Val    float64
}

// Unary applies a unary operator to one child.
type Unary struct {
	Op    UnaryOp
	Child Node
}

// Binary applies a binary operator to two children.
type Binary struct {
	Op          BinaryOp
	Left, Right Node
}

// Table is a leaf-like precomputed step function over the value of Arg,
// typically the cumulative integral of some integrand. It is built by
// the approx package and never produced by genetic operators.
type Table struct {
	Name   string
	Lo, Hi float64
	Step   float64
	Values []float64
	Arg    Node
}

// Bound wraps an expression with fallback bindings, fixing some
// variables to constants while leaving the rest free.
type Bound struct {
	Inner    Node
	Defaults MapArgs
}

// Pi and E are the stock named constants.
func Pi() *NamedConst { return &NamedConst{Symbol: "pi", Val: 3.141592653589793} }
func E() *NamedConst  { return &NamedConst{Symbol: "e", Val: 2.718281828459045} }
func Phi() *NamedConst {
	return &NamedConst{Symbol: "phi", Val: 1.618033988749895}
}

func (v *Var) Arity() int        { return 0 }
func (c *Const) Arity() int      { return 0 }
func (n *NamedConst) Arity() int { return 0 }
func (u *Unary) Arity() int      { return 1 }
func (b *Binary) Arity() int     { return 2 }
func (t *Table) Arity() int      { return 0 }
func (b *Bound) Arity() int      { return 1 }
