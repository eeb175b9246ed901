package expr

import "math"

// ConstEps is the tolerance for constant equality. Because tolerant
// equality cannot be quantized into disjoint hash buckets (any grid
// splits some pair within ConstEps of each other), Const hashes by
// kind only: every numeric constant lands in the same bucket and
// Equal decides within it. Deduplication treats the hash as a bucket
// key and confirms with Equal, so tolerant-equal trees always meet.
const ConstEps = 1e-6

// FNV-1a mixing.
const (
	hashOffset = 14695981039346656037
	hashPrime  = 1099511628211
)

func mix(h, v uint64) uint64 {
	h ^= v
	h *= hashPrime
	return h
}

func mixString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h = mix(h, uint64(s[i]))
	}
	return h
}

// Variant tags keep hashes of different node shapes apart.
const (
	tagVar uint64 = iota + 1
	tagConst
	tagNamed
	tagUnary
	tagBinary
	tagTable
	tagBound
)

func (v *Var) Hash() uint64 {
	return mixString(mix(hashOffset, tagVar), v.Name)
}

func (c *Const) Hash() uint64 {
	return mix(hashOffset, tagConst)
}

func (n *NamedConst) Hash() uint64 {
	return mixString(mix(hashOffset, tagNamed), n.Symbol)
}

func (u *Unary) Hash() uint64 {
	h := mix(mix(hashOffset, tagUnary), uint64(u.Op))
	return mix(h, u.Child.Hash())
}

func (b *Binary) Hash() uint64 {
	h := mix(mix(hashOffset, tagBinary), uint64(b.Op))
	h = mix(h, b.Left.Hash())
	return mix(h, b.Right.Hash())
}

func (t *Table) Hash() uint64 {
	h := mixString(mix(hashOffset, tagTable), t.Name)
	h = mix(h, math.Float64bits(t.Lo))
	h = mix(h, math.Float64bits(t.Hi))
	h = mix(h, math.Float64bits(t.Step))
	return mix(h, t.Arg.Hash())
}

func (b *Bound) Hash() uint64 {
	h := mix(mix(hashOffset, tagBound), b.Inner.Hash())
	// XOR the binding hashes so map iteration order cannot matter.
	var agg uint64
	for k, v := range b.Defaults {
		agg ^= mixString(mix(hashOffset, math.Float64bits(v)), k)
	}
	return mix(h, agg)
}

func (v *Var) Equal(other Node) bool {
	o, ok := other.(*Var)
	return ok && o.Name == v.Name
}

func (c *Const) Equal(other Node) bool {
	o, ok := other.(*Const)
	return ok && math.Abs(o.Val-c.Val) <= ConstEps
}

func (n *NamedConst) Equal(other Node) bool {
	o, ok := other.(*NamedConst)
	return ok && o.Symbol == n.Symbol
}

func (u *Unary) Equal(other Node) bool {
	o, ok := other.(*Unary)
	return ok && o.Op == u.Op && u.Child.Equal(o.Child)
}

func (b *Binary) Equal(other Node) bool {
	o, ok := other.(*Binary)
	return ok && o.Op == b.Op && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

// Equal compares tables by identity of their definition (name, domain,
// resolution, argument); the value slice is derived from those.
func (t *Table) Equal(other Node) bool {
	o, ok := other.(*Table)
	return ok && o.Name == t.Name && o.Lo == t.Lo && o.Hi == t.Hi &&
		o.Step == t.Step && t.Arg.Equal(o.Arg)
}

func (b *Bound) Equal(other Node) bool {
	o, ok := other.(*Bound)
	if !ok || !b.Inner.Equal(o.Inner) || len(b.Defaults) != len(o.Defaults) {
		return false
	}
	for k, v := range b.Defaults {
		ov, present := o.Defaults[k]
		if !present || ov != v {
			return false
		}
	}
	return true
}
