// Package genetics implements the genetic operators over expression
// trees: depth-bounded random generation, mutation, crossover, and the
// simplifier/depth limiter, plus the operator-set registry they draw
// building blocks from.
package genetics

import (
	"fmt"

	"github.com/wildfunctions/closedform/pkg/expr"
	"github.com/wildfunctions/closedform/pkg/rng"
)

// Set provides random building blocks for constructing expression trees.
type Set interface {
	Name() string
	RandomLeaf(r *rng.Source) expr.Node
	RandomUnary(r *rng.Source) expr.UnaryOp
	RandomBinary(r *rng.Source) expr.BinaryOp
}

var registry = map[string]func() Set{}

// Register adds a set constructor to the registry.
func Register(name string, constructor func() Set) {
	registry[name] = constructor
}

// Get returns a set by name.
func Get(name string) (Set, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown operator set: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered set names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	return names
}

// randomLeaf uniformly chooses among a variable, a named constant, and
// a freshly sampled numeric constant.
func randomLeaf(r *rng.Source, vars []string, named []*expr.NamedConst, lo, hi float64) expr.Node {
	switch r.IntN(3) {
	case 0:
		return &expr.Var{Name: rng.Pick(r, vars)}
	case 1:
		return rng.Pick(r, named)
	default:
		return &expr.Const{Val: lo + r.Float64()*(hi-lo)}
	}
}
