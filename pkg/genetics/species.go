package genetics

import (
	"github.com/wildfunctions/closedform/pkg/engine"
	"github.com/wildfunctions/closedform/pkg/expr"
	"github.com/wildfunctions/closedform/pkg/rng"
)

// Species adapts the expression operators to the engine's Evolver
// capability. Every produced tree is post-processed by Simplify, which
// also enforces MaxDepth.
type Species struct {
	Set            Set
	InitialDepth   int
	MaxDepth       int
	MutationChance float64
}

// NewSpecies returns a Species over the given set with the stock
// parameters.
func NewSpecies(set Set) *Species {
	return &Species{
		Set:            set,
		InitialDepth:   4,
		MaxDepth:       8,
		MutationChance: 0.15,
	}
}

func (s *Species) Fresh(r *rng.Source) expr.Node {
	return Simplify(s.Set, Generate(s.Set, s.InitialDepth, r), r, s.MaxDepth)
}

func (s *Species) Mutate(t expr.Node, r *rng.Source) expr.Node {
	return Simplify(s.Set, Mutate(s.Set, t, s.MutationChance, s.InitialDepth, r), r, s.MaxDepth)
}

func (s *Species) Cross(a, b expr.Node, r *rng.Source) expr.Node {
	return Simplify(s.Set, Cross(a, b, r), r, s.MaxDepth)
}

func (s *Species) Key(t expr.Node) uint64 { return t.Hash() }

func (s *Species) Equal(a, b expr.Node) bool { return a.Equal(b) }

// Metrics reports tree shape diagnostics for the epoch reports.
func (s *Species) Metrics() []engine.Metric[expr.Node] {
	return []engine.Metric[expr.Node]{
		{Name: "depth", Eval: func(n expr.Node) float64 { return float64(n.Depth()) }},
		{Name: "nodes", Eval: func(n expr.Node) float64 { return float64(n.NodeCount()) }},
		{Name: "complexity", Eval: expr.WeightedComplexity},
	}
}
