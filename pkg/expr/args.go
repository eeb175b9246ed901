package expr

import "fmt"

// Args resolves variable names to values during evaluation.
type Args interface {
	Lookup(name string) (float64, bool)
}

// UnboundVarError is returned when a variable has no binding anywhere
// in the active Args chain. It signals a caller configuration error
// and is never recovered internally.
type UnboundVarError struct {
	Name string
}

func (e *UnboundVarError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Name)
}

// EmptyArgs never resolves anything.
type EmptyArgs struct{}

func (EmptyArgs) Lookup(string) (float64, bool) { return 0, false }

// SingleArg binds one variable to a mutable slot. Set updates the slot
// in place so numeric sweeps do not allocate per sample.
type SingleArg struct {
	Name string
	X    float64
}

// Single returns a SingleArg for name, initially zero.
func Single(name string) *SingleArg { return &SingleArg{Name: name} }

// Set updates the bound value.
func (s *SingleArg) Set(x float64) { s.X = x }

func (s *SingleArg) Lookup(name string) (float64, bool) {
	if name == s.Name {
		return s.X, true
	}
	return 0, false
}

// MapArgs is a fixed immutable mapping of variables to values.
type MapArgs map[string]float64

func (m MapArgs) Lookup(name string) (float64, bool) {
	v, ok := m[name]
	return v, ok
}

// ChainArgs tries providers in order; the first present binding wins.
type ChainArgs []Args

// Chain builds a fallback chain from the given providers.
func Chain(providers ...Args) ChainArgs { return ChainArgs(providers) }

func (c ChainArgs) Lookup(name string) (float64, bool) {
	for _, p := range c {
		if v, ok := p.Lookup(name); ok {
			return v, true
		}
	}
	return 0, false
}
