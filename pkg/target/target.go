// Package target registers the named target functions the CLI can fit
// against.
package target

import (
	"fmt"
	"math"
	"sort"
)

// Target is a named scalar function with its fit domain.
type Target struct {
	Name   string
	Desc   string
	Fn     func(float64) float64
	Lo, Hi float64
}

var registry = map[string]Target{}

// Register adds a target to the registry.
func Register(t Target) {
	registry[t.Name] = t
}

// Get returns a target by name.
func Get(name string) (Target, error) {
	t, ok := registry[name]
	if !ok {
		return Target{}, fmt.Errorf("unknown target: %s (available: %v)", name, Names())
	}
	return t, nil
}

// Names returns all registered target names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Target{
		Name: "damped",
		Desc: "damped oscillation e^-x * sin(5x)",
		Fn:   func(x float64) float64 { return math.Exp(-x) * math.Sin(5*x) },
		Lo:   0, Hi: 3,
	})
	Register(Target{
		Name: "runge",
		Desc: "Runge's function 1/(1+25x^2)",
		Fn:   func(x float64) float64 { return 1 / (1 + 25*x*x) },
		Lo:   -1, Hi: 1,
	})
	Register(Target{
		Name: "gauss",
		Desc: "Gaussian bell e^(-x^2)",
		Fn:   func(x float64) float64 { return math.Exp(-x * x) },
		Lo:   -2, Hi: 2,
	})
	Register(Target{
		Name: "sinc",
		Desc: "sinc(x) = sin(x)/x",
		Fn: func(x float64) float64 {
			if x == 0 {
				return 1
			}
			return math.Sin(x) / x
		},
		Lo: -8, Hi: 8,
	})
	Register(Target{
		Name: "poly",
		Desc: "cubic x^3 - 2x + 1",
		Fn:   func(x float64) float64 { return x*x*x - 2*x + 1 },
		Lo:   -2, Hi: 2,
	})
}
