package engine

import "runtime"

// Direction sets which end of the score scale is better. The engine
// never infers this from the scoring function.
type Direction int

const (
	// Minimize treats the score as an error: ascending sort, lowest first.
	Minimize Direction = iota
	// Maximize treats the score as a similarity: highest first.
	Maximize
)

func (d Direction) String() string {
	if d == Maximize {
		return "maximize"
	}
	return "minimize"
}

// Config holds all parameters for an evolutionary run.
type Config struct {
	// PopulationSize is the exact population size maintained at every
	// post-epoch checkpoint.
	PopulationSize int
	// Epochs is the number of generation cycles to run.
	Epochs int
	// EliteCount is the number of best members carried into each
	// candidate pool unchanged (and the size of each elite-vs-random
	// crossover batch).
	EliteCount int
	// FreshCount is the number of brand-new random instances added to
	// each candidate pool.
	FreshCount int
	// RandomCrossCount is the size of the random-vs-random crossover
	// batch.
	RandomCrossCount int
	// Workers bounds the goroutines used for concurrent scoring.
	Workers int
	// Direction selects the comparison direction for scores.
	Direction Direction
	// Seed for the randomness source (0 = random).
	Seed uint64
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PopulationSize:   64,
		Epochs:           200,
		EliteCount:       4,
		FreshCount:       8,
		RandomCrossCount: 96,
		Workers:          runtime.NumCPU(),
		Direction:        Minimize,
		Seed:             0,
	}
}
