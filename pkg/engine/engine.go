// Package engine runs a generational evolutionary search over any
// candidate type. Candidates are produced sequentially by an Evolver,
// scored concurrently by an injected fitness function, deduplicated by
// structural equality, and truncated or backfilled so the population
// holds exactly PopulationSize members at every post-epoch checkpoint.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/wildfunctions/closedform/pkg/rng"
)

// Evolver supplies the per-type capabilities the engine needs.
type Evolver[T any] interface {
	Fresh(r *rng.Source) T
	Mutate(t T, r *rng.Source) T
	Cross(a, b T, r *rng.Source) T
	// Key buckets candidates for deduplication; Equal confirms within
	// a bucket. Equal candidates must share a key.
	Key(t T) uint64
	Equal(a, b T) bool
}

// ScoreFunc is the externally supplied fitness function. The engine
// imposes no contract beyond the configured Direction.
type ScoreFunc[T any] func(t T) float64

// Metric is an auxiliary diagnostic reported per epoch but never used
// for selection.
type Metric[T any] struct {
	Name string
	Eval func(t T) float64
}

// Observer is invoked synchronously at the end of each epoch with the
// current best candidate.
type Observer[T any] func(epoch int, best T, score float64)

// Member pairs a candidate with its fitness score.
type Member[T any] struct {
	Candidate T
	Score     float64
}

// ErrPopulationInvariant signals that the population could not be
// restored to its exact configured size. It indicates a logic defect
// in the evolver, not a transient fault.
var ErrPopulationInvariant = errors.New("population size invariant violated")

// backfill gives up on mutation and falls back to fresh randoms after
// this many rejected candidates per missing slot, and aborts entirely
// after twice that.
const backfillAttemptsPerSlot = 32

// Engine drives the evolutionary loop.
type Engine[T any] struct {
	cfg     Config
	evolver Evolver[T]
	score   ScoreFunc[T]

	metrics   []Metric[T]
	observers []Observer[T]
	log       *slog.Logger
	rng       *rng.Source
	runID     uuid.UUID

	seed    *T
	members []Member[T] // sorted best-first
}

// New creates an engine from the given config, evolver and fitness
// function.
func New[T any](cfg Config, evolver Evolver[T], score ScoreFunc[T]) (*Engine[T], error) {
	if cfg.PopulationSize < 2 {
		return nil, fmt.Errorf("population size must be at least 2, got %d", cfg.PopulationSize)
	}
	if cfg.EliteCount < 0 || cfg.EliteCount > cfg.PopulationSize {
		return nil, fmt.Errorf("elite count %d out of range for population %d", cfg.EliteCount, cfg.PopulationSize)
	}
	if cfg.FreshCount < 0 {
		return nil, fmt.Errorf("fresh count must be non-negative, got %d", cfg.FreshCount)
	}
	if cfg.RandomCrossCount < 0 {
		return nil, fmt.Errorf("random cross count must be non-negative, got %d", cfg.RandomCrossCount)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Engine[T]{
		cfg:     cfg,
		evolver: evolver,
		score:   score,
		log:     slog.Default(),
		rng:     rng.New(cfg.Seed),
		runID:   uuid.New(),
	}, nil
}

// SetLogger replaces the default slog logger.
func (e *Engine[T]) SetLogger(log *slog.Logger) { e.log = log }

// SetMetrics installs auxiliary diagnostics reported per epoch.
func (e *Engine[T]) SetMetrics(metrics []Metric[T]) { e.metrics = metrics }

// AddObserver registers a per-epoch callback.
func (e *Engine[T]) AddObserver(obs Observer[T]) {
	e.observers = append(e.observers, obs)
}

// SetSeedCandidate injects one caller-supplied candidate into the
// initial population.
func (e *Engine[T]) SetSeedCandidate(t T) { e.seed = &t }

// RunID returns the unique identifier for this run.
func (e *Engine[T]) RunID() uuid.UUID { return e.runID }

// Population returns the current members, sorted best-first. The slice
// is replaced wholesale between epochs and never mutated concurrently.
func (e *Engine[T]) Population() []Member[T] { return e.members }

// Best returns the current best member.
func (e *Engine[T]) Best() (Member[T], error) {
	if len(e.members) == 0 {
		return Member[T]{}, errors.New("no candidates available")
	}
	return e.members[0], nil
}

// Run executes the evolutionary loop and returns the final report.
func (e *Engine[T]) Run(ctx context.Context) (*Report, error) {
	e.initialize()

	report := &Report{
		RunID:  e.runID.String(),
		Config: e.cfg,
	}

	for epoch := 0; epoch < e.cfg.Epochs; epoch++ {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		er, err := e.epoch(epoch)
		if err != nil {
			e.log.Error("epoch failed", "run", e.runID, "epoch", epoch, "error", err)
			return report, err
		}
		report.Epochs = append(report.Epochs, er)

		best := e.members[0]
		e.log.Info("epoch complete",
			"run", e.runID,
			"epoch", epoch,
			"best", er.BestScore,
			"avg", er.AvgScore,
			"pool", er.PoolSize,
			"deduped", er.Deduped)
		for _, obs := range e.observers {
			obs(epoch, best.Candidate, best.Score)
		}
	}

	best := e.members[0]
	report.BestCandidate = fmt.Sprintf("%v", best.Candidate)
	report.BestScore = best.Score
	return report, nil
}

// initialize builds and scores the starting population: size-1 fresh
// instances plus the seed candidate when one was supplied.
func (e *Engine[T]) initialize() {
	candidates := make([]T, 0, e.cfg.PopulationSize)
	if e.seed != nil {
		candidates = append(candidates, *e.seed)
	}
	for len(candidates) < e.cfg.PopulationSize {
		candidates = append(candidates, e.evolver.Fresh(e.rng))
	}
	e.members = e.scoreAll(candidates)
	e.sortMembers(e.members)
}

// epoch performs one generational transition.
func (e *Engine[T]) epoch(epoch int) (EpochReport, error) {
	prev := e.members
	candidates := e.buildPool(prev)

	scored := e.scoreAll(candidates)
	kept, deduped := e.dedupe(scored)

	if len(kept) >= e.cfg.PopulationSize {
		e.sortMembers(kept)
		kept = kept[:e.cfg.PopulationSize]
	} else if err := e.backfill(&kept, prev); err != nil {
		return EpochReport{}, err
	} else {
		e.sortMembers(kept)
	}

	if len(kept) != e.cfg.PopulationSize {
		return EpochReport{}, fmt.Errorf("%w: have %d, want %d",
			ErrPopulationInvariant, len(kept), e.cfg.PopulationSize)
	}
	e.members = kept

	er := EpochReport{
		Epoch:         epoch,
		BestScore:     kept[0].Score,
		AvgScore:      averageScore(kept),
		BestCandidate: fmt.Sprintf("%v", kept[0].Candidate),
		PoolSize:      len(candidates),
		Deduped:       deduped,
	}
	if len(e.metrics) > 0 {
		er.Metrics = make(map[string]float64, len(e.metrics))
		for _, m := range e.metrics {
			er.Metrics[m.Name] = m.Eval(kept[0].Candidate)
		}
	}
	return er, nil
}

// buildPool assembles the epoch's candidate pool sequentially on the
// calling goroutine: elites unchanged, two batches of elite-vs-random
// crossovers, a mutated copy of every member, fresh randoms, and a
// batch of random-vs-random crossovers.
func (e *Engine[T]) buildPool(prev []Member[T]) []T {
	n := len(prev)
	elites := e.cfg.EliteCount
	if elites > n {
		elites = n
	}

	out := make([]T, 0, 2*n+3*elites+e.cfg.FreshCount+e.cfg.RandomCrossCount)

	for i := 0; i < elites; i++ {
		out = append(out, prev[i].Candidate)
	}
	for i := 0; i < elites; i++ {
		other := prev[e.rng.IntN(n)].Candidate
		out = append(out, e.evolver.Cross(prev[i].Candidate, other, e.rng))
	}
	for _, m := range prev {
		out = append(out, e.evolver.Mutate(m.Candidate, e.rng))
	}
	for i := 0; i < e.cfg.FreshCount; i++ {
		out = append(out, e.evolver.Fresh(e.rng))
	}
	for i := 0; i < elites; i++ {
		other := prev[e.rng.IntN(n)].Candidate
		out = append(out, e.evolver.Cross(prev[i].Candidate, other, e.rng))
	}
	for i := 0; i < e.cfg.RandomCrossCount; i++ {
		a := prev[e.rng.IntN(n)].Candidate
		b := prev[e.rng.IntN(n)].Candidate
		out = append(out, e.evolver.Cross(a, b, e.rng))
	}
	return out
}

// scoreAll scores every candidate concurrently and blocks until all
// scoring tasks finish: a synchronous barrier, never a streaming
// pipeline, and no work crosses epochs.
func (e *Engine[T]) scoreAll(candidates []T) []Member[T] {
	out := make([]Member[T], len(candidates))
	p := pool.New().WithMaxGoroutines(e.cfg.Workers)
	for i, c := range candidates {
		i, c := i, c
		p.Go(func() {
			out[i] = Member[T]{Candidate: c, Score: e.score(c)}
		})
	}
	p.Wait()
	return out
}

// dedupe drops structurally equal duplicates, preserving the first
// occurrence. Returns the survivors and the number removed.
func (e *Engine[T]) dedupe(members []Member[T]) ([]Member[T], int) {
	buckets := make(map[uint64][]T, len(members))
	kept := make([]Member[T], 0, len(members))
	for _, m := range members {
		if e.seen(buckets, m.Candidate) {
			continue
		}
		k := e.evolver.Key(m.Candidate)
		buckets[k] = append(buckets[k], m.Candidate)
		kept = append(kept, m)
	}
	return kept, len(members) - len(kept)
}

func (e *Engine[T]) seen(buckets map[uint64][]T, c T) bool {
	for _, prior := range buckets[e.evolver.Key(c)] {
		if e.evolver.Equal(prior, c) {
			return true
		}
	}
	return false
}

// backfill replenishes kept to exactly PopulationSize by mutating the
// previous population from its best end, scoring each addition, with a
// fresh-random fallback when mutation keeps producing duplicates.
func (e *Engine[T]) backfill(kept *[]Member[T], prev []Member[T]) error {
	buckets := make(map[uint64][]T, len(*kept))
	for _, m := range *kept {
		buckets[e.evolver.Key(m.Candidate)] = append(buckets[e.evolver.Key(m.Candidate)], m.Candidate)
	}

	next := 0
	for len(*kept) < e.cfg.PopulationSize {
		filled := false
		for attempt := 0; attempt < 2*backfillAttemptsPerSlot; attempt++ {
			var c T
			if attempt < backfillAttemptsPerSlot {
				c = e.evolver.Mutate(prev[next%len(prev)].Candidate, e.rng)
				next++
			} else {
				c = e.evolver.Fresh(e.rng)
			}
			if e.seen(buckets, c) {
				continue
			}
			buckets[e.evolver.Key(c)] = append(buckets[e.evolver.Key(c)], c)
			*kept = append(*kept, Member[T]{Candidate: c, Score: e.score(c)})
			filled = true
			break
		}
		if !filled {
			return fmt.Errorf("%w: backfill exhausted after %d attempts per slot",
				ErrPopulationInvariant, 2*backfillAttemptsPerSlot)
		}
	}
	return nil
}

func (e *Engine[T]) sortMembers(members []Member[T]) {
	if e.cfg.Direction == Maximize {
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Score > members[j].Score
		})
		return
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Score < members[j].Score
	})
}

func averageScore[T any](members []Member[T]) float64 {
	var total float64
	for _, m := range members {
		total += m.Score
	}
	return total / float64(len(members))
}
