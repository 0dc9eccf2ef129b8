package aco

import (
	"errors"
	"math/rand"
)

// Sentinel errors for solver configuration and execution.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to the solver.
	ErrNilGraph = errors.New("aco: graph is nil")

	// ErrBadAntCount indicates a non-positive ant count.
	ErrBadAntCount = errors.New("aco: ant count must be positive")

	// ErrBadEvaporation indicates an evaporation rate outside (0,1].
	ErrBadEvaporation = errors.New("aco: evaporation rate must be in (0,1]")

	// ErrBadAlpha indicates a negative pheromone exponent.
	ErrBadAlpha = errors.New("aco: alpha must be non-negative")

	// ErrBadBeta indicates a negative heuristic exponent.
	ErrBadBeta = errors.New("aco: beta must be non-negative")

	// ErrBadIterations indicates a negative iteration count.
	ErrBadIterations = errors.New("aco: iteration count must be non-negative")

	// ErrBadCapacity indicates a non-positive elite archive capacity.
	ErrBadCapacity = errors.New("aco: archive capacity must be positive")

	// ErrRouteNotFound indicates that no ant ever produced a
	// finite-distance route across all iterations.
	ErrRouteNotFound = errors.New("aco: no finite-distance route found")
)

// Deposit policy.
const (
	// initialPheromone seeds every field entry whose directed edge exists.
	initialPheromone = 1.0

	// defaultDeposit is the reinforcement rate for routes built by ants.
	defaultDeposit = 1.0

	// seedDeposit is the elevated reinforcement rate for caller-supplied
	// initial routes, weighting the field towards known-good structure.
	seedDeposit = 10.0
)

// Route is an ordered sequence of node IDs. A nil or empty Route signals
// tour-construction failure. A Route visiting every node exactly once
// with finite distance is "valid"; spliced shortest-path segments may
// make a Route longer than the node count.
type Route []string

// History records per-iteration convergence statistics: Best[i] is the
// minimum archive distance after iteration i, Mean[i] the arithmetic
// mean over all archive slots (padding slots count as +Inf, so Mean
// stays +Inf until the archive fills with finite routes).
type History struct {
	Best []float64
	Mean []float64
}

// Result is the outcome of a solver run.
type Result struct {
	// Route is the best route found (nil when nothing finite was found).
	Route Route

	// Distance is the open-path distance of Route (+Inf when no ant ever
	// produced a finite route).
	Distance float64

	// History holds the per-iteration convergence statistics.
	History History
}

// Observer is invoked once per iteration with the zero-based iteration
// index, the current best route and distance, and the total iteration
// count. It runs synchronously on the solver goroutine; keep it cheap.
type Observer func(iteration int, best Route, distance float64, total int)

// Options configures a solver run. Build with DefaultOptions and
// functional Option values; Run validates the final combination.
type Options struct {
	// AntCount is the number of ants per iteration and, equally, the
	// elite archive capacity. Must be ≥ 1.
	AntCount int

	// Alpha is the pheromone exponent (≥ 0).
	Alpha float64

	// Beta is the inverse-distance heuristic exponent (≥ 0).
	Beta float64

	// Evaporation is the multiplicative decay factor in (0,1], applied
	// to the whole field once per ant processed.
	Evaporation float64

	// Seed drives the solver RNG. Seed 0 selects a fixed default stream
	// (same-seed runs are always identical; pass a wall-clock seed for
	// varied runs).
	Seed int64

	// InitialRoutes pre-seed the elite archive and the pheromone field
	// (at seedDeposit rate) before the first iteration.
	InitialRoutes []Route

	// Observer, when non-nil, is called after every iteration.
	Observer Observer

	// Concurrent reserves the concurrent-evaluation mode. The sequential
	// solver ignores it except for one enumerated effect: when set, the
	// Observer is forced off.
	Concurrent bool

	// rng, when set via WithRand, overrides seed-based RNG construction.
	rng *rand.Rand
}

// DefaultOptions returns the solver defaults: 20 ants, alpha 1, beta 2,
// evaporation 0.5, deterministic default seed, no initial routes, no
// observer.
func DefaultOptions() Options {
	return Options{
		AntCount:    20,
		Alpha:       1,
		Beta:        2,
		Evaporation: 0.5,
	}
}

// Option mutates Options before validation.
type Option func(*Options)

// WithAntCount sets the number of ants per iteration (archive capacity).
func WithAntCount(n int) Option {
	return func(o *Options) { o.AntCount = n }
}

// WithAlpha sets the pheromone exponent.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithBeta sets the inverse-distance heuristic exponent.
func WithBeta(beta float64) Option {
	return func(o *Options) { o.Beta = beta }
}

// WithEvaporation sets the per-ant multiplicative decay factor.
func WithEvaporation(rate float64) Option {
	return func(o *Options) { o.Evaporation = rate }
}

// WithSeed sets the RNG seed for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a fully custom random source, taking precedence over
// WithSeed. The solver assumes exclusive ownership of r for the run.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.rng = r }
}

// WithInitialRoutes pre-seeds the archive and field with known routes.
func WithInitialRoutes(routes ...Route) Option {
	return func(o *Options) { o.InitialRoutes = routes }
}

// WithObserver registers a per-iteration callback.
func WithObserver(fn Observer) Option {
	return func(o *Options) { o.Observer = fn }
}

// WithConcurrent flags the run for concurrent evaluation. Effect in the
// sequential solver: the observer is disabled.
func WithConcurrent() Option {
	return func(o *Options) { o.Concurrent = true }
}

// validate fails fast on meaningless configurations rather than letting
// them produce silently degenerate runs.
func (o Options) validate() error {
	if o.AntCount < 1 {
		return ErrBadAntCount
	}
	if o.Evaporation <= 0 || o.Evaporation > 1 {
		return ErrBadEvaporation
	}
	if o.Alpha < 0 {
		return ErrBadAlpha
	}
	if o.Beta < 0 {
		return ErrBadBeta
	}

	return nil
}
