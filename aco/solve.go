// Solver loop: orchestrates iterations, feeding every ant's route to the
// elite archive and the pheromone field, recording convergence
// statistics, invoking the optional per-iteration observer, and selecting
// the final answer.
package aco

import (
	"math"
	"math/rand"

	"github.com/swarmpath/antcolony/graph"
)

// Run executes the full solver loop and returns the best route found,
// its open-path distance, and the per-iteration convergence history.
// Unlike Solve, Run does not treat an all-infinite outcome as an error:
// the returned Result then carries (nil, +Inf) and the full history.
//
// Errors: ErrNilGraph, ErrBadIterations, and the Options validation
// sentinels (ErrBadAntCount, ErrBadEvaporation, ErrBadAlpha, ErrBadBeta).
//
// Complexity: O(iterations × ants × N²) typical.
func Run(g *graph.Graph, iterations int, opts ...Option) (Result, error) {
	// 1) Fail fast on meaningless configuration.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if iterations < 0 {
		return Result{}, ErrBadIterations
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	// 2) Build the run-owned state: node-indexed field, bounded archive,
	//    one RNG for every random draw of the run.
	field, err := NewField(g)
	if err != nil {
		return Result{}, err
	}
	archive, err := NewArchive(o.AntCount)
	if err != nil {
		return Result{}, err
	}
	rng := o.rng
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	r := &runner{g: g, opts: o, field: field, archive: archive, rng: rng}

	// 3) Optional pre-seeding from caller-supplied routes.
	if len(o.InitialRoutes) > 0 {
		r.seed(o.InitialRoutes)
	}

	// 4) Concurrent mode has exactly one effect here: observer forced off.
	observer := o.Observer
	if o.Concurrent {
		observer = nil
	}

	// 5) Main loop.
	for it := 0; it < iterations; it++ {
		r.iterate(it, iterations, observer)
	}

	best, dist := archive.Best()

	return Result{Route: best, Distance: dist, History: r.history}, nil
}

// Solve is the top-level entry point: it runs the loop once and fails
// with ErrRouteNotFound when no ant (and no initial route) ever produced
// a finite-distance route. The partial Result, including the history, is
// still returned alongside the error for diagnostics.
func Solve(g *graph.Graph, iterations int, opts ...Option) (Result, error) {
	res, err := Run(g, iterations, opts...)
	if err != nil {
		return res, err
	}
	if len(res.Route) == 0 || math.IsInf(res.Distance, 1) {
		return res, ErrRouteNotFound
	}

	return res, nil
}

// runner holds the mutable state of one solver run. Field and archive
// are exclusively owned: ants execute strictly sequentially so that each
// ant's field update is visible to the next ant's tour construction.
type runner struct {
	g       *graph.Graph
	opts    Options
	field   *Field
	archive *Archive
	rng     *rand.Rand
	history History
}

// seed reinforces the field with every supplied route at the elevated
// seedDeposit rate and installs the routes as the archive's starting
// content. Distances are the routes' own open-path distances; infinite
// ones still occupy archive slots but skip reinforcement (Reinforce
// guards the division).
func (r *runner) seed(routes []Route) {
	dists := make([]float64, len(routes))
	for i, route := range routes {
		dists[i] = RouteDistance(r.g, route)
		r.field.Reinforce(route, dists[i], seedDeposit)
	}
	r.archive.Seed(routes, dists)
}

// iterate runs one outer-loop pass: antCount tours, archive and field
// updates per ant, then the observer and the history entry.
func (r *runner) iterate(iteration, total int, observer Observer) {
	for ant := 0; ant < r.opts.AntCount; ant++ {
		route := BuildRoute(r.g, r.field, r.opts.Alpha, r.opts.Beta, r.rng)
		if len(route) == 0 {
			continue // construction failed; no archive or field update
		}

		distance := RouteDistance(r.g, route)
		r.archive.Offer(route, distance)
		r.field.Reinforce(route, distance, defaultDeposit)

		// Decay once per ant processed, not once per iteration: this is
		// the in-iteration coupling between consecutive ants.
		r.field.Evaporate(r.opts.Evaporation)
	}

	if observer != nil {
		best, dist := r.archive.Best()
		observer(iteration, best, dist, total)
	}

	r.history.Best = append(r.history.Best, r.archive.Min())
	r.history.Mean = append(r.history.Mean, r.archive.Mean())
}
