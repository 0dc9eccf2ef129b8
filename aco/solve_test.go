// Package aco_test — solver loop: configuration validation, the 4-node
// acceptance scenario, initial-route seeding, convergence history,
// observer semantics, and degenerate graphs.
package aco_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmpath/antcolony/aco"
	"github.com/swarmpath/antcolony/graph"
)

func TestRun_Validation(t *testing.T) {
	g := complete4(t)

	_, err := aco.Run(nil, 1)
	require.ErrorIs(t, err, aco.ErrNilGraph)

	_, err = aco.Run(g, -1)
	require.ErrorIs(t, err, aco.ErrBadIterations)

	_, err = aco.Run(g, 1, aco.WithAntCount(0))
	require.ErrorIs(t, err, aco.ErrBadAntCount)

	_, err = aco.Run(g, 1, aco.WithEvaporation(0))
	require.ErrorIs(t, err, aco.ErrBadEvaporation)
	_, err = aco.Run(g, 1, aco.WithEvaporation(1.5))
	require.ErrorIs(t, err, aco.ErrBadEvaporation)

	_, err = aco.Run(g, 1, aco.WithAlpha(-0.1))
	require.ErrorIs(t, err, aco.ErrBadAlpha)

	_, err = aco.Run(g, 1, aco.WithBeta(-2))
	require.ErrorIs(t, err, aco.ErrBadBeta)
}

func TestSolve_FindsCheapCycleOnComplete4(t *testing.T) {
	// Acceptance scenario: unit-weight cycle hidden among weight-10
	// edges. The best open path follows the cycle for a total of 3 —
	// the exhaustive-enumeration optimum for this graph.
	g := complete4(t)

	res, err := aco.Solve(g, 4,
		aco.WithAntCount(5),
		aco.WithSeed(42),
	)
	require.NoError(t, err)

	assert.Equal(t, 3.0, res.Distance)
	require.Len(t, res.Route, 4)
	seen := map[string]bool{}
	for _, id := range res.Route {
		assert.True(t, g.HasNode(id))
		seen[id] = true
	}
	assert.Len(t, seen, 4)
}

func TestRun_HistoryBestIsNonIncreasing(t *testing.T) {
	g := complete4(t)

	res, err := aco.Run(g, 12, aco.WithAntCount(3), aco.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, res.History.Best, 12)
	require.Len(t, res.History.Mean, 12)

	for i := 1; i < len(res.History.Best); i++ {
		assert.LessOrEqual(t, res.History.Best[i], res.History.Best[i-1],
			"best-so-far must never worsen")
	}
	for i := range res.History.Best {
		assert.LessOrEqual(t, res.History.Best[i], res.History.Mean[i])
	}
}

func TestRun_DeterministicUnderFixedSeed(t *testing.T) {
	g := complete4(t)

	a, err := aco.Run(g, 6, aco.WithAntCount(4), aco.WithSeed(123))
	require.NoError(t, err)
	b, err := aco.Run(g, 6, aco.WithAntCount(4), aco.WithSeed(123))
	require.NoError(t, err)

	assert.Equal(t, a.Route, b.Route)
	assert.Equal(t, a.Distance, b.Distance)
	assert.Equal(t, a.History, b.History)
}

func TestRun_InitialRoutesSeedArchive(t *testing.T) {
	g := complete4(t)
	seedRoute := aco.Route{"a", "b", "c", "d"}

	// Zero iterations: the result is exactly the seeded archive content.
	res, err := aco.Run(g, 0, aco.WithInitialRoutes(seedRoute))
	require.NoError(t, err)
	assert.Equal(t, seedRoute, res.Route)
	assert.Equal(t, 3.0, res.Distance)
}

func TestRun_ObserverPerIteration(t *testing.T) {
	g := complete4(t)

	type call struct {
		iteration int
		distance  float64
		total     int
	}
	var calls []call
	_, err := aco.Run(g, 3,
		aco.WithAntCount(2),
		aco.WithSeed(1),
		aco.WithObserver(func(it int, best aco.Route, d float64, total int) {
			calls = append(calls, call{iteration: it, distance: d, total: total})
		}),
	)
	require.NoError(t, err)

	require.Len(t, calls, 3)
	for i, c := range calls {
		assert.Equal(t, i, c.iteration)
		assert.Equal(t, 3, c.total)
		assert.False(t, math.IsInf(c.distance, 1),
			"complete graph ants always produce finite routes")
	}
}

func TestRun_ConcurrentModeForcesObserverOff(t *testing.T) {
	g := complete4(t)

	called := false
	_, err := aco.Run(g, 2,
		aco.WithAntCount(2),
		aco.WithConcurrent(),
		aco.WithObserver(func(int, aco.Route, float64, int) { called = true }),
	)
	require.NoError(t, err)
	assert.False(t, called)
}

func TestSolve_EmptyGraphYieldsRouteNotFound(t *testing.T) {
	// Every ant yields an empty route, every iteration; the best distance
	// stays infinite and the top-level wrapper reports it.
	g := graph.New()

	res, err := aco.Solve(g, 3, aco.WithAntCount(2))
	require.ErrorIs(t, err, aco.ErrRouteNotFound)
	assert.Nil(t, res.Route)
	assert.True(t, math.IsInf(res.Distance, 1))
	assert.Len(t, res.History.Best, 3)
}

func TestSolve_ZeroIterations(t *testing.T) {
	g := complete4(t)

	res, err := aco.Solve(g, 0)
	require.ErrorIs(t, err, aco.ErrRouteNotFound)
	assert.Empty(t, res.History.Best)
}

func TestSolve_SingleNodeGraph(t *testing.T) {
	// A single node tours trivially: singleton route, distance 0.
	g := graph.New()
	require.NoError(t, g.AddNode("only"))

	res, err := aco.Solve(g, 1, aco.WithAntCount(2))
	require.NoError(t, err)
	assert.Equal(t, aco.Route{"only"}, res.Route)
	assert.Zero(t, res.Distance)
}

func TestRun_DisconnectedGraphKeepsInfiniteBest(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "a", 1))
	require.NoError(t, g.AddEdge("x", "y", 1))
	require.NoError(t, g.AddEdge("y", "x", 1))

	res, err := aco.Run(g, 2, aco.WithAntCount(3), aco.WithSeed(9))
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Distance, 1))

	_, err = aco.Solve(g, 2, aco.WithAntCount(3), aco.WithSeed(9))
	require.ErrorIs(t, err, aco.ErrRouteNotFound)
}
