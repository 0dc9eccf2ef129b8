// Package antcolony is an ant-colony-optimization toolkit for finding
// short routes through directed weighted graphs.
//
// What's inside?
//
//	A small, focused library that brings together:
//		• Core primitives: a directed weighted graph with validated mutation
//		• Shortest paths: Dijkstra with early exit for single targets
//		• Colony solver: pheromone field, probabilistic tour construction,
//		  elite archive and a convergence-tracking solver loop
//		• Scenario builder: reproducible random graphs for benchmarks & demos
//
// Everything is organized under four subpackages plus a CLI:
//
//	graph/        — directed weighted graph type & validated operations
//	dijkstra/     — single-pair shortest path on graph.Graph
//	aco/          — the colony solver: Field, Archive, BuildRoute, Run/Solve
//	builder/      — random scenario generator (graphs, layouts, seed routes)
//	cmd/antsolve/ — YAML-configured command-line front end
//
// Quick ASCII example:
//
//	    a──▶b
//	    ▲   │
//	    │   ▼
//	    d◀──c
//
//	a four-node ring; twenty ants with default parameters converge on the
//	open path a→b→c→d (distance 3 at unit weights) within a few iterations.
//
// Dive into the aco package docs for the solver's parameter model and its
// determinism guarantees.
package antcolony
