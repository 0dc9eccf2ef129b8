// Package graph provides the directed, weighted graph consumed by the
// solver packages (aco, dijkstra) and produced by builder.
//
// Nodes are opaque string identifiers; an edge (u,v) carries a
// non-negative float64 weight (distance or cost). The graph is a plain
// in-memory adjacency structure with deterministic iteration order:
// Nodes and Neighbors always return identifiers sorted ascending, so a
// seeded run of any algorithm on the same graph is reproducible.
//
// The graph is built once and then only read by the solvers; it is not
// safe for concurrent mutation. The solver model is explicitly
// single-threaded (one owner per run), so no internal locking is done.
//
// Errors (sentinel):
//
//	– ErrEmptyNodeID    if a node ID is the empty string.
//	– ErrNodeNotFound   if an operation references a missing node.
//	– ErrEdgeNotFound   if a weight lookup references a missing edge.
//	– ErrNegativeWeight if an edge weight is negative.
//	– ErrSelfLoop       if an edge connects a node to itself.
package graph
