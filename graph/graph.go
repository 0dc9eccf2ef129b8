package graph

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyNodeID indicates that a provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates a weight lookup referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrSelfLoop indicates an edge from a node to itself was supplied.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")
)

// Graph is a directed, weighted graph keyed by string node IDs.
//
// Invariants:
//   - every adjacency entry references nodes present in the node set;
//   - every edge weight is ≥ 0;
//   - no self-loops.
//
// Mutation (AddNode/AddEdge) is expected during construction only; all
// solver-side access is read-only.
type Graph struct {
	nodes map[string]struct{}
	adj   map[string]map[string]float64 // from → to → weight
	edges int
}

// New returns an empty directed weighted graph.
//
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		adj:   make(map[string]map[string]float64),
	}
}

// AddNode inserts a node with the given ID. Re-adding an existing node
// is a no-op. Returns ErrEmptyNodeID for the empty string.
//
// Complexity: O(1).
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.nodes[id] = struct{}{}

	return nil
}

// AddEdge inserts the directed edge from→to with the given weight,
// creating both endpoints if absent. Re-adding an existing edge
// overwrites its weight.
//
// Errors: ErrEmptyNodeID, ErrSelfLoop, ErrNegativeWeight.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}

	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}

	row, ok := g.adj[from]
	if !ok {
		row = make(map[string]float64)
		g.adj[from] = row
	}
	if _, exists := row[to]; !exists {
		g.edges++
	}
	row[to] = weight

	return nil
}

// HasNode reports whether the node exists.
//
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
//
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	row, ok := g.adj[from]
	if !ok {
		return false
	}
	_, ok = row[to]

	return ok
}

// Weight returns the weight of the directed edge from→to.
// Returns ErrEdgeNotFound if the edge does not exist.
//
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, error) {
	row, ok := g.adj[from]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}
	w, ok := row[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Nodes returns all node IDs sorted ascending. The slice is freshly
// allocated; callers may mutate it freely.
//
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns the out-neighbors of id sorted ascending.
// Returns ErrNodeNotFound if id is absent.
//
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	row := g.adj[id]
	out := make([]string, 0, len(row))
	for to := range row {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int { return g.edges }
