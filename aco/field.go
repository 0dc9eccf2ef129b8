// Pheromone field: the dense N×N intensity matrix indexed by node pair,
// mutated in place by evaporation (global multiplicative decay) and
// reinforcement (additive deposit on a completed route's edges).
//
// The node index — a bijection from node ID onto 0..N-1 fixed at
// construction — lives inside the field and is never recomputed mid-run.
package aco

import (
	"math"

	"github.com/swarmpath/antcolony/graph"
)

// Field owns the pheromone matrix for one solver run. A single runner
// owns the Field exclusively; it is not safe for concurrent use.
type Field struct {
	g     *graph.Graph   // source graph, read-only (edge existence checks)
	nodes []string       // index → node ID, sorted ascending
	index map[string]int // node ID → index
	cells [][]float64    // cells[i][j] ≥ 0 always
}

// NewField builds the pheromone matrix for g: entry[i][j] is
// initialPheromone where the directed edge (node_i, node_j) exists and 0
// otherwise, so missing edges never self-reinforce into phantom paths.
//
// Errors: ErrNilGraph.
//
// Complexity: O(N² + E).
func NewField(g *graph.Graph) (*Field, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	nodes := g.Nodes()
	n := len(nodes)
	index := make(map[string]int, n)
	for i, id := range nodes {
		index[id] = i
	}

	cells := make([][]float64, n)
	for i := range cells {
		cells[i] = make([]float64, n)
		for j := range cells[i] {
			if g.HasEdge(nodes[i], nodes[j]) {
				cells[i][j] = initialPheromone
			}
		}
	}

	return &Field{g: g, nodes: nodes, index: index, cells: cells}, nil
}

// Size returns the matrix dimension N (the graph's node count).
func (f *Field) Size() int { return len(f.nodes) }

// At returns the pheromone intensity on the ordered pair from→to, or 0
// when either node is unknown.
//
// Complexity: O(1).
func (f *Field) At(from, to string) float64 {
	i, ok := f.index[from]
	if !ok {
		return 0
	}
	j, ok := f.index[to]
	if !ok {
		return 0
	}

	return f.cells[i][j]
}

// Evaporate multiplies every entry by rate in place. The solver calls it
// once per route processed, so decay frequency scales with ant count.
//
// Complexity: O(N²).
func (f *Field) Evaporate(rate float64) {
	for i := range f.cells {
		for j := range f.cells[i] {
			f.cells[i][j] *= rate
		}
	}
}

// Reinforce deposits deposit/distance on every consecutive pair of the
// route, including the wrap-around pair (last, first), for pairs that are
// real directed edges of the graph. The wrap-around deposit rewards
// cyclic structure even though RouteDistance scores the open path only.
//
// No-op when the route is empty or when distance is non-positive or
// infinite (guards the division; an unreachable route never reinforces).
//
// Complexity: O(len(route)).
func (f *Field) Reinforce(route Route, distance, deposit float64) {
	if len(route) == 0 {
		return
	}
	if distance <= 0 || math.IsInf(distance, 1) {
		return
	}

	amount := deposit / distance
	for i := range route {
		u := route[i]
		v := route[(i+1)%len(route)]
		if !f.g.HasEdge(u, v) {
			continue
		}
		f.cells[f.index[u]][f.index[v]] += amount
	}
}
