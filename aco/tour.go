// Tour construction: one ant's probabilistic walk over the graph.
package aco

import (
	"math"
	"math/rand"
	"sort"

	"github.com/swarmpath/antcolony/dijkstra"
	"github.com/swarmpath/antcolony/graph"
)

// BuildRoute constructs one candidate route over g.
//
// Algorithm:
//
//  1. Pick a uniformly random start node.
//  2. While unvisited nodes remain, select the next node among the
//     unvisited out-neighbors of the current node (or among all unvisited
//     nodes when no adjacent one is left), weighted by
//     pheromone^alpha × (1/edgeDistance)^beta.
//  3. A sampled node that is not a direct out-neighbor is reached through
//     the cheapest path, splicing possibly several nodes into the route
//     at once. Spliced intermediates are not marked visited, so the
//     finished route may exceed N entries.
//
// A nil return signals construction failure: an empty graph, or a sampled
// node with no path from the current one. Failed routes are skipped by
// the solver (no archive or field update).
//
// Complexity: O(N × (N + splice)) typical; each splice is one Dijkstra
// run, O((V+E) log V).
func BuildRoute(g *graph.Graph, field *Field, alpha, beta float64, rng *rand.Rand) Route {
	// 1) Degenerate graph: nothing to tour.
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil
	}

	// 2) Random start node.
	current := nodes[rng.Intn(len(nodes))]
	route := Route{current}

	unvisited := make(map[string]struct{}, len(nodes)-1)
	for _, id := range nodes {
		if id != current {
			unvisited[id] = struct{}{}
		}
	}

	// 3) Extend until every node has been sampled once.
	for len(unvisited) > 0 {
		neighbors, err := g.Neighbors(current)
		if err != nil {
			return nil
		}

		// Candidates: unvisited out-neighbors; when a dead end is hit,
		// widen to all unvisited nodes regardless of adjacency.
		candidates := intersect(neighbors, unvisited)
		if len(candidates) == 0 {
			candidates = sortedKeys(unvisited)
		}

		next, ok := pickNext(g, field, current, candidates, neighbors, alpha, beta, rng)
		if !ok {
			return nil
		}

		if g.HasEdge(current, next) {
			route = append(route, next)
		} else {
			// Not adjacent: splice the cheapest path, excluding current.
			// No path at all fails the whole construction.
			path, _, perr := dijkstra.Path(g, current, next)
			if perr != nil {
				return nil
			}
			route = append(route, path[1:]...)
		}

		// The degenerate neighbor fallback may return an already-visited
		// node; deleting an absent key is a no-op.
		delete(unvisited, next)
		current = next
	}

	return route
}

// pickNext samples the next node for the walk.
//
//   - Empty candidate set (degenerate branch): a uniform-random draw among
//     the raw neighbors, which may revisit a node; no neighbors either ⇒
//     construction fails.
//   - Zero total attraction: uniform-random draw among the candidates
//     (pure exploration fallback).
//   - Otherwise: weighted draw proportional to attraction.
func pickNext(g *graph.Graph, field *Field, current string, candidates, neighbors []string, alpha, beta float64, rng *rand.Rand) (string, bool) {
	if len(candidates) == 0 {
		if len(neighbors) == 0 {
			return "", false
		}

		return neighbors[rng.Intn(len(neighbors))], true
	}

	weights := attractions(g, field, current, candidates, alpha, beta)
	idx := pickWeighted(rng, weights)
	if idx < 0 {
		idx = rng.Intn(len(candidates))
	}

	return candidates[idx], true
}

// attractions computes the selection weight of each candidate c from
// current: pheromone^alpha × heuristic^beta, where the heuristic is the
// inverse of the direct edge distance (∞ when the edge is missing, which
// zeroes the weight for any beta > 0).
func attractions(g *graph.Graph, field *Field, current string, candidates []string, alpha, beta float64) []float64 {
	weights := make([]float64, len(candidates))
	for i, c := range candidates {
		pheromone := math.Pow(field.At(current, c), alpha)

		edgeDistance := math.Inf(1)
		if w, err := g.Weight(current, c); err == nil {
			edgeDistance = w
		}
		heuristic := math.Pow(1/edgeDistance, beta)

		w := pheromone * heuristic
		if math.IsNaN(w) { // 0 × ∞ from fully evaporated zero-cost edges
			w = 0
		}
		weights[i] = w
	}

	return weights
}

// intersect returns the members of ordered that are present in set,
// preserving order (keeps candidate scanning deterministic).
func intersect(ordered []string, set map[string]struct{}) []string {
	out := make([]string, 0, len(ordered))
	for _, id := range ordered {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}

	return out
}

// sortedKeys returns the set's members sorted ascending.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
