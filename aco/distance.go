package aco

import (
	"math"

	"github.com/swarmpath/antcolony/graph"
)

// RouteDistance sums the weight of each directed edge between consecutive
// nodes of the route, first to last, with no wrap-around. It returns
// +Inf as soon as any consecutive pair is not a real edge of g: the
// route is then unreachable for scoring purposes, even if partially
// walkable. Routes shorter than two nodes score 0.
//
// Pure function of (g, route); the solver and the elite archive both rely
// on that.
//
// Complexity: O(len(route)).
func RouteDistance(g *graph.Graph, route Route) float64 {
	var total float64
	for i := 0; i+1 < len(route); i++ {
		w, err := g.Weight(route[i], route[i+1])
		if err != nil {
			return math.Inf(1)
		}
		total += w
	}

	return total
}
