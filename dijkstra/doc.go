// Package dijkstra implements single-pair shortest paths by total weight
// on the directed weighted graph from package graph.
//
// Path computes the minimum-cost node sequence from one node to another
// using a min-heap priority queue with the lazy decrease-key strategy:
// improved distances push duplicate heap entries, and stale entries are
// skipped when popped. The search stops as soon as the target is
// finalized, so partial explorations stay cheap on large graphs.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E)
//
// Non-negative weights are an invariant of graph.Graph (AddEdge rejects
// negatives), so no pre-scan is performed here.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrNodeNotFound  if the source or target node does not exist.
//	– ErrNoPath        if the target is unreachable from the source.
package dijkstra
