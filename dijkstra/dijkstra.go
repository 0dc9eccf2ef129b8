package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/swarmpath/antcolony/graph"
)

// Sentinel errors returned by Path.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to Path.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source or target node does not
	// exist in the provided graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path between nodes")
)

// Path computes the cheapest path from source to target in g.
//
// Returns:
//
//   - path: node IDs from source to target inclusive; for source==target
//     this is the single-element path with weight 0.
//   - weight: total weight of the returned path.
//   - err: ErrNilGraph, ErrNodeNotFound, or ErrNoPath.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Path(g *graph.Graph, source, target string) ([]string, float64, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, 0, fmt.Errorf("%w: %q", ErrNodeNotFound, source)
	}
	if !g.HasNode(target) {
		return nil, 0, fmt.Errorf("%w: %q", ErrNodeNotFound, target)
	}

	// 2) Trivial case: source is the target.
	if source == target {
		return []string{source}, 0, nil
	}

	// 3) Prepare search state.
	n := g.NodeCount()
	r := &runner{
		g:       g,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 4) Run the search; stop once target is finalized.
	if err := r.search(source, target); err != nil {
		return nil, 0, err
	}

	// 5) Reconstruct the path from the predecessor map.
	total, ok := r.dist[target]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s→%s", ErrNoPath, source, target)
	}

	return r.reconstruct(source, target), total, nil
}

// runner holds the mutable state for a single shortest-path search.
type runner struct {
	g       *graph.Graph       // input graph; read-only here
	dist    map[string]float64 // node ID → best known distance from source
	prev    map[string]string  // node ID → predecessor on the best path
	visited map[string]bool    // node ID → distance finalized
	pq      nodePQ             // min-heap with lazy decrease-key
}

// search runs the main loop from source until target is finalized or the
// heap drains. Missing dist[target] afterwards means unreachable.
func (r *runner) search(source, target string) error {
	heap.Init(&r.pq)
	r.dist[source] = 0
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries (lazy decrease-key).
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		// Target finalized: its distance is now minimal.
		if u == target {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve distances to all out-neighbors of u.
// Assumes dist[u] is final when called.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	var (
		v       string
		w       float64
		newDist float64
	)
	for _, v = range neighbors {
		w, err = r.g.Weight(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: weight %s→%s: %w", u, v, err)
		}

		newDist = r.dist[u] + w
		cur, seen := r.dist[v]
		if seen && newDist >= cur {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// reconstruct walks the predecessor chain target→source and reverses it.
func (r *runner) reconstruct(source, target string) []string {
	path := []string{target}
	for cur := target; cur != source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem pairs a node with its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
