// Package dijkstra_test contains unit tests for the single-pair shortest
// path search: validation sentinels, known-graph paths, directedness,
// unreachable targets, and the trivial source==target case.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmpath/antcolony/dijkstra"
	"github.com/swarmpath/antcolony/graph"
)

// diamond builds:
//
//	A→B(1), B→D(1), A→C(4), C→D(1), A→D(5)
//
// so the cheapest A→D path is A,B,D with weight 2.
func diamond(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"A", "B", 1}, {"B", "D", 1}, {"A", "C", 4}, {"C", "D", 1}, {"A", "D", 5},
	} {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}

	return g
}

func TestPath_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Path(nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestPath_NodeNotFound(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))

	_, _, err := dijkstra.Path(g, "X", "A")
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	_, _, err = dijkstra.Path(g, "A", "X")
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}

func TestPath_SourceEqualsTarget(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))

	path, w, err := dijkstra.Path(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
	assert.Zero(t, w)
}

func TestPath_PicksCheapestRoute(t *testing.T) {
	g := diamond(t)

	path, w, err := dijkstra.Path(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path)
	assert.Equal(t, 2.0, w)
}

func TestPath_RespectsDirection(t *testing.T) {
	// Edges only point forward; walking backwards must fail.
	g := diamond(t)

	_, _, err := dijkstra.Path(g, "D", "A")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestPath_Unreachable(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddNode("Z"))

	_, _, err := dijkstra.Path(g, "A", "Z")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestPath_ZeroWeightEdges(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	path, w, err := dijkstra.Path(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
	assert.Zero(t, w)
}

func TestPath_LongChainBeatsExpensiveShortcut(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "E", 10))
	chain := []string{"A", "B", "C", "D", "E"}
	for i := 0; i+1 < len(chain); i++ {
		require.NoError(t, g.AddEdge(chain[i], chain[i+1], 2))
	}

	path, w, err := dijkstra.Path(g, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, chain, path)
	assert.Equal(t, 8.0, w)
}
