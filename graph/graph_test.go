// Package graph_test validates construction, deterministic ordering, and
// sentinel errors of the directed weighted graph.
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmpath/antcolony/graph"
)

func TestAddNode_EmptyID(t *testing.T) {
	g := graph.New()
	require.ErrorIs(t, g.AddNode(""), graph.ErrEmptyNodeID)
	require.Equal(t, 0, g.NodeCount())
}

func TestAddNode_Idempotent(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("A"))
	assert.Equal(t, 1, g.NodeCount())
	assert.True(t, g.HasNode("A"))
}

func TestAddEdge_CreatesEndpoints(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B", 2.5))

	assert.True(t, g.HasNode("A"))
	assert.True(t, g.HasNode("B"))
	assert.True(t, g.HasEdge("A", "B"))
	// Directed: the reverse edge must not appear.
	assert.False(t, g.HasEdge("B", "A"))

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)
}

func TestAddEdge_OverwritesWeight(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "B", 7))

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 7.0, w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_Validation(t *testing.T) {
	g := graph.New()
	require.ErrorIs(t, g.AddEdge("", "B", 1), graph.ErrEmptyNodeID)
	require.ErrorIs(t, g.AddEdge("A", "A", 1), graph.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge("A", "B", -0.5), graph.ErrNegativeWeight)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestWeight_MissingEdge(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B", 1))

	_, err := g.Weight("B", "A")
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)
	_, err = g.Weight("X", "Y")
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)
}

func TestNodes_SortedAscending(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"c", "a", "d", "b"} {
		require.NoError(t, g.AddNode(id))
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Nodes())
}

func TestNeighbors_SortedAndDirected(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "c", 1))
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "a", 1))

	ns, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ns)

	ns, err = g.Neighbors("c")
	require.NoError(t, err)
	assert.Empty(t, ns)

	_, err = g.Neighbors("zz")
	require.ErrorIs(t, err, graph.ErrNodeNotFound)
}
