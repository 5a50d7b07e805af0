package idgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddVertexAndEdge(t *testing.T) {
	g := NewDirected()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.ErrorIs(t, g.AddVertex("a"), ErrVertexExists)

	eid, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	require.Equal(t, 2, g.N())
	require.Equal(t, 1, g.M())

	from, to, err := g.EdgeEndpoints(eid)
	require.NoError(t, err)
	require.Equal(t, "a", from)
	require.Equal(t, "b", to)

	neighbors, err := g.Neighbors("a")
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, neighbors)
}

func TestAddEdge_RejectsUnknownVertex(t *testing.T) {
	g := NewDirected()
	require.NoError(t, g.AddVertex("a"))
	_, err := g.AddEdge("a", "missing")
	require.ErrorIs(t, err, ErrVertexNotFound)
}

func TestRemoveVertex_KeepsBijectionConsistent(t *testing.T) {
	g := NewUndirected()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("c"))
	_, err := g.AddEdge("a", "c")
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex("a"))
	require.False(t, g.HasVertex("a"))
	require.True(t, g.HasVertex("b"))
	require.True(t, g.HasVertex("c"))
	require.Equal(t, 2, g.N())

	idx, ok := g.IndexOf("c")
	require.True(t, ok)
	id, ok := g.IDAt(idx)
	require.True(t, ok)
	require.Equal(t, "c", id)
}

func TestRemoveEdge(t *testing.T) {
	g := NewDirected()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	eid, err := g.AddEdge("a", "b")
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(eid))
	require.Equal(t, 0, g.M())
	require.ErrorIs(t, g.RemoveEdge(eid), ErrEdgeNotFound)
}

func TestAddVertexAuto_GeneratesUniqueIDs(t *testing.T) {
	g := NewAutoID()
	a := g.AddVertexAuto()
	b := g.AddVertexAuto()
	require.NotEqual(t, a, b)
	require.True(t, g.HasVertex(a))
	require.True(t, g.HasVertex(b))
}

func TestVertices_SortedOrder(t *testing.T) {
	g := NewDirected()
	require.NoError(t, g.AddVertex("charlie"))
	require.NoError(t, g.AddVertex("alice"))
	require.NoError(t, g.AddVertex("bob"))
	require.Equal(t, []string{"alice", "bob", "charlie"}, g.Vertices())
}
