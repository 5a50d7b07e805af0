package converters_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coregraph/converters"
	"github.com/katalvlaran/coregraph/indexgraph"
)

// weightedEdge is a structural snapshot of one edge, comparable across an
// IndexGraph and its gonum round-trip regardless of edge-index reordering.
type weightedEdge struct {
	From, To int
	Weight   float64
}

func snapshotEdges(t *testing.T, g indexgraph.IndexGraph) []weightedEdge {
	t.Helper()
	w, err := g.GetEdgesWeightsFloat("weight")
	require.NoError(t, err)
	out := make([]weightedEdge, 0, g.M())
	for v := 0; v < g.N(); v++ {
		for _, e := range g.OutEdges(v) {
			ei := int(e)
			if g.EdgeSource(ei) != v {
				continue // undirected: count each edge once, from its source side
			}
			out = append(out, weightedEdge{From: v, To: g.EdgeTarget(ei), Weight: w.Get(ei)})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

func buildDirected(t *testing.T) indexgraph.IndexGraph {
	t.Helper()
	g := indexgraph.NewDirected()
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	w, err := g.AddEdgesWeightsFloat("weight")
	require.NoError(t, err)

	e, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	w.Set(e, 2.5)

	e, err = g.AddEdge(1, 2)
	require.NoError(t, err)
	w.Set(e, 1.0)

	e, err = g.AddEdge(0, 3)
	require.NoError(t, err)
	w.Set(e, 4.0)

	return g
}

func TestToGonum_Directed(t *testing.T) {
	ig := buildDirected(t)

	g, err := converters.ToGonum(ig)
	require.NoError(t, err)

	wv, ok := g.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, 2.5, wv)

	wv, ok = g.Weight(1, 2)
	require.True(t, ok)
	require.Equal(t, 1.0, wv)

	_, ok = g.Weight(2, 1) // reverse direction must not exist
	require.False(t, ok)
}

func TestFromGonum_Directed(t *testing.T) {
	ig := buildDirected(t)

	gw, err := converters.ToGonum(ig)
	require.NoError(t, err)

	back, err := converters.FromGonum(gw)
	require.NoError(t, err)

	require.Equal(t, ig.N(), back.N())
	require.Equal(t, ig.M(), back.M())
	require.True(t, back.Directed())

	weights, err := back.GetEdgesWeightsFloat("weight")
	require.NoError(t, err)

	foundOneToTwo := false
	for _, e := range back.OutEdges(1) {
		if back.EdgeTarget(int(e)) == 2 {
			foundOneToTwo = true
			require.Equal(t, 1.0, weights.Get(int(e)))
		}
	}
	require.True(t, foundOneToTwo)

	if diff := cmp.Diff(snapshotEdges(t, ig), snapshotEdges(t, back)); diff != "" {
		t.Errorf("round trip changed edge set (-want +got):\n%s", diff)
	}
}

func TestToGonum_UndirectedCollapsesMultiEdges(t *testing.T) {
	g := indexgraph.NewUndirected()
	for i := 0; i < 2; i++ {
		g.AddVertex()
	}
	w, err := g.AddEdgesWeightsFloat("weight")
	require.NoError(t, err)
	e1, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	w.Set(e1, 1.0)
	e2, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	w.Set(e2, 9.0)

	gw, err := converters.ToGonum(g)
	require.NoError(t, err)
	wv, ok := gw.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, 9.0, wv) // last-written edge wins on the simple-graph target
}

func TestFromGonum_NilGraph(t *testing.T) {
	_, err := converters.FromGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)
}

func TestToGonum_NilGraph(t *testing.T) {
	_, err := converters.ToGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)
}
