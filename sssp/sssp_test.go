package sssp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coregraph/indexgraph"
	"github.com/katalvlaran/coregraph/sssp"
)

// buildS1 mirrors spec scenario S1: directed 0,1,2 with e0=(0,1,1.2),
// e1=(1,2,3.1), e2=(0,2,15.1).
func buildS1(t *testing.T) (indexgraph.IndexGraph, sssp.Weights) {
	t.Helper()
	g := indexgraph.NewDirected()
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	e0, _ := g.AddEdge(0, 1)
	e1, _ := g.AddEdge(1, 2)
	e2, _ := g.AddEdge(0, 2)
	weight := map[int]float64{e0: 1.2, e1: 3.1, e2: 15.1}
	w := sssp.WeightFunc(func(e int) float64 { return weight[e] })
	return g, w
}

func TestDijkstra_S1(t *testing.T) {
	g, w := buildS1(t)
	res, err := sssp.Dijkstra(g, w, 0)
	require.NoError(t, err)
	require.InDelta(t, 0, res.Distance(0), 1e-9)
	require.InDelta(t, 1.2, res.Distance(1), 1e-9)
	require.InDelta(t, 4.3, res.Distance(2), 1e-9)
	path, ok := res.PathTo(2)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2}, path)
}

func TestDijkstra_RejectsNegativeWeight(t *testing.T) {
	g := indexgraph.NewDirected()
	g.AddVertex()
	g.AddVertex()
	e, _ := g.AddEdge(0, 1)
	w := sssp.WeightFunc(func(int) float64 { return -1 })
	_ = e
	_, err := sssp.Dijkstra(g, w, 0)
	require.ErrorIs(t, err, sssp.ErrNegativeWeight)
}

func TestBellmanFord_S2_NegativeCycle(t *testing.T) {
	g := indexgraph.NewDirected()
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	e0, _ := g.AddEdge(0, 1)
	e1, _ := g.AddEdge(1, 2)
	e2, _ := g.AddEdge(2, 0)
	weight := map[int]float64{e0: 1, e1: -3, e2: 1}
	w := sssp.WeightFunc(func(e int) float64 { return weight[e] })

	res, err := sssp.BellmanFord(g, w, 0)
	require.ErrorIs(t, err, sssp.ErrNegativeCycle)
	require.True(t, math.IsInf(res.Distance(0), -1))
	require.True(t, math.IsInf(res.Distance(1), -1))
	require.True(t, math.IsInf(res.Distance(2), -1))
}

func TestBellmanFord_AgreesWithDijkstraOnS1(t *testing.T) {
	g, w := buildS1(t)
	res, err := sssp.BellmanFord(g, w, 0)
	require.NoError(t, err)
	require.InDelta(t, 4.3, res.Distance(2), 1e-9)
}

func TestDag_TopologicalRelaxation(t *testing.T) {
	g, w := buildS1(t)
	res, err := sssp.Dag(g, w, 0)
	require.NoError(t, err)
	require.InDelta(t, 4.3, res.Distance(2), 1e-9)
}

func TestDag_RejectsCyclicGraph(t *testing.T) {
	g := indexgraph.NewDirected()
	for i := 0; i < 2; i++ {
		g.AddVertex()
	}
	e0, _ := g.AddEdge(0, 1)
	e1, _ := g.AddEdge(1, 0)
	weight := map[int]float64{e0: 1, e1: 1}
	w := sssp.WeightFunc(func(e int) float64 { return weight[e] })
	_, err := sssp.Dag(g, w, 0)
	require.ErrorIs(t, err, sssp.ErrNotDAG)
}

func TestDial_MatchesDijkstraOnIntegerWeights(t *testing.T) {
	g := indexgraph.NewDirected()
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	e0, _ := g.AddEdge(0, 1)
	e1, _ := g.AddEdge(1, 2)
	weight := map[int]float64{e0: 2, e1: 3}
	w := sssp.WeightFunc(func(e int) float64 { return weight[e] })

	res, err := sssp.Dial(g, w, 0, 3)
	require.NoError(t, err)
	require.InDelta(t, 0, res.Distance(0), 1e-9)
	require.InDelta(t, 2, res.Distance(1), 1e-9)
	require.InDelta(t, 5, res.Distance(2), 1e-9)
}

func TestDial_UnreachableVertexStaysInfinite(t *testing.T) {
	g := indexgraph.NewDirected()
	g.AddVertex()
	g.AddVertex()
	w := sssp.WeightFunc(func(int) float64 { return 1 })
	res, err := sssp.Dial(g, w, 0, 1)
	require.NoError(t, err)
	require.False(t, res.Reachable(1))
}
