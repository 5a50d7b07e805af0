package facade_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coregraph/facade"
	"github.com/katalvlaran/coregraph/heap"
	"github.com/katalvlaran/coregraph/indexgraph"
	"github.com/katalvlaran/coregraph/maxflow"
	"github.com/katalvlaran/coregraph/mst"
	"github.com/katalvlaran/coregraph/sssp"
)

func buildChainDirected(t *testing.T) (indexgraph.IndexGraph, sssp.Weights) {
	t.Helper()
	g := indexgraph.NewDirected()
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	e0, _ := g.AddEdge(0, 1)
	e1, _ := g.AddEdge(1, 2)
	weight := map[int]float64{e0: 2, e1: 3}
	return g, sssp.WeightFunc(func(e int) float64 { return weight[e] })
}

func TestSSSP_DispatchesEachAlgorithm(t *testing.T) {
	for _, algo := range []facade.SSSPAlgorithm{facade.Dijkstra, facade.Dial, facade.BellmanFord, facade.Dag} {
		g, w := buildChainDirected(t)
		res, err := facade.SSSP(algo, g, w, 0)
		require.NoError(t, err)
		require.InDelta(t, 5, res.Distance(2), 1e-9)
	}
}

func buildTriangleUndirected(t *testing.T) (indexgraph.IndexGraph, mst.Weights) {
	t.Helper()
	g := indexgraph.NewUndirected()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	eAB, _ := g.AddEdge(a, b)
	eBC, _ := g.AddEdge(b, c)
	eAC, _ := g.AddEdge(a, c)
	weight := map[int]float64{eAB: 1, eBC: 2, eAC: 4}
	return g, mst.WeightFunc(func(e int) float64 { return weight[e] })
}

func TestMST_DispatchesEachAlgorithm(t *testing.T) {
	for _, algo := range []facade.MSTAlgorithm{facade.Kruskal, facade.Prim, facade.Boruvka, facade.Yao, facade.FredmanTarjan} {
		g, w := buildTriangleUndirected(t)
		res, err := facade.MST(algo, g, w, 0, heap.Binary)
		require.NoError(t, err)
		require.InDelta(t, 3, res.TotalWeight, 1e-9)
	}
}

func buildDiamondDirected(t *testing.T) (indexgraph.IndexGraph, maxflow.Capacities, int, int) {
	t.Helper()
	g := indexgraph.NewDirected()
	s, a, b, sink := g.AddVertex(), g.AddVertex(), g.AddVertex(), g.AddVertex()
	capacities := map[int]float64{}
	add := func(u, v int, c float64) {
		e, _ := g.AddEdge(u, v)
		capacities[e] = c
	}
	add(s, a, 3)
	add(s, b, 2)
	add(a, b, 1)
	add(a, sink, 2)
	add(b, sink, 3)
	return g, maxflow.CapacityFunc(func(e int) float64 { return capacities[e] }), s, sink
}

func TestMaxFlow_DispatchesEachAlgorithm(t *testing.T) {
	algos := []facade.MaxFlowAlgorithm{
		facade.EdmondsKarp, facade.Dinic, facade.DinicDynamicTrees,
		facade.PushRelabel, facade.PushRelabelDynamicTrees,
	}
	for _, algo := range algos {
		g, cap, s, sink := buildDiamondDirected(t)
		res, err := facade.MaxFlow(algo, g, cap, s, sink, maxflow.FIFO)
		require.NoError(t, err)
		require.InDelta(t, 5, res.Value, 1e-9)
	}
}

func TestBuilder_ConstructsRequestedKind(t *testing.T) {
	for _, kind := range []heap.Kind{heap.Binary, heap.Binomial, heap.Fibonacci, heap.Pairing, heap.Treap} {
		b := facade.Builder(kind)
		h := facade.Build[float64, string](b, func(a, c float64) bool { return a < c })
		h.Insert(1.0, "one")
		h.Insert(0.5, "half")
		_, _, v, ok := h.FindMin()
		require.True(t, ok)
		require.Equal(t, "half", v)
	}
}
