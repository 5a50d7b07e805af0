package maxflow

import (
	"testing"

	"github.com/katalvlaran/coregraph/indexgraph"
	"github.com/stretchr/testify/require"
)

// buildDiamond builds a diamond network: s,a,b,t with
// s->a=3, s->b=2, a->b=1, a->t=2, b->t=3, whose maximum flow is 5.
func buildDiamond(t *testing.T) (*Network, int, int) {
	t.Helper()
	g := indexgraph.NewDirected()
	s := g.AddVertex()
	a := g.AddVertex()
	b := g.AddVertex()
	sink := g.AddVertex()

	capacities := map[int]float64{}
	add := func(u, v int, c float64) {
		e, err := g.AddEdge(u, v)
		require.NoError(t, err)
		capacities[e] = c
	}
	add(s, a, 3)
	add(s, b, 2)
	add(a, b, 1)
	add(a, sink, 2)
	add(b, sink, 3)

	net, err := BuildNetwork(g, CapacityFunc(func(e int) float64 { return capacities[e] }))
	require.NoError(t, err)
	return net, s, sink
}

func TestEdmondsKarp_Diamond(t *testing.T) {
	net, s, sink := buildDiamond(t)
	result, err := EdmondsKarp(net, s, sink)
	require.NoError(t, err)
	require.Equal(t, 5.0, result.Value)
}

func TestDinic_Diamond(t *testing.T) {
	net, s, sink := buildDiamond(t)
	result, err := Dinic(net, s, sink)
	require.NoError(t, err)
	require.Equal(t, 5.0, result.Value)
}

func TestDinicWithDynamicTrees_Diamond(t *testing.T) {
	net, s, sink := buildDiamond(t)
	result, err := DinicWithDynamicTrees(net, s, sink)
	require.NoError(t, err)
	require.Equal(t, 5.0, result.Value)
}

func TestPushRelabel_Diamond_AllStrategies(t *testing.T) {
	for _, strategy := range []Strategy{FIFO, HighestLabel, LowestLabel, MoveToFront} {
		net, s, sink := buildDiamond(t)
		result, err := PushRelabel(net, s, sink, strategy)
		require.NoError(t, err)
		require.Equal(t, 5.0, result.Value)
	}
}

func TestPushRelabelWithDynamicTrees_Diamond(t *testing.T) {
	net, s, sink := buildDiamond(t)
	result, err := PushRelabelWithDynamicTrees(net, s, sink)
	require.NoError(t, err)
	require.Equal(t, 5.0, result.Value)
}

func TestMaxFlow_RejectsSameSourceSink(t *testing.T) {
	net, s, _ := buildDiamond(t)
	_, err := EdmondsKarp(net, s, s)
	require.ErrorIs(t, err, ErrSameSourceSink)
}

func TestMaxFlow_RejectsOutOfRangeEndpoints(t *testing.T) {
	net, s, sink := buildDiamond(t)
	_, err := Dinic(net, -1, sink)
	require.ErrorIs(t, err, ErrSourceNotFound)
	_, err = Dinic(net, s, 99)
	require.ErrorIs(t, err, ErrSinkNotFound)
}

func TestBuildNetwork_RejectsNegativeCapacity(t *testing.T) {
	g := indexgraph.NewDirected()
	u := g.AddVertex()
	v := g.AddVertex()
	_, err := g.AddEdge(u, v)
	require.NoError(t, err)
	_, err = BuildNetwork(g, CapacityFunc(func(e int) float64 { return -1 }))
	require.ErrorIs(t, err, ErrNegativeCapacity)
}

func TestFlowOnEdge_MatchesPushedAmount(t *testing.T) {
	net, s, sink := buildDiamond(t)
	result, err := Dinic(net, s, sink)
	require.NoError(t, err)
	// edge 0 is s->a with original capacity 3
	flow := result.FlowOnEdge(3, 0)
	require.GreaterOrEqual(t, flow, 0.0)
	require.LessOrEqual(t, flow, 3.0)
}
