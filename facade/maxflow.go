package facade

import (
	"github.com/katalvlaran/coregraph/indexgraph"
	"github.com/katalvlaran/coregraph/maxflow"
)

// MaxFlowAlgorithm names one of the maxflow package's augmenting-path and
// preflow-push algorithms.
type MaxFlowAlgorithm int

const (
	EdmondsKarp MaxFlowAlgorithm = iota
	Dinic
	DinicDynamicTrees
	PushRelabel
	PushRelabelDynamicTrees
)

// MaxFlow builds a residual Network from g and cap, then dispatches to the
// requested algorithm. strategy only affects PushRelabel (the other four
// algorithms ignore it); it selects which active vertex push-relabel
// discharges next (see maxflow.Strategy).
func MaxFlow(algo MaxFlowAlgorithm, g indexgraph.IndexGraph, cap maxflow.Capacities, source, sink int, strategy maxflow.Strategy) (*maxflow.Result, error) {
	net, err := maxflow.BuildNetwork(g, cap)
	if err != nil {
		return nil, err
	}

	switch algo {
	case Dinic:
		return maxflow.Dinic(net, source, sink)
	case DinicDynamicTrees:
		return maxflow.DinicWithDynamicTrees(net, source, sink)
	case PushRelabel:
		return maxflow.PushRelabel(net, source, sink, strategy)
	case PushRelabelDynamicTrees:
		return maxflow.PushRelabelWithDynamicTrees(net, source, sink)
	default:
		return maxflow.EdmondsKarp(net, source, sink)
	}
}
