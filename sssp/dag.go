package sssp

import (
	"math"

	"github.com/katalvlaran/coregraph/dfs"
	"github.com/katalvlaran/coregraph/indexgraph"
)

// Dag computes shortest paths from source on a directed acyclic graph by
// running dfs.TopologicalSort once, then relaxing every vertex's outgoing
// edges in that order: a single O(n+m) pass, since no vertex's distance can
// improve once all its predecessors are settled.
func Dag(g indexgraph.IndexGraph, w Weights, source int) (*Result, error) {
	n := g.N()
	if source < 0 || source >= n {
		return nil, ErrNoSuchSource
	}
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, ErrNotDAG
	}

	res := newResult(n, source)
	for _, u := range order {
		if res.dist[u] == math.Inf(1) {
			continue
		}
		for _, e := range g.OutEdges(u) {
			if g.EdgeSource(int(e)) != u {
				continue
			}
			v := g.EdgeTarget(int(e))
			cand := res.dist[u] + w.Weight(int(e))
			if cand < res.dist[v] {
				res.dist[v] = cand
				res.parent[v] = u
				res.backEdge[v] = int(e)
			}
		}
	}
	return res, nil
}
