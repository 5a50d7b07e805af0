package sssp

import (
	"math"

	"github.com/katalvlaran/coregraph/indexgraph"
)

// BellmanFord computes shortest paths from source under arbitrary (possibly
// negative) weights: relaxes every edge n-1 times, then runs one more pass
// to find any edge still relaxable, whose endpoint (and everything
// reachable from it) is marked distance -Inf.
func BellmanFord(g indexgraph.IndexGraph, w Weights, source int) (*Result, error) {
	n := g.N()
	if source < 0 || source >= n {
		return nil, ErrNoSuchSource
	}
	res := newResult(n, source)
	edges := collectDirectedEdges(g)

	for i := 0; i < n-1; i++ {
		changed := false
		for _, ee := range edges {
			if res.dist[ee.u] == math.Inf(1) {
				continue
			}
			cand := res.dist[ee.u] + w.Weight(ee.e)
			if cand < res.dist[ee.v] {
				res.dist[ee.v] = cand
				res.parent[ee.v] = ee.u
				res.backEdge[ee.v] = ee.e
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	onCycle := make([]bool, n)
	for _, ee := range edges {
		if res.dist[ee.u] == math.Inf(1) {
			continue
		}
		if res.dist[ee.u]+w.Weight(ee.e) < res.dist[ee.v] {
			onCycle[ee.v] = true
		}
	}
	propagateNegativeInfinity(g, onCycle)
	for v := 0; v < n; v++ {
		if onCycle[v] {
			res.dist[v] = math.Inf(-1)
		}
	}
	if hasAny(onCycle) {
		return res, ErrNegativeCycle
	}
	return res, nil
}

type directedEdge struct{ u, v, e int }

// collectDirectedEdges enumerates every (u,v,e) traversal direction: for a
// directed graph, each edge once (u -> v); for undirected, both directions,
// since relaxation must consider either endpoint as the source.
func collectDirectedEdges(g indexgraph.IndexGraph) []directedEdge {
	n := g.N()
	var out []directedEdge
	for u := 0; u < n; u++ {
		for _, e := range g.OutEdges(u) {
			v := otherEndpoint(g, int(e), u)
			out = append(out, directedEdge{u: u, v: v, e: int(e)})
		}
	}
	return out
}

// propagateNegativeInfinity spreads the -Inf marking from onCycle's seed
// vertices to everything reachable from them, via plain BFS over the
// marked set.
func propagateNegativeInfinity(g indexgraph.IndexGraph, onCycle []bool) {
	queue := make([]int, 0, len(onCycle))
	for v, marked := range onCycle {
		if marked {
			queue = append(queue, v)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range g.OutEdges(u) {
			v := otherEndpoint(g, int(e), u)
			if !onCycle[v] {
				onCycle[v] = true
				queue = append(queue, v)
			}
		}
	}
}

func hasAny(flags []bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}
