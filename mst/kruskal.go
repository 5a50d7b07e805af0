package mst

import (
	"sort"

	"github.com/katalvlaran/coregraph/indexgraph"
	"github.com/katalvlaran/coregraph/unionfind"
)

// Kruskal computes a minimum spanning forest by sorting all edges by
// weight (stable on ties by edge index, for the same edges-in-ID-order
// determinism the rest of this module relies on) and adding each edge
// whose endpoints union-find reports as still disconnected.
func Kruskal(g indexgraph.IndexGraph, w Weights) (*Result, error) {
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	n := g.N()
	edges := allEdgeIDs(g)
	sort.Ints(edges) // ID order first, so the stable sort breaks ties by edge index
	sort.SliceStable(edges, func(i, j int) bool {
		return w.Weight(edges[i]) < w.Weight(edges[j])
	})

	dsu := unionfind.New(n)
	res := &Result{}
	for _, e := range edges {
		u, v := g.EdgeSource(e), g.EdgeTarget(e)
		if u == v {
			continue // self-loop can never help a spanning tree
		}
		if dsu.Union(u, v) {
			res.Edges = append(res.Edges, e)
			res.TotalWeight += w.Weight(e)
		}
	}
	return res, nil
}

// allEdgeIDs enumerates every edge id [0, g.M()) by scanning out-adjacency,
// deduplicating the pair each undirected edge appears under for both of
// its endpoints.
func allEdgeIDs(g indexgraph.IndexGraph) []int {
	seen := make(map[int]bool)
	var out []int
	n := g.N()
	for u := 0; u < n; u++ {
		for _, e := range g.OutEdges(u) {
			if !seen[int(e)] {
				seen[int(e)] = true
				out = append(out, int(e))
			}
		}
	}
	return out
}
