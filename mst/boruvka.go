package mst

import (
	"github.com/katalvlaran/coregraph/indexgraph"
	"github.com/katalvlaran/coregraph/unionfind"
)

// Boruvka computes a minimum spanning forest by repeated rounds: each
// surviving component finds its own cheapest edge leaving the component,
// every such edge is added (deduplicated by union-find), and components
// contract. Runs in O(m log n): O(log n) rounds of O(m) work, each round at
// least halving the component count.
func Boruvka(g indexgraph.IndexGraph, w Weights) (*Result, error) {
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	n := g.N()
	edges := allEdgeIDs(g)
	dsu := unionfind.New(n)
	res := &Result{}

	for dsu.Components() > 1 {
		cheapest := make(map[int]int) // component root -> cheapest edge id
		for _, e := range edges {
			u, v := g.EdgeSource(e), g.EdgeTarget(e)
			ru, rv := dsu.Find(u), dsu.Find(v)
			if ru == rv {
				continue
			}
			if cur, ok := cheapest[ru]; !ok || w.Weight(e) < w.Weight(cur) {
				cheapest[ru] = e
			}
			if cur, ok := cheapest[rv]; !ok || w.Weight(e) < w.Weight(cur) {
				cheapest[rv] = e
			}
		}
		if len(cheapest) == 0 {
			break // no component has an outgoing edge: remaining components are isolated
		}
		progressed := false
		for _, e := range cheapest {
			u, v := g.EdgeSource(e), g.EdgeTarget(e)
			if dsu.Union(u, v) {
				res.Edges = append(res.Edges, e)
				res.TotalWeight += w.Weight(e)
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	return res, nil
}
