package mst

import (
	"sort"

	"github.com/katalvlaran/coregraph/indexgraph"
	"github.com/katalvlaran/coregraph/unionfind"
)

// Yao computes a minimum spanning forest with the same round/contract
// structure as Boruvka, but partitions each vertex's incident edges into a
// once-sorted list up front: a component's cheapest leaving edge is then
// the first not-yet-internal entry in each member vertex's list, so later
// rounds resume scanning where the previous round left off instead of
// rescanning every edge. This is Yao's refinement of Boruvka's per-round
// edge scan.
func Yao(g indexgraph.IndexGraph, w Weights) (*Result, error) {
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	n := g.N()
	sorted := make([][]int32, n)
	cursor := make([]int, n)
	for v := 0; v < n; v++ {
		edges := append([]int32(nil), g.OutEdges(v)...)
		sort.Slice(edges, func(i, j int) bool { return w.Weight(int(edges[i])) < w.Weight(int(edges[j])) })
		sorted[v] = edges
	}

	dsu := unionfind.New(n)
	res := &Result{}

	for dsu.Components() > 1 {
		cheapest := make(map[int]int)
		for v := 0; v < n; v++ {
			rv := dsu.Find(v)
			for cursor[v] < len(sorted[v]) {
				e := int(sorted[v][cursor[v]])
				u2 := otherEndpoint(g, e, v)
				if dsu.Find(u2) == rv {
					cursor[v]++ // internal edge, permanently skippable
					continue
				}
				if cur, ok := cheapest[rv]; !ok || w.Weight(e) < w.Weight(cur) {
					cheapest[rv] = e
				}
				break
			}
		}
		if len(cheapest) == 0 {
			break
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
