package tsp

import (
	"sort"

	"github.com/katalvlaran/coregraph/indexgraph"
	"github.com/katalvlaran/coregraph/mst"
)

// Approximate computes an MST-based 2-approximate Hamiltonian cycle over g,
// rooted at root. g must be undirected, connected, and (for the 2x
// guarantee) complete with a metric weight w: every pair of vertices
// visited consecutively by the preorder walk must have a direct edge in g,
// since the tour never consults any edge outside g's own adjacency.
func Approximate(g indexgraph.IndexGraph, w Weights, root int) (*Result, error) {
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	n := g.N()
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if root < 0 || root >= n {
		return nil, ErrNoSuchRoot
	}
	if n == 1 {
		return &Result{Tour: []int{root, root}, Cost: 0}, nil
	}

	tree, err := mst.Kruskal(g, mst.WeightFunc(func(e int) float64 { return w.Weight(e) }))
	if err != nil {
		return nil, err
	}

	children := make([][]int, n)
	for _, e := range tree.Edges {
		u, v := g.EdgeSource(e), g.EdgeTarget(e)
		children[u] = append(children[u], v)
		children[v] = append(children[v], u)
	}
	for _, ch := range children {
		sort.Ints(ch)
	}

	order := make([]int, 0, n)
	visited := make([]bool, n)
	var walk func(u int)
	walk = func(u int) {
		visited[u] = true
		order = append(order, u)
		for _, v := range children[u] {
			if !visited[v] {
				walk(v)
			}
		}
	}
	walk(root)

	if len(order) != n {
		return nil, ErrDisconnected
	}

	tour := append(order, root)
	cost := 0.0
	for i := 0; i+1 < len(tour); i++ {
		e, ok := edgeBetween(g, tour[i], tour[i+1])
		if !ok {
			return nil, ErrDisconnected
		}
		cost += w.Weight(e)
	}

	return &Result{Tour: tour, Cost: cost}, nil
}

// edgeBetween scans u's incident edges for one touching v, returning its
// index. On a multigraph the first match wins; callers needing a specific
// parallel edge should prefer a complete simple graph as input.
func edgeBetween(g indexgraph.IndexGraph, u, v int) (int, bool) {
	for _, e := range g.OutEdges(u) {
		ei := int(e)
		if g.EdgeSource(ei) == v || g.EdgeTarget(ei) == v {
			return ei, true
		}
	}
	return 0, false
}
