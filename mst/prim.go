package mst

import (
	"github.com/katalvlaran/coregraph/heap"
	"github.com/katalvlaran/coregraph/indexgraph"
)

// Prim grows a spanning forest from root (and from each unvisited vertex
// thereafter, to cover disconnected components) using a heap.Heap of
// candidate edges keyed by edge weight: every edge from a newly added vertex
// to an outside vertex is inserted as its own entry, and entries whose far
// end is already in the tree are skipped on extraction. DecreaseKey is not
// used, so the running time is O(m log n) with every heap backend. Grounded
// on prim_kruskal/prim.go's heap-of-candidate-edges shape.
func Prim(g indexgraph.IndexGraph, w Weights, root int, kind heap.Kind) (*Result, error) {
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	n := g.N()
	if root < 0 || root >= n {
		return nil, ErrNoSuchRoot
	}

	res := &Result{}
	inTree := make([]bool, n)
	order := append([]int{root}, otherVertices(n, root)...)
	for _, start := range order {
		if inTree[start] {
			continue
		}
		growFrom(g, w, start, kind, inTree, res)
	}
	return res, nil
}

func growFrom(g indexgraph.IndexGraph, w Weights, start int, kind heap.Kind, inTree []bool, res *Result) {
	less := func(a, b float64) bool { return a < b }
	pq := heap.Build[float64, [2]int](kind, less) // value = [edge, otherVertex]

	inTree[start] = true
	pushEdges(g, w, start, pq, inTree)

	for pq.Len() > 0 {
		wt, payload, ok := pq.ExtractMin()
		if !ok {
			break
		}
		e, v := payload[0], payload[1]
		if inTree[v] {
			continue
		}
		inTree[v] = true
		res.Edges = append(res.Edges, e)
		res.TotalWeight += wt
		pushEdges(g, w, v, pq, inTree)
	}
}

func pushEdges(g indexgraph.IndexGraph, w Weights, u int, pq heap.Heap[float64, [2]int], inTree []bool) {
	for _, e := range g.OutEdges(u) {
		v := otherEndpoint(g, int(e), u)
		if inTree[v] {
			continue
		}
		pq.Insert(w.Weight(int(e)), [2]int{int(e), v})
	}
}

func otherEndpoint(g indexgraph.IndexGraph, e, u int) int {
	if s := g.EdgeSource(e); s != u {
		return s
	}
	return g.EdgeTarget(e)
}

func otherVertices(n, skip int) []int {
	out := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != skip {
			out = append(out, v)
		}
	}
	return out
}
