package facade

import (
	"github.com/katalvlaran/coregraph/heap"
	"github.com/katalvlaran/coregraph/indexgraph"
	"github.com/katalvlaran/coregraph/mst"
	"github.com/katalvlaran/coregraph/sssp"
)

// SSSPAlgorithm names one of the sssp package's four single-source
// shortest-path algorithms.
type SSSPAlgorithm int

const (
	Dijkstra SSSPAlgorithm = iota
	Dial
	BellmanFord
	Dag
)

// SSSP dispatches to the requested single-source shortest-path algorithm.
// Dijkstra is the default (and the only one that honors opts, since it is
// the only algorithm parameterized by a heap backend); Dial derives its
// bucket count from the largest edge weight anywhere in g rather than
// asking the caller for one, since that bound is cheap to compute and the
// dispatch contract is uniform across algorithms.
func SSSP(algo SSSPAlgorithm, g indexgraph.IndexGraph, w sssp.Weights, source int, opts ...sssp.Option) (*sssp.Result, error) {
	switch algo {
	case Dial:
		return sssp.Dial(g, w, source, maxIntWeight(g, w))
	case BellmanFord:
		return sssp.BellmanFord(g, w, source)
	case Dag:
		return sssp.Dag(g, w, source)
	default:
		return sssp.Dijkstra(g, w, source, opts...)
	}
}

// maxIntWeight scans every edge weight in g and returns the largest, each
// converted with int() (a fractional part is truncated; Dial itself rejects
// non-integer weights), for use as Dial's bucket-count bound.
// Returns 0 for an edgeless graph.
func maxIntWeight(g indexgraph.IndexGraph, w sssp.Weights) int {
	maxW := 0
	for v := 0; v < g.N(); v++ {
		for _, e := range g.OutEdges(v) {
			if wt := int(w.Weight(int(e))); wt > maxW {
				maxW = wt
			}
		}
	}
	return maxW
}

// MSTAlgorithm names one of the mst package's five minimum-spanning-forest
// algorithms.
type MSTAlgorithm int

const (
	Kruskal MSTAlgorithm = iota
	Prim
	Boruvka
	Yao
	FredmanTarjan
)

// MST dispatches to the requested minimum-spanning-forest algorithm. Prim
// and FredmanTarjan need a starting vertex; root is ignored by the others.
// kind selects Prim's heap backend (ignored by every other algorithm,
// including FredmanTarjan, which pins Fibonacci by construction).
func MST(algo MSTAlgorithm, g indexgraph.IndexGraph, w mst.Weights, root int, kind heap.Kind) (*mst.Result, error) {
	switch algo {
	case Prim:
		return mst.Prim(g, w, root, kind)
	case Boruvka:
		return mst.Boruvka(g, w)
	case Yao:
		return mst.Yao(g, w)
	case FredmanTarjan:
		return mst.FredmanTarjan(g, w, root)
	default:
		return mst.Kruskal(g, w)
	}
}

// HeapBuilder wraps a heap.Kind so callers can pick a referenceable-heap
// backend by value and construct it later, the same split Prim/Dijkstra use
// internally between selecting a backend and building one. Go methods
// cannot be generic, so construction is a free function (Build) rather
// than a method on HeapBuilder.
type HeapBuilder heap.Kind

// Builder returns a HeapBuilder for kind.
func Builder(kind heap.Kind) HeapBuilder { return HeapBuilder(kind) }

// Build constructs an empty heap of b's kind, ordered by less.
func Build[K any, V any](b HeapBuilder, less heap.LessFunc[K]) heap.Heap[K, V] {
	return heap.Build[K, V](heap.Kind(b), less)
}
