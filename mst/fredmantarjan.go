package mst

import (
	"github.com/katalvlaran/coregraph/heap"
	"github.com/katalvlaran/coregraph/indexgraph"
)

// FredmanTarjan computes a minimum spanning forest via Prim's algorithm
// pinned to the Fibonacci heap backend. Prim inserts one heap entry per
// candidate edge and does not call DecreaseKey, so this runs in O(m log n),
// not Fredman and Tarjan's O(m + n log n) bound.
func FredmanTarjan(g indexgraph.IndexGraph, w Weights, root int) (*Result, error) {
	return Prim(g, w, root, heap.Fibonacci)
}
