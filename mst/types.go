// Package mst implements a minimum-spanning-tree family (Kruskal, Prim,
// Boruvka, Yao, Fredman-Tarjan) over an undirected indexgraph.IndexGraph,
// returning a spanning forest (one tree per connected component) rather
// than erroring on disconnected input, since none of these algorithms
// require full connectivity to produce a well-defined result.
package mst

import "errors"

// ErrDirectedGraph is returned when g.Directed() is true: MST is defined
// only for undirected graphs.
var ErrDirectedGraph = errors.New("mst: graph must be undirected")

// ErrNoSuchRoot is returned by Prim when root is outside [0, g.N()).
var ErrNoSuchRoot = errors.New("mst: root vertex out of range")

// Weights gives the weight of edge e.
type Weights interface {
	Weight(e int) float64
}

// WeightFunc adapts a plain function to Weights.
type WeightFunc func(e int) float64

// Weight implements Weights.
func (f WeightFunc) Weight(e int) float64 { return f(e) }

// Result holds a minimum spanning forest: one or more trees, one per
// connected component of the input graph.
type Result struct {
	Edges       []int
	TotalWeight float64
}
