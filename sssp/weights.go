package sssp

import "github.com/katalvlaran/coregraph/indexgraph"

// ColumnWeights adapts an edge-domain float64 Column to Weights.
type ColumnWeights struct{ col *indexgraph.Column[float64] }

// NewColumnWeights wraps col (typically built via
// IndexGraph.AddEdgesWeightsFloat) as a Weights source.
func NewColumnWeights(col *indexgraph.Column[float64]) ColumnWeights {
	return ColumnWeights{col: col}
}

// Weight implements Weights.
func (c ColumnWeights) Weight(e int) float64 { return c.col.Get(e) }
