// Package matrix provides converters from indexgraph.IndexGraph to simple
// matrix and edge-list representations.
package matrix

import "github.com/katalvlaran/coregraph/indexgraph"

// EdgeListItem is a flat representation of a single edge by vertex index.
type EdgeListItem struct {
	From, To int
	Weight   float64
}

// ToEdgeList returns all edges in ig as a slice of EdgeListItem. A missing
// "weight" edge column yields Weight=0 for every item.
//
// Time Complexity: O(E)
func ToEdgeList(ig indexgraph.IndexGraph) []EdgeListItem {
	m := ig.M()
	out := make([]EdgeListItem, 0, m)
	weights := edgeWeights(ig)
	for e := 0; e < m; e++ {
		var w float64
		if weights != nil {
			w = weights.Get(e)
		}
		out = append(out, EdgeListItem{
			From:   ig.EdgeSource(e),
			To:     ig.EdgeTarget(e),
			Weight: w,
		})
	}

	return out
}

// EdgeMatrix is a lightweight adjacency-matrix representation, kept distinct
// from the Matrix interface used by Dense/AdjacencyMatrix: it trades the
// bounds-checked interface for a plain slice-of-slices callers can inspect
// directly without error handling. Row/column index IS vertex index.
//
// Data[i][j] holds the weight of the edge i->j, or zero if absent.
type EdgeMatrix struct {
	N    int
	Data [][]float64
}

// ToEdgeMatrix constructs an EdgeMatrix from ig. If multiple edges exist
// between the same pair, the last one encountered in IndexGraph's native
// edge order sets the weight.
//
// Time Complexity: O(V + E)
// Memory: O(V^2)
func ToEdgeMatrix(ig indexgraph.IndexGraph) *EdgeMatrix {
	n := ig.N()
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
	}

	weights := edgeWeights(ig)
	m := ig.M()
	for e := 0; e < m; e++ {
		i, j := ig.EdgeSource(e), ig.EdgeTarget(e)
		var w float64
		if weights != nil {
			w = weights.Get(e)
		}
		data[i][j] = w
		if !ig.Directed() {
			data[j][i] = w
		}
	}

	return &EdgeMatrix{N: n, Data: data}
}
