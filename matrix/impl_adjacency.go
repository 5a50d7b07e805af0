// SPDX-License-Identifier: MIT
// Package matrix - adjacency builders (dense) and metric-closure transform,
// built directly on indexgraph.IndexGraph.
//
// Deliverables:
//  1. Directed + AllowMulti=false -> first-edge-wins (ordered key (u,v)).
//  2. Undirected mirroring without loops (u==v is not mirrored).
//  3. Weighted=true but effectively-unweighted input -> degrade to binary (1).
//  4. MetricClosure (Floyd-Warshall): diag=0, unreachable=+Inf (off-diagonal).
//  5. Deterministic iteration in IndexGraph's native vertex/edge order.
//
// AI-Hints:
//   - Row/column index IS vertex index: there is no VertexID lookup layer
//     to keep in sync, unlike a string-keyed adjacency wrapper.
//   - MetricClosure turns adjacency into pairwise shortest-path distances; it is
//     no longer an adjacency, and ToGraph refuses to export it.
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coregraph/indexgraph"
)

// defaultReserve is the initial capacity for neighbor slices.
const defaultReserve = 8

// AdjacencyMatrix wraps a Matrix as a graph adjacency representation over an
// indexgraph.IndexGraph substrate. N is the vertex count (matrix dimension);
// opts preserves original construction options for round-trip fidelity.
type AdjacencyMatrix struct {
	Mat  Matrix  // underlying adjacency matrix
	N    int     // vertex count == Mat.Rows() == Mat.Cols()
	opts Options // original construction options
}

// NewAdjacencyMatrix builds an adjacency container from an indexgraph.IndexGraph.
//
// Errors:
//   - ErrGraphNil; plus any BuildDenseAdjacency errors.
//
// Complexity: Time O(V + E), Space O(V^2) for the dense backend.
func NewAdjacencyMatrix(ig indexgraph.IndexGraph, opts Options) (*AdjacencyMatrix, error) {
	if ig == nil {
		return nil, ErrGraphNil
	}

	mat, err := BuildDenseAdjacency(ig, opts)
	if err != nil {
		return nil, err
	}

	return &AdjacencyMatrix{Mat: mat, N: ig.N(), opts: opts}, nil
}

// VertexCount returns the number of vertices (matrix dimension) with
// invariant checks; never panics.
//
// Errors:
//   - ErrNilMatrix (nil receiver or underlying Mat),
//   - ErrDimensionMismatch (Mat.Rows() != N).
func (am *AdjacencyMatrix) VertexCount() (int, error) {
	if am == nil || am.Mat == nil {
		return 0, fmt.Errorf("AdjacencyMatrix.VertexCount: nil receiver or underlying Mat: %w", ErrNilMatrix)
	}
	if am.Mat.Rows() != am.N {
		return 0, fmt.Errorf(
			"AdjacencyMatrix.VertexCount: inconsistent dimensions %d vs %d: %w",
			am.Mat.Rows(), am.N, ErrDimensionMismatch,
		)
	}

	return am.Mat.Rows(), nil
}

// Neighbors lists adjacent vertex indices reachable from u (row scan of
// adjacency row u). +Inf is treated as "no edge"; NaN is not expected here.
//
// Errors:
//   - ErrNilMatrix, ErrUnknownVertex (u out of range), ErrDimensionMismatch,
//     bubbled matrix read errors wrapped with coordinates.
//
// Complexity: Time O(n), Space O(k) for k neighbors.
func (am *AdjacencyMatrix) Neighbors(u int) ([]int, error) {
	if am == nil || am.Mat == nil {
		return nil, fmt.Errorf("Neighbors: nil AdjacencyMatrix or Mat: %w", ErrNilMatrix)
	}
	if u < 0 || u >= am.N {
		return nil, fmt.Errorf("Neighbors: unknown vertex %d: %w", u, ErrUnknownVertex)
	}

	cols := am.Mat.Cols()
	if cols != am.N {
		return nil, fmt.Errorf(
			"Neighbors: dimension mismatch, cols=%d vs n=%d: %w",
			cols, am.N, ErrDimensionMismatch,
		)
	}

	neighbors := make([]int, 0, defaultReserve)
	var w float64
	var err error
	for col := 0; col < cols; col++ {
		w, err = am.Mat.At(u, col)
		if err != nil {
			return nil, fmt.Errorf("Neighbors: At(%d,%d): %w", u, col, err)
		}
		if w == 0 || w == math.Inf(1) {
			continue
		}
		neighbors = append(neighbors, col)
	}

	return neighbors, nil
}

// ToGraph converts the stored adjacency to a fresh indexgraph.IndexGraph
// with threshold/weight export policy.
//
// Behavior highlights:
//   - Threshold is strict (a[i,j] > threshold).
//   - keepWeights uses a[i,j] directly; binary emits weight=1.
//   - Orientation is inherited from the original build options (am.opts.directed).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrMatrixNotImplemented (metric-closure),
//     bubbled matrix/indexgraph errors wrapped with context.
//
// Complexity: Time O(n^2), Space O(1) beyond the returned graph.
func (am *AdjacencyMatrix) ToGraph(optFns ...Option) (indexgraph.IndexGraph, error) {
	if am == nil || am.Mat == nil {
		return nil, fmt.Errorf("ToGraph: %w", ErrNilMatrix)
	}

	n := am.Mat.Rows()
	if n != am.Mat.Cols() || n != am.N {
		return nil, fmt.Errorf("ToGraph: rows=%d cols=%d n=%d: %w",
			am.Mat.Rows(), am.Mat.Cols(), am.N, ErrDimensionMismatch)
	}
	if am.opts.metricClose {
		return nil, fmt.Errorf("ToGraph: metric-closure adjacency cannot be converted: %w", ErrMatrixNotImplemented)
	}

	exp := gatherOptions(optFns...)
	thr := exp.edgeThreshold
	keepWeights := exp.keepWeights
	directed := am.opts.directed

	var g *indexgraph.Graph
	if directed {
		g = indexgraph.NewDirected()
	} else {
		g = indexgraph.NewUndirected()
	}
	for i := 0; i < n; i++ {
		g.AddVertex()
	}

	weights, err := g.AddEdgesWeightsFloat(weightColumnKey)
	if err != nil {
		return nil, fmt.Errorf("ToGraph: AddEdgesWeightsFloat: %w", err)
	}

	var val float64
	if directed {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if val, err = am.Mat.At(i, j); err != nil {
					return nil, fmt.Errorf("ToGraph: At(%d,%d): %w", i, j, err)
				}
				if err = returnEdge(g, weights, i, j, val, thr, keepWeights); err != nil {
					return nil, err
				}
			}
		}
	} else {
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				if val, err = am.Mat.At(i, j); err != nil {
					return nil, fmt.Errorf("ToGraph: At(%d,%d): %w", i, j, err)
				}
				if err = returnEdge(g, weights, i, j, val, thr, keepWeights); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// returnEdge emits a single edge u->v when aij passes threshold under the
// chosen weight export policy.
func returnEdge(g *indexgraph.Graph, weights *indexgraph.Column[float64], u, v int, aij, threshold float64, keep bool) error {
	if math.IsInf(aij, +1) || !(aij > threshold) {
		return nil // not an edge per strict policy
	}

	w := aij
	if !keep {
		w = 1.0
	}

	e, err := g.AddEdge(u, v)
	if err != nil {
		return fmt.Errorf("ToGraph: AddEdge %d->%d: %w", u, v, err)
	}
	weights.Set(e, w)

	return nil
}

// DegreeVector computes per-vertex degree/strength from adjacency semantics.
//
//   - Directed: out-degree is row sum of outgoing entries.
//   - Undirected: degree equals row sum for binary symmetric adjacency.
//   - Loops: counted as exactly 1 (if present), regardless of stored weight.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (via ValidateSquare), bubbled At errors.
//
// Complexity: Time O(n^2), Space O(n).
func (am *AdjacencyMatrix) DegreeVector() ([]float64, error) {
	if am == nil || am.Mat == nil {
		return nil, fmt.Errorf("DegreeVector: %w", ErrNilMatrix)
	}
	if err := ValidateSquare(am.Mat); err != nil {
		return nil, fmt.Errorf("DegreeVector: %w", err)
	}

	n := am.Mat.Rows()
	out := make([]float64, n)

	// Fast-path: direct flat access on *Dense (row-major).
	if d, ok := am.Mat.(*Dense); ok {
		var i, j, base int
		var s, v float64
		for i = 0; i < n; i++ {
			s = 0
			base = i * n
			for j = 0; j < n; j++ {
				v = d.data[base+j]
				if math.IsNaN(v) || math.IsInf(v, +1) {
					continue
				}
				if v > 0 {
					if i == j {
						s += 1.0
					} else {
						s += v
					}
				}
			}
			out[i] = s
		}

		return out, nil
	}

	// Fallback: interface path via At (bounds-safe; deterministic).
	var i, j int
	var s, v float64
	var err error
	for i = 0; i < n; i++ {
		s = 0
		for j = 0; j < n; j++ {
			v, err = am.Mat.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("DegreeVector: At(%d,%d): %w", i, j, err)
			}
			if math.IsNaN(v) || math.IsInf(v, +1) {
				continue
			}
			if v > 0 {
				if i == j {
					s += 1.0
				} else {
					s += v
				}
			}
		}
		out[i] = s
	}

	return out, nil
}
