// SPDX-License-Identifier: MIT
// Package matrix - incidence builders (dense) with strict invariants, built
// directly on indexgraph.IndexGraph.
//
// Deliverables:
//  1. Error-first lightweight getters (no panics): VertexCount/EdgeCount validate receiver and shape
//     and return sentinel errors (ErrNilMatrix, ErrDimensionMismatch) instead of panicking.
//  2. Clarified signs: directed uses -1 at source and +1 at target; undirected uses +1/+1;
//     a directed self-loop sums (-1 + +1) in the *same row* => algebraic zero, so the builder
//     skips such columns; an undirected self-loop contributes +2 in the single incident row.
//  3. AllowMulti=false => first-edge-wins policy (directed: ordered (u,v); undirected: unordered {min,max}).
//  4. Deterministic order: rows follow vertex index order, columns follow IndexGraph edge index order.
//
// AI-Hints:
//   - Row index IS vertex index; there is no VertexID lookup layer to maintain.
//   - Incidence ignores numeric weights by design; it captures topology only (sign/endpoint).
//   - For undirected graphs, a self-loop appears as +2 in the single row; downstream tools
//     expecting strictly {-1,0,+1} should normalize if needed.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/coregraph/indexgraph"
)

// --- Incidence marks (no magic numbers) -------------------------------------

// srcMark is placed at the source vertex row in a directed incidence column (outgoing end).
const srcMark = -1.0

// dstMark is placed at the target vertex row in a directed incidence column (incoming end).
const dstMark = +1.0

// undirectedMark is placed at each incident vertex row for undirected non-loop edges.
const undirectedMark = +1.0

// loopUndirectedMark is placed at the incident vertex row for undirected self-loops.
const loopUndirectedMark = 2.0

// --- Public wrapper type -----------------------------------------------------

// incidenceEdge records the endpoints (by IndexGraph vertex index) backing one
// incidence column, independent of the source graph's lifetime.
type incidenceEdge struct {
	From, To int
}

// IncidenceMatrix wraps a Matrix as a graph incidence representation over an
// indexgraph.IndexGraph substrate. N is the vertex count (row dimension);
// Edges holds the endpoints aligned to each column, post de-duplication.
type IncidenceMatrix struct {
	Mat   Matrix          // underlying incidence matrix (rows=N, cols=len(Edges))
	N     int             // vertex count == Mat.Rows()
	Edges []incidenceEdge // column-aligned endpoint pairs
	opts  Options         // original build options snapshot
}

// NewIncidenceMatrix constructs a dense incidence matrix wrapper from an
// indexgraph.IndexGraph.
//
// Errors:
//   - ErrGraphNil; plus any BuildDenseIncidence errors.
//
// Complexity: Time O(V+E), Space O(V+E) for metadata plus V*E' for dense storage.
func NewIncidenceMatrix(ig indexgraph.IndexGraph, opts Options) (*IncidenceMatrix, error) {
	if ig == nil {
		return nil, fmt.Errorf("NewIncidenceMatrix: %w", ErrGraphNil)
	}

	eff, mat, err := BuildDenseIncidence(ig, opts)
	if err != nil {
		return nil, fmt.Errorf("NewIncidenceMatrix: %w", err)
	}

	edges := make([]incidenceEdge, len(eff))
	for j, e := range eff {
		edges[j] = incidenceEdge{From: ig.EdgeSource(e), To: ig.EdgeTarget(e)}
	}

	return &IncidenceMatrix{
		Mat:   mat,
		N:     ig.N(),
		Edges: edges,
		opts:  opts,
	}, nil
}

// --- Internal invariant validation -------------------------------------------

const (
	opIncidenceVertexCount   = "IncidenceMatrix.VertexCount"
	opIncidenceEdgeCount     = "IncidenceMatrix.EdgeCount"
	opIncidenceVertexInc     = "IncidenceMatrix.VertexIncidence"
	opIncidenceEdgeEndpoints = "IncidenceMatrix.EdgeEndpoints"
)

// validateMeta checks that the wrapper and its metadata are internally consistent.
//
// Errors:
//   - ErrNilMatrix when receiver or Mat is nil.
//   - ErrDimensionMismatch when metadata diverges from Mat shape.
func (im *IncidenceMatrix) validateMeta(op string) (rows, cols int, err error) {
	if im == nil || im.Mat == nil {
		return 0, 0, fmt.Errorf("%s: nil receiver or underlying Mat: %w", op, ErrNilMatrix)
	}

	rows = im.Mat.Rows()
	cols = im.Mat.Cols()

	if rows != im.N {
		return 0, 0, fmt.Errorf("%s: rows=%d n=%d: %w", op, rows, im.N, ErrDimensionMismatch)
	}
	if cols != len(im.Edges) {
		return 0, 0, fmt.Errorf("%s: cols=%d edges=%d: %w",
			op, cols, len(im.Edges), ErrDimensionMismatch)
	}

	return rows, cols, nil
}

// VertexCount returns the number of vertices (matrix dimension) with invariant checks; never panics.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (Mat.Rows() != N).
func (im *IncidenceMatrix) VertexCount() (int, error) {
	rows, _, err := im.validateMeta(opIncidenceVertexCount)
	if err != nil {
		return 0, err
	}

	return rows, nil
}

// EdgeCount returns the number of edges (column count) with invariant checks; never panics.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (Mat.Cols() != len(Edges)).
func (im *IncidenceMatrix) EdgeCount() (int, error) {
	_, cols, err := im.validateMeta(opIncidenceEdgeCount)
	if err != nil {
		return 0, err
	}

	return cols, nil
}

// VertexIncidence copies the signed incidence row for vertex v into a new slice.
//
// Errors:
//   - ErrNilMatrix, ErrUnknownVertex (v out of range), wrapped Mat.At errors.
//
// Complexity: Time O(E), Space O(E) for the returned row.
func (im *IncidenceMatrix) VertexIncidence(v int) ([]float64, error) {
	rows, cols, err := im.validateMeta(opIncidenceVertexInc)
	if err != nil {
		return nil, err
	}
	if v < 0 || v >= rows {
		return nil, fmt.Errorf("VertexIncidence: unknown vertex %d: %w", v, ErrUnknownVertex)
	}

	out := make([]float64, cols)
	var val float64
	for j := 0; j < cols; j++ {
		val, err = im.Mat.At(v, j)
		if err != nil {
			return nil, fmt.Errorf("VertexIncidence: At(%d,%d): %w", v, j, err)
		}
		out[j] = val
	}

	return out, nil
}

// EdgeEndpoints returns (from,to) vertex indices for the edge aligned with column j.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch on invalid j.
func (im *IncidenceMatrix) EdgeEndpoints(j int) (from, to int, err error) {
	_, cols, err := im.validateMeta(opIncidenceEdgeEndpoints)
	if err != nil {
		return 0, 0, err
	}
	if j < 0 || j >= cols {
		return 0, 0, fmt.Errorf("EdgeEndpoints: column %d out of range [0,%d): %w",
			j, cols, ErrDimensionMismatch)
	}
	e := im.Edges[j]

	return e.From, e.To, nil
}
