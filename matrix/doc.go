// Package matrix offers matrix-based graph representations and converters,
// built directly on indexgraph.IndexGraph: a matrix row/column index IS a
// vertex index, so there is no external-ID lookup layer to build or keep in
// sync.
//
// The matrix package provides:
//
//   - Lightweight converters (ToEdgeMatrix, ToEdgeList) for exporting graphs to
//     linear-algebra routines or external formats.
//   - AdjacencyMatrix with O(1) edge-weight lookups and O(V²) memory.
//   - IncidenceMatrix for vertex-by-edge incidence queries, useful in
//     graph-theoretic analyses.
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V² + E) build time are acceptable.
//
// See the examples in this package and indexgraph for usage patterns.
package matrix
