package facade

import "github.com/katalvlaran/coregraph/indexgraph"

// The families below are thin clients: their interfaces are listed but
// their internals are intentionally out of scope. Each is a bare contract
// a caller can implement, or satisfy by adapting a third-party algorithm,
// against coregraph's indexgraph.IndexGraph; none has an implementation
// here. TSP has no interface in this file; the tsp package holds its
// MST-based 2-approximation.

// Coloring assigns each vertex a non-negative color such that no edge joins
// two vertices of the same color.
type Coloring interface {
	// Color returns a coloring of g using at most k colors, or an error if
	// none was found (k may be advisory for a heuristic, or a hard cap for
	// an exact search).
	Color(g indexgraph.IndexGraph, k int) (colorOf []int, err error)
}

// VertexCover finds a minimal (or approximately minimal) set of vertices
// touching every edge.
type VertexCover interface {
	Cover(g indexgraph.IndexGraph) (vertices []int, err error)
}

// EdgeCover finds a minimal (or approximately minimal) set of edges
// touching every vertex.
type EdgeCover interface {
	Cover(g indexgraph.IndexGraph) (edges []int, err error)
}

// HamiltonianPath finds a path visiting every vertex exactly once, if one
// exists.
type HamiltonianPath interface {
	FindPath(g indexgraph.IndexGraph, source int) (path []int, ok bool, err error)
}

// Isomorphism decides whether two graphs are isomorphic and, if so,
// produces a vertex-index mapping witnessing it.
type Isomorphism interface {
	AreIsomorphic(a, b indexgraph.IndexGraph) (mapping []int, ok bool, err error)
}

// CycleEnumerator lists simple cycles in a graph.
type CycleEnumerator interface {
	// Enumerate calls visit once per simple cycle found, in vertex-index
	// order starting from the cycle's lowest index. visit returning false
	// stops enumeration early.
	Enumerate(g indexgraph.IndexGraph, visit func(cycle []int) (keepGoing bool)) error
}
