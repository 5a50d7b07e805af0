// Package dfs implements depth-first traversal, cycle detection, and
// topological sort over an indexgraph.IndexGraph: the same White/Gray/Black
// visitation states and post-order-then-reverse topological sort a
// string-keyed dfs package would use, rebuilt directly over index-based
// vertices rather than a hook/filter/context options surface.
package dfs

import "errors"

// visitState tracks a vertex's position in the recursion stack.
const (
	white = iota // not yet visited
	gray         // on the current recursion stack
	black        // fully explored
)

// ErrNotDirected is returned by TopologicalSort when called on an undirected
// graph, for which no vertex ordering is meaningful.
var ErrNotDirected = errors.New("dfs: topological sort requires a directed graph")

// ErrCycleDetected is returned by TopologicalSort when the graph contains a
// directed cycle, and so has no valid topological order.
var ErrCycleDetected = errors.New("dfs: cycle detected")
