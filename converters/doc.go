// Package converters bridges indexgraph.IndexGraph to
// gonum.org/v1/gonum/graph, so a coregraph substrate can be handed to any
// gonum graph algorithm (or vice versa) without a rewrite.
//
// ToGonum builds a gonum/graph/simple.WeightedDirectedGraph or
// WeightedUndirectedGraph mirroring an IndexGraph's vertex indices, edges,
// and weights one-for-one; FromGonum reads a gonum graph.Graph back into a
// fresh indexgraph.IndexGraph. Vertex identity is the dense integer index on
// both sides, so round-tripping through either direction preserves index
// assignment exactly.
package converters
