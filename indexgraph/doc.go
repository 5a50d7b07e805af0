// Package indexgraph — see graph.go for the IndexGraph contract and
// array_graph.go / linked_graph.go for the two back-ends.
package indexgraph
