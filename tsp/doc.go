// Package tsp provides the one Travelling Salesman Problem thin client this
// repository implements in full: an MST-based 2-approximation for
// symmetric metric TSP over an undirected indexgraph.IndexGraph. Coloring,
// covers, Hamiltonian path, isomorphism, and cycle enumeration are carried
// only as bare interfaces (see the facade package); Approximate is the one
// case where a thin client also gets a real body behind its contract.
//
// # Algorithm
//
// Approximate builds a minimum spanning tree over g (via mst.Kruskal),
// walks it in preorder from a chosen root, and closes that walk into a
// cycle back to the root. For a metric distance (triangle inequality
// holds for w), this costs at most twice the optimal tour: the preorder
// walk traverses every MST edge exactly twice in the worst case, and the
// MST's weight is a lower bound on any Hamiltonian tour's cost.
//
// Approximate does not validate that w is metric; given a non-metric
// weight it still returns a valid Hamiltonian cycle, just without the 2x
// bound. ErrDisconnected is returned when g has more than one connected
// component, since no Hamiltonian cycle exists in that case.
package tsp
