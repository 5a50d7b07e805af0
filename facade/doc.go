// Package facade is coregraph's dispatch layer: one switch-on-enum entry
// point per algorithm family (SSSP, MST, max-flow, heap construction) so a
// caller can pick an algorithm by value at runtime instead of importing and
// naming each implementation directly, plus the bare interfaces for the
// families left as thin clients whose internals are out of core scope
// (coloring, vertex/edge cover, Hamiltonian path, isomorphism, cycle
// enumeration). Those interfaces are contracts only, left for a caller to
// implement or bring a library for. TSP has no interface here; the tsp
// package holds its MST-based 2-approximation.
package facade
