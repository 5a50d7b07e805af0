package tsp

import "errors"

// ErrDirectedGraph is returned when g.Directed() is true: the MST this
// package builds the tour from is defined only over undirected graphs.
var ErrDirectedGraph = errors.New("tsp: graph must be undirected")

// ErrTooFewVertices is returned when g has fewer than one vertex.
var ErrTooFewVertices = errors.New("tsp: graph must have at least one vertex")

// ErrNoSuchRoot is returned when root is outside [0, g.N()).
var ErrNoSuchRoot = errors.New("tsp: root vertex out of range")

// ErrDisconnected is returned when g is not connected: a Hamiltonian cycle
// cannot visit vertices unreachable from root.
var ErrDisconnected = errors.New("tsp: graph is not connected")
