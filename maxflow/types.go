// Package maxflow implements a maximum-flow family (Edmonds-Karp,
// Dinic, push-relabel with FIFO/highest-label/lowest-label/move-to-front
// variants, and dynamic-tree-accelerated Dinic/push-relabel) over a shared
// residual-network core. Grounded on a capMap[u][v] nested-map style
// edmonds_karp.go/dinic.go pair, whose residual representation is replaced
// here by an arena edge list - paired forward/backward arcs at indices
// 2k/2k+1, the classic int-indexed max-flow idiom - matching the
// int32-arena style the rest of this module (indexgraph, heap, dtree)
// already uses.
package maxflow

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrSourceNotFound is returned when source is outside [0, g.N()).
var ErrSourceNotFound = errors.New("maxflow: source vertex out of range")

// ErrSinkNotFound is returned when sink is outside [0, g.N()).
var ErrSinkNotFound = errors.New("maxflow: sink vertex out of range")

// ErrNegativeCapacity is returned when an edge's capacity is negative.
var ErrNegativeCapacity = errors.New("maxflow: negative edge capacity")

// ErrSameSourceSink is returned when source == sink: no flow is meaningful.
var ErrSameSourceSink = errors.New("maxflow: source and sink must differ")

// Capacities gives the capacity of edge e (as it appears in the original
// graph; the residual Network built from it tracks remaining capacity
// separately).
type Capacities interface {
	Capacity(e int) float64
}

// CapacityFunc adapts a plain function to Capacities.
type CapacityFunc func(e int) float64

// Capacity implements Capacities.
func (f CapacityFunc) Capacity(e int) float64 { return f(e) }

// Result holds a computed maximum flow: its value and the residual network
// left after augmenting, from which per-edge flow is recoverable as
// original capacity minus remaining residual capacity.
type Result struct {
	Value   float64
	Network *Network
}

// FlowOnEdge returns how much flow crosses the original edge e (u->v): the
// original capacity minus whatever capacity remains on its forward arc.
func (r *Result) FlowOnEdge(originalCapacity float64, e int) float64 {
	return originalCapacity - r.Network.cap[forwardArc(e)]
}

// log is this package's structured logger, replacing a fmt.Printf-based
// verbose-flag approach with leveled output.
var log = logrus.New()
