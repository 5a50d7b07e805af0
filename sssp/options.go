package sssp

import "github.com/katalvlaran/coregraph/heap"

// Options configures Dijkstra, the only heap-based algorithm here. Dial,
// BellmanFord and Dag take no Options.
type Options struct {
	heapKind    heap.Kind
	maxDistance float64
	hasMaxDist  bool
}

// Option mutates Options, the usual functional-options pattern.
type Option func(*Options)

// DefaultOptions returns a Fibonacci-heap-backed, unbounded configuration.
func DefaultOptions() Options {
	return Options{heapKind: heap.Fibonacci}
}

// WithHeap selects which referenceable heap backend drives Dijkstra's
// priority queue.
func WithHeap(kind heap.Kind) Option {
	return func(o *Options) { o.heapKind = kind }
}

// WithMaxDistance prunes the search once a vertex's tentative distance
// exceeds max: such vertices are left unreached rather than fully relaxed.
// Panics if max is negative.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic("sssp: WithMaxDistance requires a non-negative bound")
	}
	return func(o *Options) {
		o.maxDistance = max
		o.hasMaxDist = true
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
