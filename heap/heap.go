// Package heap implements a referenceable heap family: one trait,
// parameterised by a key/value pair and a caller-supplied comparator, with
// five backing implementations (binary, binomial, Fibonacci, pairing, and
// a balanced-BST variant) sharing the arena-of-nodes-by-index shape a
// plain container/heap-backed priority queue would use for itself, pushed
// further so decrease-key and remove work by stable handle instead of by
// lazy re-push.
package heap

import "errors"

// ErrStaleHandle is returned when a Ref that has already been removed (or
// that never belonged to the heap instance) is passed back into it.
var ErrStaleHandle = errors.New("heap: stale or foreign reference handle")

// ErrEmpty names the empty-heap condition. No function in this package
// returns it: FindMin and ExtractMin report an empty heap with ok=false.
var ErrEmpty = errors.New("heap: empty")

// ErrIncompatibleMeld is returned by Meld when other is not the same
// concrete implementation as the receiver. Comparators are not compared:
// melding two heaps of one kind built with different comparators is not
// detected.
var ErrIncompatibleMeld = errors.New("heap: incompatible meld")

// Ref is an opaque, stable handle to a node. It stays valid across
// decrease-key and other mutations until the node is removed; a Ref used
// after removal is rejected with ErrStaleHandle (a reuse-generation tag
// distinguishes a recycled arena slot from the original node).
type Ref struct {
	idx int32
	gen uint32
}

// NullRef (index -1) never identifies a live node. It is not the zero
// value of Ref: Ref{} has index 0.
var NullRef = Ref{idx: -1}

// Valid reports whether r is not NullRef. It does not imply that r was
// issued by Insert (the zero value Ref{} also reports true) or that its node
// is still in the heap.
func (r Ref) Valid() bool { return r.idx >= 0 }

// LessFunc orders two keys; Less(a, b) reports whether a sorts before b.
type LessFunc[K any] func(a, b K) bool

// Heap is the common trait every implementation in this package satisfies.
// K and V are instantiated per construction (e.g. Heap[float64, int] for a
// Dijkstra priority queue keyed by tentative distance).
type Heap[K any, V any] interface {
	// Len returns the number of elements currently held. O(1).
	Len() int

	// Insert adds (key, value) and returns a stable reference to it.
	Insert(key K, value V) Ref

	// FindMin returns the reference, key and value of a minimum element
	// without removing it. ok is false iff the heap is empty.
	FindMin() (ref Ref, key K, value V, ok bool)

	// ExtractMin removes and returns a minimum element. ok is false iff the
	// heap is empty.
	ExtractMin() (key K, value V, ok bool)

	// DecreaseKey lowers the key of the node referenced by ref. newKey must
	// not sort after the node's current key under the heap's comparator.
	// Returns ErrStaleHandle if ref does not identify a live node.
	DecreaseKey(ref Ref, newKey K) error

	// Remove deletes the node referenced by ref regardless of its key.
	// Returns ErrStaleHandle if ref does not identify a live node.
	Remove(ref Ref) error

	// Meld absorbs all elements of other, leaving other empty. Returns
	// ErrIncompatibleMeld if other is not the same concrete implementation
	// as the receiver.
	Meld(other Heap[K, V]) error
}
