package heap

// BinaryHeap is an array-backed binary heap with an indirection layer
// (pos) mapping arena slot -> array position, giving O(log n) decreaseKey
// and remove by handle on top of the textbook binary-heap array.
type BinaryHeap[K any, V any] struct {
	less LessFunc[K]

	keys []K
	vals []V
	gens []uint32
	free []int32

	arr []int32 // heap array: position -> arena slot
	pos []int32 // arena slot -> position in arr, -1 if not live
}

var _ Heap[int, int] = (*BinaryHeap[int, int])(nil)

// NewBinary constructs an empty binary heap ordered by less.
func NewBinary[K any, V any](less LessFunc[K]) *BinaryHeap[K, V] {
	return &BinaryHeap[K, V]{less: less}
}

func (h *BinaryHeap[K, V]) Len() int { return len(h.arr) }

func (h *BinaryHeap[K, V]) allocSlot(key K, val V) int32 {
	if n := len(h.free); n > 0 {
		slot := h.free[n-1]
		h.free = h.free[:n-1]
		h.keys[slot] = key
		h.vals[slot] = val
		return slot
	}
	h.keys = append(h.keys, key)
	h.vals = append(h.vals, val)
	h.gens = append(h.gens, 0)
	h.pos = append(h.pos, -1)
	return int32(len(h.keys) - 1)
}

func (h *BinaryHeap[K, V]) Insert(key K, value V) Ref {
	slot := h.allocSlot(key, value)
	h.arr = append(h.arr, slot)
	p := int32(len(h.arr) - 1)
	h.pos[slot] = p
	h.siftUp(p)
	return Ref{idx: slot, gen: h.gens[slot]}
}

func (h *BinaryHeap[K, V]) FindMin() (Ref, K, V, bool) {
	if len(h.arr) == 0 {
		var zk K
		var zv V
		return NullRef, zk, zv, false
	}
	slot := h.arr[0]
	return Ref{idx: slot, gen: h.gens[slot]}, h.keys[slot], h.vals[slot], true
}

func (h *BinaryHeap[K, V]) ExtractMin() (K, V, bool) {
	if len(h.arr) == 0 {
		var zk K
		var zv V
		return zk, zv, false
	}
	slot := h.arr[0]
	key, val := h.keys[slot], h.vals[slot]
	h.removeSlot(slot)
	return key, val, true
}

func (h *BinaryHeap[K, V]) DecreaseKey(ref Ref, newKey K) error {
	if !h.live(ref) {
		return ErrStaleHandle
	}
	h.keys[ref.idx] = newKey
	h.siftUp(h.pos[ref.idx])
	return nil
}

func (h *BinaryHeap[K, V]) Remove(ref Ref) error {
	if !h.live(ref) {
		return ErrStaleHandle
	}
	h.removeSlot(ref.idx)
	return nil
}

// Meld drains other into h by repeated extract-and-insert. Binary heaps
// have no shared arena to splice, so the textbook O(n) array-concatenation
// meld does not apply across two independently allocated instances; this
// degrades to O(n log n) instead, documented as an accepted tradeoff.
// other must also be a *BinaryHeap[K,V], else ErrIncompatibleMeld.
func (h *BinaryHeap[K, V]) Meld(other Heap[K, V]) error {
	if _, ok := other.(*BinaryHeap[K, V]); !ok {
		return ErrIncompatibleMeld
	}
	for {
		k, v, ok := other.ExtractMin()
		if !ok {
			return nil
		}
		h.Insert(k, v)
	}
}

func (h *BinaryHeap[K, V]) live(ref Ref) bool {
	return ref.idx >= 0 && int(ref.idx) < len(h.gens) && h.gens[ref.idx] == ref.gen && h.pos[ref.idx] >= 0
}

func (h *BinaryHeap[K, V]) removeSlot(slot int32) {
	p := h.pos[slot]
	last := int32(len(h.arr) - 1)
	h.swapPos(p, last)
	h.arr = h.arr[:last]
	h.pos[slot] = -1
	h.gens[slot]++
	h.free = append(h.free, slot)
	if p < last {
		h.siftDown(p)
		h.siftUp(p)
	}
}

func (h *BinaryHeap[K, V]) swapPos(i, j int32) {
	h.arr[i], h.arr[j] = h.arr[j], h.arr[i]
	h.pos[h.arr[i]] = i
	h.pos[h.arr[j]] = j
}

func (h *BinaryHeap[K, V]) keyAt(p int32) K { return h.keys[h.arr[p]] }

func (h *BinaryHeap[K, V]) siftUp(p int32) {
	for p > 0 {
		parent := (p - 1) / 2
		if !h.less(h.keyAt(p), h.keyAt(parent)) {
			break
		}
		h.swapPos(p, parent)
		p = parent
	}
}

func (h *BinaryHeap[K, V]) siftDown(p int32) {
	n := int32(len(h.arr))
	for {
		l, r := 2*p+1, 2*p+2
		smallest := p
		if l < n && h.less(h.keyAt(l), h.keyAt(smallest)) {
			smallest = l
		}
		if r < n && h.less(h.keyAt(r), h.keyAt(smallest)) {
			smallest = r
		}
		if smallest == p {
			return
		}
		h.swapPos(p, smallest)
		p = smallest
	}
}
