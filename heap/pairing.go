package heap

// PairingHeap is a multiway-tree heap: each node holds its first child and
// is itself linked into its parent's child list via next/prev. The root is
// always the minimum, so FindMin and a decreaseKey on the root itself are
// O(1); Insert and a decreaseKey on any other node meld a single node or a
// detached subtree back in with one compare-and-link, while ExtractMin and
// Remove rejoin the orphaned children with the two-pass merge.
type PairingHeap[K any, V any] struct {
	less LessFunc[K]

	keys       []K
	vals       []V
	parent     []int32
	firstChild []int32
	next       []int32
	prev       []int32
	gens       []uint32
	alive      []bool
	free       []int32

	root  int32 // -1 if empty
	count int
}

var _ Heap[int, int] = (*PairingHeap[int, int])(nil)

// NewPairing constructs an empty pairing heap ordered by less.
func NewPairing[K any, V any](less LessFunc[K]) *PairingHeap[K, V] {
	return &PairingHeap[K, V]{less: less, root: -1}
}

func (h *PairingHeap[K, V]) Len() int { return h.count }

func (h *PairingHeap[K, V]) alloc(key K, val V) int32 {
	if n := len(h.free); n > 0 {
		slot := h.free[n-1]
		h.free = h.free[:n-1]
		h.keys[slot], h.vals[slot] = key, val
		h.parent[slot], h.firstChild[slot], h.next[slot], h.prev[slot] = -1, -1, -1, -1
		h.alive[slot] = true
		return slot
	}
	h.keys = append(h.keys, key)
	h.vals = append(h.vals, val)
	h.parent = append(h.parent, -1)
	h.firstChild = append(h.firstChild, -1)
	h.next = append(h.next, -1)
	h.prev = append(h.prev, -1)
	h.gens = append(h.gens, 0)
	h.alive = append(h.alive, true)
	return int32(len(h.keys) - 1)
}

// addChild prepends x as the first child of parentIdx. x must already be a
// standalone node (parent == -1, next == prev == -1).
func (h *PairingHeap[K, V]) addChild(parentIdx, x int32) {
	h.parent[x] = parentIdx
	h.next[x] = h.firstChild[parentIdx]
	h.prev[x] = -1
	if h.firstChild[parentIdx] != -1 {
		h.prev[h.firstChild[parentIdx]] = x
	}
	h.firstChild[parentIdx] = x
}

// detach removes x from its parent's child list, leaving it standalone.
func (h *PairingHeap[K, V]) detach(x int32) {
	p, pr, nx := h.parent[x], h.prev[x], h.next[x]
	if pr != -1 {
		h.next[pr] = nx
	} else if p != -1 {
		h.firstChild[p] = nx
	}
	if nx != -1 {
		h.prev[nx] = pr
	}
	h.parent[x], h.next[x], h.prev[x] = -1, -1, -1
}

// compareLink melds two standalone trees, making the one with the smaller
// key the parent. Both a and b must be standalone roots.
func (h *PairingHeap[K, V]) compareLink(a, b int32) int32 {
	if h.less(h.keys[b], h.keys[a]) {
		h.addChild(b, a)
		return b
	}
	h.addChild(a, b)
	return a
}

// twoPassMerge combines a child list (already severed from its former
// parent) into a single tree via left-to-right pairing then right-to-left
// folding, the classic pairing-heap extractMin merge.
func (h *PairingHeap[K, V]) twoPassMerge(firstChild int32) int32 {
	if firstChild == -1 {
		return -1
	}
	var list []int32
	for cur := firstChild; cur != -1; {
		nxt := h.next[cur]
		h.parent[cur], h.next[cur], h.prev[cur] = -1, -1, -1
		list = append(list, cur)
		cur = nxt
	}

	var pass1 []int32
	for i := 0; i < len(list); {
		if i+1 < len(list) {
			pass1 = append(pass1, h.compareLink(list[i], list[i+1]))
			i += 2
		} else {
			pass1 = append(pass1, list[i])
			i++
		}
	}

	result := pass1[len(pass1)-1]
	for j := len(pass1) - 2; j >= 0; j-- {
		result = h.compareLink(pass1[j], result)
	}
	return result
}

func (h *PairingHeap[K, V]) Insert(key K, value V) Ref {
	slot := h.alloc(key, value)
	if h.root == -1 {
		h.root = slot
	} else {
		h.root = h.compareLink(h.root, slot)
	}
	h.count++
	return Ref{idx: slot, gen: h.gens[slot]}
}

func (h *PairingHeap[K, V]) FindMin() (Ref, K, V, bool) {
	if h.root == -1 {
		var zk K
		var zv V
		return NullRef, zk, zv, false
	}
	return Ref{idx: h.root, gen: h.gens[h.root]}, h.keys[h.root], h.vals[h.root], true
}

func (h *PairingHeap[K, V]) ExtractMin() (K, V, bool) {
	if h.root == -1 {
		var zk K
		var zv V
		return zk, zv, false
	}
	z := h.root
	key, val := h.keys[z], h.vals[z]
	h.root = h.twoPassMerge(h.firstChild[z])
	h.gens[z]++
	h.alive[z] = false
	h.free = append(h.free, z)
	h.count--
	return key, val, true
}

func (h *PairingHeap[K, V]) live(ref Ref) bool {
	return ref.idx >= 0 && int(ref.idx) < len(h.gens) && h.gens[ref.idx] == ref.gen && h.alive[ref.idx]
}

func (h *PairingHeap[K, V]) DecreaseKey(ref Ref, newKey K) error {
	if !h.live(ref) {
		return ErrStaleHandle
	}
	x := ref.idx
	h.keys[x] = newKey
	if x == h.root {
		return nil // the root is already the minimum; no restructuring needed
	}
	h.detach(x)
	h.root = h.compareLink(h.root, x)
	return nil
}

func (h *PairingHeap[K, V]) Remove(ref Ref) error {
	if !h.live(ref) {
		return ErrStaleHandle
	}
	x := ref.idx
	if x == h.root {
		_, _, _ = h.ExtractMin()
		return nil
	}
	h.detach(x)
	merged := h.twoPassMerge(h.firstChild[x])
	if merged != -1 {
		h.root = h.compareLink(h.root, merged)
	}
	h.gens[x]++
	h.alive[x] = false
	h.free = append(h.free, x)
	h.count--
	return nil
}

// Meld copies other's node arena into h (O(size of other)) and then links
// the two root trees with one compare-and-link.
func (h *PairingHeap[K, V]) Meld(other Heap[K, V]) error {
	o, ok := other.(*PairingHeap[K, V])
	if !ok {
		return ErrIncompatibleMeld
	}
	if o.root == -1 {
		return nil
	}
	offset := int32(len(h.keys))
	h.keys = append(h.keys, o.keys...)
	h.vals = append(h.vals, o.vals...)
	h.gens = append(h.gens, o.gens...)
	h.alive = append(h.alive, o.alive...)
	for _, p := range o.parent {
		if p >= 0 {
			p += offset
		}
		h.parent = append(h.parent, p)
	}
	for _, c := range o.firstChild {
		if c >= 0 {
			c += offset
		}
		h.firstChild = append(h.firstChild, c)
	}
	for _, n := range o.next {
		if n >= 0 {
			n += offset
		}
		h.next = append(h.next, n)
	}
	for _, p := range o.prev {
		if p >= 0 {
			p += offset
		}
		h.prev = append(h.prev, p)
	}

	otherRoot := o.root + offset
	if h.root == -1 {
		h.root = otherRoot
	} else {
		h.root = h.compareLink(h.root, otherRoot)
	}
	h.count += o.count

	o.keys, o.vals, o.gens, o.alive = nil, nil, nil, nil
	o.parent, o.firstChild, o.next, o.prev, o.free = nil, nil, nil, nil, nil
	o.root, o.count = -1, 0
	return nil
}
