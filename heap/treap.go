package heap

import "math/rand"

// TreapHeap is the balanced-BST-backed heap variant. A treap is chosen
// over a literal red-black tree because its balance comes
// from a randomized priority rather than recoloring rules, which lets
// insert/delete be expressed as simple rotate-up / rotate-down passes
// instead of a red-black fixup table, while still giving the same expected
// O(log n) bounds the table lists. Ordering is by key (ties broken by
// insertion sequence so duplicate keys remain distinguishable), with an
// independent random priority maintaining balance.
type TreapHeap[K any, V any] struct {
	less LessFunc[K]

	keys     []K
	vals     []V
	priority []uint64
	seq      []uint64
	left     []int32
	right    []int32
	parent   []int32
	gens     []uint32
	alive    []bool
	free     []int32

	root    int32
	nextSeq uint64
	count   int
}

var _ Heap[int, int] = (*TreapHeap[int, int])(nil)

// NewTreap constructs an empty treap-backed heap ordered by less.
func NewTreap[K any, V any](less LessFunc[K]) *TreapHeap[K, V] {
	return &TreapHeap[K, V]{less: less, root: -1}
}

func (h *TreapHeap[K, V]) Len() int { return h.count }

func (h *TreapHeap[K, V]) alloc(key K, val V) int32 {
	seq := h.nextSeq
	h.nextSeq++
	prio := uint64(rand.Int63())
	if n := len(h.free); n > 0 {
		slot := h.free[n-1]
		h.free = h.free[:n-1]
		h.keys[slot], h.vals[slot] = key, val
		h.priority[slot], h.seq[slot] = prio, seq
		h.left[slot], h.right[slot], h.parent[slot] = -1, -1, -1
		h.alive[slot] = true
		return slot
	}
	h.keys = append(h.keys, key)
	h.vals = append(h.vals, val)
	h.priority = append(h.priority, prio)
	h.seq = append(h.seq, seq)
	h.left = append(h.left, -1)
	h.right = append(h.right, -1)
	h.parent = append(h.parent, -1)
	h.gens = append(h.gens, 0)
	h.alive = append(h.alive, true)
	return int32(len(h.keys) - 1)
}

func (h *TreapHeap[K, V]) nodeLess(a, b int32) bool {
	if h.less(h.keys[a], h.keys[b]) {
		return true
	}
	if h.less(h.keys[b], h.keys[a]) {
		return false
	}
	return h.seq[a] < h.seq[b]
}

func (h *TreapHeap[K, V]) rotateLeft(p int32) {
	x := h.right[p]
	gp := h.parent[p]
	h.right[p] = h.left[x]
	if h.left[x] != -1 {
		h.parent[h.left[x]] = p
	}
	h.left[x] = p
	h.parent[p] = x
	h.parent[x] = gp
	if gp != -1 {
		if h.left[gp] == p {
			h.left[gp] = x
		} else {
			h.right[gp] = x
		}
	} else {
		h.root = x
	}
}

func (h *TreapHeap[K, V]) rotateRight(p int32) {
	x := h.left[p]
	gp := h.parent[p]
	h.left[p] = h.right[x]
	if h.right[x] != -1 {
		h.parent[h.right[x]] = p
	}
	h.right[x] = p
	h.parent[p] = x
	h.parent[x] = gp
	if gp != -1 {
		if h.left[gp] == p {
			h.left[gp] = x
		} else {
			h.right[gp] = x
		}
	} else {
		h.root = x
	}
}

// insertExisting places an already-allocated, detached slot into the tree
// by key order, then bubbles it up via rotations while its priority beats
// its parent's (min-heap on priority, so the minimum key tends toward the
// root but the real invariant enforced is priority, not key).
func (h *TreapHeap[K, V]) insertExisting(slot int32) {
	if h.root == -1 {
		h.root = slot
		return
	}
	cur := h.root
	for {
		if h.nodeLess(slot, cur) {
			if h.left[cur] == -1 {
				h.left[cur] = slot
				h.parent[slot] = cur
				break
			}
			cur = h.left[cur]
		} else {
			if h.right[cur] == -1 {
				h.right[cur] = slot
				h.parent[slot] = cur
				break
			}
			cur = h.right[cur]
		}
	}
	for h.parent[slot] != -1 && h.priority[slot] < h.priority[h.parent[slot]] {
		p := h.parent[slot]
		if h.left[p] == slot {
			h.rotateRight(p)
		} else {
			h.rotateLeft(p)
		}
	}
}

func (h *TreapHeap[K, V]) leftmost(node int32) int32 {
	for h.left[node] != -1 {
		node = h.left[node]
	}
	return node
}

// deleteNode rotates x down to a leaf (always promoting the lower-priority
// child) and unlinks it, preserving both the BST and priority invariants
// for every other node.
func (h *TreapHeap[K, V]) deleteNode(x int32) {
	for h.left[x] != -1 || h.right[x] != -1 {
		switch {
		case h.left[x] == -1:
			h.rotateLeft(x)
		case h.right[x] == -1:
			h.rotateRight(x)
		case h.priority[h.left[x]] < h.priority[h.right[x]]:
			h.rotateRight(x)
		default:
			h.rotateLeft(x)
		}
	}
	p := h.parent[x]
	if p == -1 {
		h.root = -1
	} else if h.left[p] == x {
		h.left[p] = -1
	} else {
		h.right[p] = -1
	}
	h.parent[x] = -1
}

func (h *TreapHeap[K, V]) Insert(key K, value V) Ref {
	slot := h.alloc(key, value)
	h.insertExisting(slot)
	h.count++
	return Ref{idx: slot, gen: h.gens[slot]}
}

func (h *TreapHeap[K, V]) FindMin() (Ref, K, V, bool) {
	if h.root == -1 {
		var zk K
		var zv V
		return NullRef, zk, zv, false
	}
	m := h.leftmost(h.root)
	return Ref{idx: m, gen: h.gens[m]}, h.keys[m], h.vals[m], true
}

func (h *TreapHeap[K, V]) ExtractMin() (K, V, bool) {
	if h.root == -1 {
		var zk K
		var zv V
		return zk, zv, false
	}
	m := h.leftmost(h.root)
	key, val := h.keys[m], h.vals[m]
	h.deleteNode(m)
	h.gens[m]++
	h.alive[m] = false
	h.free = append(h.free, m)
	h.count--
	return key, val, true
}

func (h *TreapHeap[K, V]) live(ref Ref) bool {
	return ref.idx >= 0 && int(ref.idx) < len(h.gens) && h.gens[ref.idx] == ref.gen && h.alive[ref.idx]
}

// DecreaseKey removes and reinserts the node under its new key: a treap's
// position is determined by key order, so a key change can only be
// honoured by relocating the node, not by a local fixup. The handle (slot)
// is preserved across the move.
func (h *TreapHeap[K, V]) DecreaseKey(ref Ref, newKey K) error {
	if !h.live(ref) {
		return ErrStaleHandle
	}
	x := ref.idx
	h.deleteNode(x)
	h.keys[x] = newKey
	h.insertExisting(x)
	return nil
}

func (h *TreapHeap[K, V]) Remove(ref Ref) error {
	if !h.live(ref) {
		return ErrStaleHandle
	}
	x := ref.idx
	h.deleteNode(x)
	h.gens[x]++
	h.alive[x] = false
	h.free = append(h.free, x)
	h.count--
	return nil
}

// Meld drains other by repeated extract-and-insert, as with BinaryHeap:
// two independently allocated treaps have no shared node arena to join in
// place, so the specialised O(log n) treap-union-by-split algorithm is not
// applied here; this is the same documented tradeoff as BinaryHeap.Meld.
func (h *TreapHeap[K, V]) Meld(other Heap[K, V]) error {
	o, ok := other.(*TreapHeap[K, V])
	if !ok {
		return ErrIncompatibleMeld
	}
	for {
		k, v, ok2 := o.ExtractMin()
		if !ok2 {
			return nil
		}
		h.Insert(k, v)
	}
}
