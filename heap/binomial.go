package heap

// bnode is an arena-indexed binomial tree node. Children of one parent and
// root siblings both chain through `sibling`; NULL is represented as -1.
type bnode struct {
	parent, child, sibling int32
	degree                 int32
	refSlot                int32 // index into the heap's key/value arena
}

// BinomialHeap is a forest of binomial trees (CLRS-style), with the
// degree-ordered root list threaded through bnode.sibling starting at head.
// decreaseKey and remove follow the classic satellite-data-swap technique:
// a Ref identifies a slot in the key/value arena, not a tree node, so
// bubbling a node up the tree is done by swapping which slot each node
// holds rather than relinking tree structure (which binomial trees cannot
// do arbitrarily without breaking the degree invariant).
type BinomialHeap[K any, V any] struct {
	less LessFunc[K]

	keys   []K
	vals   []V
	gens   []uint32
	nodeOf []int32 // ref slot -> current tree node index, -1 if freed
	free   []int32 // free ref slots

	nodes     []bnode
	freeNodes []int32
	head      int32 // first root, -1 if empty
	minNode   int32 // cached minimum root, -1 if empty
	count     int
}

var _ Heap[int, int] = (*BinomialHeap[int, int])(nil)

// NewBinomial constructs an empty binomial heap ordered by less.
func NewBinomial[K any, V any](less LessFunc[K]) *BinomialHeap[K, V] {
	return &BinomialHeap[K, V]{less: less, head: -1, minNode: -1}
}

func (h *BinomialHeap[K, V]) Len() int { return h.count }

func (h *BinomialHeap[K, V]) keyOf(nodeIdx int32) K { return h.keys[h.nodes[nodeIdx].refSlot] }

func (h *BinomialHeap[K, V]) allocRefSlot(key K, val V) int32 {
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
	h.nodeOf = append(h.nodeOf, -1)
	return int32(len(h.keys) - 1)
}

func (h *BinomialHeap[K, V]) freeRefSlot(slot int32) {
	h.gens[slot]++
	h.nodeOf[slot] = -1
	h.free = append(h.free, slot)
}

func (h *BinomialHeap[K, V]) allocNode(refSlot int32) int32 {
	fresh := bnode{parent: -1, child: -1, sibling: -1, degree: 0, refSlot: refSlot}
	if n := len(h.freeNodes); n > 0 {
		idx := h.freeNodes[n-1]
		h.freeNodes = h.freeNodes[:n-1]
		h.nodes[idx] = fresh
		return idx
	}
	h.nodes = append(h.nodes, fresh)
	return int32(len(h.nodes) - 1)
}

func (h *BinomialHeap[K, V]) swapRefSlots(a, b int32) {
	ra, rb := h.nodes[a].refSlot, h.nodes[b].refSlot
	h.nodes[a].refSlot, h.nodes[b].refSlot = rb, ra
	h.nodeOf[ra] = b
	h.nodeOf[rb] = a
}

// link makes y the parent of z; caller guarantees key(y) <= key(z).
func (h *BinomialHeap[K, V]) link(y, z int32) {
	h.nodes[z].parent = y
	h.nodes[z].sibling = h.nodes[y].child
	h.nodes[y].child = z
	h.nodes[y].degree++
}

// mergeRootLists merges two degree-ascending root chains into one,
// consuming both (without yet collapsing equal-degree pairs).
func (h *BinomialHeap[K, V]) mergeRootLists(a, b int32) int32 {
	if a == -1 {
		return b
	}
	if b == -1 {
		return a
	}
	var headRes, tail int32 = -1, -1
	push := func(idx int32) {
		if headRes == -1 {
			headRes = idx
		} else {
			h.nodes[tail].sibling = idx
		}
		tail = idx
	}
	for a != -1 && b != -1 {
		if h.nodes[a].degree <= h.nodes[b].degree {
			push(a)
			a = h.nodes[a].sibling
		} else {
			push(b)
			b = h.nodes[b].sibling
		}
	}
	rest := a
	if a == -1 {
		rest = b
	}
	if tail == -1 {
		return rest
	}
	h.nodes[tail].sibling = rest
	return headRes
}

// union merges root lists a and b, collapsing equal-degree trees (the
// binary-adder step), and returns the new head.
func (h *BinomialHeap[K, V]) union(a, b int32) int32 {
	head := h.mergeRootLists(a, b)
	if head == -1 {
		return -1
	}
	prevX, x := int32(-1), head
	nextX := h.nodes[x].sibling
	for nextX != -1 {
		sameDegree := h.nodes[x].degree == h.nodes[nextX].degree
		tripleAhead := sameDegree && h.nodes[nextX].sibling != -1 && h.nodes[h.nodes[nextX].sibling].degree == h.nodes[x].degree
		switch {
		case !sameDegree || tripleAhead:
			prevX, x = x, nextX
		case !h.less(h.keyOf(nextX), h.keyOf(x)): // key(x) <= key(nextX)
			h.nodes[x].sibling = h.nodes[nextX].sibling
			h.link(x, nextX)
		default:
			if prevX == -1 {
				head = nextX
			} else {
				h.nodes[prevX].sibling = nextX
			}
			h.link(nextX, x)
			x = nextX
		}
		nextX = h.nodes[x].sibling
	}
	return head
}

func (h *BinomialHeap[K, V]) recomputeMin() {
	if h.head == -1 {
		h.minNode = -1
		return
	}
	best := h.head
	for cur := h.nodes[h.head].sibling; cur != -1; cur = h.nodes[cur].sibling {
		if h.less(h.keyOf(cur), h.keyOf(best)) {
			best = cur
		}
	}
	h.minNode = best
}

// removeRoot splices target out of the root chain, promotes its children
// to roots, and re-merges them into the remaining forest.
func (h *BinomialHeap[K, V]) removeRoot(target int32) {
	prev, cur := int32(-1), h.head
	for cur != target {
		prev = cur
		cur = h.nodes[cur].sibling
	}
	if prev == -1 {
		h.head = h.nodes[target].sibling
	} else {
		h.nodes[prev].sibling = h.nodes[target].sibling
	}

	child := h.nodes[target].child
	var childHead int32 = -1
	for child != -1 {
		next := h.nodes[child].sibling
		h.nodes[child].sibling = childHead
		h.nodes[child].parent = -1
		childHead = child
		child = next
	}
	h.head = h.union(h.head, childHead)
	h.freeNodes = append(h.freeNodes, target)
	h.recomputeMin()
}

func (h *BinomialHeap[K, V]) Insert(key K, value V) Ref {
	slot := h.allocRefSlot(key, value)
	nodeIdx := h.allocNode(slot)
	h.nodeOf[slot] = nodeIdx
	h.head = h.union(h.head, nodeIdx)
	h.recomputeMin()
	h.count++
	return Ref{idx: slot, gen: h.gens[slot]}
}

func (h *BinomialHeap[K, V]) FindMin() (Ref, K, V, bool) {
	if h.head == -1 {
		var zk K
		var zv V
		return NullRef, zk, zv, false
	}
	slot := h.nodes[h.minNode].refSlot
	return Ref{idx: slot, gen: h.gens[slot]}, h.keys[slot], h.vals[slot], true
}

func (h *BinomialHeap[K, V]) ExtractMin() (K, V, bool) {
	if h.head == -1 {
		var zk K
		var zv V
		return zk, zv, false
	}
	slot := h.nodes[h.minNode].refSlot
	key, val := h.keys[slot], h.vals[slot]
	h.removeRoot(h.minNode)
	h.freeRefSlot(slot)
	h.count--
	return key, val, true
}

func (h *BinomialHeap[K, V]) live(ref Ref) bool {
	return ref.idx >= 0 && int(ref.idx) < len(h.gens) && h.gens[ref.idx] == ref.gen && h.nodeOf[ref.idx] != -1
}

func (h *BinomialHeap[K, V]) DecreaseKey(ref Ref, newKey K) error {
	if !h.live(ref) {
		return ErrStaleHandle
	}
	h.keys[ref.idx] = newKey
	nodeIdx := h.nodeOf[ref.idx]
	for {
		p := h.nodes[nodeIdx].parent
		if p == -1 || !h.less(h.keyOf(nodeIdx), h.keyOf(p)) {
			break
		}
		h.swapRefSlots(nodeIdx, p)
		nodeIdx = p
	}
	h.recomputeMin()
	return nil
}

func (h *BinomialHeap[K, V]) Remove(ref Ref) error {
	if !h.live(ref) {
		return ErrStaleHandle
	}
	nodeIdx := h.nodeOf[ref.idx]
	for h.nodes[nodeIdx].parent != -1 {
		p := h.nodes[nodeIdx].parent
		h.swapRefSlots(nodeIdx, p)
		nodeIdx = p
	}
	h.removeRoot(nodeIdx)
	h.freeRefSlot(ref.idx)
	h.count--
	return nil
}

// Meld absorbs other (which must also be a *BinomialHeap[K,V]) via the
// binary-adder union, O(log n) in the combined size, after copying other's
// node and slot arenas into h (O(size of other)). other is left empty.
func (h *BinomialHeap[K, V]) Meld(other Heap[K, V]) error {
	o, ok := other.(*BinomialHeap[K, V])
	if !ok {
		return ErrIncompatibleMeld
	}
	if o.head == -1 {
		return nil
	}
	nodeOffset := int32(len(h.nodes))
	slotOffset := int32(len(h.keys))

	h.keys = append(h.keys, o.keys...)
	h.vals = append(h.vals, o.vals...)
	h.gens = append(h.gens, o.gens...)
	base := len(h.nodeOf)
	h.nodeOf = append(h.nodeOf, o.nodeOf...)
	for i := base; i < len(h.nodeOf); i++ {
		if h.nodeOf[i] != -1 {
			h.nodeOf[i] += nodeOffset
		}
	}

	for _, nd := range o.nodes {
		if nd.parent >= 0 {
			nd.parent += nodeOffset
		}
		if nd.child >= 0 {
			nd.child += nodeOffset
		}
		if nd.sibling >= 0 {
			nd.sibling += nodeOffset
		}
		nd.refSlot += slotOffset
		h.nodes = append(h.nodes, nd)
	}

	otherHead := o.head + nodeOffset
	h.head = h.union(h.head, otherHead)
	h.recomputeMin()
	h.count += o.count

	o.head, o.minNode, o.count = -1, -1, 0
	o.nodes, o.keys, o.vals, o.gens, o.nodeOf, o.free, o.freeNodes = nil, nil, nil, nil, nil, nil, nil
	return nil
}
