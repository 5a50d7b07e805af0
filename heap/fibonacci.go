package heap

import "math"

// FibonacciHeap is the classic Fibonacci heap: nodes carry
// (key,value,parent,child,left,right,degree,marked); roots form a circular
// doubly-linked list with a cached min pointer; extractMin splices the
// min's children into the root list and consolidates by degree;
// decreaseKey cuts a node that now violates heap order and cascades the
// cut up through marked ancestors.
type FibonacciHeap[K any, V any] struct {
	less LessFunc[K]

	keys   []K
	vals   []V
	parent []int32
	child  []int32
	left   []int32
	right  []int32
	degree []int32
	marked []bool
	gens   []uint32
	alive  []bool
	free   []int32

	min   int32 // -1 if empty
	count int
}

var _ Heap[int, int] = (*FibonacciHeap[int, int])(nil)

// NewFibonacci constructs an empty Fibonacci heap ordered by less.
func NewFibonacci[K any, V any](less LessFunc[K]) *FibonacciHeap[K, V] {
	return &FibonacciHeap[K, V]{less: less, min: -1}
}

func (h *FibonacciHeap[K, V]) Len() int { return h.count }

func (h *FibonacciHeap[K, V]) alloc(key K, val V) int32 {
	if n := len(h.free); n > 0 {
		slot := h.free[n-1]
		h.free = h.free[:n-1]
		h.keys[slot], h.vals[slot] = key, val
		h.parent[slot], h.child[slot] = -1, -1
		h.left[slot], h.right[slot] = slot, slot
		h.degree[slot], h.marked[slot], h.alive[slot] = 0, false, true
		return slot
	}
	h.keys = append(h.keys, key)
	h.vals = append(h.vals, val)
	h.parent = append(h.parent, -1)
	h.child = append(h.child, -1)
	slot := int32(len(h.keys) - 1)
	h.left = append(h.left, slot)
	h.right = append(h.right, slot)
	h.degree = append(h.degree, 0)
	h.marked = append(h.marked, false)
	h.gens = append(h.gens, 0)
	h.alive = append(h.alive, true)
	return slot
}

// spliceIntoList inserts x as a new neighbour of anchor in a circular
// doubly-linked list (or makes x a singleton list if anchor is -1).
func (h *FibonacciHeap[K, V]) spliceIntoList(anchor, x int32) {
	if anchor == -1 {
		h.left[x], h.right[x] = x, x
		return
	}
	r := h.right[anchor]
	h.right[anchor], h.left[x] = x, anchor
	h.right[x], h.left[r] = r, x
}

// removeFromList unlinks x from whatever circular list it is in, leaving
// x as an isolated singleton.
func (h *FibonacciHeap[K, V]) removeFromList(x int32) {
	l, r := h.left[x], h.right[x]
	h.right[l], h.left[r] = r, l
	h.left[x], h.right[x] = x, x
}

func (h *FibonacciHeap[K, V]) addToRootList(x int32) {
	h.parent[x] = -1
	h.spliceIntoList(h.min, x)
	if h.min == -1 || h.less(h.keys[x], h.keys[h.min]) {
		h.min = x
	}
}

func (h *FibonacciHeap[K, V]) Insert(key K, value V) Ref {
	slot := h.alloc(key, value)
	h.addToRootList(slot)
	h.count++
	return Ref{idx: slot, gen: h.gens[slot]}
}

func (h *FibonacciHeap[K, V]) FindMin() (Ref, K, V, bool) {
	if h.min == -1 {
		var zk K
		var zv V
		return NullRef, zk, zv, false
	}
	return Ref{idx: h.min, gen: h.gens[h.min]}, h.keys[h.min], h.vals[h.min], true
}

// addChild attaches x as a child of parentIdx.
func (h *FibonacciHeap[K, V]) addChild(parentIdx, x int32) {
	h.parent[x] = parentIdx
	if h.child[parentIdx] == -1 {
		h.left[x], h.right[x] = x, x
		h.child[parentIdx] = x
	} else {
		h.spliceIntoList(h.child[parentIdx], x)
	}
	h.degree[parentIdx]++
}

// link makes y a child of x; caller guarantees key(x) <= key(y).
func (h *FibonacciHeap[K, V]) link(x, y int32) {
	h.removeFromList(y)
	h.addChild(x, y)
	h.marked[y] = false
}

func (h *FibonacciHeap[K, V]) consolidate() {
	maxDegree := 1
	if h.count > 1 {
		maxDegree = int(math.Log(float64(h.count))/math.Log(1.61803398875)) + 2
	}
	table := make([]int32, maxDegree+1)
	for i := range table {
		table[i] = -1
	}

	var roots []int32
	if h.min != -1 {
		start := h.min
		for cur := start; ; {
			roots = append(roots, cur)
			cur = h.right[cur]
			if cur == start {
				break
			}
		}
	}

	for _, w := range roots {
		x := w
		d := int(h.degree[x])
		for table[d] != -1 {
			y := table[d]
			if h.less(h.keys[y], h.keys[x]) {
				x, y = y, x
			}
			h.link(x, y)
			table[d] = -1
			d++
		}
		table[d] = x
	}

	h.min = -1
	for _, node := range table {
		if node == -1 {
			continue
		}
		h.left[node], h.right[node] = node, node
		h.addToRootList(node)
	}
}

func (h *FibonacciHeap[K, V]) ExtractMin() (K, V, bool) {
	z := h.min
	if z == -1 {
		var zk K
		var zv V
		return zk, zv, false
	}
	key, val := h.keys[z], h.vals[z]

	if c := h.child[z]; c != -1 {
		for cur := c; ; {
			next := h.right[cur]
			h.removeFromList(cur)
			h.addToRootList(cur)
			cur = next
			if cur == c {
				break
			}
		}
	}
	h.child[z] = -1

	if h.right[z] == z {
		h.min = -1
	} else {
		h.min = h.right[z]
		h.removeFromList(z)
		h.consolidate()
	}

	h.gens[z]++
	h.alive[z] = false
	h.free = append(h.free, z)
	h.count--
	return key, val, true
}

func (h *FibonacciHeap[K, V]) live(ref Ref) bool {
	return ref.idx >= 0 && int(ref.idx) < len(h.gens) && h.gens[ref.idx] == ref.gen && h.alive[ref.idx]
}

// cut detaches x from its parent y and reinserts it as a root.
func (h *FibonacciHeap[K, V]) cut(x, y int32) {
	if h.child[y] == x {
		if h.right[x] == x {
			h.child[y] = -1
		} else {
			h.child[y] = h.right[x]
		}
	}
	h.removeFromList(x)
	h.degree[y]--
	h.addToRootList(x)
	h.marked[x] = false
}

func (h *FibonacciHeap[K, V]) cascadingCut(y int32) {
	p := h.parent[y]
	if p == -1 {
		return
	}
	if !h.marked[y] {
		h.marked[y] = true
		return
	}
	h.cut(y, p)
	h.cascadingCut(p)
}

func (h *FibonacciHeap[K, V]) DecreaseKey(ref Ref, newKey K) error {
	if !h.live(ref) {
		return ErrStaleHandle
	}
	x := ref.idx
	h.keys[x] = newKey
	y := h.parent[x]
	if y != -1 && h.less(newKey, h.keys[y]) {
		h.cut(x, y)
		h.cascadingCut(y)
	}
	if h.less(newKey, h.keys[h.min]) {
		h.min = x
	}
	return nil
}

// Remove deletes the node referenced by ref regardless of its key, without
// requiring a sentinel "negative infinity": it promotes ref to a root (via
// the same cut/cascading-cut as decreaseKey), splices its children into the
// root list, and unlinks it.
func (h *FibonacciHeap[K, V]) Remove(ref Ref) error {
	if !h.live(ref) {
		return ErrStaleHandle
	}
	x := ref.idx
	if y := h.parent[x]; y != -1 {
		h.cut(x, y)
		h.cascadingCut(y)
	}
	if c := h.child[x]; c != -1 {
		for cur := c; ; {
			next := h.right[cur]
			h.removeFromList(cur)
			h.addToRootList(cur)
			cur = next
			if cur == c {
				break
			}
		}
		h.child[x] = -1
	}

	wasMin := x == h.min
	if h.right[x] == x {
		h.removeFromList(x)
		if wasMin {
			h.min = -1
		}
	} else {
		next := h.right[x]
		h.removeFromList(x)
		if wasMin {
			h.min = next
		}
	}
	if h.min != -1 {
		h.consolidate()
	}

	h.gens[x]++
	h.alive[x] = false
	h.free = append(h.free, x)
	h.count--
	return nil
}

// Meld copies other's node arena into h (O(size of other)) and then
// concatenates the two root lists in O(1), the standard Fibonacci-heap meld.
func (h *FibonacciHeap[K, V]) Meld(other Heap[K, V]) error {
	o, ok := other.(*FibonacciHeap[K, V])
	if !ok {
		return ErrIncompatibleMeld
	}
	if o.min == -1 {
		return nil
	}
	offset := int32(len(h.keys))
	h.keys = append(h.keys, o.keys...)
	h.vals = append(h.vals, o.vals...)
	h.gens = append(h.gens, o.gens...)
	h.marked = append(h.marked, o.marked...)
	h.alive = append(h.alive, o.alive...)
	h.degree = append(h.degree, o.degree...)
	for _, p := range o.parent {
		if p >= 0 {
			p += offset
		}
		h.parent = append(h.parent, p)
	}
	for _, c := range o.child {
		if c >= 0 {
			c += offset
		}
		h.child = append(h.child, c)
	}
	for _, l := range o.left {
		h.left = append(h.left, l+offset)
	}
	for _, r := range o.right {
		h.right = append(h.right, r+offset)
	}

	otherMin := o.min + offset
	if h.min == -1 {
		h.min = otherMin
	} else {
		a, b := h.min, otherMin
		ar, br := h.right[a], h.right[b]
		h.right[a], h.left[br] = br, a
		h.right[b], h.left[ar] = ar, b
		if h.less(h.keys[otherMin], h.keys[h.min]) {
			h.min = otherMin
		}
	}
	h.count += o.count

	o.keys, o.vals, o.gens, o.marked, o.alive, o.degree = nil, nil, nil, nil, nil, nil
	o.parent, o.child, o.left, o.right, o.free = nil, nil, nil, nil, nil
	o.min, o.count = -1, 0
	return nil
}
