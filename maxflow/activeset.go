package maxflow

// activeSet tracks vertices with positive excess awaiting discharge, in the
// order dictated by a Strategy. The four Strategy variants differ
// only in this selection policy; the discharge/relabel core in
// pushrelabel.go is shared. HighestLabel and LowestLabel read heights
// directly off the shared height slice (rather than a private copy) so a
// relabel of more than one level, or a global relabeling pass, is reflected
// immediately without any resynchronization step.
type activeSet struct {
	strategy     Strategy
	source, sink int
	height       []int // shared with PushRelabel's height array

	// FIFO: a plain queue with an "already queued" guard.
	queue  []int
	queued []bool

	// HighestLabel / LowestLabel: the flat set of active vertices,
	// scanned for the current extreme height on each next() call. This
	// trades the classic bucket-queue's O(1) extraction for a simple,
	// always-correct implementation; n is expected to stay small enough
	// in this library's use that an O(active) scan per discharge is
	// immaterial.
	members []int
	active  []bool

	// MoveToFront: a single list of all vertices, walked from its head;
	// relabeling a vertex moves it back to the head.
	mtfOrder []int
	mtfPos   int
	mtfIn    []bool
}

func newActiveSet(strategy Strategy, n, source, sink int, height []int) *activeSet {
	a := &activeSet{strategy: strategy, source: source, sink: sink, height: height}
	switch strategy {
	case FIFO:
		a.queued = make([]bool, n)
	case HighestLabel, LowestLabel:
		a.active = make([]bool, n)
	case MoveToFront:
		a.mtfOrder = make([]int, 0, n)
		a.mtfIn = make([]bool, n)
		for v := 0; v < n; v++ {
			if v != source && v != sink {
				a.mtfOrder = append(a.mtfOrder, v)
			}
		}
	}
	return a
}

func (a *activeSet) add(v int) {
	if v == a.source || v == a.sink {
		return
	}
	switch a.strategy {
	case FIFO:
		if !a.queued[v] {
			a.queued[v] = true
			a.queue = append(a.queue, v)
		}
	case HighestLabel, LowestLabel:
		if !a.active[v] {
			a.active[v] = true
			a.members = append(a.members, v)
		}
	case MoveToFront:
		if !a.mtfIn[v] {
			a.mtfIn[v] = true
			a.mtfOrder = append(a.mtfOrder, v)
		}
	}
}

// onRelabel notifies the active set that v's height just changed, so
// move-to-front can restart its scan from v. The bucket strategies need no
// action: they read height lazily from the shared slice.
func (a *activeSet) onRelabel(v int) {
	if a.strategy != MoveToFront {
		return
	}
	for i, u := range a.mtfOrder {
		if u == v {
			a.mtfOrder = append(a.mtfOrder[:i], a.mtfOrder[i+1:]...)
			break
		}
	}
	a.mtfOrder = append([]int{v}, a.mtfOrder...)
	a.mtfPos = 0
}

// next returns the next vertex to discharge, or false once none remain.
func (a *activeSet) next() (int, bool) {
	switch a.strategy {
	case FIFO:
		for len(a.queue) > 0 {
			v := a.queue[0]
			a.queue = a.queue[1:]
			a.queued[v] = false
			return v, true
		}
		return 0, false
	case HighestLabel, LowestLabel:
		best := -1
		for i, v := range a.members {
			if !a.active[v] {
				continue
			}
			if best == -1 {
				best = i
				continue
			}
			if a.strategy == HighestLabel && a.height[v] > a.height[a.members[best]] {
				best = i
			}
			if a.strategy == LowestLabel && a.height[v] < a.height[a.members[best]] {
				best = i
			}
		}
		if best == -1 {
			a.members = a.members[:0]
			return 0, false
		}
		v := a.members[best]
		a.members = append(a.members[:best], a.members[best+1:]...)
		a.active[v] = false
		return v, true
	case MoveToFront:
		for a.mtfPos < len(a.mtfOrder) {
			v := a.mtfOrder[a.mtfPos]
			a.mtfPos++
			if a.mtfIn[v] {
				a.mtfIn[v] = false
				return v, true
			}
		}
		return 0, false
	}
	return 0, false
}
