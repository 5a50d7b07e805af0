package indexgraph

// LinkedGraph is the linked-list-backed IndexGraph back-end:
// each vertex's adjacency is a doubly-linked list of edge ids, arena-indexed
// (NULL = -1) rather than built from pointers, so RemoveEdge given an edge
// id is O(1) instead of the array back-end's O(deg) scan. Vertex removal
// remains O(deg) because the moved-in vertex's incident edges must still be
// relabeled.
type LinkedGraph struct {
	core

	frozen bool

	// head/tail anchor the "primary" list per vertex: the out-list for a
	// directed graph, or the full incident list for an undirected graph.
	head []int32
	tail []int32
	// headIn/tailIn anchor the in-list per vertex; directed graphs only.
	headIn []int32
	tailIn []int32

	// Per-edge doubly-linked pointers, arena-indexed by edge id.
	nextOut []int32
	prevOut []int32
	nextIn  []int32
	prevIn  []int32
}

var _ IndexGraph = (*LinkedGraph)(nil)

const nilIdx = -1

// NewLinkedDirected returns an empty, mutable, linked-list-backed directed graph.
func NewLinkedDirected() *LinkedGraph {
	return &LinkedGraph{core: newCore(true)}
}

// NewLinkedUndirected returns an empty, mutable, linked-list-backed undirected graph.
func NewLinkedUndirected() *LinkedGraph {
	return &LinkedGraph{core: newCore(false)}
}

func (g *LinkedGraph) IndexGraph() IndexGraph { return g }

func (g *LinkedGraph) AddVertex() int {
	v := g.n
	g.head = append(g.head, nilIdx)
	g.tail = append(g.tail, nilIdx)
	if g.directed {
		g.headIn = append(g.headIn, nilIdx)
		g.tailIn = append(g.tailIn, nilIdx)
	}
	g.n++
	g.vCols.notifyAdd()
	return v
}

func (g *LinkedGraph) RemoveVertex(v int) error {
	if g.frozen {
		return ErrFrozen
	}
	if v < 0 || v >= g.n {
		return &NoSuchVertexError{Index: v}
	}
	for {
		e := g.head[v]
		if e == nilIdx && g.directed {
			e = g.headIn[v]
		}
		if e == nilIdx {
			break
		}
		if err := g.RemoveEdge(int(e)); err != nil {
			return err
		}
	}

	last := g.n - 1
	if v != last {
		g.head[v], g.tail[v] = g.head[last], g.tail[last]
		if g.directed {
			g.headIn[v], g.tailIn[v] = g.headIn[last], g.tailIn[last]
		}
		g.forEachEdge(v, func(e int32) {
			if int(g.edgeSrc[e]) == last {
				g.edgeSrc[e] = int32(v)
			}
			if int(g.edgeTgt[e]) == last {
				g.edgeTgt[e] = int32(v)
			}
		})
	}
	g.head = g.head[:last]
	g.tail = g.tail[:last]
	if g.directed {
		g.headIn = g.headIn[:last]
		g.tailIn = g.tailIn[:last]
	}
	g.n = last
	g.notifyVertexRemoved(v, last)
	return nil
}

// forEachEdge walks every edge incident to v across both of its lists.
func (g *LinkedGraph) forEachEdge(v int, fn func(e int32)) {
	for e := g.head[v]; e != nilIdx; e = g.nextOut[e] {
		fn(e)
	}
	if g.directed {
		for e := g.headIn[v]; e != nilIdx; e = g.nextIn[e] {
			fn(e)
		}
	}
}

func (g *LinkedGraph) pushPrimary(v int, e int32) {
	g.prevOut[e] = g.tail[v]
	g.nextOut[e] = nilIdx
	if g.tail[v] != nilIdx {
		g.nextOut[g.tail[v]] = e
	} else {
		g.head[v] = e
	}
	g.tail[v] = e
}

func (g *LinkedGraph) unlinkPrimary(v int, e int32) {
	p, nx := g.prevOut[e], g.nextOut[e]
	if p != nilIdx {
		g.nextOut[p] = nx
	} else {
		g.head[v] = nx
	}
	if nx != nilIdx {
		g.prevOut[nx] = p
	} else {
		g.tail[v] = p
	}
}

func (g *LinkedGraph) pushSecondary(v int, e int32) {
	g.prevIn[e] = g.tailIn[v]
	g.nextIn[e] = nilIdx
	if g.tailIn[v] != nilIdx {
		g.nextIn[g.tailIn[v]] = e
	} else {
		g.headIn[v] = e
	}
	g.tailIn[v] = e
}

func (g *LinkedGraph) unlinkSecondary(v int, e int32) {
	p, nx := g.prevIn[e], g.nextIn[e]
	if p != nilIdx {
		g.nextIn[p] = nx
	} else {
		g.headIn[v] = nx
	}
	if nx != nilIdx {
		g.prevIn[nx] = p
	} else {
		g.tailIn[v] = p
	}
}

func (g *LinkedGraph) AddEdge(u, v int) (int, error) {
	if g.frozen {
		return -1, ErrFrozen
	}
	if u < 0 || u >= g.n {
		return -1, &NoSuchVertexError{Index: u}
	}
	if v < 0 || v >= g.n {
		return -1, &NoSuchVertexError{Index: v}
	}
	e := int32(g.m)
	g.edgeSrc = append(g.edgeSrc, int32(u))
	g.edgeTgt = append(g.edgeTgt, int32(v))
	g.nextOut = append(g.nextOut, nilIdx)
	g.prevOut = append(g.prevOut, nilIdx)
	g.nextIn = append(g.nextIn, nilIdx)
	g.prevIn = append(g.prevIn, nilIdx)
	g.m++

	g.pushPrimary(u, e)
	if g.directed {
		g.pushSecondary(v, e)
	} else if u != v {
		// Undirected second appearance reuses the primary list of v.
		g.pushPrimary(v, e)
	}
	g.eCols.notifyAdd()
	return int(e), nil
}

// removeMemberships unlinks e from every adjacency list it currently
// belongs to: the primary list of u, and either the secondary (in) list of
// v (directed) or a second primary-list membership at v (undirected, u!=v).
func (g *LinkedGraph) removeMemberships(e int32, u, v int) {
	g.unlinkPrimary(u, e)
	if g.directed {
		g.unlinkSecondary(v, e)
	} else if u != v {
		g.unlinkPrimary(v, e)
	}
}

func (g *LinkedGraph) RemoveEdge(e int) error {
	if g.frozen {
		return ErrFrozen
	}
	if e < 0 || e >= g.m {
		return &NoSuchEdgeError{Index: e}
	}
	ei := int32(e)
	u, v := int(g.edgeSrc[e]), int(g.edgeTgt[e])
	g.removeMemberships(ei, u, v)

	last := int32(g.m - 1)
	if ei != last {
		lastU, lastV := int(g.edgeSrc[last]), int(g.edgeTgt[last])
		g.removeMemberships(last, lastU, lastV)
		g.edgeSrc[e] = int32(lastU)
		g.edgeTgt[e] = int32(lastV)
		g.pushPrimary(lastU, ei)
		if g.directed {
			g.pushSecondary(lastV, ei)
		} else if lastU != lastV {
			g.pushPrimary(lastV, ei)
		}
	}
	g.edgeSrc = g.edgeSrc[:last]
	g.edgeTgt = g.edgeTgt[:last]
	g.nextOut = g.nextOut[:last]
	g.prevOut = g.prevOut[:last]
	g.nextIn = g.nextIn[:last]
	g.prevIn = g.prevIn[:last]
	g.m = int(last)
	g.notifyEdgeRemoved(e, int(last))
	return nil
}

func (g *LinkedGraph) OutEdges(v int) []int32 {
	var out []int32
	for e := g.head[v]; e != nilIdx; e = g.nextOut[e] {
		out = append(out, e)
	}
	return out
}

func (g *LinkedGraph) InEdges(v int) []int32 {
	if !g.directed {
		return g.OutEdges(v)
	}
	var out []int32
	for e := g.headIn[v]; e != nilIdx; e = g.nextIn[e] {
		out = append(out, e)
	}
	return out
}

func (g *LinkedGraph) OutDegree(v int) int { return len(g.OutEdges(v)) }

func (g *LinkedGraph) InDegree(v int) int {
	if !g.directed {
		return g.OutDegree(v)
	}
	return len(g.InEdges(v))
}
