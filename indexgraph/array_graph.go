package indexgraph

// Graph is the array-backed IndexGraph: adjacency is a growable []int32 of
// edge ids per vertex, giving O(1) amortized append and O(deg) removal.
// It is the default back-end returned by
// NewDirected/NewUndirected and by Builder.Build.
type Graph struct {
	core

	frozen bool

	// out[v] holds edge ids leaving v (directed) or incident to v
	// (undirected, both directions collapsed into one list; a self-loop
	// appears once).
	out [][]int32
	// in[v] holds edge ids entering v; nil/unused for undirected graphs,
	// where OutEdges already reports every incident edge.
	in [][]int32
}

var _ IndexGraph = (*Graph)(nil)

// NewDirected returns an empty, mutable, array-backed directed graph.
func NewDirected() *Graph {
	return &Graph{core: newCore(true)}
}

// NewUndirected returns an empty, mutable, array-backed undirected graph.
func NewUndirected() *Graph {
	return &Graph{core: newCore(false)}
}

func (g *Graph) IndexGraph() IndexGraph { return g }

// AddVertex appends a new vertex and returns its index. Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	v := g.n
	g.out = append(g.out, nil)
	if g.directed {
		g.in = append(g.in, nil)
	}
	g.n++
	g.vCols.notifyAdd()
	return v
}

// RemoveVertex deletes v and every edge incident to it, then compacts the
// vertex range via swap-with-last. Complexity: O(deg(v) + deg(n-1)).
func (g *Graph) RemoveVertex(v int) error {
	if g.frozen {
		return ErrFrozen
	}
	if v < 0 || v >= g.n {
		return &NoSuchVertexError{Index: v}
	}
	for {
		es := g.incidentSnapshot(v)
		if len(es) == 0 {
			break
		}
		if err := g.RemoveEdge(int(es[0])); err != nil {
			return err
		}
	}

	last := g.n - 1
	if v != last {
		g.out[v] = g.out[last]
		if g.directed {
			g.in[v] = g.in[last]
		}
		g.retargetEndpoints(v, last)
	}
	g.out = g.out[:last]
	if g.directed {
		g.in = g.in[:last]
	}
	g.n = last
	g.notifyVertexRemoved(v, last)
	return nil
}

// incidentSnapshot returns a copy of every edge id touching v (out+in,
// deduplicated for undirected graphs), safe to iterate while mutating.
func (g *Graph) incidentSnapshot(v int) []int32 {
	out := append([]int32(nil), g.out[v]...)
	if g.directed {
		out = append(out, g.in[v]...)
	}
	return out
}

// retargetEndpoints rewrites every edge endpoint equal to oldIdx to newIdx,
// scanning only the (already swapped-in) adjacency of newIdx.
func (g *Graph) retargetEndpoints(newIdx, oldIdx int) {
	relabel := func(es []int32) {
		for _, e := range es {
			if int(g.edgeSrc[e]) == oldIdx {
				g.edgeSrc[e] = int32(newIdx)
			}
			if int(g.edgeTgt[e]) == oldIdx {
				g.edgeTgt[e] = int32(newIdx)
			}
		}
	}
	relabel(g.out[newIdx])
	if g.directed {
		relabel(g.in[newIdx])
	}
}

// AddEdge appends a new edge u->v and returns its index. Self-loops and
// parallel edges are always permitted at this layer; higher layers (builder
// validators, algorithm preconditions) reject them where a stricter graph
// shape is required. Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) (int, error) {
	if g.frozen {
		return -1, ErrFrozen
	}
	if u < 0 || u >= g.n {
		return -1, &NoSuchVertexError{Index: u}
	}
	if v < 0 || v >= g.n {
		return -1, &NoSuchVertexError{Index: v}
	}
	e := g.m
	g.edgeSrc = append(g.edgeSrc, int32(u))
	g.edgeTgt = append(g.edgeTgt, int32(v))
	g.m++
	g.out[u] = append(g.out[u], int32(e))
	if g.directed {
		g.in[v] = append(g.in[v], int32(e))
	} else if u != v {
		g.out[v] = append(g.out[v], int32(e))
	}
	g.eCols.notifyAdd()
	return e, nil
}

// RemoveEdge deletes e and compacts the edge range via swap-with-last.
// Complexity: O(deg(source(e)) + deg(target(e)) + deg(source(last)) + deg(target(last))).
func (g *Graph) RemoveEdge(e int) error {
	if g.frozen {
		return ErrFrozen
	}
	if e < 0 || e >= g.m {
		return &NoSuchEdgeError{Index: e}
	}
	u, v := int(g.edgeSrc[e]), int(g.edgeTgt[e])
	g.out[u] = removeVal(g.out[u], int32(e))
	if g.directed {
		g.in[v] = removeVal(g.in[v], int32(e))
	} else if u != v {
		g.out[v] = removeVal(g.out[v], int32(e))
	}

	last := g.m - 1
	if e != last {
		lastU, lastV := int(g.edgeSrc[last]), int(g.edgeTgt[last])
		g.out[lastU] = renameVal(g.out[lastU], int32(last), int32(e))
		if g.directed {
			g.in[lastV] = renameVal(g.in[lastV], int32(last), int32(e))
		} else if lastU != lastV {
			g.out[lastV] = renameVal(g.out[lastV], int32(last), int32(e))
		}
		g.edgeSrc[e] = int32(lastU)
		g.edgeTgt[e] = int32(lastV)
	}
	g.edgeSrc = g.edgeSrc[:last]
	g.edgeTgt = g.edgeTgt[:last]
	g.m = last
	g.notifyEdgeRemoved(e, last)
	return nil
}

func (g *Graph) OutEdges(v int) []int32 { return g.out[v] }

func (g *Graph) InEdges(v int) []int32 {
	if g.directed {
		return g.in[v]
	}
	return g.out[v]
}

func (g *Graph) OutDegree(v int) int { return len(g.out[v]) }

func (g *Graph) InDegree(v int) int {
	if g.directed {
		return len(g.in[v])
	}
	return len(g.out[v])
}

func removeVal(s []int32, val int32) []int32 {
	for i, x := range s {
		if x == val {
			last := len(s) - 1
			s[i] = s[last]
			return s[:last]
		}
	}
	return s
}

func renameVal(s []int32, old, new int32) []int32 {
	for i, x := range s {
		if x == old {
			s[i] = new
			return s
		}
	}
	return s
}
