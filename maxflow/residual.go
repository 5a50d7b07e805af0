package maxflow

import "github.com/katalvlaran/coregraph/indexgraph"

// Network is the residual graph every max-flow algorithm in this package
// operates on: an arena edge list of paired arcs, sized and indexed
// directly by the original graph's edge ids. Arc 2e is the forward
// direction of original edge e, arc 2e+1 its reverse; cap[2e]+cap[2e+1] is
// invariant throughout (pushing flow along one arc debits it and credits its
// pair) and equals the edge's original capacity for a directed edge, twice
// it for an undirected one (both arcs start at the capacity).
type Network struct {
	n    int
	to   []int32   // to[arc] = arc's destination vertex
	cap  []float64 // cap[arc] = remaining residual capacity
	head []int32   // head[v] = first arc index leaving v, or -1
	next []int32   // next[arc] = next arc leaving the same vertex, or -1
}

func forwardArc(e int) int  { return 2 * e }
func backwardArc(e int) int { return 2*e + 1 }

// NewNetwork allocates a residual network over n vertices and m original
// edges (2*m arcs).
func NewNetwork(n, m int) *Network {
	head := make([]int32, n)
	for i := range head {
		head[i] = -1
	}
	return &Network{
		n:    n,
		to:   make([]int32, 2*m),
		cap:  make([]float64, 2*m),
		next: make([]int32, 2*m),
		head: head,
	}
}

func (net *Network) linkArc(arc, u int) {
	net.next[arc] = net.head[u]
	net.head[u] = int32(arc)
}

// SetEdge installs original edge e (u->v, given capacity) at its fixed arc
// pair (forwardArc(e), backwardArc(e)). undirected seeds the reverse arc
// with the same capacity as the forward arc (an undirected edge admits
// flow either way from the start); otherwise the reverse arc starts at 0
// and only gains capacity as forward flow is pushed and later cancelled.
func (net *Network) SetEdge(e, u, v int, capacity float64, undirected bool) {
	fwd, rev := forwardArc(e), backwardArc(e)
	net.to[fwd], net.cap[fwd] = int32(v), capacity
	net.to[rev] = int32(u)
	if undirected {
		net.cap[rev] = capacity
	}
	net.linkArc(fwd, u)
	net.linkArc(rev, v)
}

// BuildNetwork constructs a Network from g's edges, using cap to look up
// each edge's capacity. Returns ErrNegativeCapacity if any capacity is
// negative.
func BuildNetwork(g indexgraph.IndexGraph, cap Capacities) (*Network, error) {
	net := NewNetwork(g.N(), g.M())
	for e := 0; e < g.M(); e++ {
		c := cap.Capacity(e)
		if c < 0 {
			return nil, ErrNegativeCapacity
		}
		net.SetEdge(e, g.EdgeSource(e), g.EdgeTarget(e), c, !g.Directed())
	}
	return net, nil
}

// push sends delta units of flow along arc, crediting its paired arc.
func (net *Network) push(arc int, delta float64) {
	net.cap[arc] -= delta
	net.cap[arc^1] += delta
}
