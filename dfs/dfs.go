package dfs

import "github.com/katalvlaran/coregraph/indexgraph"

// Result holds the outcome of a depth-first traversal: a full forest walk
// covering every vertex, since unlike bfs.Result this package is typically
// driven from TopologicalSort/HasCycle rather than a single source.
type Result struct {
	Order  []int // vertices in post-order finishing sequence
	Depth  []int
	Parent []int // Parent[v] == -1 for a forest root or unreached vertex
}

// Reachable reports whether v was visited (always true for Run, which
// covers every component; exposed for symmetry with bfs.Result).
func (r *Result) Reachable(v int) bool { return r.Depth[v] >= 0 }

// Run performs a full depth-first forest traversal of g, restarting from
// each unvisited vertex so every component is covered. Order records
// post-order finish times.
func Run(g indexgraph.IndexGraph) *Result {
	n := g.N()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = -1
	}
	state := make([]int, n)
	for v := 0; v < n; v++ {
		if state[v] == white {
			visit(g, v, 0, state, res)
		}
	}
	return res
}

func visit(g indexgraph.IndexGraph, u, depth int, state []int, res *Result) {
	state[u] = gray
	res.Depth[u] = depth
	for _, e := range g.OutEdges(u) {
		v := otherEndpoint(g, int(e), u)
		if state[v] == white {
			res.Parent[v] = u
			visit(g, v, depth+1, state, res)
		}
	}
	state[u] = black
	res.Order = append(res.Order, u)
}

// otherEndpoint resolves the neighbor reached by edge e when walking out of
// u, matching bfs's convention for directed/undirected edge storage.
func otherEndpoint(g indexgraph.IndexGraph, e, u int) int {
	if s := g.EdgeSource(e); s != u {
		return s
	}
	return g.EdgeTarget(e)
}
