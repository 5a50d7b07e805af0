package dfs

import "github.com/katalvlaran/coregraph/indexgraph"

// cycleWalker finds a single witness cycle via DFS back-edge detection,
// the same White/Gray/Black coloring TopologicalSort uses, simplified from
// enumerate-all-simple-cycles to first-witness-only: no caller here needs
// the full cycle list, only a yes/no plus one example path
// (TopologicalSort's ErrCycleDetected callers want to report where the
// cycle is, not enumerate every one).
type cycleWalker struct {
	g      indexgraph.IndexGraph
	state  []int
	parent []int
	cycle  []int
}

// HasCycle reports whether g contains a cycle, honoring g.Directed(): on a
// directed graph only true back-edges count; on an undirected graph the
// immediate parent edge is excluded so a single edge between two vertices
// is not mistaken for a 2-cycle. When a cycle exists, it also returns one
// witness cycle as a closed vertex sequence [v0, v1, ..., v0].
func HasCycle(g indexgraph.IndexGraph) (bool, []int) {
	n := g.N()
	w := &cycleWalker{
		g:      g,
		state:  make([]int, n),
		parent: make([]int, n),
	}
	for v := range w.parent {
		w.parent[v] = -1
	}
	for v := 0; v < n; v++ {
		if w.state[v] == white {
			if w.visit(v, -1) {
				return true, w.cycle
			}
		}
	}
	return false, nil
}

func (w *cycleWalker) visit(u, parentEdge int) bool {
	w.state[u] = gray
	for _, e := range w.g.OutEdges(u) {
		if !w.g.Directed() && int(e) == parentEdge {
			continue // skip the edge just arrived on
		}
		v := otherEndpoint(w.g, int(e), u)
		switch w.state[v] {
		case white:
			w.parent[v] = u
			if w.visit(v, int(e)) {
				return true
			}
		case gray:
			w.cycle = w.reconstruct(u, v)
			return true
		}
	}
	w.state[u] = black
	return false
}

// reconstruct walks parent links from u back up to v, closing the loop.
func (w *cycleWalker) reconstruct(u, v int) []int {
	var path []int
	for cur := u; cur != v; cur = w.parent[cur] {
		path = append(path, cur)
	}
	path = append(path, v)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	path = append(path, v)
	return path
}
