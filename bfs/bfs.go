// Package bfs provides breadth-first traversal over an indexgraph.IndexGraph,
// returning unweighted shortest-path distances, parent links, and visit
// order, via a queueItem/walker split producing an Order/Depth/Parent
// result shape over index-based vertices.
package bfs

import "github.com/katalvlaran/coregraph/indexgraph"

// Result holds the outcome of a single-source breadth-first traversal.
type Result struct {
	Order  []int // visit order
	Depth  []int // Depth[v] == -1 if v was never reached
	Parent []int // Parent[v] == -1 for the source or an unreached vertex
}

// Reachable reports whether v was visited.
func (r *Result) Reachable(v int) bool { return r.Depth[v] >= 0 }

// queueItem pairs a vertex with its BFS depth and parent.
type queueItem struct {
	id     int
	depth  int
	parent int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g     indexgraph.IndexGraph
	queue []queueItem
	res   *Result
}

// Run explores g breadth-first from source, following OutEdges only (on a
// directed graph this finds forward reachability from source; on an
// undirected graph OutEdges already reports both directions).
func Run(g indexgraph.IndexGraph, source int) *Result {
	n := g.N()
	w := &walker{
		g:     g,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
	}
	w.enqueue(source, 0, -1)
	w.loop()
	return w.res
}

func (w *walker) enqueue(id, depth, parent int) {
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: depth, parent: parent})
}

func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		w.enqueueNeighbors(item)
	}
}

func (w *walker) enqueueNeighbors(item queueItem) {
	for _, e := range w.g.OutEdges(item.id) {
		v := otherEndpoint(w.g, int(e), item.id)
		if w.res.Depth[v] >= 0 {
			continue
		}
		w.enqueue(v, item.depth+1, item.id)
	}
}

// otherEndpoint resolves the neighbor reached by edge e when walking out of
// u: on a directed graph this is always EdgeTarget(e); on an undirected
// graph e may be stored with u as either endpoint.
func otherEndpoint(g indexgraph.IndexGraph, e, u int) int {
	if s := g.EdgeSource(e); s != u {
		return s
	}
	return g.EdgeTarget(e)
}

// PathTo reconstructs the path from the traversal's source to v, in order.
// ok is false if v was not reached.
func (r *Result) PathTo(v int) (path []int, ok bool) {
	if !r.Reachable(v) {
		return nil, false
	}
	for cur := v; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
