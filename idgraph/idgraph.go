// Package idgraph wraps an indexgraph.IndexGraph with a stable external-id
// surface, string keys in, string keys out: thread-safe vertex/edge
// catalogs keyed by caller-chosen IDs, backed here by an index-compact
// substrate rather than an adjacency-list-of-maps.
//
// Every vertex and edge still lives in the underlying indexgraph.IndexGraph
// at some dense integer index; idgraph just maintains the two bijections
// (index<->id) that let callers never see those integers.
package idgraph

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/coregraph/indexgraph"
)

// ErrEmptyVertexID indicates an empty vertex ID was supplied.
var ErrEmptyVertexID = errors.New("idgraph: vertex ID is empty")

// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
var ErrVertexNotFound = errors.New("idgraph: vertex not found")

// ErrVertexExists indicates AddVertex was called with an ID already in use.
var ErrVertexExists = errors.New("idgraph: vertex already exists")

// ErrEdgeNotFound indicates an operation referenced a non-existent edge ID.
var ErrEdgeNotFound = errors.New("idgraph: edge not found")

// Graph is a string-keyed facade over an indexgraph.IndexGraph. A single
// mutex guards both bijections and the underlying graph, trading separate
// vertex/edge locks for one simpler lock: this wrapper adds id translation,
// not a high-contention hot path that would need split locking.
type Graph struct {
	mu sync.RWMutex

	g indexgraph.IndexGraph

	idOf    []string       // idOf[index] = external vertex ID
	indexOf map[string]int // external vertex ID -> index

	edgeIDOf    []string       // edgeIDOf[edge index] = external edge ID
	edgeIndexOf map[string]int // external edge ID -> edge index

	weights *indexgraph.Column[float64] // lazily created on first weighted AddEdge
}

// NewDirected creates an empty, string-keyed directed graph.
func NewDirected() *Graph { return newGraph(indexgraph.NewDirected()) }

// NewUndirected creates an empty, string-keyed undirected graph.
func NewUndirected() *Graph { return newGraph(indexgraph.NewUndirected()) }

// NewAutoID creates an empty, string-keyed directed graph intended to be
// populated via AddVertexAuto rather than caller-chosen IDs.
func NewAutoID() *Graph {
	return newGraph(indexgraph.NewDirected())
}

func newGraph(backing indexgraph.IndexGraph) *Graph {
	return &Graph{
		g:           backing,
		indexOf:     make(map[string]int),
		edgeIndexOf: make(map[string]int),
	}
}

// IndexGraph exposes the underlying indexgraph.IndexGraph so algorithm
// packages (sssp, mst, maxflow, ...) can run directly against it. Callers
// translate back to external IDs with IDAt/IndexOf.
func (g *Graph) IndexGraph() indexgraph.IndexGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.g
}

// N returns the current vertex count.
func (g *Graph) N() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.g.N()
}

// M returns the current edge count.
func (g *Graph) M() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.g.M()
}

// Directed reports the graph's directedness.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.g.Directed()
}

// HasVertex reports whether id names a vertex in the graph.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.indexOf[id]
	return ok
}

// AddVertex inserts a new vertex named id. Returns ErrEmptyVertexID if id is
// empty, ErrVertexExists if id is already in use.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.indexOf[id]; exists {
		return ErrVertexExists
	}
	idx := g.g.AddVertex()
	g.indexOf[id] = idx
	if idx == len(g.idOf) {
		g.idOf = append(g.idOf, id)
	} else {
		g.idOf[idx] = id
	}
	return nil
}

// AddVertexAuto inserts a new vertex with a generated UUID ID and returns
// it. Valid on any Graph, not only one created via NewAutoID.
func (g *Graph) AddVertexAuto() string {
	id := uuid.NewString()
	_ = g.AddVertex(id) // a fresh UUID colliding with an existing ID is negligible
	return id
}

// RemoveVertex deletes the vertex named id and all its incident edges.
// Returns ErrVertexNotFound if id does not exist.
//
// indexgraph's RemoveEdge and RemoveVertex use swap-with-last compaction.
// The incident edges are therefore removed one at a time first, re-filing
// the edge ID that moves into each vacated edge index; then the vertex is
// removed, and the vertex that moves into its slot (if any) is always the
// one that was previously last.
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	idx, ok := g.indexOf[id]
	if !ok {
		return ErrVertexNotFound
	}
	for {
		es := append(append([]int32(nil), g.g.OutEdges(idx)...), g.g.InEdges(idx)...)
		if len(es) == 0 {
			break
		}
		e, lastE := int(es[0]), len(g.edgeIDOf)-1
		if err := g.g.RemoveEdge(e); err != nil {
			return err
		}
		removedID := g.edgeIDOf[e]
		g.edgeIDOf[e] = g.edgeIDOf[lastE]
		g.edgeIndexOf[g.edgeIDOf[e]] = e
		delete(g.edgeIndexOf, removedID)
		g.edgeIDOf = g.edgeIDOf[:lastE]
	}
	lastIdx := len(g.idOf) - 1
	movedID := g.idOf[lastIdx]
	if err := g.g.RemoveVertex(idx); err != nil {
		return err
	}
	delete(g.indexOf, id)
	if idx != lastIdx {
		g.idOf[idx] = movedID
		g.indexOf[movedID] = idx
	}
	g.idOf = g.idOf[:lastIdx]
	return nil
}

// IDAt returns the external ID of the vertex currently at index idx.
func (g *Graph) IDAt(idx int) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.idOf) {
		return "", false
	}
	return g.idOf[idx], true
}

// IndexOf returns the current index of the vertex named id.
func (g *Graph) IndexOf(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.indexOf[id]
	return idx, ok
}

// AddEdge creates an edge from "from" to "to" and returns its external ID.
// Returns ErrVertexNotFound if either endpoint does not exist.
func (g *Graph) AddEdge(from, to string) (string, error) {
	return g.AddWeightedEdge(from, to, 0)
}

// AddWeightedEdge is AddEdge plus an edge weight, stored in a lazily
// created float64 column (indexgraph.Column), the same weighted-edge idiom
// sssp/mst/maxflow read via their Weights/Capacities adapters.
func (g *Graph) AddWeightedEdge(from, to string, weight float64) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	u, ok := g.indexOf[from]
	if !ok {
		return "", ErrVertexNotFound
	}
	v, ok := g.indexOf[to]
	if !ok {
		return "", ErrVertexNotFound
	}
	if g.weights == nil {
		col, err := g.g.AddEdgesWeightsFloat("weight")
		if err != nil {
			return "", err
		}
		g.weights = col
	}
	e, err := g.g.AddEdge(u, v)
	if err != nil {
		return "", err
	}
	g.weights.Set(e, weight)
	eid := g.nextEdgeID()
	if e == len(g.edgeIDOf) {
		g.edgeIDOf = append(g.edgeIDOf, eid)
	} else {
		g.edgeIDOf[e] = eid
	}
	g.edgeIndexOf[eid] = e
	return eid, nil
}

// Weight returns the weight of edge eid (0 if it was never assigned one).
func (g *Graph) Weight(eid string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edgeIndexOf[eid]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	if g.weights == nil {
		return 0, nil
	}
	return g.weights.Get(e), nil
}

func (g *Graph) nextEdgeID() string {
	return "e" + uuid.NewString()[:8]
}

// RemoveEdge deletes the edge named eid. Returns ErrEdgeNotFound if it does
// not exist.
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.edgeIndexOf[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	lastIdx := len(g.edgeIDOf) - 1
	movedID := g.edgeIDOf[lastIdx]
	if err := g.g.RemoveEdge(e); err != nil {
		return err
	}
	delete(g.edgeIndexOf, eid)
	if e != lastIdx {
		g.edgeIDOf[e] = movedID
		g.edgeIndexOf[movedID] = e
	}
	g.edgeIDOf = g.edgeIDOf[:lastIdx]
	return nil
}

// EdgeEndpoints returns the (from, to) external IDs of edge eid.
func (g *Graph) EdgeEndpoints(eid string) (from, to string, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edgeIndexOf[eid]
	if !ok {
		return "", "", ErrEdgeNotFound
	}
	return g.idOf[g.g.EdgeSource(e)], g.idOf[g.g.EdgeTarget(e)], nil
}

// HasEdge reports whether an edge from "from" to "to" currently exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	u, ok := g.indexOf[from]
	if !ok {
		return false
	}
	v, ok := g.indexOf[to]
	if !ok {
		return false
	}
	for _, e := range g.g.OutEdges(u) {
		if g.g.EdgeTarget(int(e)) == v {
			return true
		}
		if !g.g.Directed() && g.g.EdgeSource(int(e)) == v {
			return true
		}
	}
	return false
}

// Neighbors returns the sorted external IDs reachable by one outgoing edge
// from id.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.indexOf[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	seen := make(map[string]struct{})
	for _, e := range g.g.OutEdges(idx) {
		v := g.g.EdgeTarget(int(e))
		if v == idx {
			v = g.g.EdgeSource(int(e))
		}
		seen[g.idOf[v]] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for nb := range seen {
		out = append(out, nb)
	}
	sort.Strings(out)
	return out, nil
}

// Vertices returns all vertex IDs in sorted order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.idOf))
	copy(out, g.idOf)
	sort.Strings(out)
	return out
}

// Edge is a snapshot of one edge's external identity, endpoints, and weight.
type Edge struct {
	ID     string
	From   string
	To     string
	Weight float64
}

// Edges returns every edge currently in the graph, in edge-index order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edgeIDOf))
	for e, id := range g.edgeIDOf {
		var w float64
		if g.weights != nil {
			w = g.weights.Get(e)
		}
		out[e] = Edge{
			ID:     id,
			From:   g.idOf[g.g.EdgeSource(e)],
			To:     g.idOf[g.g.EdgeTarget(e)],
			Weight: w,
		}
	}
	return out
}
