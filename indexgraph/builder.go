package indexgraph

// Builder accumulates vertices, edges, and weights, then freezes them into
// an immutable IndexGraph. After Build, the returned graph's vertex/edge
// sets can no longer change, but weight column values remain writable.
type Builder struct {
	g *Graph
}

// NewBuilder starts a Builder for a directed or undirected array-backed graph.
func NewBuilder(directed bool) *Builder {
	if directed {
		return &Builder{g: NewDirected()}
	}
	return &Builder{g: NewUndirected()}
}

// AddVertex appends a vertex and returns its index.
func (b *Builder) AddVertex() int { return b.g.AddVertex() }

// AddEdge appends an edge u->v and returns its index.
func (b *Builder) AddEdge(u, v int) (int, error) { return b.g.AddEdge(u, v) }

// AddVerticesWeightsInt attaches an integer weight column over vertices.
func (b *Builder) AddVerticesWeightsInt(key string) (*Column[int64], error) {
	return b.g.AddVerticesWeightsInt(key)
}

// AddVerticesWeightsFloat attaches a real-valued weight column over vertices.
func (b *Builder) AddVerticesWeightsFloat(key string) (*Column[float64], error) {
	return b.g.AddVerticesWeightsFloat(key)
}

// AddEdgesWeightsInt attaches an integer weight column over edges.
func (b *Builder) AddEdgesWeightsInt(key string) (*Column[int64], error) {
	return b.g.AddEdgesWeightsInt(key)
}

// AddEdgesWeightsFloat attaches a real-valued weight column over edges.
func (b *Builder) AddEdgesWeightsFloat(key string) (*Column[float64], error) {
	return b.g.AddEdgesWeightsFloat(key)
}

// Build freezes the graph: further AddVertex/AddEdge/RemoveVertex/RemoveEdge
// calls return ErrFrozen. Weight column values remain mutable.
func (b *Builder) Build() *Graph {
	b.g.frozen = true
	return b.g
}
