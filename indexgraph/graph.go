package indexgraph

// RemoveListener is notified when an index is removed from a vertex or edge
// set. removed is the index that now holds whatever used to live at
// lastBeforeShrink (swap-with-last); if no swap occurred (the removed index
// already was the last one) removed == lastBeforeShrink. Algorithms with
// O(n)/O(m) scratch arrays subscribe at entry and unsubscribe at exit,
// exactly mirroring how weight columns subscribe internally via columnHook.
type RemoveListener func(removed, lastBeforeShrink int)

// IndexGraph is the contract every algorithm in coregraph is written
// against. Two back-ends satisfy it: the array-backed Graph (default) and
// the linked Graph built with WithLinkedAdjacency.
type IndexGraph interface {
	N() int
	M() int
	Directed() bool

	AddVertex() int
	RemoveVertex(v int) error

	AddEdge(u, v int) (int, error)
	RemoveEdge(e int) error

	EdgeSource(e int) int
	EdgeTarget(e int) int

	// OutEdges returns the edge ids leaving v. For an undirected graph this
	// is every edge incident to v (both directions collapsed).
	OutEdges(v int) []int32
	// InEdges returns the edge ids entering v. For an undirected graph it
	// is identical to OutEdges.
	InEdges(v int) []int32
	OutDegree(v int) int
	InDegree(v int) int

	SubscribeVertexRemove(fn RemoveListener) (unsubscribe func())
	SubscribeEdgeRemove(fn RemoveListener) (unsubscribe func())

	AddVerticesWeightsBool(key string) (*Column[bool], error)
	AddVerticesWeightsInt(key string) (*Column[int64], error)
	AddVerticesWeightsFloat(key string) (*Column[float64], error)
	AddVerticesWeightsObject(key string) (*Column[any], error)
	GetVerticesWeightsBool(key string) (*Column[bool], error)
	GetVerticesWeightsInt(key string) (*Column[int64], error)
	GetVerticesWeightsFloat(key string) (*Column[float64], error)
	GetVerticesWeightsObject(key string) (*Column[any], error)

	AddEdgesWeightsBool(key string) (*Column[bool], error)
	AddEdgesWeightsInt(key string) (*Column[int64], error)
	AddEdgesWeightsFloat(key string) (*Column[float64], error)
	AddEdgesWeightsObject(key string) (*Column[any], error)
	GetEdgesWeightsBool(key string) (*Column[bool], error)
	GetEdgesWeightsInt(key string) (*Column[int64], error)
	GetEdgesWeightsFloat(key string) (*Column[float64], error)
	GetEdgesWeightsObject(key string) (*Column[any], error)

	// IndexGraph returns self; callers that hold an id-graph wrapper can
	// always drill down to the underlying substrate through this method.
	IndexGraph() IndexGraph
}

// core holds the state common to every back-end: vertex/edge counts, edge
// endpoints, weight columns, and remove listeners. Adjacency storage is the
// one piece each back-end owns itself.
type core struct {
	directed bool

	n, m int

	edgeSrc []int32
	edgeTgt []int32

	vCols *columnRegistry
	eCols *columnRegistry

	vListeners []RemoveListener
	eListeners []RemoveListener
}

func newCore(directed bool) core {
	return core{
		directed: directed,
		vCols:    newColumnRegistry(),
		eCols:    newColumnRegistry(),
	}
}

func (c *core) N() int          { return c.n }
func (c *core) M() int          { return c.m }
func (c *core) Directed() bool  { return c.directed }
func (c *core) EdgeSource(e int) int { return int(c.edgeSrc[e]) }
func (c *core) EdgeTarget(e int) int { return int(c.edgeTgt[e]) }

func (c *core) SubscribeVertexRemove(fn RemoveListener) func() {
	c.vListeners = append(c.vListeners, fn)
	idx := len(c.vListeners) - 1
	return func() { c.vListeners[idx] = nil }
}

func (c *core) SubscribeEdgeRemove(fn RemoveListener) func() {
	c.eListeners = append(c.eListeners, fn)
	idx := len(c.eListeners) - 1
	return func() { c.eListeners[idx] = nil }
}

func (c *core) notifyVertexRemoved(removed, last int) {
	c.vCols.notifyRemove(removed, last)
	for _, fn := range c.vListeners {
		if fn != nil {
			fn(removed, last)
		}
	}
}

func (c *core) notifyEdgeRemoved(removed, last int) {
	c.eCols.notifyRemove(removed, last)
	for _, fn := range c.eListeners {
		if fn != nil {
			fn(removed, last)
		}
	}
}

func (c *core) AddVerticesWeightsBool(key string) (*Column[bool], error) {
	return addCol[bool](c.vCols, key, c.n)
}
func (c *core) AddVerticesWeightsInt(key string) (*Column[int64], error) {
	return addCol[int64](c.vCols, key, c.n)
}
func (c *core) AddVerticesWeightsFloat(key string) (*Column[float64], error) {
	return addCol[float64](c.vCols, key, c.n)
}
func (c *core) AddVerticesWeightsObject(key string) (*Column[any], error) {
	return addCol[any](c.vCols, key, c.n)
}
func (c *core) GetVerticesWeightsBool(key string) (*Column[bool], error) {
	return lookupColumn[bool](c.vCols, key)
}
func (c *core) GetVerticesWeightsInt(key string) (*Column[int64], error) {
	return lookupColumn[int64](c.vCols, key)
}
func (c *core) GetVerticesWeightsFloat(key string) (*Column[float64], error) {
	return lookupColumn[float64](c.vCols, key)
}
func (c *core) GetVerticesWeightsObject(key string) (*Column[any], error) {
	return lookupColumn[any](c.vCols, key)
}

func (c *core) AddEdgesWeightsBool(key string) (*Column[bool], error) {
	return addCol[bool](c.eCols, key, c.m)
}
func (c *core) AddEdgesWeightsInt(key string) (*Column[int64], error) {
	return addCol[int64](c.eCols, key, c.m)
}
func (c *core) AddEdgesWeightsFloat(key string) (*Column[float64], error) {
	return addCol[float64](c.eCols, key, c.m)
}
func (c *core) AddEdgesWeightsObject(key string) (*Column[any], error) {
	return addCol[any](c.eCols, key, c.m)
}
func (c *core) GetEdgesWeightsBool(key string) (*Column[bool], error) {
	return lookupColumn[bool](c.eCols, key)
}
func (c *core) GetEdgesWeightsInt(key string) (*Column[int64], error) {
	return lookupColumn[int64](c.eCols, key)
}
func (c *core) GetEdgesWeightsFloat(key string) (*Column[float64], error) {
	return lookupColumn[float64](c.eCols, key)
}
func (c *core) GetEdgesWeightsObject(key string) (*Column[any], error) {
	return lookupColumn[any](c.eCols, key)
}

func addCol[T any](reg *columnRegistry, key string, n int) (*Column[T], error) {
	col := newColumn[T](n)
	if err := reg.add(key, col); err != nil {
		return nil, err
	}
	return col, nil
}
