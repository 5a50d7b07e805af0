package converters

import (
	"sort"

	"github.com/katalvlaran/coregraph/indexgraph"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// weightKey is the edge weight column name used throughout coregraph
// (idgraph.AddWeightedEdge writes under the same key), so ToGonum picks up
// weights attached by the rest of the module without any extra wiring.
const weightKey = "weight"

// ToGonum builds a gonum WeightedDirectedGraph or WeightedUndirectedGraph
// mirroring ig: one gonum node per vertex index (node ID == vertex index),
// one gonum edge per IndexGraph edge, weight read from ig's "weight" float64
// edge column if one exists (0 otherwise).
//
// gonum/graph/simple graphs are simple graphs: parallel edges between the
// same ordered pair collapse to the last one written. An IndexGraph with
// multi-edges converts lossily; callers that need every parallel edge
// preserved should walk ig.OutEdges directly instead.
//
// Complexity: O(n + m).
func ToGonum(ig indexgraph.IndexGraph) (graph.Weighted, error) {
	if ig == nil {
		return nil, ErrNilGraph
	}

	var weights *indexgraph.Column[float64]
	if col, err := ig.GetEdgesWeightsFloat(weightKey); err == nil {
		weights = col
	}
	weightOf := func(e int) float64 {
		if weights == nil {
			return 0
		}
		return weights.Get(e)
	}

	n := ig.N()
	if ig.Directed() {
		g := simple.NewWeightedDirectedGraph(0, 0)
		for i := 0; i < n; i++ {
			g.AddNode(simple.Node(i))
		}
		for v := 0; v < n; v++ {
			for _, e := range ig.OutEdges(v) {
				ei := int(e)
				u := ig.EdgeTarget(ei)
				g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(v), T: simple.Node(u), W: weightOf(ei)})
			}
		}
		return g, nil
	}

	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	seen := make(map[int]bool, ig.M())
	for v := 0; v < n; v++ {
		for _, e := range ig.OutEdges(v) {
			ei := int(e)
			if seen[ei] {
				continue
			}
			seen[ei] = true
			u := ig.EdgeTarget(ei)
			if u == v {
				u = ig.EdgeSource(ei) // v is the stored target, so the other end is the source (v again for a self-loop)
			}
			g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(v), T: simple.Node(u), W: weightOf(ei)})
		}
	}
	return g, nil
}

// FromGonum reads g into a fresh indexgraph.IndexGraph: directedness is
// taken from whether g implements graph.Directed, vertex indices are
// assigned in ascending gonum node-ID order, and edge weights are read via a
// graph.WeightedEdge type assertion where available.
//
// Complexity: O(n log n + m) — the log n factor is sorting node IDs into a
// deterministic index assignment.
func FromGonum(g graph.Graph) (indexgraph.IndexGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	_, directed := g.(graph.Directed)

	nodeIt := g.Nodes()
	ids := make([]int64, 0, nodeIt.Len())
	for nodeIt.Next() {
		ids = append(ids, nodeIt.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var ig indexgraph.IndexGraph
	if directed {
		ig = indexgraph.NewDirected()
	} else {
		ig = indexgraph.NewUndirected()
	}

	indexOf := make(map[int64]int, len(ids))
	for _, id := range ids {
		indexOf[id] = ig.AddVertex()
	}

	var weights *indexgraph.Column[float64]
	setWeight := func(e int, w float64) error {
		if w == 0 {
			return nil
		}
		if weights == nil {
			col, err := ig.AddEdgesWeightsFloat(weightKey)
			if err != nil {
				return err
			}
			weights = col
		}
		weights.Set(e, w)
		return nil
	}

	seenPair := make(map[[2]int64]bool)
	for _, uid := range ids {
		toIt := g.From(uid)
		for toIt.Next() {
			vid := toIt.Node().ID()
			if !directed {
				key := [2]int64{uid, vid}
				if uid > vid {
					key = [2]int64{vid, uid}
				}
				if seenPair[key] {
					continue
				}
				seenPair[key] = true
			}

			ui, ok := indexOf[uid]
			if !ok {
				return nil, ErrUnknownNode
			}
			vi, ok := indexOf[vid]
			if !ok {
				return nil, ErrUnknownNode
			}

			e, err := ig.AddEdge(ui, vi)
			if err != nil {
				return nil, err
			}

			w := 0.0
			if we, ok := g.Edge(uid, vid).(graph.WeightedEdge); ok {
				w = we.Weight()
			}
			if err := setWeight(e, w); err != nil {
				return nil, err
			}
		}
	}

	return ig, nil
}
