package sssp

import (
	"github.com/katalvlaran/coregraph/heap"
	"github.com/katalvlaran/coregraph/indexgraph"
)

// Dijkstra computes shortest paths from source over non-negative weights,
// using a caller-selected referenceable heap (heap.Fibonacci by default)
// keyed by tentative distance. Grounded on dijkstra/dijkstra.go's
// init/process/relax split, generalized from container/heap lazy deletion
// to heap.Heap's decrease-key: an n-sized side array of heap.Ref tracks
// each vertex's current queue handle so relax can call DecreaseKey
// directly instead of pushing a stale duplicate entry.
func Dijkstra(g indexgraph.IndexGraph, w Weights, source int, opts ...Option) (*Result, error) {
	n := g.N()
	if source < 0 || source >= n {
		return nil, ErrNoSuchSource
	}
	o := resolve(opts)

	res := newResult(n, source)
	refs := make([]heap.Ref, n)
	settled := make([]bool, n)

	pq := heap.Build[float64, int](o.heapKind, func(a, b float64) bool { return a < b })
	refs[source] = pq.Insert(0, source)
	for v := 0; v < n; v++ {
		if v != source {
			refs[v] = heap.NullRef
		}
	}

	for pq.Len() > 0 {
		d, u, ok := pq.ExtractMin()
		if !ok {
			break
		}
		if settled[u] {
			continue
		}
		settled[u] = true

		for _, e := range g.OutEdges(u) {
			v := otherEndpoint(g, int(e), u)
			wt := w.Weight(int(e))
			if wt < 0 {
				return nil, ErrNegativeWeight
			}
			cand := d + wt
			if o.hasMaxDist && cand > o.maxDistance {
				continue
			}
			if cand < res.dist[v] {
				res.dist[v] = cand
				res.parent[v] = u
				res.backEdge[v] = int(e)
				if settled[v] {
					continue // shouldn't happen with non-negative weights
				}
				if refs[v].Valid() {
					_ = pq.DecreaseKey(refs[v], cand)
				} else {
					refs[v] = pq.Insert(cand, v)
				}
			}
		}
	}
	return res, nil
}

func otherEndpoint(g indexgraph.IndexGraph, e, u int) int {
	if s := g.EdgeSource(e); s != u {
		return s
	}
	return g.EdgeTarget(e)
}
