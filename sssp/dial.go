package sssp

import "github.com/katalvlaran/coregraph/indexgraph"

// Dial computes shortest paths from source using Dial's bucket-queue
// algorithm: precondition is non-negative integer edge weights bounded by
// some maxWeight. Buckets are indexed by tentative distance modulo
// maxWeight*n+1 so no bucket is ever revisited twice; new entries for a
// vertex are appended rather than removed in place, and settled vertices are
// skipped when popped (lazy deletion, where Dijkstra uses DecreaseKey).
func Dial(g indexgraph.IndexGraph, w Weights, source int, maxWeight int) (*Result, error) {
	n := g.N()
	if source < 0 || source >= n {
		return nil, ErrNoSuchSource
	}
	if maxWeight < 0 {
		return nil, ErrNegativeWeight
	}

	res := newResult(n, source)
	settled := make([]bool, n)

	numBuckets := maxWeight*n + 1
	if numBuckets < 1 {
		numBuckets = 1
	}
	buckets := make([][]int, numBuckets)
	bucketOf := func(d float64) int {
		return int(d) % numBuckets
	}
	buckets[0] = append(buckets[0], source)

	remaining := n
	for b := 0; remaining > 0; b = (b + 1) % numBuckets {
		for len(buckets[b]) > 0 {
			u := buckets[b][len(buckets[b])-1]
			buckets[b] = buckets[b][:len(buckets[b])-1]
			if settled[u] {
				continue
			}
			settled[u] = true
			remaining--

			for _, e := range g.OutEdges(u) {
				v := otherEndpoint(g, int(e), u)
				wt := w.Weight(int(e))
				if wt < 0 {
					return nil, ErrNegativeWeight
				}
				if wt != float64(int(wt)) {
					return nil, ErrNonIntegerWeight
				}
				cand := res.dist[u] + wt
				if cand < res.dist[v] {
					res.dist[v] = cand
					res.parent[v] = u
					res.backEdge[v] = int(e)
					nb := bucketOf(cand)
					buckets[nb] = append(buckets[nb], v)
				}
			}
		}
		if b == numBuckets-1 && remaining > 0 {
			// full ring scanned with unreached vertices left: they are
			// unreachable from source.
			break
		}
	}
	return res, nil
}
