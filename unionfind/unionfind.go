// Package unionfind implements the disjoint-set data structure: union-by-
// rank with path compression over a dense [0,n) element range, plus a
// standalone Split-Find-Min variant.
//
// Generalized out of the inline parent/rank maps a Kruskal implementation
// would otherwise build for itself, into a reusable int-indexed structure
// so MST, dynamic connectivity clients, and tests can all share one
// implementation.
package unionfind

// DSU is a disjoint-set-union over the elements [0, n). All operations are
// amortized O(alpha(n)), the inverse Ackermann function.
type DSU struct {
	parent []int32
	rank   []int8
	count  int // number of distinct components
}

// New creates a DSU with n singleton components.
func New(n int) *DSU {
	d := &DSU{parent: make([]int32, n), rank: make([]int8, n), count: n}
	for i := range d.parent {
		d.parent[i] = int32(i)
	}
	return d
}

// Len returns the number of elements the DSU was created over.
func (d *DSU) Len() int { return len(d.parent) }

// Components returns the number of distinct components remaining.
func (d *DSU) Components() int { return d.count }

// Find returns the canonical representative of x's component, compressing
// the path traversed (one-pass halving, iterative rather than recursive to
// avoid stack growth on long chains). Complexity: amortized O(alpha(n)).
func (d *DSU) Find(x int) int {
	for int(d.parent[x]) != x {
		d.parent[x] = d.parent[d.parent[x]] // path halving
		x = int(d.parent[x])
	}
	return x
}

// Union merges the components containing x and y, attaching the smaller
// rank tree under the larger (ties increment the surviving root's rank).
// Returns true if a merge happened (x and y were in different components).
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = int32(rx)
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.count--
	return true
}

// Connected reports whether x and y are in the same component.
func (d *DSU) Connected(x, y int) bool { return d.Find(x) == d.Find(y) }
