// SPDX-License-Identifier: MIT
// Package matrix - canonical builders for dense adjacency and incidence
// matrices, built directly on indexgraph.IndexGraph.
//
// Because IndexGraph vertices are already dense integers in [0, N()), a
// matrix row/column index IS a vertex index: there is no VertexID->index
// lookup table to build or maintain. Edge weights, when present, live in
// the graph's "weight" float64 edge column (see weightColumnKey).
//
// Policy & Contracts:
//   - Adjacency: 0/weight; metric-closure toggles to distances (+Inf as "no edge", diag=0) then APSP.
//   - Incidence: directed (-1 on source, +1 on target; directed self-loop => skipped column),
//     undirected (+1/+1; self-loop => +2 in the single incident row).
//
// Determinism:
//   - First-edge-wins when AllowMulti=false (ordered or unordered key by directedness).
//   - Vertices/edges are scanned in IndexGraph's native index order.
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coregraph/indexgraph"
)

// weightColumnKey names the float64 edge column builders read weights from,
// matching the convention idgraph and converters already write under.
const weightColumnKey = "weight"

// defaultWeight is the unit weight for unweighted adjacency/incidence writes.
const defaultWeight = 1.0

// pairKey canonicalizes an edge endpoint pair for first-edge-wins dedup.
type pairKey struct{ u, v int }

// orderedPair builds a (u,v) key for directed de-duplication.
func orderedPair(u, v int) pairKey { return pairKey{u: u, v: v} }

// unorderedPair builds a {min,max} key for undirected de-duplication.
func unorderedPair(u, v int) pairKey {
	if u <= v {
		return pairKey{u: u, v: v}
	}

	return pairKey{u: v, v: u}
}

// edgeWeights resolves the graph's "weight" float64 column, if attached.
// A nil return means the graph carries no weight data at all.
func edgeWeights(ig indexgraph.IndexGraph) *indexgraph.Column[float64] {
	col, err := ig.GetEdgesWeightsFloat(weightColumnKey)
	if err != nil {
		return nil
	}

	return col
}

// allZeroWeights reports whether every edge weight in col is zero, treating
// a missing column as all-zero.
func allZeroWeights(col *indexgraph.Column[float64], m int) bool {
	if col == nil {
		return true
	}
	for e := 0; e < m; e++ {
		if col.Get(e) != 0 {
			return false
		}
	}

	return true
}

// BuildDenseAdjacency constructs a dense adjacency matrix directly from ig,
// honoring Options (directed/weighted/loops/multi, optional metric-closure).
//
// Inputs:
//   - ig: source graph (non-nil); row/col index == vertex index.
//   - opts: build policy.
//
// Returns:
//   - *Dense: N()xN() adjacency.
//   - err: ErrGraphNil, ErrInvalidDimensions (empty graph), ErrInvalidWeight, shape/set errors.
//
// Complexity: Time O(V^2 + E), Space O(V^2).
func BuildDenseAdjacency(ig indexgraph.IndexGraph, opts Options) (*Dense, error) {
	if ig == nil {
		return nil, fmt.Errorf("BuildDenseAdjacency: %w", ErrGraphNil)
	}
	v := ig.N()
	if v == 0 {
		return nil, fmt.Errorf("BuildDenseAdjacency: empty vertex set: %w", ErrInvalidDimensions)
	}

	// Numeric policy follows opts: metric closure (allowInfDistances) must be
	// able to store +Inf for "no path".
	mat, err := newDenseWithPolicy(v, v, opts.validateNaNInf && !opts.allowInfDistances)
	if err != nil {
		return nil, fmt.Errorf("BuildDenseAdjacency: NewDense(%d,%d): %w", v, v, err)
	}

	weights := edgeWeights(ig)
	// Degrade to binary if the input graph is effectively unweighted.
	useWeight := opts.weighted && !allZeroWeights(weights, ig.M())

	directed := opts.directed
	allowMulti := opts.allowMulti
	allowLoops := opts.allowLoops

	// First-edge-wins set when AllowMulti=false.
	seen := make(map[pairKey]struct{}, 64)

	var (
		src, dst int
		w        float64
		key      pairKey
	)
	m := ig.M()
	for e := 0; e < m; e++ {
		src = ig.EdgeSource(e)
		dst = ig.EdgeTarget(e)

		if src == dst && !allowLoops {
			continue
		}
		if !allowMulti {
			if directed {
				key = orderedPair(src, dst)
			} else {
				key = unorderedPair(src, dst)
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}

		if useWeight {
			w = weights.Get(e)
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("BuildDenseAdjacency: invalid weight for edge %d->%d: %w", src, dst, ErrInvalidWeight)
			}
		} else {
			w = defaultWeight
		}

		if err = mat.Set(src, dst, w); err != nil {
			return nil, fmt.Errorf("BuildDenseAdjacency: Set(%d,%d): %w", src, dst, err)
		}
		if !directed && src != dst {
			if err = mat.Set(dst, src, w); err != nil {
				return nil, fmt.Errorf("BuildDenseAdjacency: Set(%d,%d): %w", dst, src, err)
			}
		}
	}

	if opts.metricClose {
		// Convert adjacency (0/weight) into a distance matrix: diag=0,
		// off-diagonal 0 -> +Inf (no edge), otherwise keep weight.
		if err = initDistancesInPlace(mat); err != nil {
			return nil, fmt.Errorf("BuildDenseAdjacency: %w", err)
		}
		floydWarshallInPlace(mat)
	} else {
		for i := 0; i < v; i++ {
			if err = mat.Set(i, i, 0.0); err != nil {
				return nil, fmt.Errorf("BuildDenseAdjacency: Set(%d,%d,0): %w", i, i, err)
			}
		}
	}

	return mat, nil
}

// BuildDenseIncidence constructs a dense incidence matrix directly from ig,
// applying Options policy deterministically.
//
// Behavior highlights:
//   - Directed: -1 at source row, +1 at target row; directed self-loop => skipped column.
//   - Undirected: +1 at both endpoints; undirected self-loop => +2 in the single row.
//   - DisallowMulti: first-edge-wins (ordered for directed; unordered for undirected).
//
// Returns:
//   - edgeIdx: the IndexGraph edge index backing each column, aligned 1:1 with mat's columns.
//   - mat: V x E' dense with entries in {-1,0,+1} (and +2 for undirected loops).
//   - err: ErrGraphNil, ErrInvalidDimensions (empty graph), shape/set errors.
//
// Complexity: Time O(V + E), Space O(V + E) plus V*E' for dense storage.
func BuildDenseIncidence(ig indexgraph.IndexGraph, opts Options) ([]int, *Dense, error) {
	if ig == nil {
		return nil, nil, fmt.Errorf("BuildDenseIncidence: %w", ErrGraphNil)
	}
	v := ig.N()
	if v == 0 {
		return nil, nil, fmt.Errorf("BuildDenseIncidence: empty vertex set: %w", ErrInvalidDimensions)
	}

	directed := opts.directed
	allowMulti := opts.allowMulti
	allowLoops := opts.allowLoops

	m := ig.M()
	eff := make([]int, 0, m)
	seen := make(map[pairKey]struct{}, 64)

	var (
		u, v2 int
		key   pairKey
	)
	for e := 0; e < m; e++ {
		u = ig.EdgeSource(e)
		v2 = ig.EdgeTarget(e)

		if u == v2 {
			if !allowLoops {
				continue // policy: ignore self-loops when AllowLoops=false
			}
			if directed {
				continue // skip directed self-loop column (algebraically zero)
			}
		}

		if !allowMulti {
			if directed {
				key = orderedPair(u, v2)
			} else {
				key = unorderedPair(u, v2)
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		eff = append(eff, e)
	}

	ep := len(eff)
	var mat *Dense
	var err error
	if ep == 0 {
		if mat, err = newDenseZeroOK(v, 0); err != nil {
			return nil, nil, fmt.Errorf("BuildDenseIncidence: newDenseZeroOK(%d,0): %w", v, err)
		}
	} else {
		if mat, err = NewDense(v, ep); err != nil {
			return nil, nil, fmt.Errorf("BuildDenseIncidence: NewDense(%d,%d): %w", v, ep, err)
		}
	}

	var su, sv int
	for j, e := range eff {
		su = ig.EdgeSource(e)
		sv = ig.EdgeTarget(e)

		if directed {
			if err = mat.Set(su, j, srcMark); err != nil {
				return nil, nil, fmt.Errorf("BuildDenseIncidence: Set(%d,%d,-1): %w", su, j, err)
			}
			if err = mat.Set(sv, j, dstMark); err != nil {
				return nil, nil, fmt.Errorf("BuildDenseIncidence: Set(%d,%d,+1): %w", sv, j, err)
			}
			continue
		}

		if su == sv {
			if err = mat.Set(su, j, loopUndirectedMark); err != nil {
				return nil, nil, fmt.Errorf("BuildDenseIncidence: Set(%d,%d,+2): %w", su, j, err)
			}
			continue
		}
		if err = mat.Set(su, j, undirectedMark); err != nil {
			return nil, nil, fmt.Errorf("BuildDenseIncidence: Set(%d,%d,+1): %w", su, j, err)
		}
		if err = mat.Set(sv, j, undirectedMark); err != nil {
			return nil, nil, fmt.Errorf("BuildDenseIncidence: Set(%d,%d,+1): %w", sv, j, err)
		}
	}

	return eff, mat, nil
}
