// Package builder provides internal helper functions and constants
// used by GraphConstructor implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with builderErrorf for uniform reporting.
//   - Performance: avoid unnecessary allocations; reuse loop variables.
//   - Readability: explicit naming, minimal nesting, consistent style.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/coregraph/idgraph"
)

// builderErrorf wraps an inner error message with the given method context.
func builderErrorf(method, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s", method, inner)
}

// addSequentialVertices inserts vertices with IDs "0".."n-1" into g.
// Complexity: O(n) time, O(1) extra space.
func addSequentialVertices(g *idgraph.Graph, n int) error {
	for i := 0; i < n; i++ {
		id := strconv.Itoa(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("addSequentialVertices: AddVertex(%s): %w", id, err)
		}
	}
	return nil
}

// addVerticesWithIDFn adds vertices idFn(0..n-1).
func addVerticesWithIDFn(g *idgraph.Graph, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		vid := idFn(i)
		if err := g.AddVertex(vid); err != nil {
			return err
		}
	}
	return nil
}

// addCompleteEdges connects every unordered pair in ids with edges of weight w.
// For directed graphs, mirrors each edge in the opposite direction.
// Complexity: O(m^2) time where m = len(ids), O(1) extra space.
func addCompleteEdges(g *idgraph.Graph, ids []string, w float64) error {
	for i := 0; i < len(ids); i++ {
		u := ids[i]
		for j := i + 1; j < len(ids); j++ {
			v := ids[j]
			if _, err := g.AddWeightedEdge(u, v, w); err != nil {
				return fmt.Errorf("addCompleteEdges: AddEdge(%s->%s,w=%g): %w", u, v, w, err)
			}
			if g.Directed() {
				if _, err := g.AddWeightedEdge(v, u, w); err != nil {
					return fmt.Errorf("addCompleteEdges: AddEdge(%s->%s,w=%g): %w", v, u, w, err)
				}
			}
		}
	}
	return nil
}

// makeIDs generates n vertex IDs by concatenating prefix and index.
// Example: makeIDs("L",3) -> {"L0","L1","L2"}.
func makeIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = vertexID(prefix, i)
	}
	return ids
}

// vertexID returns a vertex identifier by concatenating prefix and index.
func vertexID(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
