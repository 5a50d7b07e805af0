package dfs

import "github.com/katalvlaran/coregraph/indexgraph"

// topoSorter runs a White/Gray/Black depth-first walk, collecting a
// post-order list that is reversed once the walk completes.
type topoSorter struct {
	g     indexgraph.IndexGraph
	state []int
	order []int
}

// TopologicalSort computes a linear ordering of g's vertices such that for
// every edge u->v, u precedes v. Requires g to be directed; returns
// ErrCycleDetected if g contains a cycle.
func TopologicalSort(g indexgraph.IndexGraph) ([]int, error) {
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	n := g.N()
	s := &topoSorter{
		g:     g,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		if s.state[v] == white {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}
	return s.order, nil
}

func (s *topoSorter) visit(u int) error {
	s.state[u] = gray
	for _, e := range s.g.OutEdges(u) {
		if s.g.EdgeSource(int(e)) != u {
			continue // only follow u's own outgoing direction
		}
		v := s.g.EdgeTarget(int(e))
		switch s.state[v] {
		case gray:
			return ErrCycleDetected
		case white:
			if err := s.visit(v); err != nil {
				return err
			}
		}
	}
	s.state[u] = black
	s.order = append(s.order, u)
	return nil
}
