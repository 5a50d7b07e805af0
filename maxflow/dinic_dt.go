package maxflow

import "github.com/katalvlaran/coregraph/dtree"

// DinicWithDynamicTrees computes a maximum flow using Sleator and Tarjan's
// dynamic-tree-accelerated Dinic's algorithm: within a phase,
// the current source-to-sink path is maintained as a link-cut tree, so the
// bottleneck over the whole path and its subtraction from every edge is a
// single FindPathMin + AddWeight call instead of a DFS return chain. The
// residual network's own capacities are still updated by walking the
// discovered path once per augmentation (via the parent/treeArc bookkeeping
// kept alongside the tree), since Network.cap must stay authoritative for
// FlowOnEdge and the next phase's level graph; the dynamic tree accelerates
// bottleneck discovery and the bulk subtraction, not the residual write-back.
func DinicWithDynamicTrees(net *Network, source, sink int) (*Result, error) {
	if err := validateEndpoints(net, source, sink); err != nil {
		return nil, err
	}

	var total float64
	n := net.n
	level := make([]int, n)
	iter := make([]int32, n)

	for buildLevelGraph(net, source, sink, level) {
		for v := range iter {
			iter[v] = net.head[v]
		}

		tree := dtree.New()
		for v := 0; v < n; v++ {
			tree.MakeTree(0)
		}
		parent := make([]int, n)
		treeArc := make([]int32, n)
		for i := range parent {
			parent[i] = -1
			treeArc[i] = -1
		}

		u := source
		for {
			if u == sink {
				_, bottleneck, err := tree.FindPathMin(sink)
				if err != nil || bottleneck <= 0 {
					break
				}
				if err := tree.AddWeight(sink, -bottleneck); err != nil {
					break
				}
				total += bottleneck
				for v := sink; v != source; {
					arc := treeArc[v]
					next := parent[v]
					net.push(int(arc), bottleneck)
					if net.cap[arc] <= 0 {
						tree.Cut(v)
						treeArc[v] = -1
						level[v] = -1
					}
					v = next
				}
				u = source
				continue
			}

			advanced := false
			for arc := iter[u]; arc != -1; arc = net.next[arc] {
				iter[u] = arc
				v := int(net.to[arc])
				if net.cap[arc] <= 0 || level[v] != level[u]+1 || treeArc[v] != -1 {
					continue
				}
				if err := tree.Link(v, u, net.cap[arc]); err != nil {
					continue
				}
				parent[v] = u
				treeArc[v] = int32(arc)
				u = v
				advanced = true
				break
			}
			if advanced {
				continue
			}

			iter[u] = -1
			if u == source {
				break
			}
			p := parent[u]
			if treeArc[u] != -1 {
				tree.Cut(u)
				treeArc[u] = -1
			}
			level[u] = -1
			u = p
		}
	}
	return &Result{Value: total, Network: net}, nil
}
