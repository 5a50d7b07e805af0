package maxflow

import "github.com/katalvlaran/coregraph/dtree"

// PushRelabelWithDynamicTrees computes a maximum flow using Goldberg and
// Tarjan's dynamic-tree-accelerated push/relabel: each
// discharge extends a link-cut tree along a maximal chain of admissible
// arcs (height strictly decreasing by one per edge) instead of pushing one
// arc at a time, then pushes the whole chain's bottleneck in a single
// AddWeight call once the chain reaches sink, falling back to an ordinary
// relabel-and-cut whenever the chain runs out of admissible arcs before
// reaching it. Active-vertex order is fixed to FIFO here: the per-strategy
// bucket/move-to-front orders PushRelabel offers are a discharge-selection
// concern orthogonal to the tree acceleration, and wiring all four into the
// chain-building loop would not exercise them any differently.
func PushRelabelWithDynamicTrees(net *Network, source, sink int) (*Result, error) {
	if err := validateEndpoints(net, source, sink); err != nil {
		return nil, err
	}
	n := net.n
	height := make([]int, n)
	excess := make([]float64, n)
	height[source] = n

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

	active := newActiveSet(FIFO, n, source, sink, height)
	for arc := net.head[source]; arc != -1; arc = net.next[arc] {
		v := int(net.to[arc])
		amount := net.cap[arc]
		if amount <= 0 {
			continue
		}
		net.push(int(arc), amount)
		excess[v] += amount
		excess[source] -= amount
		active.add(v)
	}

	discharges := 0
	for {
		u, ok := active.next()
		if !ok {
			break
		}
		dischargeDT(net, u, sink, height, excess, active, tree, parent, treeArc)
		discharges++
		if discharges%n == 0 {
			globalRelabel(net, sink, height)
		}
	}
	return &Result{Value: excess[sink], Network: net}, nil
}

func dischargeDT(net *Network, u, sink int, height []int, excess []float64, active *activeSet, tree *dtree.LinkCutTree, parent []int, treeArc []int32) {
	for excess[u] > 0 {
		cur := u
		for cur != sink {
			advanced := false
			for arc := net.head[cur]; arc != -1; arc = net.next[arc] {
				v := int(net.to[arc])
				if net.cap[arc] <= 0 || height[cur] != height[v]+1 || treeArc[v] != -1 {
					continue
				}
				if err := tree.Link(v, cur, net.cap[arc]); err != nil {
					continue
				}
				parent[v] = cur
				treeArc[v] = int32(arc)
				cur = v
				advanced = true
				break
			}
			if !advanced {
				break
			}
		}

		if cur == sink {
			_, bottleneck, err := tree.FindPathMin(sink)
			if err != nil || bottleneck <= 0 {
				break
			}
			if bottleneck > excess[u] {
				bottleneck = excess[u]
			}
			if err := tree.AddWeight(sink, -bottleneck); err != nil {
				break
			}
			for v := sink; v != u; {
				arc := treeArc[v]
				next := parent[v]
				net.push(int(arc), bottleneck)
				if net.cap[arc] <= 0 {
					tree.Cut(v)
					treeArc[v] = -1
				}
				v = next
			}
			excess[u] -= bottleneck
			excess[sink] += bottleneck
			continue
		}

		relabel(net, cur, height)
		active.onRelabel(cur)
		if treeArc[cur] != -1 {
			tree.Cut(cur)
			treeArc[cur] = -1
		}
	}
}
