package maxflow

// Strategy selects which active vertex push-relabel discharges next.
type Strategy int

const (
	// FIFO discharges active vertices in first-in-first-out order.
	FIFO Strategy = iota
	// HighestLabel always discharges the active vertex with the largest
	// height, giving the O(n^2 sqrt(m)) bound.
	HighestLabel
	// LowestLabel always discharges the active vertex with the smallest
	// height.
	LowestLabel
	// MoveToFront walks a single list of all vertices repeatedly,
	// relocating a vertex to the front of the list whenever it is
	// relabeled (the classic move-to-front discharge order).
	MoveToFront
)

// PushRelabel computes a maximum flow from source to sink over net using
// the generic push/relabel method (height function + excess flow,
// discharge until no vertex but source/sink has positive excess), with the
// active-vertex order governed by strategy. A global
// relabeling pass (BFS from sink over admissible reverse residual arcs)
// runs every n discharges to keep heights close to true distances, the
// standard heuristic for keeping the algorithm's practical running time
// low.
func PushRelabel(net *Network, source, sink int, strategy Strategy) (*Result, error) {
	if err := validateEndpoints(net, source, sink); err != nil {
		return nil, err
	}
	n := net.n
	height := make([]int, n)
	excess := make([]float64, n)

	height[source] = n
	for arc := net.head[source]; arc != -1; arc = net.next[arc] {
		v := int(net.to[arc])
		amount := net.cap[arc]
		if amount <= 0 {
			continue
		}
		net.push(int(arc), amount)
		excess[v] += amount
		excess[source] -= amount
	}

	active := newActiveSet(strategy, n, source, sink, height)
	for v := 0; v < n; v++ {
		if v != source && v != sink && excess[v] > 0 {
			active.add(v)
		}
	}

	discharges := 0
	for {
		u, ok := active.next()
		if !ok {
			break
		}
		discharge(net, u, height, excess, active, source, sink)
		discharges++
		if discharges%n == 0 {
			globalRelabel(net, sink, height)
		}
	}
	return &Result{Value: excess[sink], Network: net}, nil
}

func discharge(net *Network, u int, height []int, excess []float64, active *activeSet, source, sink int) {
	for excess[u] > 0 {
		arc := net.head[u]
		pushed := false
		for arc != -1 {
			v := int(net.to[arc])
			if net.cap[arc] > 0 && height[u] == height[v]+1 {
				delta := excess[u]
				if net.cap[arc] < delta {
					delta = net.cap[arc]
				}
				net.push(int(arc), delta)
				excess[u] -= delta
				excess[v] += delta
				if v != source && v != sink && excess[v] == delta {
					active.add(v)
				}
				pushed = true
				if excess[u] == 0 {
					break
				}
			}
			arc = net.next[arc]
		}
		if excess[u] == 0 {
			return
		}
		if !pushed {
			relabel(net, u, height)
			active.onRelabel(u)
		}
	}
}

// relabel raises u's height to one more than the minimum height among
// vertices reachable via an arc with remaining residual capacity.
func relabel(net *Network, u int, height []int) {
	min := -1
	for arc := net.head[u]; arc != -1; arc = net.next[arc] {
		if net.cap[arc] <= 0 {
			continue
		}
		v := int(net.to[arc])
		if min == -1 || height[v] < min {
			min = height[v]
		}
	}
	if min >= 0 {
		height[u] = min + 1
	}
}

// globalRelabel recomputes every vertex's height as its true unweighted
// residual distance to sink via reverse BFS, the standard heuristic that
// keeps push/relabel's practical performance close to its worst-case
// bound.
func globalRelabel(net *Network, sink int, height []int) {
	n := len(height)
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[sink] = 0
	queue := []int{sink}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for arc := net.head[u]; arc != -1; arc = net.next[arc] {
			v := int(net.to[arc])
			// admissible in reverse: arc v->u's residual capacity is
			// arc^1 (the pair of the arc we are iterating from u).
			if net.cap[arc^1] > 0 && dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	for v := 0; v < n; v++ {
		if dist[v] >= 0 {
			height[v] = dist[v]
		}
	}
}
