package maxflow

import "math"

// EdmondsKarp computes a maximum flow from source to sink over net by
// repeatedly finding a BFS shortest augmenting path and pushing the
// bottleneck capacity along it: the classic capMap BFS-then-augment loop,
// adapted onto the arc arena.
func EdmondsKarp(net *Network, source, sink int) (*Result, error) {
	if err := validateEndpoints(net, source, sink); err != nil {
		return nil, err
	}

	var total float64
	parentArc := make([]int32, net.n)
	visited := make([]bool, net.n)
	queue := make([]int, 0, net.n)

	for {
		for i := range visited {
			visited[i] = false
			parentArc[i] = -1
		}
		visited[source] = true
		queue = queue[:0]
		queue = append(queue, source)
		for i := 0; i < len(queue) && !visited[sink]; i++ {
			u := queue[i]
			for arc := net.head[u]; arc != -1; arc = net.next[arc] {
				v := int(net.to[arc])
				if net.cap[arc] <= 0 || visited[v] {
					continue
				}
				visited[v] = true
				parentArc[v] = arc
				queue = append(queue, v)
			}
		}
		if !visited[sink] {
			break
		}

		bottleneck := math.Inf(1)
		for v := sink; v != source; {
			arc := parentArc[v]
			if net.cap[arc] < bottleneck {
				bottleneck = net.cap[arc]
			}
			v = int(net.to[arc^1])
		}
		for v := sink; v != source; {
			arc := parentArc[v]
			net.push(int(arc), bottleneck)
			v = int(net.to[arc^1])
		}
		total += bottleneck
	}
	return &Result{Value: total, Network: net}, nil
}

func validateEndpoints(net *Network, source, sink int) error {
	if source < 0 || source >= net.n {
		return ErrSourceNotFound
	}
	if sink < 0 || sink >= net.n {
		return ErrSinkNotFound
	}
	if source == sink {
		return ErrSameSourceSink
	}
	return nil
}
