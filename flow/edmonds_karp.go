package flow

import "math"

// EdmondsKarp computes the maximum flow from source to sink using shortest
// (fewest-arc) augmenting paths found by BFS. nw is updated in place.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(nw *Network, source, sink int, opts FlowOptions) (int64, error) {
	opts.normalize()

	if err := validateTerminals(nw, source, sink); err != nil {
		return 0, err
	}
	if source == sink {
		return 0, nil
	}

	var maxFlow int64
	for {
		if err := opts.Ctx.Err(); err != nil {
			return maxFlow, err
		}
		path := nw.bfsAugmentingPath(source, sink)
		if path == nil {
			break
		}

		bottle := int64(math.MaxInt64)
		for _, step := range path {
			if c := nw.adj[step.node][step.arc].cap; c < bottle {
				bottle = c
			}
		}
		for _, step := range path {
			nw.push(step.node, step.arc, bottle)
		}
		maxFlow += bottle
		if opts.Logger != nil {
			opts.Logger.Debugf("edmonds-karp: augmenting %d arcs with %d", len(path), bottle)
		}
	}

	return maxFlow, nil
}

// pathStep identifies arc adj[node][arc].
type pathStep struct {
	node, arc int
}

// bfsAugmentingPath returns the arcs of a shortest source→sink path with
// positive residual capacity, or nil.
func (nw *Network) bfsAugmentingPath(source, sink int) []pathStep {
	parent := make([]pathStep, nw.Nodes())
	visited := make([]bool, nw.Nodes())
	visited[source] = true

	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for i, a := range nw.adj[u] {
			if a.cap <= 0 || visited[a.to] {
				continue
			}
			visited[a.to] = true
			parent[a.to] = pathStep{node: u, arc: i}
			if a.to == sink {
				var path []pathStep
				for cur := sink; cur != source; cur = parent[cur].node {
					path = append(path, parent[cur])
				}

				return path
			}
			queue = append(queue, a.to)
		}
	}

	return nil
}
