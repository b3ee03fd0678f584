package flow

import (
	"context"
	"math"
)

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm (level graph + blocking flows). nw is updated in place and holds
// the residual network on return.
//
// Steps:
//  1. Normalize options and validate terminals.
//  2. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS from source to assign levels over arcs with positive capacity.
//     c. DFS pushes along level-increasing arcs, remembering per-node arc
//     cursors so each arc is abandoned at most once per level graph.
//     Optionally rebuild levels every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V²·E) in general; O(E·√V) on unit-capacity bipartite networks.
//	Memory: O(V + E).
func Dinic(nw *Network, source, sink int, opts FlowOptions) (int64, error) {
	opts.normalize()
	ctx := opts.Ctx

	if err := validateTerminals(nw, source, sink); err != nil {
		return 0, err
	}
	if source == sink {
		return 0, nil
	}

	var maxFlow int64
	augmentCount := 0
	level := make([]int, nw.Nodes())
	iter := make([]int, nw.Nodes())
	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}

		if !nw.buildLevels(source, sink, level) {
			break
		}
		for i := range iter {
			iter[i] = 0
		}

		for {
			if err := ctx.Err(); err != nil {
				return maxFlow, err
			}
			pushed := nw.dfsPush(ctx, level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.Logger != nil {
				opts.Logger.Debugf("dinic: pushed %d, total %d", pushed, maxFlow)
			}
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, nil
}

// buildLevels assigns BFS distances from source over positive arcs and
// reports whether sink was reached.
func (nw *Network) buildLevels(source, sink int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range nw.adj[u] {
			if a.cap > 0 && level[a.to] < 0 {
				level[a.to] = level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}

	return level[sink] >= 0
}

// dfsPush recursively pushes flow along the level graph and returns the
// amount actually sent.
func (nw *Network) dfsPush(ctx context.Context, level, iter []int, u, sink int, available int64) int64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for ; iter[u] < len(nw.adj[u]); iter[u]++ {
		a := nw.adj[u][iter[u]]
		if a.cap <= 0 || level[a.to] != level[u]+1 {
			continue
		}
		send := available
		if a.cap < send {
			send = a.cap
		}
		if pushed := nw.dfsPush(ctx, level, iter, a.to, sink, send); pushed > 0 {
			nw.push(u, iter[u], pushed)

			return pushed
		}
	}

	return 0
}
