package matching

import (
	"context"

	"github.com/katalvlaran/konig/bipartite"
	"github.com/katalvlaran/konig/flow"
)

// Fixed node indexes of the unit network built by FlowSize.
const (
	flowSource = 0
	flowSink   = 1
)

// UnitNetwork reduces g to a unit-capacity flow network: node 0 is the
// source, node 1 the sink, then one node per Left vertex and one per Right
// vertex in first-seen order. Parallel edges become parallel unit arcs.
func UnitNetwork(g *bipartite.Graph) (*flow.Network, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	lefts, rights := g.Lefts(), g.Rights()

	leftNode := make(map[bipartite.Left]int, len(lefts))
	rightNode := make(map[bipartite.Right]int, len(rights))
	next := 2
	for _, u := range lefts {
		leftNode[u] = next
		next++
	}
	for _, v := range rights {
		rightNode[v] = next
		next++
	}

	nw := flow.NewNetwork(next)
	for _, u := range lefts {
		if err := nw.AddArc(flowSource, leftNode[u], 1); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if err := nw.AddArc(leftNode[e.From], rightNode[e.To], 1); err != nil {
			return nil, err
		}
	}
	for _, v := range rights {
		if err := nw.AddArc(rightNode[v], flowSink, 1); err != nil {
			return nil, err
		}
	}

	return nw, nil
}

// FlowSize returns the maximum matching size of g computed as the maximum
// flow of its unit network with flow.Dinic.
func FlowSize(ctx context.Context, g *bipartite.Graph) (int, error) {
	nw, err := UnitNetwork(g)
	if err != nil {
		return 0, err
	}
	opts := flow.DefaultOptions()
	opts.Ctx = ctx
	mf, err := flow.Dinic(nw, flowSource, flowSink, opts)
	if err != nil {
		return 0, err
	}

	return int(mf), nil
}
