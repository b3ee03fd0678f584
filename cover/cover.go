package cover

import (
	"context"
	"fmt"

	"github.com/katalvlaran/konig/bfs"
	"github.com/katalvlaran/konig/bipartite"
)

// NonMatchingNeighbors builds N: for every Left vertex u, the neighbors v of
// u such that (u, v) is not the matching edge of v. Parallel copies of a
// non-matching edge are kept; copies of a matching edge are all dropped.
func NonMatchingNeighbors(g *bipartite.Graph, m *bipartite.Matching) (map[bipartite.Left][]bipartite.Right, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if m == nil {
		return nil, ErrMatchingNil
	}

	n := make(map[bipartite.Left][]bipartite.Right)
	for _, u := range g.Lefts() {
		var out []bipartite.Right
		for _, v := range g.Neighbors(u) {
			if m.Contains(u, v) {
				continue
			}
			out = append(out, v)
		}
		if len(out) > 0 {
			n[u] = out
		}
	}

	return n, nil
}

// Derive computes N, the reachability set T from seeds, and the cover.
// Seeds that are not Left vertices of g are ignored.
func Derive(ctx context.Context, g *bipartite.Graph, m *bipartite.Matching, seeds []bipartite.Left) (*Result, error) {
	n, err := NonMatchingNeighbors(g, m)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	starts := make([]bipartite.Vertex, 0, len(seeds))
	for _, u := range seeds {
		if g.HasLeft(u) {
			starts = append(starts, bipartite.L(u))
		}
	}

	next := func(x bipartite.Vertex) []bipartite.Vertex {
		if !x.IsLeft() {
			if u, ok := m.LeftOf(x.Right()); ok {
				return []bipartite.Vertex{bipartite.L(u)}
			}

			return nil
		}
		nbrs := n[x.Left()]
		out := make([]bipartite.Vertex, len(nbrs))
		for i, v := range nbrs {
			out[i] = bipartite.R(v)
		}

		return out
	}

	walk, err := bfs.BFS(starts, next, bfs.WithContext[bipartite.Vertex](ctx))
	if err != nil {
		return nil, fmt.Errorf("cover: reachability: %w", err)
	}

	t := bipartite.NewVertexSet(walk.Order...)
	c := make(bipartite.VertexSet, m.Size())
	for _, u := range g.Lefts() {
		if !t.Has(bipartite.L(u)) {
			c.Add(bipartite.L(u))
		}
	}
	for _, x := range walk.Order {
		if !x.IsLeft() {
			c.Add(x)
		}
	}

	return &Result{
		Neighbors: n,
		Reachable: t,
		Order:     walk.Order,
		Cover:     c,
	}, nil
}

// Verify checks that c covers every edge of g and that |c| == |m|.
// The first uncovered edge is reported wrapped in ErrUncoveredEdge.
func Verify(g *bipartite.Graph, m *bipartite.Matching, c bipartite.VertexSet) error {
	if g == nil {
		return ErrGraphNil
	}
	if m == nil {
		return ErrMatchingNil
	}
	for _, e := range g.Edges() {
		if !c.Has(bipartite.L(e.From)) && !c.Has(bipartite.R(e.To)) {
			return fmt.Errorf("%w: %s", ErrUncoveredEdge, e)
		}
	}
	if c.Len() != m.Size() {
		return fmt.Errorf("%w: cover %d, matching %d", ErrSizeMismatch, c.Len(), m.Size())
	}

	return nil
}
