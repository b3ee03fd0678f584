package matching

import (
	"slices"

	"github.com/katalvlaran/konig/bipartite"
)

// predecessor is pred[u]: either the free first layer or the Right vertex
// whose matching edge led to u.
type predecessor struct {
	from bipartite.Right
	free bool
}

// layering is the structure built by one BFS phase.
type layering struct {
	preds     map[bipartite.Right][]bipartite.Left
	pred      map[bipartite.Left]predecessor
	predOrder []bipartite.Left
	unmatched []bipartite.Right
	depth     int
}

// frame is one level of the backward augmenting search.
type frame struct {
	v     bipartite.Right
	cands []bipartite.Left
	next  int
	via   bipartite.Left
}

// matcher encapsulates mutable Hopcroft–Karp state.
type matcher struct {
	opts  Options
	lefts []bipartite.Left
	adj   map[bipartite.Left][]bipartite.Right
	m     *bipartite.Matching
	res   *Result
}

// HopcroftKarp computes a maximum matching of g.
// Returns ErrGraphNil, ErrOptionViolation, or the context error on cancellation.
func HopcroftKarp(g *bipartite.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	mt := newMatcher(g, o)
	if o.GreedySeed {
		mt.seed()
	}
	mt.res.Seeded = mt.m.Size()

	return mt.res, mt.loop()
}

func newMatcher(g *bipartite.Graph, o Options) *matcher {
	adj := g.Adjacency()
	lefts := g.Lefts()
	if o.Order == OrderSorted {
		slices.Sort(lefts)
		for _, nbrs := range adj {
			slices.Sort(nbrs)
		}
	}
	m := bipartite.NewMatching()

	return &matcher{
		opts:  o,
		lefts: lefts,
		adj:   adj,
		m:     m,
		res:   &Result{Matching: m},
	}
}

// seed matches every Left vertex to its first unmatched neighbor.
func (mt *matcher) seed() {
	for _, u := range mt.lefts {
		for _, v := range mt.adj[u] {
			if !mt.m.IsMatchedRight(v) {
				mt.m.Set(v, u)

				break
			}
		}
	}
}

// loop runs phases until a layering finds no free Right vertex.
func (mt *matcher) loop() error {
	for {
		if err := mt.opts.Ctx.Err(); err != nil {
			return err
		}
		mt.res.Phases++

		l := mt.layer()
		if len(l.unmatched) == 0 {
			mt.finish(l)

			return nil
		}

		augmented := 0
		for _, v := range l.unmatched {
			if err := mt.opts.Ctx.Err(); err != nil {
				return err
			}
			if mt.augment(l, v) {
				augmented++
			}
		}
		mt.res.Augmentations += augmented
		mt.opts.OnPhase(PhaseStats{
			Phase:        mt.res.Phases,
			Depth:        l.depth,
			FreeRight:    len(l.unmatched),
			Augmented:    augmented,
			MatchingSize: mt.m.Size(),
		})
	}
}

// layer builds alternating BFS layers from all free Left vertices.
func (mt *matcher) layer() *layering {
	l := &layering{
		preds: make(map[bipartite.Right][]bipartite.Left),
		pred:  make(map[bipartite.Left]predecessor, len(mt.lefts)),
	}

	var frontier []bipartite.Left
	for _, u := range mt.lefts {
		if !mt.m.IsMatchedLeft(u) {
			l.pred[u] = predecessor{free: true}
			l.predOrder = append(l.predOrder, u)
			frontier = append(frontier, u)
		}
	}

	for len(frontier) > 0 && len(l.unmatched) == 0 {
		newLayer := make(map[bipartite.Right][]bipartite.Left)
		var order []bipartite.Right
		for _, u := range frontier {
			for _, v := range mt.adj[u] {
				if _, layered := l.preds[v]; layered {
					continue
				}
				if _, seen := newLayer[v]; !seen {
					order = append(order, v)
				}
				newLayer[v] = append(newLayer[v], u)
			}
		}

		frontier = nil
		for _, v := range order {
			l.preds[v] = newLayer[v]
			if u, ok := mt.m.LeftOf(v); ok {
				frontier = append(frontier, u)
				l.pred[u] = predecessor{from: v}
				l.predOrder = append(l.predOrder, u)
			} else {
				l.unmatched = append(l.unmatched, v)
			}
		}
		if len(order) > 0 {
			l.depth++
		}
	}

	return l
}

// finish records the independent-set witnesses of the final layering.
func (mt *matcher) finish(l *layering) {
	mt.res.IndependentLeft = l.predOrder

	seen := make(map[bipartite.Right]struct{})
	for _, u := range mt.lefts {
		for _, v := range mt.adj[u] {
			if _, layered := l.preds[v]; layered {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			mt.res.IndependentRight = append(mt.res.IndependentRight, v)
		}
	}
}

// augment searches backwards from the free Right vertex root for an
// alternating path ending at a free Left vertex, consuming preds and pred
// entries as it goes. On success every edge of the path is flipped.
func (mt *matcher) augment(l *layering, root bipartite.Right) bool {
	cands, ok := l.preds[root]
	if !ok {
		return false
	}
	delete(l.preds, root)

	stack := []frame{{v: root, cands: cands}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.cands) {
			stack = stack[:len(stack)-1]

			continue
		}
		u := top.cands[top.next]
		top.next++

		p, ok := l.pred[u]
		if !ok {
			continue
		}
		delete(l.pred, u)
		top.via = u

		if p.free {
			// innermost first, so each Left vertex hands over its old partner
			// before the outer frame claims it
			for i := len(stack) - 1; i >= 0; i-- {
				mt.m.Set(stack[i].v, stack[i].via)
			}

			return true
		}

		next, ok := l.preds[p.from]
		if !ok {
			continue
		}
		delete(l.preds, p.from)
		stack = append(stack, frame{v: p.from, cands: next})
	}

	return false
}
