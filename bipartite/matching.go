package bipartite

import (
	"fmt"
	"maps"
	"slices"
)

// Matching is a set of vertex-disjoint edges, indexed from both sides.
// byRight and byLeft are kept mutually inverse by Set.
type Matching struct {
	byRight map[Right]Left
	byLeft  map[Left]Right
}

// NewMatching returns an empty Matching.
func NewMatching() *Matching {
	return &Matching{
		byRight: make(map[Right]Left),
		byLeft:  make(map[Left]Right),
	}
}

// MatchingFromMap builds a Matching from a Right → Left mapping.
// Returns ErrLeftMatchedTwice if two Right vertices share a partner.
func MatchingFromMap(pairs map[Right]Left) (*Matching, error) {
	m := NewMatching()
	for v, u := range pairs {
		if prev, ok := m.byLeft[u]; ok {
			return nil, fmt.Errorf("%w: %v ↔ {%v, %v}", ErrLeftMatchedTwice, L(u), R(prev), R(v))
		}
		m.byRight[v] = u
		m.byLeft[u] = v
	}

	return m, nil
}

// Set matches v with u. Any previous partner of v or of u loses its pair.
func (m *Matching) Set(v Right, u Left) {
	if oldU, ok := m.byRight[v]; ok && m.byLeft[oldU] == v {
		delete(m.byLeft, oldU)
	}
	if oldV, ok := m.byLeft[u]; ok && oldV != v {
		delete(m.byRight, oldV)
	}
	m.byRight[v] = u
	m.byLeft[u] = v
}

// LeftOf returns the Left partner of v.
func (m *Matching) LeftOf(v Right) (Left, bool) {
	u, ok := m.byRight[v]

	return u, ok
}

// RightOf returns the Right partner of u.
func (m *Matching) RightOf(u Left) (Right, bool) {
	v, ok := m.byLeft[u]

	return v, ok
}

// IsMatchedLeft reports whether u has a partner.
func (m *Matching) IsMatchedLeft(u Left) bool {
	_, ok := m.byLeft[u]

	return ok
}

// IsMatchedRight reports whether v has a partner.
func (m *Matching) IsMatchedRight(v Right) bool {
	_, ok := m.byRight[v]

	return ok
}

// Contains reports whether the edge u→v is in the matching.
func (m *Matching) Contains(u Left, v Right) bool {
	w, ok := m.byRight[v]

	return ok && w == u
}

// Size returns the number of matched pairs.
func (m *Matching) Size() int { return len(m.byRight) }

// Map returns a copy of the Right → Left mapping.
func (m *Matching) Map() map[Right]Left { return maps.Clone(m.byRight) }

// Pairs returns the matched edges ordered by ascending Right ID.
func (m *Matching) Pairs() []Edge {
	rights := slices.Sorted(maps.Keys(m.byRight))
	out := make([]Edge, 0, len(rights))
	for _, v := range rights {
		out = append(out, Edge{From: m.byRight[v], To: v})
	}

	return out
}

// Clone returns an independent copy of m.
func (m *Matching) Clone() *Matching {
	return &Matching{byRight: maps.Clone(m.byRight), byLeft: maps.Clone(m.byLeft)}
}

// Validate checks that m is a matching of g: both indexes agree, no Left
// vertex is used twice, and every pair is an edge of g.
func (m *Matching) Validate(g *Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(m.byLeft) != len(m.byRight) {
		return fmt.Errorf("%w: %d right vs %d left entries", ErrLeftMatchedTwice, len(m.byRight), len(m.byLeft))
	}
	for _, e := range m.Pairs() {
		if back, ok := m.byLeft[e.From]; !ok || back != e.To {
			return fmt.Errorf("%w: %v", ErrLeftMatchedTwice, L(e.From))
		}
		if !g.HasEdge(e.From, e.To) {
			return fmt.Errorf("%w: %v", ErrUnknownEdge, e)
		}
	}

	return nil
}
