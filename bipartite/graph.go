package bipartite

import (
	"slices"
	"sync"
)

// Graph is a bipartite adjacency from Left vertices to ordered Right neighbors.
//
// mu guards all fields; lefts and rights record first-seen order; multiplicity
// counts parallel copies of each edge so HasEdge stays O(1) without dedup.
type Graph struct {
	mu sync.RWMutex

	dedup bool

	lefts  []Left
	rights []Right
	adj    map[Left][]Right
	seenR  map[Right]struct{}

	multiplicity map[Edge]int
	edgeCount    int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adj:          make(map[Left][]Right),
		seenR:        make(map[Right]struct{}),
		multiplicity: make(map[Edge]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromEdges builds a Graph from a list of edges in the given order.
func FromEdges(edges []Edge, opts ...GraphOption) *Graph {
	g := NewGraph(opts...)
	for _, e := range edges {
		g.AddEdge(e.From, e.To)
	}

	return g
}

// AddLeft registers u as a Left vertex even if it has no edges.
// Returns false if u was already present.
func (g *Graph) AddLeft(u Left) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addLeftLocked(u)
}

func (g *Graph) addLeftLocked(u Left) bool {
	if _, ok := g.adj[u]; ok {
		return false
	}
	g.adj[u] = nil
	g.lefts = append(g.lefts, u)

	return true
}

// AddEdge appends v to the neighbor list of u, registering both endpoints.
// With WithDedup a repeated edge is ignored and AddEdge returns false.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u Left, v Right) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	e := Edge{From: u, To: v}
	if g.dedup && g.multiplicity[e] > 0 {
		return false
	}

	g.addLeftLocked(u)
	if _, ok := g.seenR[v]; !ok {
		g.seenR[v] = struct{}{}
		g.rights = append(g.rights, v)
	}
	g.adj[u] = append(g.adj[u], v)
	g.multiplicity[e]++
	g.edgeCount++

	return true
}

// HasLeft reports whether u is a Left vertex of g.
func (g *Graph) HasLeft(u Left) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[u]

	return ok
}

// HasRight reports whether v is a Right vertex of g.
func (g *Graph) HasRight(v Right) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.seenR[v]

	return ok
}

// HasEdge reports whether at least one edge u→v exists.
func (g *Graph) HasEdge(u Left, v Right) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.multiplicity[Edge{From: u, To: v}] > 0
}

// Neighbors returns a copy of the ordered neighbor list of u.
// Unknown vertices have no neighbors.
func (g *Graph) Neighbors(u Left) []Right {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.adj[u])
}

// Degree returns the number of edges leaving u, parallel copies included.
func (g *Graph) Degree(u Left) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u])
}

// Lefts returns the Left vertices in first-seen order.
func (g *Graph) Lefts() []Left {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.lefts)
}

// Rights returns the Right vertices in first-seen order.
func (g *Graph) Rights() []Right {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.rights)
}

// SortedLefts returns the Left vertices in ascending ID order.
func (g *Graph) SortedLefts() []Left {
	out := g.Lefts()
	slices.Sort(out)

	return out
}

// SortedRights returns the Right vertices in ascending ID order.
func (g *Graph) SortedRights() []Right {
	out := g.Rights()
	slices.Sort(out)

	return out
}

// LeftCount returns |Left|.
func (g *Graph) LeftCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.lefts)
}

// RightCount returns |Right|.
func (g *Graph) RightCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.rights)
}

// EdgeCount returns the number of stored edges, parallel copies included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every stored edge, grouped by Left vertex in first-seen
// order and then in neighbor order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, u := range g.lefts {
		for _, v := range g.adj[u] {
			out = append(out, Edge{From: u, To: v})
		}
	}

	return out
}

// Adjacency returns a deep copy of the Left → []Right mapping.
func (g *Graph) Adjacency() map[Left][]Right {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[Left][]Right, len(g.adj))
	for u, nbrs := range g.adj {
		out[u] = slices.Clone(nbrs)
	}

	return out
}
