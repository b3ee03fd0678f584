package bipartite

import "slices"

// VertexSet is an unordered set of side-tagged vertices.
type VertexSet map[Vertex]struct{}

// NewVertexSet returns a set holding xs.
func NewVertexSet(xs ...Vertex) VertexSet {
	s := make(VertexSet, len(xs))
	for _, x := range xs {
		s[x] = struct{}{}
	}

	return s
}

// Add inserts x and reports whether it was absent.
func (s VertexSet) Add(x Vertex) bool {
	if _, ok := s[x]; ok {
		return false
	}
	s[x] = struct{}{}

	return true
}

// Has reports membership of x.
func (s VertexSet) Has(x Vertex) bool {
	_, ok := s[x]

	return ok
}

// Len returns |s|.
func (s VertexSet) Len() int { return len(s) }

// Sorted returns the members left side first, then by ascending ID.
func (s VertexSet) Sorted() []Vertex {
	out := make([]Vertex, 0, len(s))
	for x := range s {
		out = append(out, x)
	}
	slices.SortFunc(out, func(a, b Vertex) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})

	return out
}

// Lefts returns the Left members in ascending order.
func (s VertexSet) Lefts() []Left {
	var out []Left
	for x := range s {
		if x.IsLeft() {
			out = append(out, x.Left())
		}
	}
	slices.Sort(out)

	return out
}

// Rights returns the Right members in ascending order.
func (s VertexSet) Rights() []Right {
	var out []Right
	for x := range s {
		if !x.IsLeft() {
			out = append(out, x.Right())
		}
	}
	slices.Sort(out)

	return out
}
