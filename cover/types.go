package cover

import (
	"errors"

	"github.com/katalvlaran/konig/bipartite"
)

// Sentinel errors for cover derivation and verification.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("cover: graph is nil")

	// ErrMatchingNil is returned if a nil matching pointer is passed.
	ErrMatchingNil = errors.New("cover: matching is nil")

	// ErrUncoveredEdge is returned by Verify when an edge has no endpoint in the cover.
	ErrUncoveredEdge = errors.New("cover: edge not covered")

	// ErrSizeMismatch is returned by Verify when |cover| != |matching|.
	ErrSizeMismatch = errors.New("cover: cover size differs from matching size")
)

// Result holds the outcome of Derive.
type Result struct {
	// Neighbors maps each Left vertex to its Right neighbors over
	// non-matching edges, in adjacency order. Empty lists are omitted.
	Neighbors map[bipartite.Left][]bipartite.Right

	// Reachable is the alternating-path reachability set T.
	Reachable bipartite.VertexSet

	// Order lists T in traversal order.
	Order []bipartite.Vertex

	// Cover is the minimum vertex cover (Left − T) ∪ (Right ∩ T).
	Cover bipartite.VertexSet
}

// Size returns |Cover|.
func (r *Result) Size() int { return r.Cover.Len() }
