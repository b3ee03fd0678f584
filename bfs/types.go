package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNeighborsNil is returned when no neighbor function is supplied.
	ErrNeighborsNil = errors.New("bfs: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[V comparable] func(*BFSOptions[V])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[V comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id V, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor V) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with background context, no depth
// limit, no filtering and a no-op OnVisit hook.
func DefaultOptions[V comparable]() BFSOptions[V] {
	return BFSOptions[V]{
		Ctx:            context.Background(),
		OnVisit:        func(V, int) error { return nil },
		FilterNeighbor: func(_, _ V) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *BFSOptions[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[V comparable](fn func(id V, depth int) error) Option[V] {
	return func(o *BFSOptions[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *BFSOptions[V]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option[V] {
	return func(o *BFSOptions[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the nearest start.
//   - Parent: map from vertex to its predecessor in the BFS forest.
type BFSResult[V comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent map[V]V
}

// Reached reports whether v was visited.
func (r *BFSResult[V]) Reached(v V) bool {
	_, ok := r.Depth[v]

	return ok
}

// PathTo reconstructs the path from the start vertex that reached dest.
// Returns an error if dest was not reached.
func (r *BFSResult[V]) PathTo(dest V) ([]V, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := []V{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
