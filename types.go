package konig

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/konig/bipartite"
	"github.com/katalvlaran/konig/matching"
)

// Sentinel errors for Solve.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("konig: graph is nil")

	// ErrVerification is returned by Solve(WithVerify()) when a check fails.
	ErrVerification = errors.New("konig: verification failed")
)

// Option configures Solve.
type Option func(*Options)

// Options holds parameters for Solve.
type Options struct {
	// Order selects the vertex enumeration order of the matcher.
	Order matching.Order

	// GreedySeed enables the greedy initial matching.
	GreedySeed bool

	// Verify re-checks the cover and the matching size after solving.
	Verify bool

	// Logger receives debug-level phase statistics.
	Logger logrus.FieldLogger
}

// DefaultOptions returns first-seen order, greedy seed on, no verification
// and a logger that discards everything.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Order:      matching.OrderFirstSeen,
		GreedySeed: true,
		Logger:     silent,
	}
}

// WithOrder selects the matcher's enumeration order.
func WithOrder(o matching.Order) Option {
	return func(opts *Options) { opts.Order = o }
}

// WithGreedySeed toggles the greedy seed step.
func WithGreedySeed(enabled bool) Option {
	return func(opts *Options) { opts.GreedySeed = enabled }
}

// WithVerify enables cover.Verify and the flow cross-check.
func WithVerify() Option {
	return func(opts *Options) { opts.Verify = true }
}

// WithLogger routes phase statistics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(opts *Options) {
		if l != nil {
			opts.Logger = l
		}
	}
}

// Solution is the outcome of Solve.
type Solution struct {
	// Matching is a maximum matching, Right → Left.
	Matching *bipartite.Matching

	// IndependentLeft and IndependentRight are the sets A and B of the
	// final layering; together a maximum independent set.
	IndependentLeft  []bipartite.Left
	IndependentRight []bipartite.Right

	// Neighbors is N: Left → Right over non-matching edges.
	Neighbors map[bipartite.Left][]bipartite.Right

	// Reachable is T, with Order giving its traversal sequence.
	Reachable bipartite.VertexSet
	Order     []bipartite.Vertex

	// Cover is the minimum vertex cover.
	Cover bipartite.VertexSet

	// Matcher statistics.
	Seeded        int
	Phases        int
	Augmentations int

	// Verified is true when WithVerify checks ran and passed.
	Verified bool
}

// Size returns |Cover|, equal to the matching size.
func (s *Solution) Size() int { return s.Cover.Len() }
