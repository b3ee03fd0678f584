package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/konig/bipartite"
)

// Sentinel errors for matching.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")
)

// Order selects how vertices and neighbor lists are enumerated.
type Order int

const (
	// OrderFirstSeen follows graph insertion order.
	OrderFirstSeen Order = iota
	// OrderSorted follows ascending vertex IDs.
	OrderSorted
)

// String returns "first-seen" or "sorted".
func (o Order) String() string {
	switch o {
	case OrderFirstSeen:
		return "first-seen"
	case OrderSorted:
		return "sorted"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps "first-seen" / "sorted" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "first-seen":
		return OrderFirstSeen, nil
	case "sorted":
		return OrderSorted, nil
	default:
		return 0, fmt.Errorf("%w: unknown order %q", ErrOptionViolation, s)
	}
}

// PhaseStats describes one augmenting phase.
type PhaseStats struct {
	Phase        int // 1-based phase number
	Depth        int // number of Right layers built
	FreeRight    int // free Right vertices found in the last layer
	Augmented    int // augmenting paths applied in this phase
	MatchingSize int // matching size after the phase
}

// Option configures HopcroftKarp via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for HopcroftKarp.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// GreedySeed enables the initial greedy matching.
	GreedySeed bool

	// Order selects vertex and neighbor enumeration order.
	Order Order

	// OnPhase is called after every phase that augmented the matching.
	OnPhase func(PhaseStats)

	err error
}

// DefaultOptions returns background context, greedy seed on,
// OrderFirstSeen and a no-op OnPhase hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		GreedySeed: true,
		Order:      OrderFirstSeen,
		OnPhase:    func(PhaseStats) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithGreedySeed toggles the greedy seed step.
func WithGreedySeed(enabled bool) Option {
	return func(o *Options) { o.GreedySeed = enabled }
}

// WithOrder selects the enumeration order.
func WithOrder(order Order) Option {
	return func(o *Options) {
		if order != OrderFirstSeen && order != OrderSorted {
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, int(order))

			return
		}
		o.Order = order
	}
}

// WithOnPhase registers a per-phase callback.
func WithOnPhase(fn func(PhaseStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// Result holds the outcome of HopcroftKarp.
type Result struct {
	// Matching is a maximum matching of the graph.
	Matching *bipartite.Matching

	// IndependentLeft lists the Left vertices of the final layering, in
	// layering order.
	IndependentLeft []bipartite.Left

	// IndependentRight lists the Right vertices never layered in the final
	// phase, in edge enumeration order.
	IndependentRight []bipartite.Right

	// Seeded is the matching size after the greedy seed.
	Seeded int

	// Phases counts layering rounds, the final unsuccessful one included.
	Phases int

	// Augmentations counts augmenting paths applied.
	Augmentations int
}

// Size returns the matching cardinality.
func (r *Result) Size() int { return r.Matching.Size() }
