package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrSourceNotFound is returned when the source node is outside the network.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = errors.New("source node not found")

// ErrSinkNotFound is returned when the sink node is outside the network.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = errors.New("sink node not found")

// ErrNodeRange is returned by AddArc for an endpoint outside [0, Nodes()).
var ErrNodeRange = errors.New("flow: node out of range")

// EdgeError is returned when an arc has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on arc %d→%d: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures the max-flow algorithms.
//   - Ctx: cancellation; nil means context.Background().
//   - Logger: if set, each augmentation is logged at debug level.
//   - LevelRebuildInterval: for Dinic, rebuild the level graph every N augmentations.
type FlowOptions struct {
	Ctx                  context.Context
	Logger               logrus.FieldLogger
	LevelRebuildInterval int
}

// DefaultOptions returns background context, no logging, no forced rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background()}
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// arc is one residual arc; rev indexes its twin in adj[to].
type arc struct {
	to  int
	rev int
	cap int64
}

// Network is a directed capacity network over dense nodes 0..n-1.
// Every AddArc also stores a zero-capacity reverse arc, so the network
// doubles as its own residual graph.
type Network struct {
	adj [][]arc
}

// NewNetwork returns a network with n isolated nodes.
func NewNetwork(n int) *Network {
	return &Network{adj: make([][]arc, n)}
}

// Nodes returns the node count.
func (nw *Network) Nodes() int { return len(nw.adj) }

// AddArc adds u→v with capacity c.
// Returns ErrNodeRange or EdgeError for invalid input.
func (nw *Network) AddArc(u, v int, c int64) error {
	if u < 0 || u >= len(nw.adj) || v < 0 || v >= len(nw.adj) {
		return fmt.Errorf("%w: %d→%d with %d nodes", ErrNodeRange, u, v, len(nw.adj))
	}
	if c < 0 {
		return EdgeError{From: u, To: v, Cap: c}
	}
	rev := len(nw.adj[v])
	if u == v {
		rev++ // self-loop: the twin lands right after the forward arc
	}
	nw.adj[u] = append(nw.adj[u], arc{to: v, rev: rev, cap: c})
	nw.adj[v] = append(nw.adj[v], arc{to: u, rev: len(nw.adj[u]) - 1, cap: 0})

	return nil
}

// Residual returns the summed residual capacity u→v.
func (nw *Network) Residual(u, v int) int64 {
	var sum int64
	for _, a := range nw.adj[u] {
		if a.to == v {
			sum += a.cap
		}
	}

	return sum
}

// Clone returns an independent copy, e.g. to run two algorithms on one input.
func (nw *Network) Clone() *Network {
	out := &Network{adj: make([][]arc, len(nw.adj))}
	for u, arcs := range nw.adj {
		out.adj[u] = append([]arc(nil), arcs...)
	}

	return out
}
