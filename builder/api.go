// SPDX-License-Identifier: MIT
// Package: konig/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/konig/bipartite"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return wrapped
// sentinel errors; they never panic.
type Constructor func(g *bipartite.Graph, cfg builderConfig) error

// BuildGraph creates a new bipartite.Graph with options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w".
func BuildGraph(gopts []bipartite.GraphOption, bopts []BuilderOption, cons ...Constructor) (*bipartite.Graph, error) {
	g := bipartite.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
