// SPDX-License-Identifier: MIT
// Package: konig/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = nil (pure/deterministic unless seeded)
//   • leftBase   = 0
//   • rightBase  = 0

package builder

import (
	"math/rand"

	"github.com/katalvlaran/konig/bipartite"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// First vertex ID on each side.
	leftBase  int
	rightBase int
}

// newBuilderConfig applies options in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// left maps a 0-based index to a Left ID.
func (c builderConfig) left(i int) bipartite.Left { return bipartite.Left(c.leftBase + i) }

// right maps a 0-based index to a Right ID.
func (c builderConfig) right(j int) bipartite.Right { return bipartite.Right(c.rightBase + j) }
