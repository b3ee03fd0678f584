// SPDX-License-Identifier: MIT
// Package: konig/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIDBase sets the first Left and Right IDs. Using the same base on both
// sides produces overlapping integers, which is how the input format looks.
// Panics on negative values.
func WithIDBase(left, right int) BuilderOption {
	if left < 0 || right < 0 {
		panic("builder: WithIDBase(negative)")
	}

	return func(c *builderConfig) {
		c.leftBase, c.rightBase = left, right
	}
}
