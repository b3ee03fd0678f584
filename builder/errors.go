// SPDX-License-Identifier: MIT
// Package: konig/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach the method name with %w wrapping.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
