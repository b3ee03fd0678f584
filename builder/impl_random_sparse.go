// SPDX-License-Identifier: MIT
// Package: konig/builder
//
// impl_random_sparse.go - RandomSparse(n1, n2, p) constructor.
//
// Contract:
//   - n1 ≥ 1, n2 ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Every Left vertex is registered, so isolated Left vertices survive.
//
// Determinism:
//   - Trial order: i asc, j asc. Fixed seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/konig/bipartite"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that includes each (Left i, Right j)
// pair independently with probability p.
func RandomSparse(n1, n2 int, p float64) Constructor {
	return func(g *bipartite.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d: %w", methodRandomSparse, n1, n2, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n1; i++ {
			u := cfg.left(i)
			g.AddLeft(u)
			for j := 0; j < n2; j++ {
				if cfg.rng.Float64() < p {
					g.AddEdge(u, cfg.right(j))
				}
			}
		}

		return nil
	}
}
