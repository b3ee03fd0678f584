// SPDX-License-Identifier: MIT
// Package: konig/builder
//
// impl_bipartite.go — CompleteBipartite(n1,n2) and Perfect(n) constructors.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs leftBase+i, Right IDs rightBase+j.
//   • Edge emission order: i asc over Left, inner j asc over Right.
//
// Complexity:
//   • CompleteBipartite: O(n1·n2) edges.
//   • Perfect: O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/konig/bipartite"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	methodPerfect           = "Perfect"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
// Its maximum matching and minimum cover both have size min(n1, n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *bipartite.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				g.AddEdge(cfg.left(i), cfg.right(j))
			}
		}

		return nil
	}
}

// Perfect returns a Constructor for n disjoint edges Left i ↔ Right i.
func Perfect(n int) Constructor {
	return func(g *bipartite.Graph, cfg builderConfig) error {
		if n < minPartitionSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPerfect, n, minPartitionSize, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddEdge(cfg.left(i), cfg.right(i))
		}

		return nil
	}
}
