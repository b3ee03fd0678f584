// SPDX-License-Identifier: MIT
// Package: konig/builder
//
// impl_path.go — Path(n): the zig-zag path R0–L0–R1–L1–…–R(n-1)–L(n-1).
//
// Left i lists Right i+1 first and Right i second. A greedy pass in insertion
// order therefore matches L_i with R_{i+1}, leaving L(n-1) and R0 free and
// one augmenting path through every vertex.

package builder

import (
	"fmt"

	"github.com/katalvlaran/konig/bipartite"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor for the zig-zag path with n Left and n Right
// vertices; its maximum matching is perfect.
func Path(n int) Constructor {
	return func(g *bipartite.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if i+1 < n {
				g.AddEdge(cfg.left(i), cfg.right(i+1))
			}
			g.AddEdge(cfg.left(i), cfg.right(i))
		}

		return nil
	}
}
