// SPDX-License-Identifier: MIT
// Package: primweight/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits each unordered pair i<j once, lexicographic by (i, j).
//
// Complexity:
//   - Time: O(n²) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primweight/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if err := requireVertices(g, MethodComplete, n); err != nil {
			return err
		}

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := addUndirected(g, cfg, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
