// SPDX-License-Identifier: MIT
// Package: primweight/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) - i for i=1..n-1 in stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng), one draw per undirected edge.
//
// Complexity:
//   - Time: O(n) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primweight/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := requireVertices(g, MethodPath, n); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err := addUndirected(g, cfg, MethodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
