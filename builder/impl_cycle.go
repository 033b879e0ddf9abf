// SPDX-License-Identifier: MIT
// Package: primweight/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the ring in order: 0-1, 1-2, …, (n-2)-(n-1), then the closing (n-1)-0.
//
// Complexity:
//   - Time: O(n) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primweight/core"
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := requireVertices(g, MethodCycle, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err := addUndirected(g, cfg, MethodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
