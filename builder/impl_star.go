// SPDX-License-Identifier: MIT
// Package: primweight/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the center; leaves 1..n-1 are attached in ascending order.
//
// Complexity:
//   - Time: O(n) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primweight/core"
)

// starCenter is the vertex every leaf attaches to.
const starCenter = 0

// Star returns a Constructor that builds a star with center 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := requireVertices(g, MethodStar, n); err != nil {
			return err
		}

		for leaf := 1; leaf < n; leaf++ {
			if err := addUndirected(g, cfg, MethodStar, starCenter, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
