// SPDX-License-Identifier: MIT
// Package: primweight/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be set (else ErrNeedRandSource).
//   - For each unordered pair i<j in lexicographic order, draw once and keep
//     the pair with probability p. The result may be disconnected.
//
// Complexity:
//   - Time: O(n²) pair checks.
//   - Space: O(1) extra.
//
// Determinism:
//   - Fixed seed ⇒ identical edge set and weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primweight/core"
)

// RandomSparse returns a Constructor that builds an Erdős–Rényi G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if err := requireVertices(g, MethodRandomSparse, n); err != nil {
			return err
		}

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addUndirected(g, cfg, MethodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
