// SPDX-License-Identifier: MIT
// Package: primweight/builder
//
// helpers.go - shared internals for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primweight/core"
)

// requireVertices fails with ErrTooFewVertices if g holds fewer than k vertices.
func requireVertices(g *core.Graph, method string, k int) error {
	if g.VertexCount() < k {
		return fmt.Errorf("%s: graph has %d vertices, need %d: %w", method, g.VertexCount(), k, ErrTooFewVertices)
	}

	return nil
}

// addUndirected draws one weight and connects u and v in both directions.
// On a symmetric graph core mirrors the edge itself, so a single AddEdge suffices.
func addUndirected(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}
	if g.Symmetric() {
		return nil
	}
	if _, err := g.AddEdge(v, u, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, v, u, w, err)
	}

	return nil
}
