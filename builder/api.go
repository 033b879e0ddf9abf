// SPDX-License-Identifier: MIT
// Package: primweight/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primweight/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only touch vertices that already exist in g (0..VertexCount-1).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with n vertices and graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors
// in order. Any error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - core.ErrNegativeVertexCount when n < 0.
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph g using options bopts.
// It is the building block for callers that already own a graph (for example,
// one read by converters) and want to overlay a topology on it.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Work on the first k vertices of g, where k is derived from its parameters.
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.
//
// Path(n)                 P_n over 0..n-1 (n ≥ 2).
// Cycle(n)                C_n over 0..n-1 (n ≥ 3).
// Star(n)                 center 0 with leaves 1..n-1 (n ≥ 2).
// Complete(n)             K_n over 0..n-1 (n ≥ 2).
// Grid(rows, cols)        4-neighbourhood grid, vertex r*cols+c.
// RandomSparse(n, p)      Erdős–Rényi G(n, p); needs WithSeed/WithRand.
// RandomConnected(n, k)   shuffled spanning chain plus k extra pairs; needs WithSeed/WithRand.
