// SPDX-License-Identifier: MIT
// Package: primweight/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r, c) is vertex r*cols + c (row-major).
//   - For each cell in row-major order: emit the right edge, then the down edge.
//
// Complexity:
//   - Time: O(rows*cols) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primweight/core"
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if err := requireVertices(g, MethodGrid, rows*cols); err != nil {
			return err
		}

		var r, c, v int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				v = r*cols + c
				if c+1 < cols {
					if err := addUndirected(g, cfg, MethodGrid, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addUndirected(g, cfg, MethodGrid, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
