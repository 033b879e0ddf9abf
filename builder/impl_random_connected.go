// SPDX-License-Identifier: MIT
// Package: primweight/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, extra) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); extra ≥ 0 and at most the number of
//     pairs left after the chain (else ErrConstructFailed).
//   - cfg.rng must be set (else ErrNeedRandSource).
//   - A random permutation of 0..n-1 is chained first, so the graph is always
//     connected; then `extra` distinct unused pairs are added.
//
// Complexity:
//   - Time: O(n + extra) expected while extra is well below n²/2.
//   - Space: O(n + extra) for the permutation and the used-pair set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primweight/core"
)

// pair is an unordered vertex pair with lo < hi.
type pair struct{ lo, hi int }

func newPair(u, v int) pair {
	if u > v {
		u, v = v, u
	}

	return pair{lo: u, hi: v}
}

// RandomConnected returns a Constructor that builds a connected random graph
// with n-1+extra undirected edges.
func RandomConnected(n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomConnected, n, MinRandomNodes, ErrTooFewVertices)
		}
		free := n*(n-1)/2 - (n - 1)
		if extra < 0 || extra > free {
			return fmt.Errorf("%s: extra=%d not in [0,%d]: %w", MethodRandomConnected, extra, free, ErrConstructFailed)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomConnected, ErrNeedRandSource)
		}
		if err := requireVertices(g, MethodRandomConnected, n); err != nil {
			return err
		}

		used := make(map[pair]struct{}, n-1+extra)
		perm := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			u, v := perm[i-1], perm[i]
			used[newPair(u, v)] = struct{}{}
			if err := addUndirected(g, cfg, MethodRandomConnected, u, v); err != nil {
				return err
			}
		}

		for added := 0; added < extra; {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			p := newPair(u, v)
			if _, dup := used[p]; dup {
				continue
			}
			used[p] = struct{}{}
			if err := addUndirected(g, cfg, MethodRandomConnected, u, v); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}
