// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// Every stored edge is treated as undirected, so on graphs whose adjacency is
// symmetric (core.WithSymmetric or both directions listed) it agrees with Prim.
package prim_kruskal

import (
	"log/slog"
	"sort"

	"github.com/katalvlaran/primweight/core"
)

// Kruskal computes the total weight of a minimum spanning forest using a
// disjoint-set (union-find) with path compression and union by rank.
//
// Error Conditions:
//   - ErrOptionViolation    : an Option received a meaningless value.
//   - ErrInvalidGraph       : graph is nil.
//   - ErrEmptyGraph         : graph has no vertices.
//   - core.ErrVertexNotFound: start vertex is outside [0, V).
//   - ErrWeightOverflow     : the forest weight exceeds math.MaxInt64.
//
// Result: Weight is the forest weight; Connected is true iff the forest is a
// single tree; Reached is the size of the start vertex's component.
//
// Steps:
//  1. Validate.
//  2. Collect edges, skipping self-loops.
//  3. Stable sort by ascending weight (ties keep edge ID order).
//  4. Initialize parent[v] = v, rank[v] = 0.
//  5. For each edge (u,v): if find(u) != find(v) → union, add weight. Stop at V-1 unions.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(g *core.Graph, opts ...Option) (Result, error) {
	// 1. Validate.
	cfg := resolve(opts)
	if err := validate(g, cfg); err != nil {
		return Result{}, err
	}
	n := g.VertexCount()

	// 2. Collect all edges, skipping self-loops to avoid trivial cycles.
	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Sort edges by ascending weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Initialize disjoint-set structures.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges the sets of u and v; false if they were already joined.
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}

		return true
	}

	// 5. Build the forest.
	var (
		total  int64
		joined int
		err    error
	)
	for _, e := range edges {
		if joined == n-1 {
			break
		}
		if union(e.From, e.To) {
			if total, err = addWeight(total, e.Weight); err != nil {
				return Result{}, err
			}
			joined++
		}
	}

	root := find(cfg.Start)
	reached := 0
	for v := 0; v < n; v++ {
		if find(v) == root {
			reached++
		}
	}

	res := Result{
		Method:    MethodKruskal,
		Weight:    total,
		Reached:   reached,
		Connected: joined == n-1,
	}
	cfg.Logger.Debug("kruskal finished",
		slog.String("method", MethodKruskal),
		slog.Int64("weight", res.Weight),
		slog.Int("reached", res.Reached),
		slog.Bool("connected", res.Connected),
	)

	return res, nil
}
