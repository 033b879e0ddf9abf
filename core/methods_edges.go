// File: methods_edges.go
// Role: Edge insertion.
// Determinism:
//   - Edge IDs are assigned densely in call order; a mirrored edge takes the
//     ID right after the forward edge.

package core

import "fmt"

// AddEdge appends the edge (from, to, weight) and attaches its ID to from's
// adjacency list. With WithSymmetric the reverse edge is stored as well.
//
// Steps:
//  1. Validate endpoints, weight and loop policy.
//  2. Append to the catalog; the new ID is the previous EdgeCount.
//  3. Attach the ID to adjacency[from].
//  4. If symmetric and from != to, repeat 2-3 for (to, from).
//
// Returns the ID of the (forward) edge.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is outside [0, V).
//   - ErrNegativeWeight if weight < 0.
//   - ErrWeightTooLarge if weight >= Infinity (the unreachable sentinel).
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) (int, error) {
	// 1) Input validation
	if !g.HasVertex(from) {
		return -1, fmt.Errorf("%w: from=%d (V=%d)", ErrVertexNotFound, from, len(g.adjacency))
	}
	if !g.HasVertex(to) {
		return -1, fmt.Errorf("%w: to=%d (V=%d)", ErrVertexNotFound, to, len(g.adjacency))
	}
	if weight < 0 {
		return -1, fmt.Errorf("%w: %d→%d weight=%d", ErrNegativeWeight, from, to, weight)
	}
	if weight >= Infinity {
		return -1, fmt.Errorf("%w: %d→%d weight=%d", ErrWeightTooLarge, from, to, weight)
	}
	if from == to && !g.allowLoops {
		return -1, ErrLoopNotAllowed
	}

	// 2) Forward edge
	id := g.link(from, to, weight)

	// 3) Mirror
	if g.symmetric && from != to {
		g.link(to, from, weight)
	}

	return id, nil
}

// link stores one edge and records it in the source vertex's list.
func (g *Graph) link(from, to int, weight int64) int {
	id := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.adjacency[from] = append(g.adjacency[from], id)

	return id
}
