// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over a built Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Slices handed out are copies unless documented otherwise.

package core

// VertexCount returns V. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of stored edges, including mirrored ones
// created by WithSymmetric. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Symmetric reports whether AddEdge mirrors edges.
func (g *Graph) Symmetric() bool { return g.symmetric }

// HasVertex reports whether id lies in [0, V).
func (g *Graph) HasVertex(id int) bool { return id >= 0 && id < len(g.adjacency) }

// Edge returns the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound if id is outside [0, E).
func (g *Graph) Edge(id int) (Edge, error) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, ErrEdgeNotFound
	}

	return g.edges[id], nil
}

// Edges returns a copy of the edge catalog in ID order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// OutEdges returns a copy of the edge IDs originating at v, in insertion order.
//
// Errors:
//   - ErrVertexNotFound if v is outside [0, V).
func (g *Graph) OutEdges(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}
	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Vertices returns one fresh Vertex record per vertex, in ID order, each with
// Label == Infinity. Edges on each record alias the internal adjacency list;
// callers must not modify them.
//
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.adjacency))
	for v := range g.adjacency {
		out[v] = Vertex{Name: v, Edges: g.adjacency[v], Label: Infinity}
	}

	return out
}

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	MaxOutDeg   int
	Isolated    int // vertices with no outgoing edges
	TotalWeight int64
}

// Stats walks the graph once and returns its summary. Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	st := GraphStats{VertexCount: len(g.adjacency), EdgeCount: len(g.edges)}
	for _, ids := range g.adjacency {
		if len(ids) == 0 {
			st.Isolated++
		}
		if len(ids) > st.MaxOutDeg {
			st.MaxOutDeg = len(ids)
		}
	}
	for _, e := range g.edges {
		st.TotalWeight += e.Weight
	}

	return st
}
