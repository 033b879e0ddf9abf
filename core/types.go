// Package core defines the central Graph, Vertex, and Edge types used by the
// heap and MST packages.
//
// Vertices are dense integers in [0, V). Edges live in one flat slice and are
// addressed by their index (the edge ID). Every vertex keeps the ordered list
// of edge IDs that originate at it, so the adjacency is directed even when the
// input describes an undirected graph; see WithSymmetric.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with n < 0.
//	ErrVertexNotFound      - vertex ID outside [0, V).
//	ErrEdgeNotFound        - edge ID outside [0, E).
//	ErrNegativeWeight      - AddEdge with weight < 0.
//	ErrWeightTooLarge      - AddEdge with weight >= Infinity.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates that a graph was requested with fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexNotFound indicates an operation referenced a vertex outside [0, V).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge ID outside [0, E).
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative weight was passed to AddEdge.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrWeightTooLarge indicates a weight equal to Infinity, which Prim could never take.
	ErrWeightTooLarge = errors.New("core: edge weight reaches Infinity")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loops not allowed")
)

// Infinity is the sentinel label of a vertex that no known edge attaches to
// the growing tree yet.
const Infinity int64 = math.MaxInt64

// Vertex is one vertex record as it travels through the heap.
//
// Name is stable for the lifetime of the graph. Edges aliases the graph's
// adjacency list for this vertex and must be treated as read-only.
// Label is the mutable priority: the cheapest known edge weight that attaches
// the vertex to the tree, or Infinity.
type Vertex struct {
	Name  int
	Edges []int
	Label int64
}

// Edge is an immutable (From, To, Weight) triple.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Graph is an adjacency-list graph over dense integer vertex IDs.
//
// The vertex count is fixed by NewGraph; edges are appended with AddEdge and
// never removed. Algorithms in this module only read the graph, so a fully
// built Graph may be shared between goroutines. Building it is not
// concurrency-safe.
type Graph struct {
	adjacency  [][]int // adjacency[v] = edge IDs with From == v, in insertion order
	edges      []Edge  // edge catalog, index == edge ID
	symmetric  bool    // AddEdge also stores the reverse edge
	allowLoops bool    // accept From == To
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithSymmetric makes every AddEdge(u, v, w) with u != v also store (v, u, w)
// and attach it to v. Use it when the input lists each undirected edge once.
func WithSymmetric() GraphOption {
	return func(g *Graph) {
		g.symmetric = true
	}
}

// WithLoops permits self-loops (u == u). They never change an MST weight but
// the line protocol may contain them.
func WithLoops() GraphOption {
	return func(g *Graph) {
		g.allowLoops = true
	}
}

// NewGraph creates a graph with n isolated vertices 0..n-1.
// Defaults: adjacency is directed (no symmetrisation) and loops are rejected.
//
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	g := &Graph{
		adjacency: make([][]int, n),
		edges:     make([]Edge, 0, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
