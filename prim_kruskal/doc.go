// Package prim_kruskal computes the total weight of a Minimum Spanning Tree (MST)
// over a *core.Graph with Prim's algorithm, and offers Kruskal's algorithm as an
// independent second method.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V with no cycles and minimum total weight.
//
//   - What this package returns:
//     Only the total weight (Result.Weight) and whether every vertex was reached
//     (Result.Connected). The edge set is not reconstructed.
//
// Algorithms Provided
//
//   - Prim(g *core.Graph, opts ...Option) (Result, error)
//
//   - Strategy: every vertex starts in an indexheap.Heap labelled core.Infinity; the start
//     vertex is decreased to 0. Repeatedly extract the minimum, add its label to the total,
//     and decrease-key each still-queued neighbour whose connecting edge is strictly cheaper
//     than its current label. Extracting a core.Infinity label means the rest of the graph is
//     unreachable: the loop stops and Result.Connected is false.
//
//   - Complexity: O((V + E) log V) time, O(V + E) space. No lazy duplicates: each vertex is in
//     the heap exactly once.
//
//   - Kruskal(g *core.Graph, opts ...Option) (Result, error)
//
//   - Strategy: stable sort of all edges by weight, then union-find. Every stored edge is
//     treated as undirected.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
// Directed adjacency
//
//	core.Graph attaches an edge only to its From vertex. Prim therefore only walks edges in the
//	direction they were stored. Build the graph with core.WithSymmetric (or list both
//	directions) to get the undirected MST; Kruskal agrees with Prim on such graphs.
//
// Error Conditions
//
//	- ErrInvalidGraph        graph is nil.
//	- ErrEmptyGraph          graph has no vertices.
//	- ErrOptionViolation     e.g. WithStart(-1).
//	- ErrWeightOverflow      total weight does not fit in an int64.
//	- ErrUnknownMethod       Compute with a method other than MethodPrim / MethodKruskal.
//	- core.ErrVertexNotFound start vertex outside [0, V).
//
// A disconnected graph is a normal outcome, not an error: Result.String() prints "not connected".
//
// Hooks
//
//	WithOnExtract and WithOnDecreaseKey observe the heap traffic of Prim (metrics, tracing,
//	tests). WithLogger routes debug/info records to a *slog.Logger.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
