// Package core provides the graph model consumed by the indexed heap and the
// MST algorithms.
//
// The model is deliberately flat:
//
//   - Vertices are the dense integers 0..V-1, fixed when the graph is created.
//   - Edges are (From, To, Weight) triples stored in one slice; the slice index
//     is the edge ID.
//   - Each vertex keeps the ordered list of edge IDs that originate at it.
//
// Adjacency is directed: AddEdge(u, v, w) only attaches the edge to u.
// Inputs that list every undirected edge in both directions work as-is.
// Inputs that list each undirected edge once should build the graph with
// WithSymmetric, which stores the reverse edge automatically.
//
// Configuration Options (GraphOption):
//
//	– WithSymmetric()
//	    Mirror every non-loop edge (u,v,w) as (v,u,w).
//	– WithLoops()
//	    Accept self-loops; rejected with ErrLoopNotAllowed otherwise.
//
// Vertex records:
//
//	Vertices() hands out one core.Vertex per vertex with Label = Infinity.
//	These records are what indexheap.Heap orders and what Prim mutates;
//	the Graph itself is never written to by an algorithm.
//
// Complexity:
//
//	NewGraph O(V), AddEdge O(1) amortized, Edges O(E), OutEdges O(deg).
package core
