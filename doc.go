// Package primweight computes the total weight of a minimum spanning tree
// with Prim's algorithm over an indexed binary min-heap with decrease-key.
//
// What is inside?
//
//	• core/         dense graph model: vertices 0..V-1, edges in insertion order
//	• indexheap/    binary min-heap over vertices with a name→slot index (decrease-key in O(log V))
//	• prim_kruskal/ Prim (the heap-driven traversal) and Kruskal (union-find oracle)
//	• converters/   "<V> <E>" + "<from> <to> <weight>" edge-list reader, one-line result writer
//	• builder/      deterministic topology fixtures (path, cycle, grid, random…)
//	• config/       koanf layering: defaults → YAML → PRIMMST_* env → flags
//	• logger/       log/slog handlers with lumberjack rotation
//	• metrics/      Prometheus counters for runs and heap traffic, textfile export
//	• cmd/primmst/  the command-line front end
//
// Quick start:
//
//	g, _ := core.NewGraph(3, core.WithSymmetric())
//	g.AddEdge(0, 1, 4)
//	g.AddEdge(1, 2, 1)
//	res, _ := prim_kruskal.Prim(g)
//	fmt.Println(res) // 5
//
// A graph that is not connected is a result, not an error: Result.String()
// prints "not connected".
package primweight
