// Package builder provides deterministic "functional-options"-style graph
// constructors for tests, benchmarks and examples of the MST packages.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds the RNG and the weight function.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:  constant weight DefaultEdgeWeight.
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform ∼U[min,max] over integers.
//   - Topologies (Constructor implementations):
//     – Path, Cycle, Star, Complete, Grid: fixed shapes over the first n vertices.
//     – RandomSparse:    Erdős–Rényi G(n, p).
//     – RandomConnected: a shuffled spanning chain plus extra random edges.
//
// Every constructor emits undirected edges: each pair is added once when the
// graph was created with core.WithSymmetric, and in both directions otherwise,
// so Prim always sees the same neighbourhood either way.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical edge IDs and weights.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the method name.
//
// Example:
//
//	g, err := builder.BuildGraph(100,
//	    []core.GraphOption{core.WithSymmetric()},
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
//	    builder.RandomConnected(100, 300),
//	)
package builder
