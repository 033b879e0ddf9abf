// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/primweight/core"
)

// BenchmarkAddEdge measures appending edges to a directed graph.
func BenchmarkAddEdge(b *testing.B) {
	const n = 1 << 10
	g, _ := core.NewGraph(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(i%n, (i+1)%n, int64(i))
	}
}

// BenchmarkAddEdge_Symmetric measures the mirrored path.
func BenchmarkAddEdge_Symmetric(b *testing.B) {
	const n = 1 << 10
	g, _ := core.NewGraph(n, core.WithSymmetric())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(i%n, (i+1)%n, int64(i))
	}
}

// BenchmarkVertices measures seeding heap records for a 10k-vertex graph.
func BenchmarkVertices(b *testing.B) {
	g, _ := core.NewGraph(10_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Vertices()
	}
}
