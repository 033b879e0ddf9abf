package indexheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/primweight/core"
	"github.com/katalvlaran/primweight/indexheap"
)

// BenchmarkInsertExtract fills a heap with 10k random labels and drains it.
func BenchmarkInsertExtract(b *testing.B) {
	const n = 10_000
	r := rand.New(rand.NewSource(42))
	labels := make([]int64, n)
	for i := range labels {
		labels[i] = r.Int63n(1 << 20)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := indexheap.New(n)
		for name, l := range labels {
			_ = h.Insert(core.Vertex{Name: name, Label: l})
		}
		for h.Len() > 0 {
			_, _ = h.ExtractMin()
		}
	}
}

// BenchmarkDecreaseKey lowers random keys in a 10k-vertex heap.
func BenchmarkDecreaseKey(b *testing.B) {
	const n = 10_000
	r := rand.New(rand.NewSource(7))
	h := indexheap.New(n)
	for name := 0; name < n; name++ {
		_ = h.Insert(core.Vertex{Name: name, Label: core.Infinity})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		name := r.Intn(n)
		cur, _ := h.Label(name)
		if cur == 0 {
			continue
		}
		_ = h.DecreaseKey(name, cur/2)
	}
}
