package indexheap_test

import (
	"fmt"

	"github.com/katalvlaran/primweight/core"
	"github.com/katalvlaran/primweight/indexheap"
)

// ExampleHeap_DecreaseKey shows a vertex overtaking the others after its
// label is lowered, and the membership check after extraction.
func ExampleHeap_DecreaseKey() {
	h := indexheap.New(3)
	for name := 0; name < 3; name++ {
		_ = h.Insert(core.Vertex{Name: name, Label: core.Infinity})
	}

	// Vertex 2 is now reachable with weight 4, vertex 1 with weight 6.
	_ = h.DecreaseKey(2, 4)
	_ = h.DecreaseKey(1, 6)

	v, _ := h.ExtractMin()
	fmt.Println("first:", v.Name, v.Label)
	fmt.Println("2 still queued?", h.Contains(2))
	fmt.Println("left:", h.Len())

	// Output:
	// first: 2 4
	// 2 still queued? false
	// left: 2
}
