// Package indexheap defines the sentinel errors and counters of the indexed
// binary min-heap.
package indexheap

import "errors"

// Sentinel errors returned by Heap operations.
var (
	// ErrEmptyHeap indicates ExtractMin or Peek on a heap with no elements.
	// A correctly driven traversal checks Len first, so seeing this error
	// means the caller broke the contract.
	ErrEmptyHeap = errors.New("indexheap: heap is empty")

	// ErrNotInHeap indicates DecreaseKey on a vertex that was never inserted
	// or has already been extracted.
	ErrNotInHeap = errors.New("indexheap: vertex not in heap")

	// ErrKeyIncrease indicates DecreaseKey with a label larger than the current one.
	ErrKeyIncrease = errors.New("indexheap: new label is larger than current label")

	// ErrDuplicateVertex indicates Insert of a vertex whose name is already present.
	ErrDuplicateVertex = errors.New("indexheap: vertex already in heap")

	// ErrNegativeName indicates Insert of a vertex with Name < 0.
	ErrNegativeName = errors.New("indexheap: negative vertex name")
)

// absent marks an indices slot for a name that was never inserted.
const absent = -1

// OpCounts tallies the work a Heap has done since it was created.
// Swaps counts every exchange of two slots, so Swaps/(Inserts+Extracts+DecreaseKeys)
// approximates the average sift depth.
type OpCounts struct {
	Inserts      int
	Extracts     int
	DecreaseKeys int
	Swaps        int
}
