// SPDX-License-Identifier: MIT
//
// File: heap.go
// Role: Binary min-heap over core.Vertex records with a name → slot reverse index.
// Invariants (checked by heap_test.go after every operation):
//   - index consistency: for every name in the heap, data[indices[name]].Name == name.
//   - heap order: data[i].Label <= data[c].Label for each existing child c of i.
//   - stale slots: an extracted vertex keeps its last slot in indices; that slot is
//     >= len(data) until the next Insert, and Contains double-checks the name.

package indexheap

import (
	"fmt"

	"github.com/katalvlaran/primweight/core"
)

// Heap is a binary min-heap of core.Vertex ordered by Label.
//
// data holds the heap array; indices maps a vertex Name to its slot in data.
// Every reordering goes through swap, which rewrites both, so decrease-key can
// find any vertex in O(1) and fix the heap in O(log n).
//
// Heap is not safe for concurrent use.
type Heap struct {
	data    []core.Vertex
	indices []int
	ops     OpCounts
}

// New returns an empty heap with room for capacity vertices.
func New(capacity int) *Heap {
	if capacity < 0 {
		capacity = 0
	}

	return &Heap{
		data:    make([]core.Vertex, 0, capacity),
		indices: make([]int, 0, capacity),
	}
}

// FromGraph builds a heap holding one record per vertex of g, all labelled
// core.Infinity, inserted in ID order.
//
// Complexity: O(V) (equal labels never percolate).
func FromGraph(g *core.Graph) *Heap {
	h := New(g.VertexCount())
	for _, v := range g.Vertices() {
		if err := h.Insert(v); err != nil {
			// Vertices() yields each name in [0, V) exactly once.
			panic(fmt.Sprintf("indexheap: FromGraph: %v", err))
		}
	}

	return h
}

// Len returns the number of vertices still in the heap.
func (h *Heap) Len() int { return len(h.data) }

// Ops returns the operation counters accumulated so far.
func (h *Heap) Ops() OpCounts { return h.ops }

// Contains reports whether the vertex called name is still in the heap.
// Names that were extracted have a stale slot at or beyond Len().
func (h *Heap) Contains(name int) bool {
	if name < 0 || name >= len(h.indices) {
		return false
	}
	i := h.indices[name]

	return i >= 0 && i < len(h.data) && h.data[i].Name == name
}

// Label returns the current label of name, or false if it is not in the heap.
func (h *Heap) Label(name int) (int64, bool) {
	if !h.Contains(name) {
		return 0, false
	}

	return h.data[h.indices[name]].Label, true
}

// Peek returns the minimum vertex without removing it.
func (h *Heap) Peek() (core.Vertex, error) {
	if len(h.data) == 0 {
		return core.Vertex{}, ErrEmptyHeap
	}

	return h.data[0], nil
}

// Insert appends v and percolates it up while its label is strictly smaller
// than its parent's.
//
// Errors:
//   - ErrNegativeName if v.Name < 0.
//   - ErrDuplicateVertex if v.Name is already in the heap.
//
// Complexity: O(log n).
func (h *Heap) Insert(v core.Vertex) error {
	if v.Name < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeName, v.Name)
	}
	if h.Contains(v.Name) {
		return fmt.Errorf("%w: %d", ErrDuplicateVertex, v.Name)
	}

	// Grow the reverse index so that it can be addressed by v.Name.
	for len(h.indices) <= v.Name {
		h.indices = append(h.indices, absent)
	}

	i := len(h.data)
	h.data = append(h.data, v)
	h.indices[v.Name] = i
	h.ops.Inserts++
	h.up(i)

	return nil
}

// ExtractMin removes and returns the vertex with the smallest label.
//
// Steps:
//  1. Swap the root with the last slot.
//  2. Pop the last slot; its indices entry is now == Len() (stale).
//  3. Sift the new root down.
//
// Errors:
//   - ErrEmptyHeap if the heap holds nothing.
//
// Complexity: O(log n).
func (h *Heap) ExtractMin() (core.Vertex, error) {
	n := len(h.data)
	if n == 0 {
		return core.Vertex{}, ErrEmptyHeap
	}

	last := n - 1
	h.swap(0, last)
	v := h.data[last]
	h.data = h.data[:last]
	h.ops.Extracts++
	h.down(0)

	return v, nil
}

// DecreaseKey lowers the label of name to label and percolates it up.
// A lower label can only move a vertex towards the root, so no sift-down
// is needed. Setting the same label again is allowed and a no-op for order.
//
// Errors:
//   - ErrNotInHeap if name was never inserted or was already extracted.
//   - ErrKeyIncrease if label is larger than the current label.
//
// Complexity: O(log n).
func (h *Heap) DecreaseKey(name int, label int64) error {
	if !h.Contains(name) {
		return fmt.Errorf("%w: %d", ErrNotInHeap, name)
	}
	i := h.indices[name]
	if label > h.data[i].Label {
		return fmt.Errorf("%w: vertex %d: %d > %d", ErrKeyIncrease, name, label, h.data[i].Label)
	}

	h.data[i].Label = label
	h.ops.DecreaseKeys++
	h.up(i)

	return nil
}

// swap exchanges two slots and rewrites the indices entries keyed by the
// names now stored there, which keeps indices consistent under any rearrangement.
func (h *Heap) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.indices[h.data[i].Name] = i
	h.indices[h.data[j].Name] = j
	h.ops.Swaps++
}

// up moves slot j towards the root while it is strictly smaller than its parent.
func (h *Heap) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !(h.data[j].Label < h.data[i].Label) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down moves slot i away from the root while a child is strictly smaller.
func (h *Heap) down(i int) {
	n := len(h.data)
	for {
		smallest := i
		l := 2*i + 1
		if l >= n || l < 0 { // l < 0 after int overflow
			break
		}
		if h.data[l].Label < h.data[smallest].Label {
			smallest = l
		}
		if r := l + 1; r < n && h.data[r].Label < h.data[smallest].Label {
			smallest = r
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
}
