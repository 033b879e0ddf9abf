// Package indexheap implements a binary min-heap of core.Vertex records with
// O(log n) decrease-key.
//
// What & Why
//
//   - container/heap can re-order any slot with heap.Fix, but only if the caller
//     already knows where the element sits. Prim's algorithm asks "lower the
//     label of vertex 17", so it needs the reverse mapping vertex → slot.
//   - The heap keeps two parallel structures:
//     data    []core.Vertex — the heap array, ordered by Label;
//     indices []int         — indices[name] is the slot of vertex name in data.
//     Every swap updates both, keyed by the vertex names being moved.
//
// Operations
//
//   - Insert(v)              O(log n)  append + percolate-up.
//   - ExtractMin()           O(log n)  swap root with last, pop, sift-down.
//   - DecreaseKey(name, lbl) O(log n)  set label + percolate-up only.
//   - Contains / Label / Peek / Len  O(1).
//
// Membership after extraction
//
//	ExtractMin leaves the extracted vertex's indices entry untouched. At that
//	moment it equals the new Len(), and since the heap only shrinks during a
//	traversal it stays >= Len(); Contains treats such a slot as "already
//	visited". Contains also compares the name stored in the slot, so a later
//	Insert that reuses the slot is never mistaken for the old vertex.
//
// Ties
//
//	Equal labels are ordered arbitrarily; only data[parent] <= data[child] holds.
//
// Errors
//
//	ErrEmptyHeap, ErrNotInHeap, ErrKeyIncrease, ErrDuplicateVertex, ErrNegativeName.
//	All are wrapped with the offending vertex where one exists; use errors.Is.
package indexheap
