// Package converters moves graphs and results across the text boundary of
// primweight.
//
// Input is the edge-list line protocol:
//
//	<vertex_count> <edge_count>
//	<from> <to> <weight>
//	...
//
// The first line is the header. Every later line holding exactly three
// integers becomes one edge, attached to the adjacency of <from> and numbered
// in input order; any other line is skipped. The declared edge count is
// informational only.
//
// Output is a single line: the MST weight, or "not connected".
package converters
