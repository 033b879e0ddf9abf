// Package prim_kruskal provides an implementation of Prim's algorithm over an
// indexed min-heap with decrease-key.
// It grows the tree from MSTOptions.Start and sums the attaching edge weights.
package prim_kruskal

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/primweight/core"
	"github.com/katalvlaran/primweight/indexheap"
)

// Prim computes the total weight of the minimum spanning tree grown from the
// start vertex (default 0).
//
// Unlike Dijkstra, a vertex's label is the weight of the single cheapest edge
// that attaches it to the tree built so far, not a path length from the start.
//
// Error Conditions:
//   - ErrOptionViolation    : an Option received a meaningless value.
//   - ErrInvalidGraph       : graph is nil.
//   - ErrEmptyGraph         : graph has no vertices.
//   - core.ErrVertexNotFound: start vertex is outside [0, V).
//   - ErrWeightOverflow     : the tree weight exceeds math.MaxInt64.
//
// A graph that is not connected is not an error: Result.Connected is false.
//
// Steps:
//  1. Validate options and graph.
//  2. Build the heap with every vertex at core.Infinity; decrease-key start to 0.
//  3. While the heap is not empty:
//     a. Extract the minimum-label vertex u.
//     b. If its label is core.Infinity, nothing left is reachable: stop, Connected=false.
//     c. Add the label to the total.
//     d. For each edge u→v: skip v if it already left the heap; otherwise
//     decrease-key v to the edge weight when that is strictly smaller.
//  4. Heap drained: Connected=true.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) (Result, error) {
	// 1. Validate.
	cfg := resolve(opts)
	if err := validate(g, cfg); err != nil {
		return Result{}, err
	}

	r := &runner{
		g:     g,
		opts:  cfg,
		edges: g.Edges(),
		log:   cfg.Logger.With(slog.String("method", MethodPrim)),
	}

	// 2. Seed the heap.
	if err := r.init(); err != nil {
		return Result{}, err
	}

	// 3. Main loop.
	if err := r.process(); err != nil {
		return Result{}, err
	}

	res := Result{
		Method:    MethodPrim,
		Weight:    r.total,
		Reached:   r.reached,
		Connected: r.connected,
	}
	r.log.Debug("prim finished",
		slog.Int64("weight", res.Weight),
		slog.Int("reached", res.Reached),
		slog.Bool("connected", res.Connected),
		slog.Int("swaps", r.h.Ops().Swaps),
	)

	return res, nil
}

// runner holds the mutable state for a single Prim execution.
type runner struct {
	g         *core.Graph     // input graph; read-only
	opts      MSTOptions      // resolved options
	edges     []core.Edge     // edge catalog snapshot, index == edge ID
	h         *indexheap.Heap // vertices not yet in the tree
	log       *slog.Logger
	total     int64 // sum of extracted labels
	reached   int   // vertices joined so far
	connected bool
}

// init builds the heap and forces the start vertex's label to zero.
func (r *runner) init() error {
	r.h = indexheap.FromGraph(r.g)
	if err := r.h.DecreaseKey(r.opts.Start, 0); err != nil {
		return fmt.Errorf("prim_kruskal: seeding start vertex %d: %w", r.opts.Start, err)
	}
	r.log.Debug("prim started",
		slog.Int("vertices", r.g.VertexCount()),
		slog.Int("edges", len(r.edges)),
		slog.Int("start", r.opts.Start),
	)

	return nil
}

// process extracts vertices until the heap is empty or only unreachable ones remain.
func (r *runner) process() error {
	for r.h.Len() > 0 {
		u, err := r.h.ExtractMin()
		if err != nil {
			// Len() > 0 was just checked; an empty heap here is a broken heap.
			panic(fmt.Sprintf("prim_kruskal: %v", err))
		}
		r.opts.OnExtract(u.Name, u.Label)

		if u.Label == core.Infinity {
			// u and everything still queued are unreachable from the start.
			r.log.Info("graph is not connected",
				slog.Int("unreachable_vertex", u.Name),
				slog.Int("reached", r.reached),
				slog.Int("remaining", r.h.Len()+1),
			)
			r.connected = false
			return nil
		}

		if r.total, err = addWeight(r.total, u.Label); err != nil {
			return err
		}
		r.reached++

		if err = r.relax(u); err != nil {
			return err
		}
	}
	r.connected = true

	return nil
}

// relax lowers the label of every queued neighbour of u reachable through a
// strictly cheaper edge.
func (r *runner) relax(u core.Vertex) error {
	var e core.Edge
	for _, id := range u.Edges {
		e = r.edges[id]

		// Already in the tree: its stale slot is past the end of the heap.
		cur, queued := r.h.Label(e.To)
		if !queued {
			continue
		}
		if e.Weight >= cur {
			continue
		}

		r.opts.OnDecreaseKey(e.To, cur, e.Weight)
		if err := r.h.DecreaseKey(e.To, e.Weight); err != nil {
			return fmt.Errorf("prim_kruskal: relaxing edge %d (%d→%d): %w", id, e.From, e.To, err)
		}
	}

	return nil
}
