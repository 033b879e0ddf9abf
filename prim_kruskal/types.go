// Package prim_kruskal defines configuration options, results and sentinel
// errors for MST weight computation.
// It supports selecting between Prim and Kruskal via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/katalvlaran/primweight/core"
)

// ErrInvalidGraph indicates that a nil graph was passed.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyGraph indicates a graph with zero vertices; there is no start vertex to grow from.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

// ErrUnknownMethod indicates Compute was asked for a method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrWeightOverflow indicates that the tree weight does not fit in an int64.
var ErrWeightOverflow = errors.New("prim_kruskal: total weight overflows int64")

// ErrOptionViolation indicates an invalid Option value (e.g. a negative start vertex).
// It is recorded while options are applied and returned by the algorithm.
var ErrOptionViolation = errors.New("prim_kruskal: invalid option supplied")

// MethodPrim selects Prim's algorithm (grow from the start vertex using the indexed heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// NotConnected is the textual result printed for a graph that has no spanning tree.
const NotConnected = "not connected"

// Result is the outcome of one MST computation.
//
// Weight is the sum of the edge weights that joined a vertex to the tree.
// When Connected is false, Weight only covers the vertices reached before
// the first unreachable one was found and must not be reported as an MST
// weight; String prints NotConnected instead.
type Result struct {
	Method    string
	Weight    int64
	Reached   int  // vertices joined to the tree, start included
	Connected bool // every vertex was reached
}

// String returns the decimal weight, or NotConnected.
func (r Result) String() string {
	if !r.Connected {
		return NotConnected
	}

	return strconv.FormatInt(r.Weight, 10)
}

// MSTOptions configures which MST algorithm to run and how to observe it.
// Use DefaultOptions() to get a default setup (Prim from vertex 0).
//
// Fields:
//
//	Method        string — one of MethodPrim or MethodKruskal.
//	Start         int    — start vertex for Prim; Kruskal reports Reached for its component.
//	OnExtract     func   — called for every vertex popped from the heap, sentinel included.
//	OnDecreaseKey func   — called before every decrease-key with the old and new label.
//	Logger        *slog.Logger — debug/info records about the run; discarded by default.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	Method        string
	Start         int
	OnExtract     func(name int, label int64)
	OnDecreaseKey func(name int, from, to int64)
	Logger        *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal; anything else makes Compute fail with ErrUnknownMethod.
func WithMethod(m string) Option {
	return func(o *MSTOptions) {
		o.Method = m
	}
}

// WithStart sets the vertex whose label is forced to 0 before Prim's loop.
//
//	v >= 0: start vertex (must also be < V, checked by the algorithm)
//	v < 0 : invalid option → ErrOptionViolation
func WithStart(v int) Option {
	return func(o *MSTOptions) {
		if v < 0 {
			o.err = fmt.Errorf("%w: start vertex cannot be negative (%d)", ErrOptionViolation, v)
			return
		}
		o.Start = v
	}
}

// WithOnExtract registers a callback run for each extracted vertex.
func WithOnExtract(fn func(name int, label int64)) Option {
	return func(o *MSTOptions) {
		if fn != nil {
			o.OnExtract = fn
		}
	}
}

// WithOnDecreaseKey registers a callback run before each decrease-key.
func WithOnDecreaseKey(fn func(name int, from, to int64)) Option {
	return func(o *MSTOptions) {
		if fn != nil {
			o.OnDecreaseKey = fn
		}
	}
}

// WithLogger routes the algorithm's log records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *MSTOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Prim by default:
//
//	– Method = MethodPrim
//	– Start  = 0
//	– no-op hooks, discarding logger.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:        MethodPrim,
		Start:         0,
		OnExtract:     func(int, int64) {},
		OnDecreaseKey: func(int, int64, int64) {},
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// resolve applies opts on top of DefaultOptions.
func resolve(opts []Option) MSTOptions {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate performs the checks shared by Prim and Kruskal.
func validate(g *core.Graph, cfg MSTOptions) error {
	if cfg.err != nil {
		return cfg.err
	}
	if g == nil {
		return ErrInvalidGraph
	}
	if g.VertexCount() == 0 {
		return ErrEmptyGraph
	}
	if !g.HasVertex(cfg.Start) {
		return fmt.Errorf("%w: start=%d (V=%d)", core.ErrVertexNotFound, cfg.Start, g.VertexCount())
	}

	return nil
}

// addWeight returns total+w, or ErrWeightOverflow. Both operands are non-negative.
func addWeight(total, w int64) (int64, error) {
	if w > math.MaxInt64-total {
		return total, fmt.Errorf("%w: %d + %d", ErrWeightOverflow, total, w)
	}

	return total + w, nil
}

// Compute selects and runs the MST algorithm based on the resolved Method.
//
//	– MethodPrim:    calls Prim(g, opts...).
//	– MethodKruskal: calls Kruskal(g, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
func Compute(g *core.Graph, opts ...Option) (Result, error) {
	cfg := resolve(opts)
	switch cfg.Method {
	case MethodPrim:
		return Prim(g, opts...)
	case MethodKruskal:
		return Kruskal(g, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}
