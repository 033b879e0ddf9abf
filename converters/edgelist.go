package converters

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/primweight/core"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ReadEdgeList parses the edge-list protocol from r into a new graph.
//
// Errors:
//   - ErrBadHeader when the first line is absent or malformed.
//   - core.ErrVertexNotFound / core.ErrWeightTooLarge for an edge line that
//     core rejects, wrapped with its line number.
//   - any read error from r.
//
// A line with a negative number is not an edge line and is skipped.
// Self-loops are accepted and stored; Prim never takes them.
func ReadEdgeList(r io.Reader, opts ...Option) (*core.Graph, error) {
	g, _, err := ReadEdgeListStats(r, opts...)

	return g, err
}

// ReadEdgeListStats is ReadEdgeList that also reports line statistics.
//
// Steps:
//  1. Read and parse the header into V and the declared edge count.
//  2. Create the graph with V vertices.
//  3. For each remaining line: three non-negative integers → AddEdge; otherwise skip.
//  4. Warn if the declared edge count differs from what was read.
func ReadEdgeListStats(r io.Reader, opts ...Option) (*core.Graph, Stats, error) {
	cfg := resolve(opts)
	var st Stats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	// 1. Header.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, st, fmt.Errorf("converters: reading header: %w", err)
		}
		return nil, st, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	st.Lines++
	n, declared, err := parseHeader(sc.Text())
	if err != nil {
		return nil, st, err
	}
	st.DeclaredEdges = declared

	// 2. Graph.
	gopts := []core.GraphOption{core.WithLoops()}
	if cfg.Symmetric {
		gopts = append(gopts, core.WithSymmetric())
	}
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, st, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	// 3. Edge lines.
	for sc.Scan() {
		st.Lines++
		line := sc.Text()
		from, to, w, ok := parseEdge(line)
		if !ok {
			st.Skipped++
			cfg.Logger.Debug("skipping non-edge line",
				slog.Int("line", st.Lines),
				slog.String("text", line),
			)
			continue
		}
		if _, err = g.AddEdge(from, to, w); err != nil {
			return nil, st, fmt.Errorf("converters: line %d: %w", st.Lines, err)
		}
		st.Edges++
	}
	if err = sc.Err(); err != nil {
		return nil, st, fmt.Errorf("converters: line %d: %w", st.Lines+1, err)
	}

	// 4. Declared vs read.
	if st.Edges != st.DeclaredEdges {
		cfg.Logger.Warn("edge count differs from header",
			slog.Int("declared", st.DeclaredEdges),
			slog.Int("read", st.Edges),
		)
	}
	cfg.Logger.Debug("edge list loaded",
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("skipped", st.Skipped),
		slog.Bool("symmetric", cfg.Symmetric),
	)

	return g, st, nil
}

// parseHeader reads "<vertex_count> <edge_count>"; trailing fields are ignored.
func parseHeader(line string) (n, edges int, err error) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	if n, err = strconv.Atoi(f[0]); err != nil || n < 0 {
		return 0, 0, fmt.Errorf("%w: vertex count %q", ErrBadHeader, f[0])
	}
	if edges, err = strconv.Atoi(f[1]); err != nil || edges < 0 {
		return 0, 0, fmt.Errorf("%w: edge count %q", ErrBadHeader, f[1])
	}

	return n, edges, nil
}

// parseEdge accepts a line of exactly three non-negative integers.
func parseEdge(line string) (from, to int, w int64, ok bool) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return 0, 0, 0, false
	}
	var nums [3]int64
	for i, s := range f {
		if nums[i], ok = parseNonNegative(s); !ok {
			return 0, 0, 0, false
		}
	}
	if nums[0] > math.MaxInt || nums[1] > math.MaxInt {
		return 0, 0, 0, false
	}

	return int(nums[0]), int(nums[1]), nums[2], true
}

// parseNonNegative parses a base-10 int64 that is >= 0.
func parseNonNegative(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}

	return v, true
}
