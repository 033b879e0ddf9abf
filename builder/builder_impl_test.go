// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// determinism and error contracts.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primweight/builder"
	"github.com/katalvlaran/primweight/core"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V int }

// edgeWeights returns a map from edgeKey to weight for all edges in g.
func edgeWeights(g *core.Graph) map[edgeKey]int64 {
	m := make(map[edgeKey]int64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.From, V: e.To}] = e.Weight
	}

	return m
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
// Every constructor emits undirected edges, so the directed edge count is
// twice the undirected one whether or not the graph is symmetric.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		n           int
		ctor        builder.Constructor
		wantPairs   int
		sampleCheck func(t *testing.T, edges map[edgeKey]int64)
	}{
		{
			name: "Path(4)", n: 4, ctor: builder.Path(4), wantPairs: 3,
			sampleCheck: func(t *testing.T, edges map[edgeKey]int64) {
				for i := 0; i < 3; i++ {
					assert.Contains(t, edges, edgeKey{i, i + 1})
					assert.Contains(t, edges, edgeKey{i + 1, i})
				}
			},
		},
		{
			name: "Cycle(5)", n: 5, ctor: builder.Cycle(5), wantPairs: 5,
			sampleCheck: func(t *testing.T, edges map[edgeKey]int64) {
				assert.Contains(t, edges, edgeKey{4, 0})
				assert.Contains(t, edges, edgeKey{0, 4})
			},
		},
		{
			name: "Star(6)", n: 6, ctor: builder.Star(6), wantPairs: 5,
			sampleCheck: func(t *testing.T, edges map[edgeKey]int64) {
				for leaf := 1; leaf < 6; leaf++ {
					assert.Contains(t, edges, edgeKey{0, leaf})
				}
				assert.NotContains(t, edges, edgeKey{1, 2})
			},
		},
		{
			name: "Complete(5)", n: 5, ctor: builder.Complete(5), wantPairs: 10,
			sampleCheck: func(t *testing.T, edges map[edgeKey]int64) {
				assert.Contains(t, edges, edgeKey{3, 1})
			},
		},
		{
			name: "Grid(3x4)", n: 12, ctor: builder.Grid(3, 4), wantPairs: 3*3 + 2*4,
			sampleCheck: func(t *testing.T, edges map[edgeKey]int64) {
				assert.Contains(t, edges, edgeKey{0, 1})
				assert.Contains(t, edges, edgeKey{0, 4})
				assert.NotContains(t, edges, edgeKey{3, 4}, "row wrap must not be linked")
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		for _, symmetric := range []bool{false, true} {
			symmetric := symmetric
			name := tc.name + "/directed"
			var gopts []core.GraphOption
			if symmetric {
				name = tc.name + "/symmetric"
				gopts = append(gopts, core.WithSymmetric())
			}
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				g, err := builder.BuildGraph(tc.n, gopts, nil, tc.ctor)
				require.NoError(t, err)
				assert.Equal(t, tc.n, g.VertexCount())
				assert.Equal(t, 2*tc.wantPairs, g.EdgeCount())

				edges := edgeWeights(g)
				for k, w := range edges {
					assert.Equal(t, builder.DefaultEdgeWeight, w, "edge %v", k)
					back, ok := edges[edgeKey{k.V, k.U}]
					assert.True(t, ok, "edge %v has no reverse", k)
					assert.Equal(t, w, back)
				}
				tc.sampleCheck(t, edges)
			})
		}
	}
}

// TestBuilders_Errors checks the sentinel errors of each constructor.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		n     int
		bopts []builder.BuilderOption
		ctor  builder.Constructor
		want  error
	}{
		{"Path too small", 1, nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle too small", 2, nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star too small", 1, nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Complete too small", 1, nil, builder.Complete(1), builder.ErrTooFewVertices},
		{"Grid zero cols", 4, nil, builder.Grid(4, 0), builder.ErrTooFewVertices},
		{"Graph smaller than topology", 3, nil, builder.Path(5), builder.ErrTooFewVertices},
		{"RandomSparse p>1", 4, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", 4, nil, builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"RandomConnected no rng", 4, nil, builder.RandomConnected(4, 0), builder.ErrNeedRandSource},
		{"RandomConnected too many extra", 4, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomConnected(4, 4), builder.ErrConstructFailed},
		{"nil constructor", 2, nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.n, nil, tc.bopts, tc.ctor)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

// TestBuildGraph_NegativeVertexCount propagates the core sentinel.
func TestBuildGraph_NegativeVertexCount(t *testing.T) {
	_, err := builder.BuildGraph(-1, nil, nil)
	require.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

// TestRandomConnected_Connectivity checks the chain guarantee and edge count.
func TestRandomConnected_Connectivity(t *testing.T) {
	t.Parallel()

	const n, extra = 50, 80
	g, err := builder.BuildGraph(n, []core.GraphOption{core.WithSymmetric()},
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
		builder.RandomConnected(n, extra))
	require.NoError(t, err)
	assert.Equal(t, 2*(n-1+extra), g.EdgeCount())

	// BFS over out-edges must reach every vertex.
	seen := make([]bool, n)
	seen[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		ids, err := g.OutEdges(u)
		require.NoError(t, err)
		for _, id := range ids {
			e, err := g.Edge(id)
			require.NoError(t, err)
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	for v, ok := range seen {
		assert.True(t, ok, "vertex %d unreachable", v)
	}
}

// TestRandom_Determinism verifies that equal seeds give equal graphs.
func TestRandom_Determinism(t *testing.T) {
	t.Parallel()

	build := func(seed int64) []core.Edge {
		g, err := builder.BuildGraph(30, nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 1000))},
			builder.RandomSparse(30, 0.2), builder.RandomConnected(30, 10))
		require.NoError(t, err)

		return g.Edges()
	}

	assert.Equal(t, build(99), build(99))
	assert.NotEqual(t, build(99), build(100))
}

// TestRandomSparse_Extremes checks p=0 and p=1.
func TestRandomSparse_Extremes(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(6, nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())

	g, err = builder.BuildGraph(6, nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 2*15, g.EdgeCount())
}

// TestApply overlays a topology on an existing graph.
func TestApply(t *testing.T) {
	t.Parallel()

	g, err := core.NewGraph(4)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 3, 9)
	require.NoError(t, err)

	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2))}, builder.Path(4)))
	assert.Equal(t, 1+2*3, g.EdgeCount())

	require.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

// TestOptions_PanicOnNil checks fast-fail option constructors.
func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
