package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/builder"
	"github.com/katalvlaran/valvenet/core"
)

func TestPuzzleIDFn(t *testing.T) {
	cases := map[int]string{0: "AA", 1: "AB", 25: "AZ", 26: "BA", 675: "ZZ", 676: "BAA"}
	for idx, want := range cases {
		assert.Equal(t, want, builder.PuzzleIDFn(idx), "idx %d", idx)
	}
	assert.Panics(t, func() { builder.PuzzleIDFn(-1) })
	assert.Equal(t, "V12", builder.SymbolNumberIDFn("V")(12))
}

func TestTopologies(t *testing.T) {
	cases := []struct {
		name          string
		con           builder.Constructor
		vertices      int
		edges         int
		directedEdges int
	}{
		{"path", builder.Path(5), 5, 4, 8},
		{"cycle", builder.Cycle(5), 5, 5, 10},
		{"star", builder.Star(6), 6, 5, 10},
		{"grid", builder.Grid(3, 4), 12, 17, 34},
		{"complete", builder.RandomSparse(5, 1), 5, 10, 20},
		{"empty", builder.RandomSparse(4, 0), 4, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.con)
			require.NoError(t, err)
			require.Equal(t, tc.vertices, g.VertexCount())
			require.Equal(t, tc.edges, g.EdgeCount())

			d, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, tc.con)
			require.NoError(t, err)
			require.Equal(t, tc.directedEdges, d.EdgeCount())
		})
	}
}

func TestGrid_Neighbors(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 3))
	require.NoError(t, err)
	// AA AB AC
	// AD AE AF
	nbrs, err := g.NeighborIDs("AE")
	require.NoError(t, err)
	require.Equal(t, []string{"AB", "AD", "AF"}, nbrs)
}

func TestRates(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRateFn(builder.ConstantRate(7))},
		builder.Path(3),
	)
	require.NoError(t, err)
	require.Equal(t, uint64(21), g.Stats().TotalRate)

	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(3),
			builder.WithRateFn(builder.UniformRate(5, 9)),
		},
		builder.Cycle(20),
	)
	require.NoError(t, err)
	for _, id := range g.Vertices() {
		r, err := g.Rate(id)
		require.NoError(t, err)
		require.GreaterOrEqual(t, r, uint16(5))
		require.LessOrEqual(t, r, uint16(9))
	}

	// without an RNG sparse rates are all zero
	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRateFn(builder.SparseRate(1, 1, 5))},
		builder.Star(4),
	)
	require.NoError(t, err)
	require.Zero(t, g.Stats().ValveCount)
}

func TestComposedConstructorsKeepRates(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithRateFn(builder.UniformRate(1, 1000))},
		builder.Path(4),
	)
	require.NoError(t, err)
	before := g.Stats().TotalRate

	g2, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithRateFn(builder.UniformRate(1, 1000))},
		builder.Path(4),
		builder.Cycle(4),
	)
	require.NoError(t, err)
	require.Equal(t, before, g2.Stats().TotalRate)
	require.Equal(t, 4, g2.EdgeCount(), "cycle only adds the closing tunnel")
}

func TestDeterminism(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithRateFn(builder.SparseRate(0.4, 1, 30))},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	require.Equal(t, a.AdjacencyList(), b.AdjacencyList())
	require.Equal(t, a.Stats(), b.Stats())
}

func TestErrors(t *testing.T) {
	cases := []struct {
		con  builder.Constructor
		want error
	}{
		{builder.Path(1), builder.ErrTooFewVertices},
		{builder.Cycle(2), builder.ErrTooFewVertices},
		{builder.Star(1), builder.ErrTooFewVertices},
		{builder.Grid(0, 3), builder.ErrTooFewVertices},
		{builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildGraph(nil, nil, tc.con)
		require.ErrorIs(t, err, tc.want)
	}

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithRateFn(nil) })
	assert.Panics(t, func() { builder.UniformRate(3, 1) })
	assert.Panics(t, func() { builder.SparseRate(2, 1, 3) })
}
