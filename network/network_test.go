package network_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/network"
)

// line builds AA - BB - CC with rates 0, 13, 2, tunnels listed both ways.
func line(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"AA", "BB"}, {"BB", "AA"}, {"BB", "CC"}, {"CC", "BB"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.SetRate("BB", 13))
	require.NoError(t, g.SetRate("CC", 2))

	return g
}

func TestCompile(t *testing.T) {
	nw, err := network.Compile(line(t), "AA")
	require.NoError(t, err)

	want := []network.Node{
		{Name: "AA", Rate: 0, Tunnels: []int{1}},
		{Name: "BB", Rate: 13, Tunnels: []int{0, 2}},
		{Name: "CC", Rate: 2, Tunnels: []int{1}},
	}
	if diff := cmp.Diff(want, nw.Nodes); diff != "" {
		t.Errorf("Nodes mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 0, nw.Start)
	require.Equal(t, []int{1, 2}, nw.Valves())
	require.Equal(t, uint32(15), nw.TotalRate())
	require.Equal(t, 3, nw.Len())

	i, ok := nw.Index("CC")
	require.True(t, ok)
	require.Equal(t, 2, i)
	require.Equal(t, "CC", nw.Name(i))
	require.Equal(t, uint16(2), nw.Rate(i))
	_, ok = nw.Index("ZZ")
	require.False(t, ok)
}

func TestCompileErrors(t *testing.T) {
	_, err := network.Compile(nil, "AA")
	require.ErrorIs(t, err, network.ErrGraphNil)

	_, err = network.Compile(line(t), "QQ")
	require.ErrorIs(t, err, network.ErrStartNotFound)
}

func TestDistanceTable(t *testing.T) {
	nw, err := network.Compile(line(t), "AA")
	require.NoError(t, err)
	dt, err := network.NewDistanceTable(nw)
	require.NoError(t, err)

	// start has rate 0 but is still a source
	d, ok := dt.Distance(0, 2)
	require.True(t, ok)
	require.Equal(t, uint8(2), d)

	d, ok = dt.Distance(2, 0)
	require.True(t, ok)
	require.Equal(t, uint8(2), d)

	d, ok = dt.Distance(1, 1)
	require.True(t, ok)
	require.Zero(t, d)

	if diff := cmp.Diff([]uint8{1, 0, 1}, dt.Row(1)); diff != "" {
		t.Errorf("Row(BB) mismatch (-want +got):\n%s", diff)
	}
}

func TestDistanceTableUnreachable(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("AA", "BB")
	require.NoError(t, g.AddVertex("CC"))
	require.NoError(t, g.SetRate("BB", 5))
	require.NoError(t, g.SetRate("CC", 5))

	nw, err := network.Compile(g, "AA")
	require.NoError(t, err)
	dt, err := network.NewDistanceTable(nw)
	require.NoError(t, err)

	_, ok := dt.Distance(0, 2)
	require.False(t, ok, "CC is isolated")

	// one-way tunnel: BB cannot get back to AA
	_, ok = dt.Distance(1, 0)
	require.False(t, ok)
	d, ok := dt.Distance(0, 1)
	require.True(t, ok)
	require.Equal(t, uint8(1), d)
}

// Mutating the source graph after Compile must not move any distance.
func TestDistanceTableSnapshot(t *testing.T) {
	g := line(t)
	nw, err := network.Compile(g, "AA")
	require.NoError(t, err)

	_, err = g.AddEdge("AA", "CC")
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("ZZ"))

	dt, err := network.NewDistanceTable(nw)
	require.NoError(t, err)
	d, ok := dt.Distance(0, 2)
	require.True(t, ok)
	require.Equal(t, uint8(2), d)
	require.Equal(t, 3, nw.Len())
}

func TestDistanceTableCancelled(t *testing.T) {
	nw, err := network.Compile(line(t), "AA")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dt, err := network.NewDistanceTableContext(ctx, nw)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, dt)
}
