package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/network"
)

// valve describes one line of a puzzle input.
type valve struct {
	name    string
	rate    uint16
	tunnels []string
}

// build compiles valves into a network rooted at AA.
func build(t testing.TB, valves []valve) *network.Network {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithStrictEndpoints())
	for _, v := range valves {
		require.NoError(t, g.AddVertex(v.name))
		require.NoError(t, g.SetRate(v.name, v.rate))
	}
	for _, v := range valves {
		for _, to := range v.tunnels {
			_, err := g.AddEdge(v.name, to)
			require.NoError(t, err)
		}
	}
	nw, err := network.Compile(g, "AA")
	require.NoError(t, err)

	return nw
}

// sampleValves is the ten-valve example from the puzzle statement.
var sampleValves = []valve{
	{"AA", 0, []string{"DD", "II", "BB"}},
	{"BB", 13, []string{"CC", "AA"}},
	{"CC", 2, []string{"DD", "BB"}},
	{"DD", 20, []string{"CC", "AA", "EE"}},
	{"EE", 3, []string{"FF", "DD"}},
	{"FF", 0, []string{"EE", "GG"}},
	{"GG", 0, []string{"FF", "HH"}},
	{"HH", 22, []string{"GG"}},
	{"II", 0, []string{"AA", "JJ"}},
	{"JJ", 21, []string{"II"}},
}

// pairValves is AA - BB with BB at rate r.
func pairValves(r uint16) []valve {
	return []valve{
		{"AA", 0, []string{"BB"}},
		{"BB", r, []string{"AA"}},
	}
}

// corridor puts two valves of rate r at distance k on either side of AA.
func corridor(k int, r uint16) []valve {
	name := func(side string, i int) string {
		if i == 0 {
			return "AA"
		}
		return side + string(rune('A'+i))
	}
	var out []valve
	out = append(out, valve{"AA", 0, []string{name("L", 1), name("R", 1)}})
	for _, side := range []string{"L", "R"} {
		for i := 1; i <= k; i++ {
			v := valve{name: name(side, i), tunnels: []string{name(side, i-1)}}
			if i < k {
				v.tunnels = append(v.tunnels, name(side, i+1))
			} else {
				v.rate = r
			}
			out = append(out, v)
		}
	}

	return out
}
