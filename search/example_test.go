package search_test

import (
	"fmt"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/search"
)

// ExampleSolve opens a single valve one tunnel away from the start.
func ExampleSolve() {
	g := core.NewGraph()
	_, _ = g.AddEdge("AA", "BB")
	_ = g.SetRate("BB", 13)

	nw, _ := network.Compile(g, "AA")
	ans, _ := search.Solve(nw)
	fmt.Println("single:", ans.Single.Value)
	fmt.Println("pair:", ans.Pair.Value)

	// Output:
	// single: 364
	// pair: 312
}

// ExampleEngine_Single runs one search with a shorter budget.
func ExampleEngine_Single() {
	g := core.NewGraph()
	_, _ = g.AddEdge("AA", "BB")
	_, _ = g.AddEdge("BB", "CC")
	_ = g.SetRate("BB", 13)
	_ = g.SetRate("CC", 2)

	nw, _ := network.Compile(g, "AA")
	dt, _ := network.NewDistanceTable(nw)
	e, _ := search.NewEngine(nw, dt, search.WithBudget(10))
	res, _ := e.Single()
	fmt.Println(res.Value, res.Capped)

	// Output:
	// 116 false
}
