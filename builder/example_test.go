package builder_test

import (
	"fmt"

	"github.com/katalvlaran/valvenet/builder"
)

// ExampleBuildGraph builds a ring of four valves worth 5 each.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRateFn(builder.ConstantRate(5))},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Vertices())
	fmt.Println(g.AdjacencyList()["AA"])
	fmt.Println(g.Stats().TotalRate)

	// Output:
	// [AA AB AC AD]
	// [AB AD]
	// 20
}
