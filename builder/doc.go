// Package builder generates valve networks for tests, benchmarks and the
// generate command.
//
// BuildGraph creates a core.Graph and applies Constructors in order. Each
// constructor adds named valves (names come from the IDFn, by default the
// two-letter puzzle scheme AA, AB, ...) and two-way tunnels between them.
// The rate of a new valve is drawn from the configured RateFn.
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{
//			builder.WithSeed(7),
//			builder.WithRateFn(builder.SparseRate(0.3, 1, 25)),
//		},
//		builder.Grid(4, 4),
//	)
//
// Determinism: the same options, seed and constructor order always yield
// the same graph.
package builder
