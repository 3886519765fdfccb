// Package input reads valve network descriptions.
//
// Three formats are understood, all decoding into a NetworkSpec:
//
//   - puzzle text, one valve per line:
//     "Valve AA has flow rate=0; tunnels lead to valves DD, II, BB"
//   - YAML: a start name and a list of {name, rate, tunnels}
//   - HCL: a start attribute and one `valve "NAME" { ... }` block per valve
//
// A NetworkSpec validates its references and builds a directed
// core.Graph. Every tunnel listed on a valve is one-way from that valve;
// the puzzle text lists both directions explicitly.
//
//	spec, err := input.Load("network.hcl")
//	g, err := spec.Graph()
//	nw, err := network.Compile(g, spec.Start)
package input
