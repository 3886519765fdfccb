// Package valvenet finds how much pressure one agent, or two cooperating
// agents, can release from a network of valves within a time budget.
//
// Each valve has a flow rate. Walking a tunnel takes one tick, opening a
// valve takes one tick, and an open valve releases its rate every tick
// until the budget runs out. The search picks the opening order and timing
// that releases the most pressure.
//
// Packages, leaves first:
//
//	core/     thread-safe graph of named valves, rates and tunnels
//	bfs/      breadth-first traversal over core graphs
//	network/  immutable indexed network plus the hop-count distance table
//	search/   best-first search for one agent and for a pair of agents
//	input/    puzzle text, YAML and HCL readers; text, YAML, JSON and Mermaid writers
//	builder/  deterministic generators of synthetic valve networks
//	config/   YAML settings for limits and logging
//	cli/      the valvenet command tree (solve, export, generate)
//
// Quick start:
//
//	spec, _ := input.Load("input.txt")
//	g, _ := spec.Graph()
//	nw, _ := network.Compile(g, spec.Start)
//	ans, _ := search.Solve(nw)
//	fmt.Println(ans.Single.Value, ans.Pair.Value)
package valvenet
