package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/valvenet/core"
)

// Sentinel errors for network compilation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("network: graph is nil")

	// ErrStartNotFound is returned when the start valve is not in the graph.
	ErrStartNotFound = errors.New("network: start valve not found")

	// ErrTooManyNodes is returned when node indices would not fit the search state.
	ErrTooManyNodes = errors.New("network: too many nodes")
)

// MaxNodes bounds the node count so indices pack into two bytes of a state key.
const MaxNodes = 1 << 16

// Node is one valve of a compiled Network.
type Node struct {
	Name    string
	Rate    uint16
	Tunnels []int
}

// Network is the immutable graph model consumed by the search.
type Network struct {
	Nodes []Node
	Start int

	index     map[string]int
	valves    []int
	totalRate uint32

	// tunnels is a private directed copy of the compiled tunnels, walked by
	// NewDistanceTable. Later changes to the source graph do not reach it.
	tunnels *core.Graph
}

// Compile snapshots g into a Network rooted at start.
//
// Nodes are numbered in ascending name order; tunnels keep core's sorted
// neighbor order. The Network does not share state with g.
func Compile(g *core.Graph, start string) (*Network, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	names := g.Vertices()
	if len(names) > MaxNodes {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyNodes, len(names), MaxNodes)
	}
	nw := &Network{
		Nodes: make([]Node, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		nw.index[name] = i
	}

	adj := g.AdjacencyList()
	for i, name := range names {
		rate, err := g.Rate(name)
		if err != nil {
			return nil, fmt.Errorf("network: valve %q: %w", name, err)
		}
		tunnels := make([]int, len(adj[name]))
		for k, to := range adj[name] {
			tunnels[k] = nw.index[to]
		}
		nw.Nodes[i] = Node{Name: name, Rate: rate, Tunnels: tunnels}
		if rate > 0 {
			nw.valves = append(nw.valves, i)
			nw.totalRate += uint32(rate)
		}
	}
	nw.Start = nw.index[start]

	tunnels, err := nw.snapshot()
	if err != nil {
		return nil, err
	}
	nw.tunnels = tunnels

	return nw, nil
}

// snapshot rebuilds the compiled tunnels as a directed graph.
func (nw *Network) snapshot() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for _, n := range nw.Nodes {
		if err := g.AddVertex(n.Name); err != nil {
			return nil, fmt.Errorf("network: snapshot %q: %w", n.Name, err)
		}
	}
	for _, n := range nw.Nodes {
		for _, to := range n.Tunnels {
			if _, err := g.AddEdge(n.Name, nw.Nodes[to].Name); err != nil {
				return nil, fmt.Errorf("network: snapshot %q -> %q: %w", n.Name, nw.Nodes[to].Name, err)
			}
		}
	}

	return g, nil
}

// Index returns the node index of a valve name.
func (nw *Network) Index(name string) (int, bool) {
	i, ok := nw.index[name]

	return i, ok
}

// Name returns the valve name of a node index.
func (nw *Network) Name(i int) string { return nw.Nodes[i].Name }

// Rate returns the flow rate of node i.
func (nw *Network) Rate(i int) uint16 { return nw.Nodes[i].Rate }

// Valves returns the indices of valves with a positive rate, ascending.
// The slice is shared; do not modify it.
func (nw *Network) Valves() []int { return nw.valves }

// TotalRate is the sum of all valve rates: the flow once everything is open.
func (nw *Network) TotalRate() uint32 { return nw.totalRate }

// Len returns the number of nodes.
func (nw *Network) Len() int { return len(nw.Nodes) }
