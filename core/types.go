// Package core defines the Graph, Vertex and Edge types together with the
// sentinel errors and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel tunnel between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a valve.
//
// Rate is the per-tick value the valve yields once opened; zero means the
// valve is not worth opening.
type Vertex struct {
	// ID is the unique valve name within its Graph.
	ID string

	// Rate is the flow rate released per tick after opening.
	Rate uint16
}

// Edge is a tunnel between two valves. Every tunnel costs one move.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed reports whether the tunnel is one-way.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all new tunnels.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (tunnels from a valve to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithStrictEndpoints makes AddEdge fail with ErrVertexNotFound instead of
// creating missing endpoints.
func WithStrictEndpoints() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is the in-memory valve graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacencyList.
// nextEdgeID is an atomic counter for Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool
	allowLoops bool
	strict     bool

	// Storage
	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacencyList[from][to] = edge ID
	adjacencyList map[string]map[string]string
}

// GraphStats is a read-only snapshot of a Graph's flags and sizes.
type GraphStats struct {
	Directed    bool
	AllowsLoops bool
	Strict      bool
	VertexCount int
	EdgeCount   int
	// ValveCount is the number of vertices with a positive rate.
	ValveCount int
	// TotalRate is the sum of all vertex rates.
	TotalRate uint64
}

// NewGraph creates an empty Graph. By default tunnels are undirected, loops
// are rejected, and AddEdge creates missing endpoints.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
