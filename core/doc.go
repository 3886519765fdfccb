// Package core provides the mutable, thread-safe graph that loaders build
// before a search runs: valves (vertices) carrying a per-tick flow rate and
// tunnels (edges) between them.
//
// The Graph supports:
//
//   - Directed vs. undirected tunnels (WithDirected)
//   - Self-loops (WithLoops)
//   - Strict endpoints (WithStrictEndpoints): AddEdge refuses to create
//     missing valves, which is how loaders detect tunnels to unknown valves
//   - Deterministic iteration: Vertices(), Edges(), NeighborIDs() are sorted
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert -> muEdgeAdj
//
// Core Methods:
//
//	AddVertex(id string) error                       // O(1), idempotent
//	SetRate(id string, rate uint16) error            // O(1)
//	Rate(id string) (uint16, error)                  // O(1)
//	HasVertex(id string) bool                        // O(1)
//	Vertices() []string                              // O(V·log V)
//	AddEdge(from, to string) (edgeID string, err error)
//	HasEdge(from, to string) bool                    // O(1)
//	NeighborIDs(id string) ([]string, error)         // O(d·log d)
//	Edges() []*Edge                                  // O(E·log E)
//	Stats() *GraphStats                              // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second tunnel between the same ordered pair
//
// A Graph is only the construction surface. Searches run on the immutable,
// index-based network.Network compiled from it.
package core
