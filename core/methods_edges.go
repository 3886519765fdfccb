// File: methods_edges.go
// Role: Tunnel lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by numeric Edge.ID order (e1, e2, ..., e10).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; vertex checks under muVert.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a tunnel from → to.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints: create them, or fail with ErrVertexNotFound in strict mode.
//  3. Lock muEdgeAdj, reject a parallel tunnel (ErrMultiEdgeNotAllowed).
//  4. Generate the edge ID atomically, store the edge, link adjacency.
//  5. Mirror adjacency for undirected tunnels.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if g.strict {
		if !g.HasVertex(from) || !g.HasVertex(to) {
			return "", ErrVertexNotFound
		}
	} else {
		if err := g.AddVertex(from); err != nil {
			return "", err
		}
		if err := g.AddVertex(to); err != nil {
			return "", err
		}
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacencyList[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Directed: g.directed}

	ensureAdjacency(g, from)
	g.adjacencyList[from][to] = eid
	if !g.directed && from != to {
		ensureAdjacency(g, to)
		g.adjacencyList[to][from] = eid
	}

	return eid, nil
}

// HasEdge reports whether a tunnel leads from → to (either stored direction
// for undirected graphs).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacencyList[from][to]

	return ok
}

// Edges returns all tunnels sorted by creation order.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns the number of tunnels.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next unique edge ID. Callers hold muEdgeAdj.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq parses the numeric suffix of an edge ID.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)

	return n
}
