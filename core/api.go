// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over construction flags plus the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after NewGraph.

package core

// Directed reports whether new tunnels are one-way.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Strict reports whether AddEdge refuses to create missing endpoints.
func (g *Graph) Strict() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.strict
}

// Stats produces a deterministic snapshot of flags, sizes and rate totals.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot flags, vertex count and rates.
//   - Stage 2: Under muEdgeAdj.RLock, snapshot the edge count.
//
// The locks are never held together, so Stats cannot deadlock with mutators.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		AllowsLoops: g.allowLoops,
		Strict:      g.strict,
		VertexCount: len(g.vertices),
	}
	for _, v := range g.vertices {
		if v.Rate > 0 {
			stats.ValveCount++
			stats.TotalRate += uint64(v.Rate)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	g.muEdgeAdj.RUnlock()

	return &stats
}
