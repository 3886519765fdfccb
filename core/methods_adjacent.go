// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - NeighborIDs() returns IDs sorted lex asc.
// Concurrency:
//   - Reads hold muVert then muEdgeAdj read locks.
//   - ensureAdjacency is called only under the muEdgeAdj write lock.

package core

import "sort"

// NeighborIDs returns the IDs reachable from id through one tunnel, sorted
// lexicographically ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacencyList[id]))
	for to := range g.adjacencyList[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// AdjacencyList returns a snapshot of vertex ID → sorted neighbor IDs.
// Vertices without tunnels map to an empty slice.
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		nbrs := make([]string, 0, len(g.adjacencyList[id]))
		for to := range g.adjacencyList[id] {
			nbrs = append(nbrs, to)
		}
		sort.Strings(nbrs)
		out[id] = nbrs
	}

	return out
}

// ensureAdjacency creates the outer adjacency bucket for id.
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]string)
	}
}
