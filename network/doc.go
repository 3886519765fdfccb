// Package network compiles a core.Graph into the immutable, index-based
// form the search runs on, and precomputes the distance table.
//
// A Network numbers valves 0..n-1 in ascending name order, so the same
// graph always yields the same indices. Node.Tunnels hold neighbor
// indices; Valves() lists the indices of valves with a positive rate.
//
// DistanceTable stores, for every valve worth opening and for the start, the
// number of tunnel hops to every node, computed once with one bfs.BFS per
// source. Distances
// are read-only afterwards and safe to share.
package network
