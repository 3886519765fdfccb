// Package bfs counts tunnel hops from a start valve with a breadth-first
// walk over a core.Graph.
//
// The result is a Depth map holding every reached valve. WithMaxDepth
// bounds the walk and WithContext makes it cancellable. The distance table
// of package network runs one walk per source valve with both.
package bfs
