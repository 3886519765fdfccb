package network

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valvenet/bfs"
)

// Unreachable marks a node that cannot be reached from a source valve, or
// whose hop count does not fit a tick.
const Unreachable = ^uint8(0)

// DistanceTable maps every valve with a positive rate, plus the start node,
// to its hop counts. Those are the only places an agent ever departs from.
type DistanceTable struct {
	// rows[src] is nil unless src is a valve with a positive rate or the start.
	rows [][]uint8
}

// NewDistanceTable runs one BFS per valve of nw (and one from the start
// node) and records the hop count to every node.
//
// Complexity: O(K·(V+E)) for K valves.
func NewDistanceTable(nw *Network) (*DistanceTable, error) {
	return NewDistanceTableContext(context.Background(), nw)
}

// NewDistanceTableContext is NewDistanceTable with cancellation. It returns
// ctx.Err() once ctx is done. The walks run over the tunnels captured by
// Compile, so the source graph may change concurrently.
func NewDistanceTableContext(ctx context.Context, nw *Network) (*DistanceTable, error) {
	dt := &DistanceTable{rows: make([][]uint8, nw.Len())}
	sources := nw.valves
	if nw.Rate(nw.Start) == 0 {
		sources = append([]int{nw.Start}, sources...)
	}
	for _, src := range sources {
		res, err := bfs.BFS(nw.tunnels, nw.Name(src),
			bfs.WithContext(ctx),
			bfs.WithMaxDepth(int(Unreachable)-1),
		)
		if err != nil {
			return nil, fmt.Errorf("network: distances from %q: %w", nw.Name(src), err)
		}
		row := make([]uint8, nw.Len())
		for i := range row {
			row[i] = Unreachable
		}
		for name, d := range res.Depth {
			row[nw.index[name]] = uint8(d)
		}
		dt.rows[src] = row
	}

	return dt, nil
}

// Distance returns the hop count src → dst following tunnel direction.
// ok is false when src is not a table source or dst cannot be reached.
func (dt *DistanceTable) Distance(src, dst int) (uint8, bool) {
	row := dt.rows[src]
	if row == nil || row[dst] == Unreachable {
		return Unreachable, false
	}

	return row[dst], true
}

// Row returns the hop counts from src, or nil if src is not a table source.
func (dt *DistanceTable) Row(src int) []uint8 { return dt.rows[src] }
