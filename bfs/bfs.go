package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valvenet/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker holds the mutable state of one walk.
type walker struct {
	graph    *core.Graph
	ctx      context.Context
	maxDepth int
	queue    []queueItem
	depth    map[string]int
}

// BFS walks g breadth-first from startID and records hop counts.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:    g,
		ctx:      o.ctx,
		maxDepth: o.maxDepth,
		queue:    make([]queueItem, 0, n),
		depth:    make(map[string]int, n),
	}
	w.enqueue(startID, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return &Result{Depth: w.depth}, nil
}

// enqueue marks id as seen at depth d.
func (w *walker) enqueue(id string, d int) {
	w.depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		next := item.depth + 1
		if w.maxDepth > 0 && next > w.maxDepth {
			continue
		}
		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range neighbors {
			if _, seen := w.depth[nbr]; !seen {
				w.enqueue(nbr, next)
			}
		}
	}

	return nil
}
