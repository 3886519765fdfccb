package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a walk. An invalid Option is recorded and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*options)

type options struct {
	ctx      context.Context
	maxDepth int
	err      error
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext stops the walk with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth leaves valves more than d hops away unvisited.
// d == 0 means no limit; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// Result maps every reached valve to its hop count from the start.
// Valves missing from Depth were not reached.
type Result struct {
	Depth map[string]int
}
