package search

import (
	"context"
	"fmt"
	"log/slog"
)

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by
// NewEngine or Solve.
type Option func(*Options)

// Options holds the limits of a search.
type Options struct {
	// Budget is the number of ticks available.
	Budget Tick

	// HeadStart is the number of ticks spent before the pair search starts.
	HeadStart Tick

	// MaxStates caps the number of distinct states stored.
	MaxStates int

	// MaxIterations caps the number of expansions; 0 disables the cap.
	MaxIterations int

	// Logger receives progress and ceiling messages.
	Logger *slog.Logger

	// Ctx cancels the distance table and both searches.
	Ctx context.Context

	err error
}

// DefaultOptions returns the 30-tick budget, 4-tick head start, the default
// state ceiling, no iteration ceiling, a discarding logger and a context
// that is never cancelled.
func DefaultOptions() Options {
	return Options{
		Budget:    DefaultBudget,
		HeadStart: DefaultHeadStart,
		MaxStates: DefaultMaxStates,
		Logger:    slog.New(slog.DiscardHandler),
		Ctx:       context.Background(),
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// WithBudget sets the number of ticks; it must lie in [0, 255].
func WithBudget(ticks int) Option {
	return func(o *Options) {
		if ticks < 0 || ticks > 255 {
			o.err = fmt.Errorf("%w: budget must be in [0, 255] (%d)", ErrOptionViolation, ticks)
			return
		}
		o.Budget = Tick(ticks)
	}
}

// WithHeadStart sets the ticks consumed before the pair search begins.
// A head start at or above the budget leaves the pair nothing to do.
func WithHeadStart(ticks int) Option {
	return func(o *Options) {
		if ticks < 0 || ticks > 255 {
			o.err = fmt.Errorf("%w: head start must be in [0, 255] (%d)", ErrOptionViolation, ticks)
			return
		}
		o.HeadStart = Tick(ticks)
	}
}

// WithMaxStates sets the state table ceiling; it must be positive.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxStates must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithMaxIterations sets the expansion ceiling; 0 means unlimited.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithLogger routes engine logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext stops the search with ctx.Err() once ctx is done.
// A search checks ctx once every 1024 queue pops.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
