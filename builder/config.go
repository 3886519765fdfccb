package builder

import "math/rand"

// builderConfig is the resolved, immutable configuration handed to every
// Constructor.
type builderConfig struct {
	idFn   IDFn
	rng    *rand.Rand
	rateFn RateFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   PuzzleIDFn,
		rateFn: ConstantRate(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
