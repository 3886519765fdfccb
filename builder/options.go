package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
// Option constructors panic on meaningless input; constructors never panic.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the valve name generator.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides the RNG used by stochastic constructors and rates.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed is WithRand with a freshly seeded source.
func WithSeed(seed int64) BuilderOption {
	r := rand.New(rand.NewSource(seed))
	return func(c *builderConfig) { c.rng = r }
}

// WithRateFn sets the rate policy for new valves.
func WithRateFn(fn RateFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRateFn(nil)")
	}
	return func(c *builderConfig) { c.rateFn = fn }
}
