package builder

import (
	"fmt"
	"math/rand"
)

// RateFn draws the flow rate of a new valve. rng may be nil when no RNG was
// configured.
type RateFn func(rng *rand.Rand) uint16

// ConstantRate gives every valve rate r.
func ConstantRate(r uint16) RateFn {
	return func(*rand.Rand) uint16 { return r }
}

// UniformRate draws from [lo, hi]. Without an RNG it yields lo.
func UniformRate(lo, hi uint16) RateFn {
	if lo > hi {
		panic(fmt.Sprintf("builder: UniformRate lo=%d > hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) uint16 {
		if rng == nil {
			return lo
		}
		return lo + uint16(rng.Intn(int(hi-lo)+1))
	}
}

// SparseRate makes a valve worth opening with probability p, with a rate
// drawn from [lo, hi]; otherwise the rate is 0. Real puzzle inputs look
// like this. Without an RNG every rate is 0.
func SparseRate(p float64, lo, hi uint16) RateFn {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: SparseRate p=%g not in [0,1]", p))
	}
	uniform := UniformRate(lo, hi)
	return func(rng *rand.Rand) uint16 {
		if rng == nil || rng.Float64() >= p {
			return 0
		}
		return uniform(rng)
	}
}
