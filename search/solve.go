package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/valvenet/network"
)

// Solve builds the distance table for nw and runs both searches.
//
// The single search uses the full budget; the pair search starts after the
// head start. If either search exhausts a ceiling without reaching the
// budget, Solve still returns both results (the affected one as a lower
// bound) together with an error wrapping ErrStateLimit. Any other error,
// cancellation of the WithContext context included, aborts with a zero
// Answer.
func Solve(nw *network.Network, opts ...Option) (Answer, error) {
	if nw == nil {
		return Answer{}, ErrNetworkNil
	}
	o, err := resolve(opts)
	if err != nil {
		return Answer{}, err
	}
	dt, err := network.NewDistanceTableContext(o.Ctx, nw)
	if err != nil {
		return Answer{}, err
	}
	e, err := NewEngine(nw, dt, opts...)
	if err != nil {
		return Answer{}, err
	}

	var ans Answer
	var limitErrs []error

	ans.Single, err = e.Single()
	if err != nil {
		if !errors.Is(err, ErrStateLimit) {
			return Answer{}, err
		}
		limitErrs = append(limitErrs, fmt.Errorf("single: %w", err))
	}

	ans.Pair, err = e.Pair()
	if err != nil {
		if !errors.Is(err, ErrStateLimit) {
			return Answer{}, err
		}
		limitErrs = append(limitErrs, fmt.Errorf("pair: %w", err))
	}

	return ans, errors.Join(limitErrs...)
}
