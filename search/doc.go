// Package search finds the most pressure one agent, or two cooperating
// agents, can release from a valve network within a fixed number of ticks.
//
// What
//
//   - Single: best-first search over (tick, position, opened set) states.
//   - Pair: the same search over joint states of two agents that move on a
//     shared clock. An agent whose action outlasts its partner's keeps a
//     busy counter and resumes without choosing again.
//   - Solve: builds the distance table and runs both searches.
//
// How
//
//	The frontier is a max-heap ordered by an admissible upper bound
//
//	    value + TotalRate × (Budget − Tick)
//
//	which never underestimates what a state can still reach, so the first
//	terminal state popped (Tick == Budget) is optimal. States sharing a Key
//	(tick, positions, busy flags, sorted opened set) are merged: a child
//	replaces the stored value only if strictly better, and the stored index
//	is pushed again. Stale heap entries are left in place and simply
//	re-expanded when popped (lazy deletion).
//
// Ceilings
//
//	MaxStates caps the state table and MaxIterations caps expansions. Both
//	are approximation thresholds: once one is hit, Result.Capped is set and
//	the value is a lower bound, the larger of the terminal state popped and
//	the best terminal value generated. If no terminal state is popped at
//	all, ErrStateLimit is returned with the best terminal value generated.
//
// Cancellation
//
//	WithContext is checked every 1024 pops; a done context ends the search
//	with ctx.Err().
//
// Determinism
//
//	Actions are generated in ascending valve index order and heap ties pop
//	the newest state first, so repeated runs explore in the same order.
package search
