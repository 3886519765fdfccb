package search

import (
	"container/heap"
	"log/slog"

	"github.com/katalvlaran/valvenet/network"
)

// Engine runs searches over one network. It holds no per-search state and
// may run Single and Pair repeatedly.
type Engine struct {
	nw   *network.Network
	dt   *network.DistanceTable
	opts Options
	log  *slog.Logger
}

// NewEngine validates its inputs and options and returns a ready Engine.
func NewEngine(nw *network.Network, dt *network.DistanceTable, opts ...Option) (*Engine, error) {
	if nw == nil {
		return nil, ErrNetworkNil
	}
	if dt == nil {
		return nil, ErrDistancesNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return &Engine{nw: nw, dt: dt, opts: o, log: o.Logger}, nil
}

// Options returns the effective options.
func (e *Engine) Options() Options { return e.opts }

// Single finds the most pressure one agent releases within the budget.
func (e *Engine) Single() (Result, error) {
	return e.search(e.initial(0), false)
}

// Pair finds the most pressure two agents release within the budget, after
// HeadStart ticks have been spent.
func (e *Engine) Pair() (Result, error) {
	start := e.opts.HeadStart
	if start > e.opts.Budget {
		start = e.opts.Budget
	}

	return e.search(e.initial(start), true)
}

func (e *Engine) initial(tick Tick) State {
	return State{Tick: tick, Positions: [2]int{e.nw.Start, e.nw.Start}}
}

// priority is the admissible upper bound of a state: its value plus the
// full network rate for every remaining tick.
func (e *Engine) priority(s *State) uint64 {
	return uint64(s.Value) + uint64(e.nw.TotalRate())*uint64(e.opts.Budget-s.Tick)
}

// ctxCheckEvery is the number of pops between two cancellation checks.
const ctxCheckEvery = 1024

// run is the mutable state of one search invocation.
type run struct {
	e        *Engine
	pair     bool
	states   []State
	visited  map[Key]int
	frontier frontier

	pops       int
	iterations int
	capped     bool

	// best is the highest value seen on a state at the budget, popped or not.
	best Value
}

func (e *Engine) search(init State, pair bool) (Result, error) {
	e.log.Debug("search started",
		"pair", pair,
		"tick", init.Tick,
		"budget", e.opts.Budget,
		"valves", len(e.nw.Valves()),
	)

	return e.newRun(init, pair).loop()
}

func (e *Engine) newRun(init State, pair bool) *run {
	r := &run{
		e:       e,
		pair:    pair,
		visited: make(map[Key]int),
	}
	r.states = append(r.states, init)
	r.visited[KeyOf(&init, pair)] = 0
	heap.Push(&r.frontier, frontierItem{priority: e.priority(&init), index: 0})

	return r
}

// loop pops states until one reaches the budget.
//
// Uncapped, the first such state is optimal. Once a ceiling has dropped
// states the bound no longer holds, so the result is the larger of the
// popped value and the best budget value generated so far.
func (r *run) loop() (Result, error) {
	e := r.e
	ctx := e.opts.Ctx
	for r.frontier.Len() > 0 {
		if r.pops%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				e.log.Debug("search cancelled", "pair", r.pair, "states", len(r.states))
				return r.result(r.best), err
			}
		}
		r.pops++

		item := heap.Pop(&r.frontier).(frontierItem)
		// copy: r.states may grow while children are offered
		cur := r.states[item.index]
		if cur.Tick == e.opts.Budget {
			v := cur.Value
			if r.capped {
				v = max(v, r.best)
			}
			res := r.result(v)
			e.log.Debug("search finished",
				"pair", r.pair,
				"value", res.Value,
				"states", res.States,
				"iterations", res.Iterations,
				"capped", res.Capped,
			)
			return res, nil
		}
		if e.opts.MaxIterations > 0 && r.iterations >= e.opts.MaxIterations {
			r.hitCeiling("iterations")
			continue
		}
		r.iterations++

		rate := e.flowRate(cur.Opened)
		if r.pair {
			r.expandPair(&cur, rate)
		} else {
			r.expandSingle(&cur, rate)
		}
	}

	res := r.result(r.best)
	e.log.Warn("search exhausted without reaching the budget",
		"pair", r.pair,
		"lower_bound", res.Value,
		"states", res.States,
		"iterations", res.Iterations,
	)

	return res, ErrStateLimit
}

func (r *run) expandSingle(cur *State, rate Value) {
	for _, act := range r.e.Actions(0, cur) {
		child := *cur
		d := r.e.apply(0, act, &child)
		child.Tick += d
		child.Value += rate * Value(d)
		r.offer(child)
	}
}

// expandPair advances both agents by the shorter of their two actions.
// The agent with the longer action keeps the difference as busy ticks.
func (r *run) expandPair(cur *State, rate Value) {
	first := r.e.Actions(0, cur)
	second := r.e.Actions(1, cur)
	for _, a := range first {
		for _, b := range second {
			if conflicting(a, b, cur) {
				continue
			}
			child := *cur
			d0 := r.e.apply(0, a, &child)
			d1 := r.e.apply(1, b, &child)
			d := min(d0, d1)
			child.Busy = [2]Tick{d0 - d, d1 - d}
			child.Tick += d
			child.Value += rate * Value(d)
			r.offer(child)
		}
	}
}

// offer merges child into the state table.
//
// A child whose key is known replaces the stored value only when strictly
// better, and the stored index is pushed again. A new key is stored unless
// the table is full.
func (r *run) offer(child State) {
	if child.Tick == r.e.opts.Budget && child.Value > r.best {
		r.best = child.Value
	}

	k := KeyOf(&child, r.pair)
	if idx, ok := r.visited[k]; ok {
		if r.states[idx].Value >= child.Value {
			return
		}
		r.states[idx].Value = child.Value
		heap.Push(&r.frontier, frontierItem{priority: r.e.priority(&child), index: idx})
		return
	}
	if len(r.states) >= r.e.opts.MaxStates {
		r.hitCeiling("states")
		return
	}

	idx := len(r.states)
	r.visited[k] = idx
	r.states = append(r.states, child)
	heap.Push(&r.frontier, frontierItem{priority: r.e.priority(&child), index: idx})
}

func (r *run) hitCeiling(which string) {
	if r.capped {
		return
	}
	r.capped = true
	r.e.log.Warn("search ceiling reached, result becomes a lower bound",
		"ceiling", which,
		"pair", r.pair,
		"states", len(r.states),
		"iterations", r.iterations,
	)
}

func (r *run) result(v Value) Result {
	return Result{
		Value:      v,
		States:     len(r.states),
		Iterations: r.iterations,
		Capped:     r.capped,
	}
}
