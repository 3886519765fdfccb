package search

import "fmt"

// Actions enumerates the legal actions of agent a in state s.
//
// A busy agent may only continue. A free agent may open the valve it stands
// on, walk to any closed valve it can reach within the budget, or idle until
// the end. Idle is always offered so every state can reach the budget.
func (e *Engine) Actions(a int, s *State) []Action {
	if s.Busy[a] > 0 {
		return []Action{{Kind: Busy, Duration: s.Busy[a]}}
	}

	left := int(e.opts.Budget) - int(s.Tick)
	pos := s.Positions[a]
	actions := make([]Action, 0, len(e.nw.Valves())+2)

	if e.nw.Rate(pos) > 0 && !s.IsOpen(pos) && int(OpenTicks) <= left {
		actions = append(actions, Action{Kind: Open})
	}
	if len(s.Opened) < len(e.nw.Valves()) {
		for _, dst := range e.nw.Valves() {
			if dst == pos || s.IsOpen(dst) {
				continue
			}
			hops, ok := e.dt.Distance(pos, dst)
			if !ok {
				continue
			}
			d := int(hops) * int(MoveTicks)
			if d > left {
				continue
			}
			actions = append(actions, Action{Kind: MoveTo, Dst: dst, Duration: Tick(d)})
		}
	}

	return append(actions, Action{Kind: Idle})
}

// apply performs act for agent a on s and returns the action's duration.
// Opening copies the opened set, leaving slices shared with other states
// untouched. Opening an already open or worthless valve panics: the action
// generator never offers one.
func (e *Engine) apply(a int, act Action, s *State) Tick {
	switch act.Kind {
	case Busy:
		return act.Duration
	case Idle:
		return e.opts.Budget - s.Tick
	case Open:
		pos := s.Positions[a]
		if e.nw.Rate(pos) == 0 {
			panic(fmt.Sprintf("search: opening valve %q with zero rate", e.nw.Name(pos)))
		}
		s.Opened = insertOpened(s.Opened, pos, e.nw.Name)
		return OpenTicks
	case MoveTo:
		s.Positions[a] = act.Dst
		return act.Duration
	default:
		panic(fmt.Sprintf("search: unknown action %v", act.Kind))
	}
}

// insertOpened returns a new sorted slice holding opened plus i.
func insertOpened(opened []int, i int, name func(int) string) []int {
	out := make([]int, 0, len(opened)+1)
	k := 0
	for k < len(opened) && opened[k] < i {
		k++
	}
	if k < len(opened) && opened[k] == i {
		panic(fmt.Sprintf("search: valve %q opened twice", name(i)))
	}
	out = append(out, opened[:k]...)
	out = append(out, i)

	return append(out, opened[k:]...)
}

// conflicting reports whether two simultaneous actions duplicate effort:
// both agents opening the same valve, or both heading for the same one.
func conflicting(a, b Action, s *State) bool {
	switch {
	case a.Kind == Open && b.Kind == Open:
		return s.Positions[0] == s.Positions[1]
	case a.Kind == MoveTo && b.Kind == MoveTo:
		return a.Dst == b.Dst
	default:
		return false
	}
}

// flowRate sums the rates of the opened valves.
func (e *Engine) flowRate(opened []int) Value {
	var total Value
	for _, i := range opened {
		total += Value(e.nw.Rate(i))
	}

	return total
}
