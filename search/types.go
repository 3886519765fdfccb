package search

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

// Tick counts time steps. Budgets never exceed 255 ticks.
type Tick = uint8

// Value is released pressure. 32 bits cover any budget times any realistic
// total rate.
type Value = uint32

// Fixed action costs, in ticks.
const (
	// OpenTicks is the time needed to open the valve an agent stands on.
	OpenTicks Tick = 1
	// MoveTicks is the time needed to walk through one tunnel.
	MoveTicks Tick = 1
)

// Defaults reproduce the puzzle this engine was built for.
const (
	DefaultBudget    Tick = 30
	DefaultHeadStart Tick = 4
	// DefaultMaxStates bounds the state table.
	DefaultMaxStates = 32_000_000
)

// Sentinel errors for search execution.
var (
	// ErrNetworkNil is returned when no network is supplied.
	ErrNetworkNil = errors.New("search: network is nil")

	// ErrDistancesNil is returned when no distance table is supplied.
	ErrDistancesNil = errors.New("search: distance table is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStateLimit is returned when a ceiling was hit and no terminal
	// state could be reached. The accompanying Result holds a lower bound.
	ErrStateLimit = errors.New("search: state limit exhausted before reaching the time budget")
)

// ActionKind enumerates what an agent can do next.
type ActionKind uint8

const (
	// Idle waits until the budget runs out.
	Idle ActionKind = iota
	// Open opens the valve at the agent's position.
	Open
	// MoveTo walks the shortest path to a closed valve.
	MoveTo
	// Busy continues an action started in an earlier step (pair search only).
	Busy
)

// String implements fmt.Stringer.
func (k ActionKind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Open:
		return "open"
	case MoveTo:
		return "move"
	case Busy:
		return "busy"
	default:
		return "ActionKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Action is one legal move of one agent.
// Dst is only meaningful for MoveTo; Duration for MoveTo and Busy.
type Action struct {
	Kind     ActionKind
	Dst      int
	Duration Tick
}

// State is a search node. Opened is kept sorted by node index and is
// copied on write, so children may share it with their parent.
type State struct {
	Tick      Tick
	Value     Value
	Positions [2]int
	Busy      [2]Tick
	Opened    []int
}

// IsOpen reports whether node i is in the opened set.
func (s *State) IsOpen(i int) bool {
	_, found := slices.BinarySearch(s.Opened, i)

	return found
}

// Key is the deduplication fingerprint of a State: everything but Value.
type Key struct {
	Tick      Tick
	Positions [2]int
	Busy      [2]bool
	// Opened packs the sorted opened set, two bytes per index.
	Opened string
}

// KeyOf builds the key of s. The single-agent search passes pair=false and
// the second agent is left out of the key.
func KeyOf(s *State, pair bool) Key {
	k := Key{Tick: s.Tick}
	k.Positions[0] = s.Positions[0]
	if pair {
		k.Positions[1] = s.Positions[1]
		k.Busy = [2]bool{s.Busy[0] > 0, s.Busy[1] > 0}
	}
	var b strings.Builder
	b.Grow(2 * len(s.Opened))
	for _, i := range s.Opened {
		b.WriteByte(byte(i >> 8))
		b.WriteByte(byte(i))
	}
	k.Opened = b.String()

	return k
}

// Result is the outcome of one search.
type Result struct {
	// Value is the most pressure found. It is optimal unless Capped is set.
	Value Value
	// States is the number of distinct states stored.
	States int
	// Iterations is the number of states expanded.
	Iterations int
	// Capped reports that a ceiling was hit; Value is then a lower bound.
	Capped bool
}

// Answer holds both results produced by Solve.
type Answer struct {
	Single Result
	Pair   Result
}
