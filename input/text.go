package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// linePattern matches one puzzle line in its plural or singular form:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
var linePattern = regexp.MustCompile(
	`^Valve (\S+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

// ParseText reads the puzzle line format. Blank lines are skipped. The
// start valve is DefaultStart.
func ParseText(r io.Reader) (*NetworkSpec, error) {
	spec := &NetworkSpec{Start: DefaultStart}

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
		}
		spec.Valves = append(spec.Valves, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return spec, nil
}

func parseLine(line string) (ValveSpec, error) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return ValveSpec{}, fmt.Errorf("unrecognized line %q", line)
	}
	rate, err := strconv.ParseUint(m[2], 10, 16)
	if err != nil {
		return ValveSpec{}, fmt.Errorf("flow rate of %s: %w", m[1], err)
	}

	v := ValveSpec{Name: m[1], Rate: uint16(rate)}
	for _, to := range strings.Split(m[3], ",") {
		to = strings.TrimSpace(to)
		if to == "" {
			return ValveSpec{}, fmt.Errorf("empty tunnel in %q", line)
		}
		v.Tunnels = append(v.Tunnels, to)
	}

	return v, nil
}

// ToText renders s in the puzzle line format read by ParseText. The start
// valve is not part of that format. Every valve needs at least one tunnel.
func (s *NetworkSpec) ToText() ([]byte, error) {
	var buf bytes.Buffer
	for _, v := range s.Valves {
		switch len(v.Tunnels) {
		case 0:
			return nil, fmt.Errorf("%w: valve %q has no tunnels", ErrSyntax, v.Name)
		case 1:
			fmt.Fprintf(&buf, "Valve %s has flow rate=%d; tunnel leads to valve %s\n", v.Name, v.Rate, v.Tunnels[0])
		default:
			fmt.Fprintf(&buf, "Valve %s has flow rate=%d; tunnels lead to valves %s\n",
				v.Name, v.Rate, strings.Join(v.Tunnels, ", "))
		}
	}

	return buf.Bytes(), nil
}
