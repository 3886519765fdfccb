package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valvenet/core"
)

// DefaultStart is the valve both agents start at when a description does not
// name one.
const DefaultStart = "AA"

// Sentinel errors for network descriptions.
var (
	// ErrSyntax is returned for a malformed puzzle line.
	ErrSyntax = errors.New("input: syntax error")

	// ErrNoValves is returned for a description without valves.
	ErrNoValves = errors.New("input: no valves declared")

	// ErrEmptyName is returned for a valve without a name.
	ErrEmptyName = errors.New("input: valve name is empty")

	// ErrDuplicateValve is returned when a valve is declared twice.
	ErrDuplicateValve = errors.New("input: valve declared twice")

	// ErrUnknownValve is returned when a tunnel or the start names a valve
	// that is not declared.
	ErrUnknownValve = errors.New("input: unknown valve")

	// ErrDuplicateTunnel is returned when a valve lists the same tunnel twice.
	ErrDuplicateTunnel = errors.New("input: duplicate tunnel")

	// ErrUnknownFormat is returned by Load for an unsupported file extension.
	ErrUnknownFormat = errors.New("input: unknown file format")
)

// NetworkSpec is a format-neutral valve network description.
type NetworkSpec struct {
	Start  string      `yaml:"start" json:"start"`
	Valves []ValveSpec `yaml:"valves" json:"valves"`
}

// ValveSpec describes one valve and the tunnels leaving it.
type ValveSpec struct {
	Name    string   `yaml:"name" json:"name"`
	Rate    uint16   `yaml:"rate" json:"rate"`
	Tunnels []string `yaml:"tunnels,omitempty" json:"tunnels,omitempty"`
}

// Validate checks names, the start valve and every tunnel reference.
// An empty Start is replaced by DefaultStart.
func (s *NetworkSpec) Validate() error {
	if len(s.Valves) == 0 {
		return ErrNoValves
	}
	if s.Start == "" {
		s.Start = DefaultStart
	}

	names := make(map[string]bool, len(s.Valves))
	for i, v := range s.Valves {
		if v.Name == "" {
			return fmt.Errorf("%w (valve #%d)", ErrEmptyName, i+1)
		}
		if names[v.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateValve, v.Name)
		}
		names[v.Name] = true
	}
	if !names[s.Start] {
		return fmt.Errorf("%w: start %q", ErrUnknownValve, s.Start)
	}
	for _, v := range s.Valves {
		seen := make(map[string]bool, len(v.Tunnels))
		for _, to := range v.Tunnels {
			if !names[to] {
				return fmt.Errorf("%w: %q (tunnel from %q)", ErrUnknownValve, to, v.Name)
			}
			if seen[to] {
				return fmt.Errorf("%w: %q -> %q", ErrDuplicateTunnel, v.Name, to)
			}
			seen[to] = true
		}
	}

	return nil
}

// Graph validates s and builds a directed graph with strict endpoints:
// all valves are declared before any tunnel is added.
func (s *NetworkSpec) Graph() (*core.Graph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithDirected(true), core.WithStrictEndpoints())
	for _, v := range s.Valves {
		if err := g.AddVertex(v.Name); err != nil {
			return nil, fmt.Errorf("input: valve %q: %w", v.Name, err)
		}
		if err := g.SetRate(v.Name, v.Rate); err != nil {
			return nil, fmt.Errorf("input: valve %q: %w", v.Name, err)
		}
	}
	for _, v := range s.Valves {
		for _, to := range v.Tunnels {
			if _, err := g.AddEdge(v.Name, to); err != nil {
				if errors.Is(err, core.ErrVertexNotFound) {
					err = ErrUnknownValve
				}
				return nil, fmt.Errorf("input: tunnel %q -> %q: %w", v.Name, to, err)
			}
		}
	}

	return g, nil
}

// ToYAML encodes s in the YAML layout read by ParseYAML.
func (s *NetworkSpec) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("input: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("input: encode yaml: %w", err)
	}

	return buf.Bytes(), nil
}

// ToJSON encodes s as indented JSON.
func (s *NetworkSpec) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ToMermaid renders s as a Mermaid flowchart. Valves with a positive rate
// show it in their label.
func (s *NetworkSpec) ToMermaid() string {
	var sb strings.Builder

	sb.WriteString("graph LR\n")
	for _, v := range s.Valves {
		if v.Rate > 0 {
			fmt.Fprintf(&sb, "    %s[%s rate=%d]\n", v.Name, v.Name, v.Rate)
		} else {
			fmt.Fprintf(&sb, "    %s[%s]\n", v.Name, v.Name)
		}
	}
	for _, v := range s.Valves {
		for _, to := range v.Tunnels {
			fmt.Fprintf(&sb, "    %s --> %s\n", v.Name, to)
		}
	}

	return sb.String()
}

// FromGraph describes g with start as the start valve. Valves and tunnels
// are listed in ascending name order.
func FromGraph(g *core.Graph, start string) (*NetworkSpec, error) {
	if g == nil {
		return nil, ErrNoValves
	}
	adj := g.AdjacencyList()
	spec := &NetworkSpec{Start: start}
	for _, name := range g.Vertices() {
		rate, err := g.Rate(name)
		if err != nil {
			return nil, fmt.Errorf("input: valve %q: %w", name, err)
		}
		v := ValveSpec{Name: name, Rate: rate}
		if len(adj[name]) > 0 {
			v.Tunnels = adj[name]
		}
		spec.Valves = append(spec.Valves, v)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return spec, nil
}
