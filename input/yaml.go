package input

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML network description:
//
//	start: AA
//	valves:
//	  - name: AA
//	    rate: 0
//	    tunnels: [DD, II, BB]
//
// Unknown keys are rejected.
func ParseYAML(r io.Reader) (*NetworkSpec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var spec NetworkSpec
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoValves
		}
		return nil, fmt.Errorf("input: parse yaml: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return &spec, nil
}
