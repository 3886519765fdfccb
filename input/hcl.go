package input

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclNetworkFile is the top-level structure of an HCL description.
type hclNetworkFile struct {
	Start  *string     `hcl:"start,optional"`
	Valves []*hclValve `hcl:"valve,block"`
}

// hclValve is one `valve "NAME" { ... }` block. Rate stays a cty.Value
// until it is range-checked.
type hclValve struct {
	Name    string    `hcl:"name,label"`
	Rate    cty.Value `hcl:"rate,optional"`
	Tunnels []string  `hcl:"tunnels,optional"`
}

// ParseHCL decodes an HCL network description:
//
//	start = "AA"
//
//	valve "AA" {
//	  rate    = 0
//	  tunnels = ["DD", "II", "BB"]
//	}
//
// filename is only used in diagnostics. Rates must be whole numbers in
// [0, 65535].
func ParseHCL(src []byte, filename string) (*NetworkSpec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("input: parse hcl %s: %w", filename, diags)
	}

	var parsed hclNetworkFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("input: decode hcl %s: %w", filename, diags)
	}

	spec := &NetworkSpec{}
	if parsed.Start != nil {
		spec.Start = *parsed.Start
	}
	for _, hv := range parsed.Valves {
		rate, err := rateFromCty(hv.Rate)
		if err != nil {
			return nil, fmt.Errorf("input: valve %q: %w", hv.Name, err)
		}
		spec.Valves = append(spec.Valves, ValveSpec{
			Name:    hv.Name,
			Rate:    rate,
			Tunnels: hv.Tunnels,
		})
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return spec, nil
}

// rateFromCty converts an optional rate attribute. A missing rate is 0.
func rateFromCty(v cty.Value) (uint16, error) {
	if v.IsNull() {
		return 0, nil
	}
	if !v.IsKnown() {
		return 0, fmt.Errorf("rate is not known")
	}
	var rate uint16
	if err := gocty.FromCtyValue(v, &rate); err != nil {
		return 0, fmt.Errorf("rate: %w", err)
	}

	return rate, nil
}
