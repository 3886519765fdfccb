package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type exportOptions struct {
	format      string
	output      string
	inputFormat string
}

func newExportCommand() *cobra.Command {
	eo := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Convert a valve network to another format",
		Long: `Convert a valve network to YAML, JSON or a Mermaid flowchart.

Examples:
  valvenet export input.txt
  valvenet export input.txt --format mermaid --output network.md
  valvenet export network.hcl --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, eo, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&eo.format, "format", "yaml", "Output format: yaml, json, mermaid")
	f.StringVar(&eo.output, "output", "", "Output file (default: stdout)")
	f.StringVar(&eo.inputFormat, "input-format", "", "Input format: text, yaml, hcl (default: by extension)")

	return cmd
}

func runExport(cmd *cobra.Command, eo *exportOptions, path string) error {
	spec, err := readSpec(cmd.InOrStdin(), path, eo.inputFormat)
	if err != nil {
		return fmt.Errorf("failed to load network: %w", err)
	}

	var out []byte
	switch eo.format {
	case "yaml":
		if out, err = spec.ToYAML(); err != nil {
			return err
		}
	case "json":
		if out, err = spec.ToJSON(); err != nil {
			return err
		}
		out = append(out, '\n')
	case "mermaid":
		out = []byte(spec.ToMermaid())
	default:
		return &ExitError{Code: ExitCodeUsage, Err: fmt.Errorf("unsupported format: %s (use 'yaml', 'json' or 'mermaid')", eo.format)}
	}

	if eo.output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(eo.output, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	loggerFrom(cmd.Context()).Info("network exported", "output", eo.output, "format", eo.format)

	return nil
}
