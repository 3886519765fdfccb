package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/input"
	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/search"
)

type solveOptions struct {
	budget        int
	headStart     int
	maxStates     int
	maxIterations int
	start         string
	format        string
	inputFormat   string
}

func newSolveCommand(ro *rootOptions) *cobra.Command {
	so := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Compute the most pressure one and two agents can release",
		Long: `Read a valve network and print two integers: the most pressure a single
agent releases within the budget, then the most two agents release after
the head start.

Examples:
  valvenet solve input.txt
  valvenet solve network.hcl --budget 26 --head-start 0
  cat input.txt | valvenet solve --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, ro, so, args)
		},
	}

	f := cmd.Flags()
	f.IntVar(&so.budget, "budget", 0, "Time budget in ticks (default from config: 30)")
	f.IntVar(&so.headStart, "head-start", 0, "Ticks spent before the pair search starts (default from config: 4)")
	f.IntVar(&so.maxStates, "max-states", 0, "State table ceiling")
	f.IntVar(&so.maxIterations, "max-iterations", 0, "Expansion ceiling, 0 for none")
	f.StringVar(&so.start, "start", "", "Start valve (default: the network's start)")
	f.StringVar(&so.format, "format", "text", "Output format: text, json")
	f.StringVar(&so.inputFormat, "input-format", "", "Input format: text, yaml, hcl (default: by extension)")

	return cmd
}

// solveOutput is the JSON shape of a solve run.
type solveOutput struct {
	Single resultOutput `json:"single"`
	Pair   resultOutput `json:"pair"`
}

type resultOutput struct {
	Value      uint32 `json:"value"`
	States     int    `json:"states"`
	Iterations int    `json:"iterations"`
	Capped     bool   `json:"capped"`
}

func toOutput(r search.Result) resultOutput {
	return resultOutput{Value: r.Value, States: r.States, Iterations: r.Iterations, Capped: r.Capped}
}

func runSolve(cmd *cobra.Command, ro *rootOptions, so *solveOptions, args []string) error {
	log := loggerFrom(cmd.Context())
	if so.format != "text" && so.format != "json" {
		return &ExitError{Code: ExitCodeUsage, Err: fmt.Errorf("unsupported format: %s (use 'text' or 'json')", so.format)}
	}

	cfg := ro.cfg
	f := cmd.Flags()
	if f.Changed("budget") {
		cfg.Budget = so.budget
	}
	if f.Changed("head-start") {
		cfg.HeadStart = so.headStart
	}
	if f.Changed("max-states") {
		cfg.MaxStates = so.maxStates
	}
	if f.Changed("max-iterations") {
		cfg.MaxIterations = so.maxIterations
	}
	if f.Changed("start") {
		cfg.Start = so.start
	}
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: ExitCodeUsage, Err: err}
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	spec, err := readSpec(cmd.InOrStdin(), path, so.inputFormat)
	if err != nil {
		return err
	}
	start := spec.Start
	if cfg.Start != "" {
		start = cfg.Start
	}

	g, err := spec.Graph()
	if err != nil {
		return err
	}
	nw, err := network.Compile(g, start)
	if err != nil {
		return err
	}
	stats := g.Stats()
	log.Info("network loaded",
		"source", path,
		"valves", stats.VertexCount,
		"with_rate", stats.ValveCount,
		"tunnels", stats.EdgeCount,
		"total_rate", stats.TotalRate,
		"start", start,
	)

	began := time.Now()
	opts := append(cfg.SearchOptions(),
		search.WithLogger(log),
		search.WithContext(cmd.Context()),
	)
	ans, err := search.Solve(nw, opts...)
	limited := errors.Is(err, search.ErrStateLimit)
	if err != nil && !limited {
		return err
	}
	log.Info("search finished",
		"single", ans.Single.Value,
		"pair", ans.Pair.Value,
		"elapsed", time.Since(began),
	)

	if err := writeAnswer(cmd.OutOrStdout(), so.format, ans); err != nil {
		return err
	}
	if limited {
		return &ExitError{Code: ExitCodeStateLimit, Err: err}
	}

	return nil
}

// readSpec reads a network from path, or from stdin when path is "-".
// An empty format means "by extension", and puzzle text for stdin.
func readSpec(stdin io.Reader, path, format string) (*input.NetworkSpec, error) {
	if path == "-" {
		if format == "" {
			format = string(input.FormatText)
		}
		return input.Read(stdin, input.Format(format), "stdin")
	}
	if format == "" {
		return input.Load(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer file.Close()

	return input.Read(file, input.Format(format), path)
}

func writeAnswer(w io.Writer, format string, ans search.Answer) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(solveOutput{Single: toOutput(ans.Single), Pair: toOutput(ans.Pair)})
	}
	_, err := fmt.Fprintf(w, "%d\n%d\n", ans.Single.Value, ans.Pair.Value)

	return err
}
