package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

const lineHCL = `
valve "AA" {
  tunnels = ["BB"]
}

valve "BB" {
  rate    = 13
  tunnels = ["AA"]
}
`

// run executes the command tree and returns exit code, stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestSolve_File(t *testing.T) {
	path := writeFile(t, "input.txt", sampleText)
	code, out, errOut := run(t, "", "solve", path)
	require.Equal(t, ExitCodeOK, code, errOut)
	require.Equal(t, "1651\n1707\n", out)
}

func TestSolve_Stdin(t *testing.T) {
	code, out, errOut := run(t, sampleText, "solve")
	require.Equal(t, ExitCodeOK, code, errOut)
	require.Equal(t, "1651\n1707\n", out)

	code, out, _ = run(t, lineHCL, "solve", "-", "--input-format", "hcl")
	require.Equal(t, ExitCodeOK, code)
	require.Equal(t, "364\n312\n", out)
}

func TestSolve_JSON(t *testing.T) {
	path := writeFile(t, "network.hcl", lineHCL)
	code, out, errOut := run(t, "", "solve", path, "--format", "json")
	require.Equal(t, ExitCodeOK, code, errOut)

	var got solveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, uint32(364), got.Single.Value)
	assert.Equal(t, uint32(312), got.Pair.Value)
	assert.False(t, got.Single.Capped)
	assert.Positive(t, got.Pair.States)
}

// A pair with no head start and 26 ticks is the default pair search.
func TestSolve_FlagsOverride(t *testing.T) {
	path := writeFile(t, "input.txt", sampleText)
	code, out, errOut := run(t, "", "solve", path, "--budget", "26", "--head-start", "0")
	require.Equal(t, ExitCodeOK, code, errOut)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "1707", lines[1])
}

func TestSolve_Config(t *testing.T) {
	input := writeFile(t, "network.hcl", lineHCL)
	cfg := writeFile(t, "valvenet.yaml", "budget: 5\nhead_start: 0\nstart: BB\n")

	// from BB the valve opens at tick 1
	code, out, errOut := run(t, "", "solve", input, "--config", cfg)
	require.Equal(t, ExitCodeOK, code, errOut)
	require.Equal(t, "52\n52\n", out)

	code, out, _ = run(t, "", "solve", input, "--config", cfg, "--start", "AA", "--budget", "6")
	require.Equal(t, ExitCodeOK, code)
	require.Equal(t, "52\n52\n", out)
}

func TestSolve_StateLimit(t *testing.T) {
	path := writeFile(t, "input.txt", sampleText)
	code, out, errOut := run(t, "", "solve", path, "--max-states", "1")
	require.Equal(t, ExitCodeStateLimit, code)
	require.Equal(t, "0\n0\n", out)
	require.Contains(t, errOut, "state limit")
}

func TestSolve_Interrupted(t *testing.T) {
	path := writeFile(t, "input.txt", sampleText)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := Execute(ctx, []string{"solve", path}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, ExitCodeInterrupted, code, stderr.String())
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "context canceled")
}

func TestSolve_Errors(t *testing.T) {
	path := writeFile(t, "input.txt", sampleText)

	cases := []struct {
		name string
		args []string
		code int
	}{
		{"bad output format", []string{"solve", path, "--format", "xml"}, ExitCodeUsage},
		{"bad budget", []string{"solve", path, "--budget", "999"}, ExitCodeUsage},
		{"bad log level", []string{"solve", path, "--log-level", "loud"}, ExitCodeUsage},
		{"missing config", []string{"solve", path, "--config", filepath.Join(t.TempDir(), "no.yaml")}, ExitCodeUsage},
		{"missing file", []string{"solve", filepath.Join(t.TempDir(), "no.txt")}, ExitCodeError},
		{"unknown start", []string{"solve", path, "--start", "ZZ"}, ExitCodeError},
		{"too many args", []string{"solve", path, path}, ExitCodeError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := run(t, "", tc.args...)
			require.Equal(t, tc.code, code, errOut)
			require.Empty(t, out)
			require.Contains(t, errOut, "Error:")
		})
	}
}

func TestSolve_Logging(t *testing.T) {
	path := writeFile(t, "input.txt", sampleText)
	code, _, errOut := run(t, "", "solve", path, "--log-level", "debug", "--log-format", "json")
	require.Equal(t, ExitCodeOK, code)
	require.Contains(t, errOut, `"msg":"network loaded"`)
	require.Contains(t, errOut, `"tunnels":20`)
	require.Contains(t, errOut, `"msg":"search started"`)
	require.Contains(t, errOut, `"level":"DEBUG"`)
}

func TestExport(t *testing.T) {
	path := writeFile(t, "input.txt", sampleText)

	code, out, errOut := run(t, "", "export", path)
	require.Equal(t, ExitCodeOK, code, errOut)
	require.True(t, strings.HasPrefix(out, "start: AA\nvalves:\n"), out)

	code, out, _ = run(t, "", "export", path, "--format", "json")
	require.Equal(t, ExitCodeOK, code)
	require.Contains(t, out, `"name": "JJ"`)

	dest := filepath.Join(t.TempDir(), "network.md")
	code, out, _ = run(t, "", "export", path, "--format", "mermaid", "--output", dest)
	require.Equal(t, ExitCodeOK, code)
	require.Empty(t, out)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Contains(t, string(data), "HH[HH rate=22]")
	require.Contains(t, string(data), "II --> JJ")

	code, _, _ = run(t, "", "export", path, "--format", "dot")
	require.Equal(t, ExitCodeUsage, code)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("warn", "auto", &buf)
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`, "buffers are not terminals, auto picks json")

	buf.Reset()
	newLogger("debug", "text", &buf).Debug("plain")
	require.Contains(t, buf.String(), "msg=plain")
}

func TestLoggerFrom_Default(t *testing.T) {
	require.NotNil(t, loggerFrom(context.Background()))
}

func TestGenerate(t *testing.T) {
	code, out, errOut := run(t, "", "generate", "--topology", "grid", "--rows", "3", "--cols", "3", "--seed", "5")
	require.Equal(t, ExitCodeOK, code, errOut)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 9)
	require.True(t, strings.HasPrefix(out, "Valve AA has flow rate="), out)

	_, again, _ := run(t, "", "generate", "--topology", "grid", "--rows", "3", "--cols", "3", "--seed", "5")
	require.Equal(t, out, again, "same seed, same network")

	// the generated text feeds straight back into solve
	code, solved, errOut := run(t, out, "solve", "--budget", "12")
	require.Equal(t, ExitCodeOK, code, errOut)
	require.Len(t, strings.Split(strings.TrimSpace(solved), "\n"), 2)

	dest := filepath.Join(t.TempDir(), "star.yaml")
	code, out, _ = run(t, "", "generate", "--topology", "star", "--nodes", "5", "--format", "yaml", "--output", dest)
	require.Equal(t, ExitCodeOK, code)
	require.Empty(t, out)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Contains(t, string(data), "start: AA")
}

func TestGenerate_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"generate", "--topology", "torus"},
		{"generate", "--topology", "path", "--nodes", "1"},
		{"generate", "--valve-prob", "2"},
		{"generate", "--min-rate", "9", "--max-rate", "3"},
		{"generate", "--format", "dot"},
	} {
		code, _, errOut := run(t, "", args...)
		require.Equal(t, ExitCodeUsage, code, "%v: %s", args, errOut)
	}
}
