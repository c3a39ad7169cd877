package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pointBeam = `
name: test beam
length: 10
supports:
  - {type: pinned, position: 0}
  - {type: roller, position: 10}
loads:
  - {type: point, position: 4, magnitude: 10}
`

const comboBeam = `{
  "length": 10,
  "supports": [{"position": 0}, {"position": 10}],
  "loads": [
    {"type": "udl", "start": 0, "end": 10, "magnitude": 2, "case": "D"},
    {"type": "point", "position": 5, "magnitude": 10, "case": "L"}
  ]
}`

// resetFlags puts every flag back to its default so commands can run
// repeatedly in one process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeBeam(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runContext(t, context.Background(), args...)
}

func runContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	// cobra only hands ctx to a subcommand whose context is still nil, so
	// clear what earlier runs left behind.
	for _, sub := range rootCmd.Commands() {
		sub.SetContext(nil) //nolint:staticcheck
	}
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	path := writeBeam(t, "beam.yaml", pointBeam)

	out, err := run(t, "solve", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Beam: test beam")
	assert.Contains(t, out, "Ra =      6.000 kN")
	assert.Contains(t, out, "Rb =      4.000 kN")
	assert.Contains(t, out, "Maximum moment:")
	assert.Contains(t, out, "24.000 kN-m")
	assert.Regexp(t, `Equilibrium:\s+✓`, out)
	assert.NotContains(t, out, "SHEAR AND MOMENT AT SECTIONS")
}

func TestSolveCommand_TableAndSections(t *testing.T) {
	path := writeBeam(t, "beam.yaml", pointBeam)

	out, err := run(t, "solve", "-f", path, "--table", "--step", "2", "--at", "4", "--at", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "SHEAR AND MOMENT AT SECTIONS")
	// x = 7: V = -4, M = 12
	assert.Regexp(t, `7\.000\s+-4\.000\s+12\.000`, out)
	// station table at x = 10 closes to zero
	assert.Regexp(t, `10\.000\s+-4\.000\s+0\.000`, out)
}

func TestSolveCommand_Errors(t *testing.T) {
	_, err := run(t, "solve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"file"`)

	_, err = run(t, "solve", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	same := writeBeam(t, "same.yaml", `
length: 10
supports:
  - {position: 5}
  - {position: 5}
loads:
  - {type: point, position: 4, magnitude: 10}
`)
	_, err = run(t, "solve", "-f", same)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enough information to solve the beam")

	bad := writeBeam(t, "bad.json", `{"length": -1, "supports": [{"position": 0}, {"position": 1}]}`)
	_, err = run(t, "solve", "-f", bad)
	assert.Error(t, err)
}

func TestSolveCommand_Watch(t *testing.T) {
	path := writeBeam(t, "beam.yaml", pointBeam)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go func() {
		time.Sleep(500 * time.Millisecond)
		heavier := strings.Replace(pointBeam, "magnitude: 10", "magnitude: 20", 1)
		_ = os.WriteFile(path, []byte(heavier), 0o644)
	}()

	out, err := runContext(t, ctx, "solve", "-f", path, "--watch")
	require.NoError(t, err)
	assert.Contains(t, out, "Rb =      4.000 kN")
	assert.Contains(t, out, "Rb =      8.000 kN")
}

func TestReportCommand(t *testing.T) {
	path := writeBeam(t, "beam.yaml", pointBeam)
	dir := t.TempDir()

	for _, name := range []string{"calc.pdf", "calc.xlsx"} {
		target := filepath.Join(dir, name)
		out, err := run(t, "report", "-f", path, "-o", target, "--step", "1")
		require.NoError(t, err, name)
		assert.Contains(t, out, "Report written to "+target)

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	_, err := run(t, "report", "-f", path, "-o", filepath.Join(dir, "calc.txt"))
	assert.ErrorContains(t, err, "unsupported format")

	_, err = run(t, "report", "-f", path)
	assert.ErrorContains(t, err, `"output"`)
}

func TestDiagramCommand(t *testing.T) {
	path := writeBeam(t, "beam.yaml", pointBeam)
	img := filepath.Join(t.TempDir(), "plots", "beam.png")

	out, err := run(t, "diagram", "-f", path, "--integer", "--width", "40", "--height", "8", "-o", img)
	require.NoError(t, err)
	assert.Contains(t, out, "SHEAR FORCE DIAGRAM")
	assert.Contains(t, out, "BENDING MOMENT DIAGRAM")
	assert.Contains(t, out, "═")
	assert.Contains(t, out, "Diagrams exported to "+img)

	info, err := os.Stat(img)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCombineCommand(t *testing.T) {
	path := writeBeam(t, "beam.json", comboBeam)

	out, err := run(t, "combine", "-f", path, "--simplified", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Dead Load (D)")
	assert.Contains(t, out, "Live Load (L)")
	// 1.4D: 1.4*2*100/8 = 35; 1.2D+1.6L: 30 + 40 = 70
	assert.Regexp(t, `1\s+1\.4D\s+14\.00\s+14\.00\s+35\.00`, out)
	assert.Regexp(t, `2\s+1\.2D \+ 1\.6L\s+20\.00\s+20\.00\s+70\.00\s+5\.000 ← GOVERNS`, out)
	assert.Contains(t, out, "Governing Combination: 2 (1.2D + 1.6L)")
	assert.Contains(t, out, "Mu = 70.00 kN-m at x = 5.000 m")
}

func TestCombineCommand_NoLoads(t *testing.T) {
	path := writeBeam(t, "empty.yaml", "length: 4\nsupports: [{position: 0}, {position: 4}]\n")

	_, err := run(t, "combine", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no loads")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gosbeam v")
}
