package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/colsim/internal/application/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const columnDefinition = `version: 1.0.0
name: debutanizer
column:
  stages: 32
  feed_positions: [16, 24]
  distillate_to_feed_ratio: 0.8
  reflux_ratio: 2.25
  temperature: 85
  pressure: 1
`

const invalidColumnDefinition = `version: 1.0.0
name: stubby
column:
  stages: 2
  feed_positions: [16]
  distillate_to_feed_ratio: 1
  reflux_ratio: 2.25
  temperature: 85
  pressure: 1
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// executeCommand runs the root command with an isolated home directory and
// system config, returning stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(args, "--system-config", filepath.Join(home, "missing.yaml")))
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(t, "validate", writeFile(t, dir, "ok.yaml", columnDefinition))
	require.NoError(t, err)
	assert.Equal(t, "debutanizer: valid\n", out)

	out, err = executeCommand(t, "validate", writeFile(t, dir, "bad.yaml", invalidColumnDefinition))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column stubby is invalid: 3 violation(s)")
	assert.Equal(t,
		"Distillate to feed ratio must be between 0 and 1\n"+
			"Stages=2 must be greater than 2\n"+
			"Feed position 16 not allowed, range is 2..1\n",
		out)
}

func TestSimulateCommand_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "column.yaml", columnDefinition)

	out, err := executeCommand(t, "simulate", path, "--format", "json", "--until", "simulated")
	require.NoError(t, err)

	var report dto.SimulationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "debutanizer", report.Name)
	assert.Equal(t, "Simulated", report.Phase)
	assert.NotEmpty(t, report.RunID)
	assert.NotEmpty(t, report.Equations)
	require.Len(t, report.Stages, 32)
	assert.InDelta(t, 69.5, report.Stages[31].Temperature, 1e-9)
}

func TestSimulateCommand_UntilEquations(t *testing.T) {
	path := writeFile(t, t.TempDir(), "column.yaml", columnDefinition)

	out, err := executeCommand(t, "simulate", path, "--format", "yaml", "--until", "equations")
	require.NoError(t, err)

	var report dto.SimulationReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, "ReadyForSimulation", report.Phase)
	assert.Contains(t, report.Equations, "F = D + B")
	assert.Empty(t, report.Stages)
}

func TestSimulateCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yaml", invalidColumnDefinition)
	good := writeFile(t, dir, "good.yaml", columnDefinition)

	_, err := executeCommand(t, "simulate", bad, "--format", "json", "--until", "simulated")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stages=2 must be greater than 2")

	_, err = executeCommand(t, "simulate", good, "--format", "xml", "--until", "simulated")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format: xml")

	_, err = executeCommand(t, "simulate", good, "--format", "json", "--until", "halfway")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --until value")
}

func TestSimulateCommand_OutputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "column.yaml", columnDefinition)
	outFile := filepath.Join(dir, "report.json")

	out, err := executeCommand(t, "simulate", path, "--format", "json", "--until", "configured", "--output", outFile)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var report dto.SimulationReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "Configured", report.Phase)
	assert.Equal(t, []int{16, 24}, report.Parameters.FeedPositions)

	// reset for later tests sharing the command
	require.NoError(t, simulateCmd.Flags().Set("output", ""))
}

func TestSweepCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "column.yaml", columnDefinition)

	out, err := executeCommand(t, "sweep", path,
		"--param", "stages", "--values", "40,2,24", "--concurrency", "2", "--format", "json")
	require.NoError(t, err)

	var report dto.SweepReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "stages", report.Parameter)
	require.Len(t, report.Variants, 3)
	assert.True(t, report.Variants[0].Valid)
	assert.Equal(t, 40, report.Variants[0].Stages)
	assert.False(t, report.Variants[1].Valid)
	assert.Contains(t, report.Variants[1].Violations, "Stages=2 must be greater than 2")
	assert.Equal(t, []string{"Feed position 24 not allowed, range is 2..23"}, report.Variants[2].Violations)
}

func TestInitCommand_NoInteractive(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "new.yaml")

	out, err := executeCommand(t, "init", "--no-interactive",
		"--name", "stripper", "--stages", "12", "--feed", "4",
		"--ratio", "0.4", "--reflux", "1.2", "--temperature", "110", "--pressure", "2",
		"--output", outFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote column definition stripper")

	out, err = executeCommand(t, "validate", outFile)
	require.NoError(t, err)
	assert.Equal(t, "stripper: valid\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "colsim version dev")
	assert.Contains(t, out, "definition formats:")
}
