package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"math"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/colsim/internal/application/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSimulation() *dto.SimulationReport {
	return &dto.SimulationReport{
		StartTime: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		RunID:     "4f1c2b7e-6c1f-4a53-9d8e-0b1f6c2a9e11",
		Name:      "debutanizer",
		Phase:     "Simulated",
		Parameters: dto.ParametersDTO{
			Stages:                3,
			FeedPositions:         []int{2},
			DistillateToFeedRatio: 0.5,
			RefluxRatio:           1.5,
			Temperature:           90,
			Pressure:              1,
		},
		Equations: []string{"F = D + B", "D = 0.5 * F"},
		Stages: []dto.StageDTO{
			{Index: 0, Temperature: 90, Pressure: 1},
			{Index: 1, Temperature: 89.5, Pressure: 0.99},
			{Index: 2, Temperature: 89, Pressure: 0.98},
		},
		DurationMS: 12,
	}
}

func sampleSweep() *dto.SweepReport {
	return &dto.SweepReport{
		Name:      "debutanizer",
		Parameter: "stages",
		Variants: []dto.SweepVariantDTO{
			{Value: 3, Valid: true, RunID: "a", Stages: 3, BottomTemperature: 89, BottomPressure: 0.98},
			{Value: 2, Violations: []string{"Stages=2 must be greater than 2"}},
			{Value: 5, Error: "context canceled"},
		},
	}
}

func TestTableFormatter_Simulation(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	f.EnableColor = false

	require.NoError(t, f.FormatSimulation(sampleSimulation()))

	out := buf.String()
	assert.Contains(t, out, "Column: debutanizer (Simulated)")
	assert.Contains(t, out, "Run: 4f1c2b7e-6c1f-4a53-9d8e-0b1f6c2a9e11")
	assert.Contains(t, out, "Executed: 2025-03-01T12:00:00Z")
	assert.Contains(t, out, "Feed positions: 2")
	assert.Contains(t, out, "  F = D + B")
	assert.Contains(t, out, "89.500")
	assert.NotContains(t, out, "\033[")
}

func TestTableFormatter_ConfiguredOmitsSections(t *testing.T) {
	report := sampleSimulation()
	report.Phase = "Configured"
	report.Equations = nil
	report.Stages = nil
	report.RunID = ""
	report.StartTime = time.Time{}

	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	f.EnableColor = false
	require.NoError(t, f.FormatSimulation(report))

	out := buf.String()
	assert.NotContains(t, out, "Equations:")
	assert.NotContains(t, out, "Profile:")
	assert.NotContains(t, out, "Run:")
	assert.Contains(t, out, "Parameters:")
}

func TestTableFormatter_Sweep(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	f.EnableColor = false

	require.NoError(t, f.FormatSweep(sampleSweep()))

	out := buf.String()
	assert.Contains(t, out, "Sweep: debutanizer over stages")
	assert.Contains(t, out, "✓ stages=3")
	assert.Contains(t, out, "✗ stages=2")
	assert.Contains(t, out, "Stages=2 must be greater than 2")
	assert.Contains(t, out, "Error: context canceled")
	assert.Contains(t, out, "Summary: 1 valid, 2 invalid")
}

func TestTableFormatter_Colorize(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)

	require.NoError(t, f.FormatSweep(sampleSweep()))
	assert.Contains(t, buf.String(), colorGreen+"✓"+colorReset)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, true).FormatSimulation(sampleSimulation()))

	var decoded dto.SimulationReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleSimulation(), decoded)
	assert.Contains(t, buf.String(), "\n  \"run_id\"")

	buf.Reset()
	require.NoError(t, NewJSONFormatter(&buf, false).FormatSweep(sampleSweep()))
	assert.Contains(t, buf.String(), `"violations":["Stages=2 must be greater than 2"]`)
}

func TestJSONFormatter_NonFiniteStages(t *testing.T) {
	report := sampleSimulation()
	report.Stages[1].Temperature = math.NaN()
	report.Stages[2].Pressure = math.Inf(1)

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, false).FormatSimulation(report))

	var decoded struct {
		Stages []struct {
			Temperature *float64 `json:"temperature"`
			Pressure    *float64 `json:"pressure"`
		} `json:"stages"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Stages, 3)
	assert.Nil(t, decoded.Stages[1].Temperature)
	assert.Equal(t, 0.99, *decoded.Stages[1].Pressure)
	assert.Equal(t, 89.0, *decoded.Stages[2].Temperature)
	assert.Nil(t, decoded.Stages[2].Pressure)
}

func TestJSONFormatter_SweepZeroBottom(t *testing.T) {
	report := sampleSweep()
	report.Variants[0].BottomTemperature = 0

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, false).FormatSweep(report))
	assert.Contains(t, buf.String(), `"bottom_temperature":0,`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).FormatSweep(sampleSweep()))

	var decoded dto.SweepReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "stages", decoded.Parameter)
	require.Len(t, decoded.Variants, 3)
	assert.True(t, decoded.Variants[0].Valid)
	assert.Equal(t, []string{"Stages=2 must be greater than 2"}, decoded.Variants[1].Violations)
}

func TestJUnitFormatter_Sweep(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJUnitFormatter(&buf).FormatSweep(sampleSweep()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(xml.Header)))

	var suites JUnitTestSuites
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &suites))
	assert.Equal(t, 3, suites.Tests)
	assert.Equal(t, 1, suites.Failures)
	assert.Equal(t, 1, suites.Errors)

	require.Len(t, suites.TestSuites, 1)
	cases := suites.TestSuites[0].TestCases
	require.Len(t, cases, 3)
	assert.Equal(t, "stages=3", cases[0].Name)
	assert.Nil(t, cases[0].Failure)
	require.NotNil(t, cases[1].Failure)
	assert.Equal(t, "Stages=2 must be greater than 2", cases[1].Failure.Content)
	require.NotNil(t, cases[2].Error)
	assert.Equal(t, "context canceled", cases[2].Error.Message)
}

func TestJUnitFormatter_Simulation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJUnitFormatter(&buf).FormatSimulation(sampleSimulation()))

	var suites JUnitTestSuites
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &suites))
	assert.Equal(t, 1, suites.Tests)
	assert.Equal(t, 0, suites.Failures)
	assert.InDelta(t, 0.012, suites.Time, 1e-9)
}
