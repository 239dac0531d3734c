package output

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/colsim/internal/application/dto"
)

// YAMLFormatter formats reports as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// FormatSimulation writes a simulation report as YAML.
func (f *YAMLFormatter) FormatSimulation(report *dto.SimulationReport) error {
	return f.encode(report)
}

// FormatSweep writes a sweep report as YAML.
func (f *YAMLFormatter) FormatSweep(report *dto.SweepReport) error {
	return f.encode(report)
}

func (f *YAMLFormatter) encode(v any) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
