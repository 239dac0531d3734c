package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/colsim/internal/application/dto"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// FormatSimulation writes a simulation report as JSON.
func (f *JSONFormatter) FormatSimulation(report *dto.SimulationReport) error {
	return f.write(report)
}

// FormatSweep writes a sweep report as JSON.
func (f *JSONFormatter) FormatSweep(report *dto.SweepReport) error {
	return f.write(report)
}

func (f *JSONFormatter) write(v any) error {
	var data []byte
	var err error

	if f.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	if _, err = f.writer.Write(data); err != nil {
		return err
	}

	// Add newline for better terminal output
	_, err = f.writer.Write([]byte("\n"))
	return err
}
