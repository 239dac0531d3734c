package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/reglet-dev/colsim/internal/application/dto"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

const ruleWidth = 60

// TableFormatter formats reports as human-readable text.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

func (f *TableFormatter) rule() string {
	return f.colorize(strings.Repeat("─", ruleWidth), colorGray)
}

// FormatSimulation writes the column parameters, equations and the stage
// profile table. Sections the column's phase does not have are omitted.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatSimulation(report *dto.SimulationReport) error {
	fmt.Fprintln(f.writer, f.rule())
	fmt.Fprintf(f.writer, "Column: %s (%s)\n", f.colorize(report.Name, colorBold), report.Phase)
	if report.RunID != "" {
		fmt.Fprintf(f.writer, "Run: %s\n", report.RunID)
	}
	if !report.StartTime.IsZero() {
		fmt.Fprintf(f.writer, "Executed: %s\n", report.StartTime.Format(time.RFC3339))
		fmt.Fprintf(f.writer, "Duration: %dms\n", report.DurationMS)
	}
	fmt.Fprintln(f.writer)

	f.formatParameters(report.Parameters)

	if len(report.Equations) > 0 {
		fmt.Fprintln(f.writer, f.colorize("Equations:", colorBold))
		for _, eq := range report.Equations {
			fmt.Fprintf(f.writer, "  %s\n", eq)
		}
		fmt.Fprintln(f.writer)
	}

	if len(report.Stages) > 0 {
		fmt.Fprintln(f.writer, f.colorize("Profile:", colorBold))
		fmt.Fprintf(f.writer, "  %-6s %12s %10s\n", "Stage", "Temperature", "Pressure")
		for _, s := range report.Stages {
			fmt.Fprintf(f.writer, "  %-6d %12.3f %10.4f\n", s.Index, s.Temperature, s.Pressure)
		}
	}

	fmt.Fprintln(f.writer, f.rule())
	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatParameters(p dto.ParametersDTO) {
	fmt.Fprintln(f.writer, f.colorize("Parameters:", colorBold))
	fmt.Fprintf(f.writer, "  Stages: %d\n", p.Stages)
	fmt.Fprintf(f.writer, "  Feed positions: %s\n", joinInts(p.FeedPositions))
	fmt.Fprintf(f.writer, "  Distillate to feed ratio: %g\n", p.DistillateToFeedRatio)
	fmt.Fprintf(f.writer, "  Reflux ratio: %g\n", p.RefluxRatio)
	fmt.Fprintf(f.writer, "  Temperature: %g\n", p.Temperature)
	fmt.Fprintf(f.writer, "  Pressure: %g\n", p.Pressure)
	fmt.Fprintln(f.writer)
}

// FormatSweep writes one line per variant followed by a summary.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatSweep(report *dto.SweepReport) error {
	fmt.Fprintln(f.writer, f.rule())
	fmt.Fprintf(f.writer, "Sweep: %s over %s\n", f.colorize(report.Name, colorBold), f.colorize(report.Parameter, colorCyan))
	fmt.Fprintln(f.writer, f.rule())

	if len(report.Variants) == 0 {
		fmt.Fprintln(f.writer, "No variants.")
		return nil
	}

	for _, v := range report.Variants {
		f.formatVariant(report.Parameter, v)
	}

	fmt.Fprintln(f.writer, f.rule())
	valid, invalid := report.Summary()
	fmt.Fprintf(f.writer, "Summary: %s valid, %s invalid\n",
		f.colorize(fmt.Sprint(valid), colorGreen),
		f.colorize(fmt.Sprint(invalid), colorRed))
	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatVariant(param string, v dto.SweepVariantDTO) {
	if v.Valid {
		fmt.Fprintf(f.writer, "%s %s=%g  stages=%d  bottom T=%.3f  bottom P=%.4f\n",
			f.colorize("✓", colorGreen), param, v.Value, v.Stages, v.BottomTemperature, v.BottomPressure)
		return
	}

	fmt.Fprintf(f.writer, "%s %s=%g\n", f.colorize("✗", colorRed), param, v.Value)
	for _, msg := range v.Violations {
		fmt.Fprintf(f.writer, "    %s\n", f.colorize(msg, colorYellow))
	}
	if v.Error != "" {
		fmt.Fprintf(f.writer, "    %s: %s\n", f.colorize("Error", colorRed), v.Error)
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
