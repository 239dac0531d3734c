// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"io"

	"github.com/reglet-dev/colsim/internal/application/dto"
	"github.com/reglet-dev/colsim/internal/infrastructure/config"
)

// DefinitionLoader loads column definitions from storage.
type DefinitionLoader interface {
	LoadDefinition(path string) (*config.ColumnDefinition, error)
}

// OutputFormatter renders reports.
type OutputFormatter interface {
	FormatSimulation(report *dto.SimulationReport) error
	FormatSweep(report *dto.SweepReport) error
}

// FormatterOptions configures formatter creation.
type FormatterOptions struct {
	Indent  bool
	NoColor bool
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
