package config

import (
	"runtime"

	"github.com/reglet-dev/colsim/internal/infrastructure/system"
)

// RuntimeConfig aggregates all runtime configuration.
// This is a value object that flows through the system.
type RuntimeConfig struct {
	// Model is the fallback profile model, nil for the built-in linear model.
	Model *ProfileModel

	// Output
	OutputFormat string
	NoColor      bool

	// Concurrency
	SweepConcurrency int
}

// FromSystemConfig creates RuntimeConfig from system config.
func FromSystemConfig(sys *system.Config) *RuntimeConfig {
	rc := &RuntimeConfig{
		OutputFormat:     sys.Output.Format,
		NoColor:          sys.Output.NoColor,
		SweepConcurrency: sys.Sweep.Concurrency,
	}
	if sys.Model != nil {
		rc.Model = &ProfileModel{
			Temperature: sys.Model.Temperature,
			Pressure:    sys.Model.Pressure,
		}
	}
	return rc
}

// ApplyDefaults applies defaults for zero values.
func (r *RuntimeConfig) ApplyDefaults() {
	if r.OutputFormat == "" {
		r.OutputFormat = "table"
	}
	if r.SweepConcurrency <= 0 {
		r.SweepConcurrency = runtime.NumCPU()
	}
}
