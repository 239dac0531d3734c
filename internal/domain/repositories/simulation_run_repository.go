// Package repositories defines interfaces for domain persistence.
package repositories

import (
	"context"

	"github.com/reglet-dev/colsim/internal/domain/execution"
	"github.com/reglet-dev/colsim/internal/domain/values"
)

// SimulationRunRepository defines the interface for persisting simulation runs.
type SimulationRunRepository interface {
	// Save persists a simulation run.
	Save(ctx context.Context, run *execution.SimulationRun) error

	// FindByID retrieves a simulation run by its unique ID.
	FindByID(ctx context.Context, id values.RunID) (*execution.SimulationRun, error)

	// FindByName retrieves recent runs for a column definition, newest first.
	FindByName(ctx context.Context, name string, limit int) ([]*execution.SimulationRun, error)
}
