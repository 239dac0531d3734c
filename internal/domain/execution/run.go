// Package execution provides domain models for simulation runs.
package execution

import (
	"time"

	"github.com/reglet-dev/colsim/internal/domain/lifecycle"
	"github.com/reglet-dev/colsim/internal/domain/values"
)

// SimulationRun records one pass of a column through the lifecycle.
type SimulationRun struct {
	StartTime time.Time
	Column    *lifecycle.Column[lifecycle.Simulated]
	Name      string
	Duration  time.Duration
	ID        values.RunID
}

// NewSimulationRun creates a run record with a fresh ID.
func NewSimulationRun(name string, start time.Time, column *lifecycle.Column[lifecycle.Simulated]) *SimulationRun {
	return &SimulationRun{
		ID:        values.NewRunID(),
		Name:      name,
		StartTime: start,
		Duration:  time.Since(start),
		Column:    column,
	}
}

// SweepResult is the outcome of one sweep variant: a run, or the error that
// prevented it (usually an *entities.ValidationError).
type SweepResult struct {
	Err       error
	Run       *SimulationRun
	Parameter string
	Value     float64
}

// Succeeded reports whether the variant produced a run.
func (r SweepResult) Succeeded() bool {
	return r.Err == nil && r.Run != nil
}
