// Package memory provides in-memory implementations of domain repositories.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/reglet-dev/colsim/internal/domain/execution"
	"github.com/reglet-dev/colsim/internal/domain/repositories"
	"github.com/reglet-dev/colsim/internal/domain/values"
)

// Ensure interface compliance
var _ repositories.SimulationRunRepository = (*SimulationRunRepository)(nil)

// SimulationRunRepository is an in-memory SimulationRunRepository.
// Useful for testing and ephemeral storage.
//
// Runs are stored and returned as copies with cloned columns, so callers may
// drive a returned column through further transitions without affecting the
// stored one.
type SimulationRunRepository struct {
	runs map[uuid.UUID]*execution.SimulationRun
	mu   sync.RWMutex
}

// NewSimulationRunRepository creates a new in-memory repository.
func NewSimulationRunRepository() *SimulationRunRepository {
	return &SimulationRunRepository{
		runs: make(map[uuid.UUID]*execution.SimulationRun),
	}
}

// Save persists a simulation run.
func (r *SimulationRunRepository) Save(_ context.Context, run *execution.SimulationRun) error {
	if run == nil || run.ID.IsZero() {
		return fmt.Errorf("cannot save run without ID")
	}
	if run.Column != nil && run.Column.Spent() {
		return fmt.Errorf("cannot save run %s: column was consumed", run.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs[run.ID.UUID()] = cloneRun(run)
	return nil
}

// FindByID retrieves a simulation run by its unique ID.
func (r *SimulationRunRepository) FindByID(_ context.Context, id values.RunID) (*execution.SimulationRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, ok := r.runs[id.UUID()]
	if !ok {
		return nil, fmt.Errorf("simulation run not found: %s", id)
	}
	return cloneRun(run), nil
}

// FindByName retrieves recent runs for a column definition, newest first.
func (r *SimulationRunRepository) FindByName(_ context.Context, name string, limit int) ([]*execution.SimulationRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*execution.SimulationRun
	for _, run := range r.runs {
		if run.Name == name {
			matches = append(matches, run)
		}
	}

	// Sort by start time descending (newest first)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].StartTime.After(matches[j].StartTime)
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]*execution.SimulationRun, len(matches))
	for i, run := range matches {
		out[i] = cloneRun(run)
	}
	return out, nil
}

func cloneRun(run *execution.SimulationRun) *execution.SimulationRun {
	cp := *run
	if run.Column != nil {
		cp.Column = run.Column.Clone()
	}
	return &cp
}
