// Package services contains application use cases.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/reglet-dev/colsim/internal/application/errors"
	"github.com/reglet-dev/colsim/internal/application/ports"
	"github.com/reglet-dev/colsim/internal/domain/entities"
	"github.com/reglet-dev/colsim/internal/domain/execution"
	"github.com/reglet-dev/colsim/internal/domain/lifecycle"
	"github.com/reglet-dev/colsim/internal/domain/repositories"
	"github.com/reglet-dev/colsim/internal/infrastructure/config"
	"golang.org/x/sync/errgroup"
)

// PreparedDefinition is a loaded definition ready to be built.
type PreparedDefinition struct {
	Definition *config.ColumnDefinition
	Builder    *entities.ColumnBuilder
	Options    []lifecycle.Option
}

// SimulationService drives columns through the lifecycle and records runs.
type SimulationService struct {
	loader       ports.DefinitionLoader
	runs         repositories.SimulationRunRepository
	defaultModel *config.ProfileModel
	logger       *slog.Logger
	concurrency  int
}

// SimulationServiceOption configures a SimulationService.
type SimulationServiceOption func(*SimulationService)

// WithDefaultModel sets the profile model used when a definition has none.
func WithDefaultModel(model *config.ProfileModel) SimulationServiceOption {
	return func(s *SimulationService) {
		s.defaultModel = model
	}
}

// WithSweepConcurrency limits how many sweep variants run at once.
// Zero or negative means no limit.
func WithSweepConcurrency(n int) SimulationServiceOption {
	return func(s *SimulationService) {
		s.concurrency = n
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) SimulationServiceOption {
	return func(s *SimulationService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSimulationService creates a new simulation service.
func NewSimulationService(
	loader ports.DefinitionLoader,
	runs repositories.SimulationRunRepository,
	opts ...SimulationServiceOption,
) *SimulationService {
	s := &SimulationService{
		loader: loader,
		runs:   runs,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Prepare loads a definition file and resolves its profile model.
func (s *SimulationService) Prepare(path string) (*PreparedDefinition, error) {
	s.logger.Info("loading column definition", "path", path)

	def, err := s.loader.LoadDefinition(path)
	if err != nil {
		return nil, err
	}

	opts, err := def.Options(s.defaultModel)
	if err != nil {
		return nil, apperrors.NewConfigurationError("model", "cannot compile profile expressions", err)
	}

	return &PreparedDefinition{
		Definition: def,
		Builder:    def.Builder(),
		Options:    opts,
	}, nil
}

// Run builds the column, derives its equations and simulates it. The
// builder is consumed on success. Validation failures are returned as
// *entities.ValidationError carrying every violation.
func (s *SimulationService) Run(
	ctx context.Context,
	name string,
	b *entities.ColumnBuilder,
	opts ...lifecycle.Option,
) (*execution.SimulationRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	configured, err := lifecycle.Build(b, opts...)
	if err != nil {
		s.logger.Debug("column rejected", "name", name, "error", err)
		return nil, fmt.Errorf("column %s: %w", name, err)
	}

	ready := lifecycle.DeriveEquations(configured)
	s.logger.Debug("equations derived", "name", name, "count", len(lifecycle.Equations(ready)))

	run := execution.NewSimulationRun(name, start, lifecycle.Simulate(ready))
	if err := s.runs.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to save run: %w", err)
	}

	s.logger.Info("simulation complete",
		"name", name,
		"run_id", run.ID,
		"stages", run.Column.Parameters().Stages,
		"duration", run.Duration)
	return run, nil
}

// Sweep re-simulates independent clones of base with one parameter set to
// each of values. Results keep the order of values; a variant that fails
// validation is recorded in its result and does not stop the others. base
// is never consumed.
func (s *SimulationService) Sweep(
	ctx context.Context,
	name string,
	base *lifecycle.Column[lifecycle.Simulated],
	parameter string,
	values []float64,
) ([]execution.SweepResult, error) {
	setter, err := SetterFor(parameter)
	if err != nil {
		return nil, err
	}

	s.logger.Info("starting sweep", "name", name, "parameter", parameter, "variants", len(values))

	g, gCtx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}

	// Each goroutine writes to its own index; clones are taken up front so
	// workers never touch base.
	results := make([]execution.SweepResult, len(values))
	for i, value := range values {
		clone := base.Clone()
		g.Go(func() error {
			results[i] = s.runVariant(gCtx, name, clone, parameter, value, setter)
			return nil // Don't fail fast on individual variants
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}

func (s *SimulationService) runVariant(
	ctx context.Context,
	name string,
	col *lifecycle.Column[lifecycle.Simulated],
	parameter string,
	value float64,
	setter ParameterSetter,
) execution.SweepResult {
	result := execution.SweepResult{Parameter: parameter, Value: value}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	start := time.Now()
	var setErr error
	configured, err := lifecycle.Reconfigure(col, func(b *entities.ColumnBuilder) {
		setErr = setter(b, value)
	})
	if setErr != nil {
		result.Err = setErr
		return result
	}
	if err != nil {
		s.logger.Debug("sweep variant rejected", "parameter", parameter, "value", value, "error", err)
		result.Err = err
		return result
	}

	variantName := fmt.Sprintf("%s[%s=%g]", name, parameter, value)
	run := execution.NewSimulationRun(variantName, start, lifecycle.Simulate(lifecycle.DeriveEquations(configured)))
	if err := s.runs.Save(ctx, run); err != nil {
		result.Err = fmt.Errorf("failed to save run: %w", err)
		return result
	}

	result.Run = run
	return result
}
