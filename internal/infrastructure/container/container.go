// Package container provides dependency injection for the application.
package container

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/reglet-dev/colsim/internal/application/ports"
	"github.com/reglet-dev/colsim/internal/application/services"
	"github.com/reglet-dev/colsim/internal/domain/repositories"
	"github.com/reglet-dev/colsim/internal/infrastructure/config"
	"github.com/reglet-dev/colsim/internal/infrastructure/output"
	"github.com/reglet-dev/colsim/internal/infrastructure/persistence/memory"
	"github.com/reglet-dev/colsim/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	definitionLoader  *config.DefinitionLoader
	runRepository     repositories.SimulationRunRepository
	formatterFactory  ports.OutputFormatterFactory
	simulationService *services.SimulationService
	runtimeConfig     *config.RuntimeConfig
	logger            *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger           *slog.Logger
	SystemConfigPath string
	// SweepConcurrency overrides the configured sweep limit when positive.
	SweepConcurrency int
}

// DefaultSystemConfigPath returns ~/.colsim/config.yaml, or "" when the home
// directory cannot be determined.
func DefaultSystemConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".colsim", "config.yaml")
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	configPath := opts.SystemConfigPath
	if configPath == "" {
		configPath = DefaultSystemConfigPath()
	}

	systemCfg := system.DefaultConfig()
	if configPath != "" {
		loaded, err := system.NewConfigLoader().Load(configPath)
		if err != nil {
			return nil, err
		}
		systemCfg = loaded
	}

	runtimeCfg := config.FromSystemConfig(systemCfg)
	if opts.SweepConcurrency > 0 {
		runtimeCfg.SweepConcurrency = opts.SweepConcurrency
	}
	runtimeCfg.ApplyDefaults()

	definitionLoader := config.NewDefinitionLoader()
	runRepository := memory.NewSimulationRunRepository()

	simulationService := services.NewSimulationService(
		definitionLoader,
		runRepository,
		services.WithDefaultModel(runtimeCfg.Model),
		services.WithSweepConcurrency(runtimeCfg.SweepConcurrency),
		services.WithLogger(opts.Logger),
	)

	return &Container{
		definitionLoader:  definitionLoader,
		runRepository:     runRepository,
		formatterFactory:  output.NewFormatterFactory(),
		simulationService: simulationService,
		runtimeConfig:     runtimeCfg,
		logger:            opts.Logger,
	}, nil
}

// DefinitionLoader returns the column definition loader.
func (c *Container) DefinitionLoader() *config.DefinitionLoader {
	return c.definitionLoader
}

// RunRepository returns the simulation run repository.
func (c *Container) RunRepository() repositories.SimulationRunRepository {
	return c.runRepository
}

// FormatterFactory returns the output formatter factory.
func (c *Container) FormatterFactory() ports.OutputFormatterFactory {
	return c.formatterFactory
}

// SimulationService returns the simulation use case.
func (c *Container) SimulationService() *services.SimulationService {
	return c.simulationService
}

// RuntimeConfig returns the resolved runtime configuration.
func (c *Container) RuntimeConfig() *config.RuntimeConfig {
	return c.runtimeConfig
}

// Logger returns the container logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
