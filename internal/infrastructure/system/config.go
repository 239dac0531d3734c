// Package system provides infrastructure for system-level configuration
// loaded from ~/.colsim/config.yaml.
package system

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config represents the global configuration file (~/.colsim/config.yaml).
// This is infrastructure-level configuration separate from column definitions.
type Config struct {
	Model  *ModelConfig `yaml:"model,omitempty"`
	Output OutputConfig `yaml:"output"`
	Sweep  SweepConfig  `yaml:"sweep"`
}

// ModelConfig sets default profile expressions for definitions that do not
// carry their own model block.
type ModelConfig struct {
	Temperature string `yaml:"temperature"`
	Pressure    string `yaml:"pressure"`
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	// Format is one of "table", "json", "yaml" or "junit".
	Format string `yaml:"format"`
	// NoColor disables ANSI colors in table output.
	NoColor bool `yaml:"no_color"`
}

// SweepConfig configures parameter sweeps.
type SweepConfig struct {
	// Concurrency caps the number of variants simulated at once; 0 means NumCPU.
	Concurrency int `yaml:"concurrency"`
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfig returns a Config with safe defaults for all fields.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "table",
		},
		Sweep: SweepConfig{
			Concurrency: 0, // 0 means use runtime default
		},
	}
}

// Load loads the system configuration from the specified path.
// If the file does not exist, returns DefaultConfig().
func (l *ConfigLoader) Load(path string) (*Config, error) {
	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is user-provided config file, validated to exist above
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}

	return config, nil
}
