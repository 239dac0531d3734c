package config

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/colsim/internal/domain/entities"
	"github.com/reglet-dev/colsim/internal/domain/lifecycle"
	"github.com/reglet-dev/colsim/internal/domain/services"
)

// CurrentDefinitionVersion is written by colsim init.
const CurrentDefinitionVersion = "1.0.0"

// ColumnDefinition is the on-disk description of a column.
//
// The loader only checks shape and types; range rules belong to
// entities.ColumnBuilder so that every violation is reported together.
type ColumnDefinition struct {
	Version     string           `yaml:"version"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Column      ColumnParameters `yaml:"column"`
	Model       *ProfileModel    `yaml:"model,omitempty"`
}

// ColumnParameters mirrors entities.Parameters with YAML names.
type ColumnParameters struct {
	Stages                int     `yaml:"stages"`
	FeedPositions         []int   `yaml:"feed_positions"`
	DistillateToFeedRatio float64 `yaml:"distillate_to_feed_ratio"`
	RefluxRatio           float64 `yaml:"reflux_ratio"`
	Temperature           float64 `yaml:"temperature"`
	Pressure              float64 `yaml:"pressure"`
}

// ProfileModel selects expression-based temperature and pressure profiles
// instead of the built-in linear model.
type ProfileModel struct {
	Temperature string `yaml:"temperature"`
	Pressure    string `yaml:"pressure"`
}

// Builder returns a ColumnBuilder populated from the definition.
func (d *ColumnDefinition) Builder() *entities.ColumnBuilder {
	b := entities.NewColumnBuilder().
		SetStages(d.Column.Stages).
		SetDistillateToFeedRatio(d.Column.DistillateToFeedRatio).
		SetRefluxRatio(d.Column.RefluxRatio).
		SetTemperature(d.Column.Temperature).
		SetPressure(d.Column.Pressure)
	for _, pos := range d.Column.FeedPositions {
		b.AddFeedPosition(pos)
	}
	return b
}

// Options returns the lifecycle options implied by the definition.
// A fallback model, if non-nil, is used when the definition has none.
func (d *ColumnDefinition) Options(fallback *ProfileModel) ([]lifecycle.Option, error) {
	model := d.Model
	if model == nil {
		model = fallback
	}
	if model == nil {
		return nil, nil
	}

	sim, err := services.NewExpressionProfile(model.Temperature, model.Pressure)
	if err != nil {
		return nil, fmt.Errorf("invalid profile model: %w", err)
	}
	return []lifecycle.Option{lifecycle.WithProfileSimulator(sim)}, nil
}

// DefinitionFromParameters creates a definition for the given parameters.
func DefinitionFromParameters(name string, p entities.Parameters) *ColumnDefinition {
	return &ColumnDefinition{
		Version: CurrentDefinitionVersion,
		Name:    name,
		Column: ColumnParameters{
			Stages:                p.Stages,
			FeedPositions:         append([]int(nil), p.FeedPositions...),
			DistillateToFeedRatio: p.DistillateToFeedRatio,
			RefluxRatio:           p.RefluxRatio,
			Temperature:           p.Temperature,
			Pressure:              p.Pressure,
		},
	}
}

// WriteDefinition encodes a definition as YAML.
func WriteDefinition(w io.Writer, def *ColumnDefinition) error {
	encoder := yaml.NewEncoder(w, yaml.Indent(2))
	if err := encoder.Encode(def); err != nil {
		return fmt.Errorf("failed to encode definition: %w", err)
	}
	return encoder.Close()
}
