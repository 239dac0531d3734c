package services

import (
	"fmt"
	"math"
	"slices"

	apperrors "github.com/reglet-dev/colsim/internal/application/errors"
	"github.com/reglet-dev/colsim/internal/domain/entities"
)

// ParameterSetter applies one sweep value to a builder.
type ParameterSetter func(b *entities.ColumnBuilder, value float64) error

var parameterSetters = map[string]ParameterSetter{
	"stages": func(b *entities.ColumnBuilder, value float64) error {
		if value != math.Trunc(value) || math.IsInf(value, 0) {
			return apperrors.NewParameterError("stages", fmt.Sprintf("value %g is not an integer", value))
		}
		b.SetStages(int(value))
		return nil
	},
	"distillate_to_feed_ratio": func(b *entities.ColumnBuilder, value float64) error {
		b.SetDistillateToFeedRatio(value)
		return nil
	},
	"reflux_ratio": func(b *entities.ColumnBuilder, value float64) error {
		b.SetRefluxRatio(value)
		return nil
	},
	"temperature": func(b *entities.ColumnBuilder, value float64) error {
		b.SetTemperature(value)
		return nil
	},
	"pressure": func(b *entities.ColumnBuilder, value float64) error {
		b.SetPressure(value)
		return nil
	},
}

// SweepParameters lists the parameter names a sweep can vary, sorted.
func SweepParameters() []string {
	names := make([]string, 0, len(parameterSetters))
	for name := range parameterSetters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SetterFor returns the setter for a sweep parameter name.
func SetterFor(parameter string) (ParameterSetter, error) {
	setter, ok := parameterSetters[parameter]
	if !ok {
		return nil, apperrors.NewParameterError(parameter, "unknown parameter", SweepParameters()...)
	}
	return setter, nil
}
