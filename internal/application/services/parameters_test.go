package services

import (
	"math"
	"testing"

	"github.com/reglet-dev/colsim/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetterFor(t *testing.T) {
	tests := []struct {
		parameter string
		value     float64
		check     func(p entities.Parameters) bool
	}{
		{"stages", 12, func(p entities.Parameters) bool { return p.Stages == 12 }},
		{"distillate_to_feed_ratio", 0.3, func(p entities.Parameters) bool { return p.DistillateToFeedRatio == 0.3 }},
		{"reflux_ratio", 4, func(p entities.Parameters) bool { return p.RefluxRatio == 4 }},
		{"temperature", 120, func(p entities.Parameters) bool { return p.Temperature == 120 }},
		{"pressure", 3.5, func(p entities.Parameters) bool { return p.Pressure == 3.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.parameter, func(t *testing.T) {
			setter, err := SetterFor(tt.parameter)
			require.NoError(t, err)

			b := entities.NewColumnBuilder()
			require.NoError(t, setter(b, tt.value))
			assert.True(t, tt.check(b.Parameters()))
		})
	}
}

func TestSetterFor_StagesRejectsFractions(t *testing.T) {
	setter, err := SetterFor("stages")
	require.NoError(t, err)

	for _, v := range []float64{2.5, math.NaN(), math.Inf(1)} {
		b := entities.NewColumnBuilder()
		assert.Error(t, setter(b, v))
		assert.Equal(t, 0, b.Parameters().Stages)
	}
}
