// Package services contains domain services for the colsim domain model.
package services

import (
	"fmt"

	"github.com/reglet-dev/colsim/internal/domain/entities"
)

// Linear model coefficients used by LinearProfile.
const (
	TemperatureDropPerStage = 0.5
	PressureDropPerStage    = 0.01
)

// EquationDeriver derives the system of equations for a column.
// Implementations must be pure and deterministic.
type EquationDeriver func(p entities.Parameters) []string

// ProfileSimulator computes per-stage temperature and pressure profiles.
// Implementations must be pure, deterministic and return exactly
// p.Stages entries per profile, ordered by stage index.
type ProfileSimulator func(p entities.Parameters) (temperature, pressure []float64)

// LinearProfile is the placeholder model:
//
//	T[s] = T0 - 0.5*s
//	P[s] = P0 - 0.01*s
//
// for s in 0..Stages.
func LinearProfile(p entities.Parameters) (temperature, pressure []float64) {
	temperature = make([]float64, p.Stages)
	pressure = make([]float64, p.Stages)
	for s := range p.Stages {
		temperature[s] = p.Temperature - float64(s)*TemperatureDropPerStage
		pressure[s] = p.Pressure - float64(s)*PressureDropPerStage
	}
	return temperature, pressure
}

// DeriveBalanceEquations derives a symbolic balance system for the column:
// the overall material balance, the distillate and reflux relations, one
// component balance per feed stage and one energy balance per stage.
func DeriveBalanceEquations(p entities.Parameters) []string {
	eqs := make([]string, 0, 3+len(p.FeedPositions)+p.Stages)
	eqs = append(eqs,
		"F = D + B",
		fmt.Sprintf("D = %g * F", p.DistillateToFeedRatio),
		fmt.Sprintf("L = %g * D", p.RefluxRatio),
	)

	for _, pos := range p.FeedPositions {
		eqs = append(eqs, fmt.Sprintf("F%[1]d + L%[2]d + V%[3]d = L%[1]d + V%[1]d", pos, pos+1, pos-1))
	}

	for s := range p.Stages {
		eqs = append(eqs, fmt.Sprintf("Hin%[1]d = Hout%[1]d", s))
	}
	return eqs
}
