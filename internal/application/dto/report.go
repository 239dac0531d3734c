// Package dto contains data transfer objects handed to output formatters.
package dto

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/reglet-dev/colsim/internal/domain/entities"
	"github.com/reglet-dev/colsim/internal/domain/execution"
	"github.com/reglet-dev/colsim/internal/domain/lifecycle"
)

// ParametersDTO is the serializable form of entities.Parameters.
type ParametersDTO struct {
	Stages                int     `json:"stages" yaml:"stages"`
	FeedPositions         []int   `json:"feed_positions" yaml:"feed_positions"`
	DistillateToFeedRatio float64 `json:"distillate_to_feed_ratio" yaml:"distillate_to_feed_ratio"`
	RefluxRatio           float64 `json:"reflux_ratio" yaml:"reflux_ratio"`
	Temperature           float64 `json:"temperature" yaml:"temperature"`
	Pressure              float64 `json:"pressure" yaml:"pressure"`
}

// StageDTO is one row of the simulated profile.
type StageDTO struct {
	Index       int     `json:"index" yaml:"index"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Pressure    float64 `json:"pressure" yaml:"pressure"`
}

// MarshalJSON writes NaN and ±Inf as null; expression profiles may produce them.
func (s StageDTO) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index       int      `json:"index"`
		Temperature *float64 `json:"temperature"`
		Pressure    *float64 `json:"pressure"`
	}{
		Index:       s.Index,
		Temperature: finite(s.Temperature),
		Pressure:    finite(s.Pressure),
	})
}

// finite returns nil for values JSON cannot represent.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// SimulationReport flattens a column (in any phase) for rendering.
// Equations and Stages are present only when the phase has them.
type SimulationReport struct {
	StartTime  time.Time     `json:"start_time,omitzero" yaml:"start_time,omitempty"`
	RunID      string        `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Name       string        `json:"name" yaml:"name"`
	Phase      string        `json:"phase" yaml:"phase"`
	Parameters ParametersDTO `json:"parameters" yaml:"parameters"`
	Equations  []string      `json:"equations,omitempty" yaml:"equations,omitempty"`
	Stages     []StageDTO    `json:"stages,omitempty" yaml:"stages,omitempty"`
	DurationMS int64         `json:"duration_ms" yaml:"duration_ms"`
}

// NewSimulationReport builds a report from a column whose phase is only
// known at runtime.
func NewSimulationReport(name string, col lifecycle.Any) (*SimulationReport, error) {
	report := &SimulationReport{
		Name:       name,
		Phase:      col.Phase().String(),
		Parameters: NewParametersDTO(col.Snapshot().Parameters()),
	}

	eqs, err := lifecycle.EquationsOf(col)
	switch {
	case err == nil:
		report.Equations = eqs
	case !errors.Is(err, lifecycle.ErrInvalidPhase):
		return nil, err
	}

	temps, pres, err := lifecycle.ProfilesOf(col)
	switch {
	case err == nil:
		report.Stages = make([]StageDTO, len(temps))
		for i := range temps {
			report.Stages[i] = StageDTO{Index: i, Temperature: temps[i], Pressure: pres[i]}
		}
	case !errors.Is(err, lifecycle.ErrInvalidPhase):
		return nil, err
	}

	return report, nil
}

// NewRunReport builds a report for a stored simulation run.
func NewRunReport(run *execution.SimulationRun) (*SimulationReport, error) {
	report, err := NewSimulationReport(run.Name, run.Column)
	if err != nil {
		return nil, err
	}
	report.RunID = run.ID.String()
	report.StartTime = run.StartTime
	report.DurationMS = run.Duration.Milliseconds()
	return report, nil
}

// NewParametersDTO converts domain parameters.
func NewParametersDTO(p entities.Parameters) ParametersDTO {
	return ParametersDTO{
		Stages:                p.Stages,
		FeedPositions:         p.FeedPositions,
		DistillateToFeedRatio: p.DistillateToFeedRatio,
		RefluxRatio:           p.RefluxRatio,
		Temperature:           p.Temperature,
		Pressure:              p.Pressure,
	}
}

// SweepVariantDTO summarizes one sweep variant.
type SweepVariantDTO struct {
	RunID             string   `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Violations        []string `json:"violations,omitempty" yaml:"violations,omitempty"`
	Error             string   `json:"error,omitempty" yaml:"error,omitempty"`
	Value             float64  `json:"value" yaml:"value"`
	Stages            int      `json:"stages,omitempty" yaml:"stages,omitempty"`
	BottomTemperature float64  `json:"bottom_temperature" yaml:"bottom_temperature"`
	BottomPressure    float64  `json:"bottom_pressure" yaml:"bottom_pressure"`
	Valid             bool     `json:"valid" yaml:"valid"`
}

// MarshalJSON keeps a zero bottom stage for valid variants and writes
// null for invalid ones or non-finite values.
func (v SweepVariantDTO) MarshalJSON() ([]byte, error) {
	type plain SweepVariantDTO
	out := struct {
		plain
		BottomTemperature *float64 `json:"bottom_temperature"`
		BottomPressure    *float64 `json:"bottom_pressure"`
	}{plain: plain(v)}
	if v.Valid {
		out.BottomTemperature = finite(v.BottomTemperature)
		out.BottomPressure = finite(v.BottomPressure)
	}
	return json.Marshal(out)
}

// SweepReport summarizes a parameter sweep.
type SweepReport struct {
	Name      string            `json:"name" yaml:"name"`
	Parameter string            `json:"parameter" yaml:"parameter"`
	Variants  []SweepVariantDTO `json:"variants" yaml:"variants"`
}

// NewSweepReport builds a report from sweep results, preserving their order.
func NewSweepReport(name, parameter string, results []execution.SweepResult) *SweepReport {
	report := &SweepReport{
		Name:      name,
		Parameter: parameter,
		Variants:  make([]SweepVariantDTO, 0, len(results)),
	}

	for _, res := range results {
		v := SweepVariantDTO{Value: res.Value}
		if !res.Succeeded() {
			var verr *entities.ValidationError
			if errors.As(res.Err, &verr) {
				v.Violations = verr.Violations
			} else if res.Err != nil {
				v.Error = res.Err.Error()
			}
			report.Variants = append(report.Variants, v)
			continue
		}

		v.Valid = true
		v.RunID = res.Run.ID.String()
		temps := lifecycle.TemperatureProfile(res.Run.Column)
		pres := lifecycle.PressureProfile(res.Run.Column)
		v.Stages = len(temps)
		if n := len(temps); n > 0 {
			v.BottomTemperature = temps[n-1]
			v.BottomPressure = pres[n-1]
		}
		report.Variants = append(report.Variants, v)
	}

	return report
}

// Summary counts valid and invalid variants.
func (r *SweepReport) Summary() (valid, invalid int) {
	for _, v := range r.Variants {
		if v.Valid {
			valid++
		} else {
			invalid++
		}
	}
	return valid, invalid
}
