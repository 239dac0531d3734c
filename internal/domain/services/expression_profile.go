package services

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/colsim/internal/domain/entities"
)

// ProfileEnv defines the variables available to profile expressions.
type ProfileEnv struct {
	Stage                 int     `expr:"stage"`
	Stages                int     `expr:"stages"`
	BaseTemperature       float64 `expr:"base_temperature"`
	BasePressure          float64 `expr:"base_pressure"`
	RefluxRatio           float64 `expr:"reflux_ratio"`
	DistillateToFeedRatio float64 `expr:"distillate_to_feed_ratio"`
}

// Expressions matching LinearProfile.
const (
	LinearTemperatureExpr = "base_temperature - stage * 0.5"
	LinearPressureExpr    = "base_pressure - stage * 0.01"
)

// NewExpressionProfile compiles a temperature and a pressure expression
// into a ProfileSimulator. Both expressions are evaluated once per stage.
//
// Compilation errors are returned here. A stage whose evaluation fails
// gets NaN, so the resulting simulator never fails.
func NewExpressionProfile(temperatureExpr, pressureExpr string) (ProfileSimulator, error) {
	tempProgram, err := compileProfileExpr(temperatureExpr)
	if err != nil {
		return nil, fmt.Errorf("temperature expression: %w", err)
	}
	presProgram, err := compileProfileExpr(pressureExpr)
	if err != nil {
		return nil, fmt.Errorf("pressure expression: %w", err)
	}

	return func(p entities.Parameters) (temperature, pressure []float64) {
		temperature = make([]float64, p.Stages)
		pressure = make([]float64, p.Stages)

		env := ProfileEnv{
			Stages:                p.Stages,
			BaseTemperature:       p.Temperature,
			BasePressure:          p.Pressure,
			RefluxRatio:           p.RefluxRatio,
			DistillateToFeedRatio: p.DistillateToFeedRatio,
		}
		for s := range p.Stages {
			env.Stage = s
			temperature[s] = evalProfileExpr(tempProgram, env)
			pressure[s] = evalProfileExpr(presProgram, env)
		}
		return temperature, pressure
	}, nil
}

func compileProfileExpr(src string) (*vm.Program, error) {
	if src == "" {
		return nil, fmt.Errorf("expression is empty")
	}
	return expr.Compile(src, expr.Env(ProfileEnv{}), expr.AsFloat64())
}

func evalProfileExpr(program *vm.Program, env ProfileEnv) float64 {
	output, err := expr.Run(program, env)
	if err != nil {
		return math.NaN()
	}

	switch v := output.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return math.NaN()
	}
}
