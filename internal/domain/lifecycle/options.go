package lifecycle

import "github.com/reglet-dev/colsim/internal/domain/services"

// stages bundles the strategies a column carries through its lifecycle.
type stages struct {
	derive   services.EquationDeriver
	simulate services.ProfileSimulator
}

// Option customizes the stage functions bound to a column.
type Option func(*stages)

// WithEquationDeriver replaces the equation derivation strategy.
// A nil deriver is ignored.
func WithEquationDeriver(fn services.EquationDeriver) Option {
	return func(s *stages) {
		if fn != nil {
			s.derive = fn
		}
	}
}

// WithProfileSimulator replaces the profile simulation strategy.
// A nil simulator is ignored.
func WithProfileSimulator(fn services.ProfileSimulator) Option {
	return func(s *stages) {
		if fn != nil {
			s.simulate = fn
		}
	}
}

func newStages(opts ...Option) stages {
	s := stages{
		derive:   services.DeriveBalanceEquations,
		simulate: services.LinearProfile,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
