package lifecycle

import "github.com/reglet-dev/colsim/internal/domain/entities"

// DeriveEquations runs the equation stage function, appends its output to
// the column's equations and moves the column to ReadyForSimulation.
func DeriveEquations(c *Column[Configured]) *Column[ReadyForSimulation] {
	snapshot, st := c.take()
	eqs := st.derive(snapshot.Parameters())
	return newColumn[ReadyForSimulation](snapshot.WithEquations(eqs...), st)
}

// Simulate runs the profile stage function and moves the column to Simulated.
func Simulate(c *Column[ReadyForSimulation]) *Column[Simulated] {
	snapshot, st := c.take()
	temperature, pressure := st.simulate(snapshot.Parameters())
	return newColumn[Simulated](snapshot.WithProfiles(temperature, pressure), st)
}

// Reconfigure consumes c from any phase, lets mutate adjust a builder seeded
// with c's parameters, and rebuilds. The result is Configured with no
// equations or profiles.
//
// On validation failure the *entities.ValidationError is returned and c
// stays consumed; there is no rollback.
func Reconfigure[P Phase](c *Column[P], mutate func(b *entities.ColumnBuilder)) (*Column[Configured], error) {
	snapshot, st := c.take()

	b := entities.AdaptColumnBuilder(snapshot)
	if mutate != nil {
		mutate(b)
	}

	col, err := b.Build()
	if err != nil {
		return nil, err
	}
	return newColumn[Configured](col.WithoutArtifacts(), st), nil
}

// Equations returns the derived equations. It only accepts phases in
// which equations exist.
func Equations[P WithEquations](c *Column[P]) []string {
	c.mustBeLive()
	return c.snapshot.Equations()
}

// TemperatureProfile returns the per-stage temperatures of a simulated column.
func TemperatureProfile(c *Column[Simulated]) []float64 {
	c.mustBeLive()
	return c.snapshot.TemperatureProfile()
}

// PressureProfile returns the per-stage pressures of a simulated column.
func PressureProfile(c *Column[Simulated]) []float64 {
	c.mustBeLive()
	return c.snapshot.PressureProfile()
}
