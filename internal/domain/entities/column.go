// Package entities contains domain entities for the colsim domain model.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"fmt"
	"strings"
)

// Parameters holds the configuration fields of a distillation column.
// It is a plain value: a copy handed out by a Column or a ColumnBuilder
// never aliases their internal state.
type Parameters struct {
	Stages                int
	FeedPositions         []int
	DistillateToFeedRatio float64
	RefluxRatio           float64
	Temperature           float64
	Pressure              float64
}

// Clone returns a deep copy of the parameters.
func (p Parameters) Clone() Parameters {
	p.FeedPositions = copyInts(p.FeedPositions)
	return p
}

// Column is a verified, immutable snapshot of a distillation column:
// its configuration parameters plus whatever derived artifacts the
// lifecycle has produced so far.
//
// Column values are created only by ColumnBuilder. Every method that
// "changes" a Column returns a new value and leaves the receiver intact.
type Column struct {
	params Parameters

	equations          []string
	temperatureProfile []float64
	pressureProfile    []float64
}

// Parameters returns a copy of the configuration fields.
func (c Column) Parameters() Parameters {
	return c.params.Clone()
}

// Stages returns the number of column stages.
func (c Column) Stages() int {
	return c.params.Stages
}

// FeedPositions returns a copy of the feed stage indices in insertion order.
func (c Column) FeedPositions() []int {
	return copyInts(c.params.FeedPositions)
}

// DistillateToFeedRatio returns the distillate-to-feed ratio.
func (c Column) DistillateToFeedRatio() float64 {
	return c.params.DistillateToFeedRatio
}

// RefluxRatio returns the reflux ratio.
func (c Column) RefluxRatio() float64 {
	return c.params.RefluxRatio
}

// Temperature returns the starting temperature.
func (c Column) Temperature() float64 {
	return c.params.Temperature
}

// Pressure returns the starting pressure.
func (c Column) Pressure() float64 {
	return c.params.Pressure
}

// Equations returns a copy of the derived equations in derivation order.
func (c Column) Equations() []string {
	return copyStrings(c.equations)
}

// TemperatureProfile returns a copy of the per-stage temperature profile.
func (c Column) TemperatureProfile() []float64 {
	return copyFloats(c.temperatureProfile)
}

// PressureProfile returns a copy of the per-stage pressure profile.
func (c Column) PressureProfile() []float64 {
	return copyFloats(c.pressureProfile)
}

// WithEquations returns a new Column whose equation list is the receiver's
// followed by eqs.
func (c Column) WithEquations(eqs ...string) Column {
	next := c.clone()
	next.equations = append(next.equations, eqs...)
	return next
}

// WithProfiles returns a new Column carrying the given profiles.
func (c Column) WithProfiles(temperature, pressure []float64) Column {
	next := c.clone()
	next.temperatureProfile = copyFloats(temperature)
	next.pressureProfile = copyFloats(pressure)
	return next
}

// WithoutArtifacts returns a new Column with the same parameters and no
// equations or profiles.
func (c Column) WithoutArtifacts() Column {
	return Column{params: c.params.Clone()}
}

// Clone returns a deep copy of the column.
func (c Column) Clone() Column {
	return c.clone()
}

// String renders a debug dump of every field.
func (c Column) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Column{Stages: %d, FeedPositions: %v, DistillateToFeedRatio: %g, RefluxRatio: %g, ",
		c.params.Stages, c.params.FeedPositions, c.params.DistillateToFeedRatio, c.params.RefluxRatio)
	fmt.Fprintf(&b, "Temperature: %g, Pressure: %g, ", c.params.Temperature, c.params.Pressure)
	fmt.Fprintf(&b, "Equations: %q, TemperatureProfile: %v, PressureProfile: %v}",
		c.equations, c.temperatureProfile, c.pressureProfile)
	return b.String()
}

func (c Column) clone() Column {
	return Column{
		params:             c.params.Clone(),
		equations:          copyStrings(c.equations),
		temperatureProfile: copyFloats(c.temperatureProfile),
		pressureProfile:    copyFloats(c.pressureProfile),
	}
}

func copyInts(src []int) []int {
	if src == nil {
		return nil
	}
	dst := make([]int, len(src))
	copy(dst, src)
	return dst
}

func copyFloats(src []float64) []float64 {
	if src == nil {
		return nil
	}
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}

func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
