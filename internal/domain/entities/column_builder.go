package entities

// ColumnBuilder accumulates column parameters and turns them into a
// verified Column. The zero value is ready to use.
//
// Setters mutate in place and return the builder for chaining:
//
//	col, err := entities.NewColumnBuilder().
//		SetStages(32).
//		SetDistillateToFeedRatio(0.8).
//		SetRefluxRatio(2.25).
//		AddFeedPosition(16).
//		Build()
type ColumnBuilder struct {
	wip Parameters
}

// NewColumnBuilder creates a builder with all fields zero/empty.
func NewColumnBuilder() *ColumnBuilder {
	return &ColumnBuilder{}
}

// AdaptColumnBuilder starts a builder from an existing column.
// Parameters are copied; equations and profiles are dropped.
func AdaptColumnBuilder(col Column) *ColumnBuilder {
	return &ColumnBuilder{wip: col.params.Clone()}
}

// SetStages sets the stage count.
func (b *ColumnBuilder) SetStages(stages int) *ColumnBuilder {
	b.wip.Stages = stages
	return b
}

// SetDistillateToFeedRatio sets the distillate-to-feed ratio.
func (b *ColumnBuilder) SetDistillateToFeedRatio(ratio float64) *ColumnBuilder {
	b.wip.DistillateToFeedRatio = ratio
	return b
}

// SetRefluxRatio sets the reflux ratio.
func (b *ColumnBuilder) SetRefluxRatio(ratio float64) *ColumnBuilder {
	b.wip.RefluxRatio = ratio
	return b
}

// SetTemperature sets the starting temperature.
func (b *ColumnBuilder) SetTemperature(temperature float64) *ColumnBuilder {
	b.wip.Temperature = temperature
	return b
}

// SetPressure sets the starting pressure.
func (b *ColumnBuilder) SetPressure(pressure float64) *ColumnBuilder {
	b.wip.Pressure = pressure
	return b
}

// AddFeedPosition appends a feed stage index.
func (b *ColumnBuilder) AddFeedPosition(pos int) *ColumnBuilder {
	b.wip.FeedPositions = append(b.wip.FeedPositions, pos)
	return b
}

// ClearFeedPositions removes every feed stage index.
func (b *ColumnBuilder) ClearFeedPositions() *ColumnBuilder {
	b.wip.FeedPositions = b.wip.FeedPositions[:0]
	return b
}

// Parameters returns a copy of the accumulated parameters.
func (b *ColumnBuilder) Parameters() Parameters {
	return b.wip.Clone()
}

// Validate runs the full rule set and returns every violation found,
// or nil when the parameters are valid. Fields are not modified.
func (b *ColumnBuilder) Validate() []string {
	return validateParameters(b.wip)
}

// Build validates and hands the accumulated state over to a new Column.
// On success the builder is reset to empty; reusing it afterwards is a
// caller bug. On failure the builder keeps its fields so the caller can
// adjust and retry.
func (b *ColumnBuilder) Build() (Column, error) {
	if violations := b.Validate(); len(violations) > 0 {
		return Column{}, NewValidationError(violations)
	}

	col := Column{params: b.wip}
	b.wip = Parameters{}
	return col, nil
}

// BuildAndReuse validates and returns a Column holding a deep copy of the
// accumulated state. The builder stays usable.
func (b *ColumnBuilder) BuildAndReuse() (Column, error) {
	if violations := b.Validate(); len(violations) > 0 {
		return Column{}, NewValidationError(violations)
	}

	return Column{params: b.wip.Clone()}, nil
}
