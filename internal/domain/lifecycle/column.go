package lifecycle

import (
	"fmt"

	"github.com/reglet-dev/colsim/internal/domain/entities"
)

// Column is a verified column snapshot tagged with its lifecycle phase.
// The only way to obtain one is Build or BuildAndReuse.
type Column[P Phase] struct {
	snapshot entities.Column
	stages   stages
	spent    bool
}

func newColumn[P Phase](snapshot entities.Column, st stages) *Column[P] {
	return &Column[P]{snapshot: snapshot, stages: st}
}

// Build consumes the builder and wraps the verified column as Configured.
// Validation failures are returned as *entities.ValidationError.
func Build(b *entities.ColumnBuilder, opts ...Option) (*Column[Configured], error) {
	col, err := b.Build()
	if err != nil {
		return nil, err
	}
	return newColumn[Configured](col, newStages(opts...)), nil
}

// BuildAndReuse is Build without consuming the builder.
func BuildAndReuse(b *entities.ColumnBuilder, opts ...Option) (*Column[Configured], error) {
	col, err := b.BuildAndReuse()
	if err != nil {
		return nil, err
	}
	return newColumn[Configured](col, newStages(opts...)), nil
}

// Phase returns the runtime tag of the column's phase.
func (c *Column[P]) Phase() Tag {
	c.mustBeLive()
	return tagOf[P]()
}

// Snapshot returns a copy of the underlying column.
func (c *Column[P]) Snapshot() entities.Column {
	c.mustBeLive()
	return c.snapshot.Clone()
}

// Parameters returns a copy of the configuration fields.
func (c *Column[P]) Parameters() entities.Parameters {
	c.mustBeLive()
	return c.snapshot.Parameters()
}

// Clone returns an independent column in the same phase with the same
// stage functions. The receiver stays usable.
func (c *Column[P]) Clone() *Column[P] {
	c.mustBeLive()
	return newColumn[P](c.snapshot.Clone(), c.stages)
}

// Spent reports whether a transition has consumed the column.
func (c *Column[P]) Spent() bool {
	return c.spent
}

// String renders the phase followed by a debug dump of the snapshot.
func (c *Column[P]) String() string {
	if c.spent {
		return fmt.Sprintf("%s(consumed)", tagOf[P]())
	}
	return fmt.Sprintf("%s %s", tagOf[P](), c.snapshot)
}

func (c *Column[P]) isLifecycleColumn() {}

// take moves the snapshot and stage functions out and marks c spent.
func (c *Column[P]) take() (entities.Column, stages) {
	c.mustBeLive()
	snapshot, st := c.snapshot, c.stages
	c.snapshot = entities.Column{}
	c.stages = stages{}
	c.spent = true
	return snapshot, st
}

func (c *Column[P]) mustBeLive() {
	if c.spent {
		panic(fmt.Errorf("%w: %s", ErrConsumed, tagOf[P]()))
	}
}
