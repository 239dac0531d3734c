package lifecycle

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/reglet-dev/colsim/internal/domain/entities"
)

var (
	// ErrInvalidPhase is the kind of every *PhaseError.
	ErrInvalidPhase = errors.New("invalid phase")

	// ErrConsumed is the panic value (wrapped) raised when a column is used
	// after a transition consumed it.
	ErrConsumed = errors.New("lifecycle: column already consumed by a transition")
)

// Any is a column in an unknown phase. Every *Column[P] implements it.
type Any interface {
	Phase() Tag
	Snapshot() entities.Column
	isLifecycleColumn()
}

var (
	_ Any = (*Column[Configured])(nil)
	_ Any = (*Column[ReadyForSimulation])(nil)
	_ Any = (*Column[Simulated])(nil)
)

// PhaseError reports an operation attempted in a phase that does not allow it.
type PhaseError struct {
	Operation string
	Allowed   []Tag
	Actual    Tag
}

func (e *PhaseError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, t := range e.Allowed {
		allowed[i] = t.String()
	}
	return fmt.Sprintf("%s: %s requires phase %s, column is %s",
		ErrInvalidPhase, e.Operation, strings.Join(allowed, " or "), e.Actual)
}

func (e *PhaseError) Unwrap() error { return ErrInvalidPhase }

// EquationsOf returns the equations of a column whose phase is only known
// at runtime. A Configured column yields a *PhaseError.
func EquationsOf(c Any) ([]string, error) {
	if err := requirePhase(c, "equations", TagReadyForSimulation, TagSimulated); err != nil {
		return nil, err
	}
	return c.Snapshot().Equations(), nil
}

// ProfilesOf returns the temperature and pressure profiles of a column whose
// phase is only known at runtime. Any phase but Simulated yields a *PhaseError.
func ProfilesOf(c Any) (temperature, pressure []float64, err error) {
	if err := requirePhase(c, "profiles", TagSimulated); err != nil {
		return nil, nil, err
	}
	snapshot := c.Snapshot()
	return snapshot.TemperatureProfile(), snapshot.PressureProfile(), nil
}

func requirePhase(c Any, op string, allowed ...Tag) error {
	actual := c.Phase()
	if slices.Contains(allowed, actual) {
		return nil
	}
	return &PhaseError{Operation: op, Allowed: allowed, Actual: actual}
}
