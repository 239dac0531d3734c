package lifecycle

// Tag identifies a phase at runtime.
type Tag int

const (
	TagConfigured Tag = iota
	TagReadyForSimulation
	TagSimulated
)

func (t Tag) String() string {
	switch t {
	case TagConfigured:
		return "Configured"
	case TagReadyForSimulation:
		return "ReadyForSimulation"
	case TagSimulated:
		return "Simulated"
	default:
		return "Unknown"
	}
}

// Configured marks a validated column with no derived artifacts.
type Configured struct{}

// ReadyForSimulation marks a column whose equations have been derived.
type ReadyForSimulation struct{}

// Simulated marks a column carrying temperature and pressure profiles.
type Simulated struct{}

func (Configured) Tag() Tag         { return TagConfigured }
func (ReadyForSimulation) Tag() Tag { return TagReadyForSimulation }
func (Simulated) Tag() Tag          { return TagSimulated }

// Phase is the closed set of lifecycle markers.
type Phase interface {
	Configured | ReadyForSimulation | Simulated
	Tag() Tag
}

// WithEquations is the set of phases in which equations are readable.
type WithEquations interface {
	ReadyForSimulation | Simulated
	Tag() Tag
}

func tagOf[P Phase]() Tag {
	var p P
	return p.Tag()
}
