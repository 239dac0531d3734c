// Package lifecycle wraps a verified entities.Column in a phase tag that
// decides, at compile time, which operations are available:
//
//	Configured          -> DeriveEquations -> ReadyForSimulation
//	ReadyForSimulation  -> Simulate        -> Simulated
//	any phase           -> Reconfigure     -> Configured
//
// Phase-specific operations are package functions constrained on the
// phase parameter, so calling Simulate on a Column[Configured] or reading
// profiles from a Column[ReadyForSimulation] does not compile.
//
// Transitions consume their input: the source wrapper is marked spent and
// any further use of it panics with ErrConsumed. Use Clone to keep a copy.
//
// Code that only knows the phase at runtime (formatters, stores) works
// through the Any interface and the EquationsOf/ProfilesOf helpers, which
// return a *PhaseError instead of empty data on a mismatch.
//
// A Column is not safe for concurrent use; share it behind a caller-owned
// lock if needed.
package lifecycle
