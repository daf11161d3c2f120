// Package environment outlines the interfaces and structs needed to
// implement concrete discrete environments
package environment

import (
	ts "github.com/samuelfneumann/gridworlds/timestep"
)

// Ender determines when episodes should be ended. Enders are applied
// to the TimeStep produced by an environment after each step.
type Ender interface {
	// End determines whether the episode should end. If so, End
	// modifies the TimeStep so that its StepType is timestep.Last and
	// returns true.
	End(*ts.TimeStep) bool
}

// Environment implements a simulated environment with a fixed, finite
// number of states and actions
type Environment interface {
	Reset() (ts.TimeStep, error) // Resets between episodes
	Step(action int) (ts.TimeStep, bool, error)
	CurrentTimeStep() ts.TimeStep
	Seed(seed uint64)

	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
