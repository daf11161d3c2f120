// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended. An episode can end because
// the agent reached an absorbing state of the environment, or because
// some external limit (such as a step limit) cut the episode off.
type EndType int

const (
	TerminalStateReached EndType = iota
	Timeout
)

func (e EndType) String() string {
	if e == Timeout {
		return "Timeout"
	}
	return "TerminalStateReached"
}

// Info holds auxiliary information about the transition that produced
// a TimeStep
type Info struct {
	// Probability is the probability of the sampled outcome under the
	// environment dynamics. The first TimeStep of an episode has
	// probability equal to the probability of the sampled start state.
	Probability float64
}

// TimeStep packages together a single timestep in an environment.
// Observation is the index of the discrete state reached.
type TimeStep struct {
	StepType
	Reward      float64
	Discount    float64
	Observation int
	Number      int
	Info        Info

	endType EndType
}

// New returns a new TimeStep
func New(t StepType, r, d float64, o, n int, info Info) TimeStep {
	return TimeStep{
		StepType:    t,
		Reward:      r,
		Discount:    d,
		Observation: o,
		Number:      n,
		Info:        info,
	}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd records how the episode containing the TimeStep ended
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
}

// EndType returns how the episode ended. The returned value is only
// meaningful if t is the last TimeStep in the episode.
func (t *TimeStep) EndType() EndType {
	return t.endType
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"State: %v  |  Step Number:  %v  |  Probability: %.2f"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Discount, t.Observation,
		t.Number, t.Info.Probability)
}
