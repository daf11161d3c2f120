package environment

import ts "github.com/samuelfneumann/gridworlds/timestep"

// StepLimit implements the Ender interface to end episodes at specific
// timestep limits
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) *StepLimit {
	return &StepLimit{episodeSteps}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended End() will modify the timestep so that its StepType
// field is timestep.Last and its end type is timestep.Timeout.
func (s *StepLimit) End(t *ts.TimeStep) bool {
	if t.Number >= s.episodeSteps {
		if !t.Last() {
			t.StepType = ts.Last
			t.SetEnd(ts.Timeout)
		}
		return true
	}
	return false
}

// Steps returns the step limit
func (s *StepLimit) Steps() int {
	return s.episodeSteps
}
