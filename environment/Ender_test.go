package environment

import (
	"testing"

	ts "github.com/samuelfneumann/gridworlds/timestep"
)

func TestStepLimit(t *testing.T) {
	limit := NewStepLimit(3)

	step := ts.New(ts.Mid, -1.0, 1.0, 4, 2, ts.Info{Probability: 1.0})
	if limit.End(&step) {
		t.Fatal("episode ended before step limit")
	}

	step.Number = 3
	if !limit.End(&step) {
		t.Fatal("episode did not end at step limit")
	}
	if !step.Last() || step.EndType() != ts.Timeout {
		t.Errorf("want last step with timeout, have %v (%v)", step,
			step.EndType())
	}

	// A step that already reached a terminal state keeps its end type
	last := ts.New(ts.Last, 1.0, 1.0, 4, 3, ts.Info{Probability: 1.0})
	last.SetEnd(ts.TerminalStateReached)
	limit.End(&last)
	if last.EndType() != ts.TerminalStateReached {
		t.Errorf("want end type %v, have %v", ts.TerminalStateReached,
			last.EndType())
	}
}

func TestFunctionEnder(t *testing.T) {
	ender := NewFunctionEnder(func(s int) bool { return s == 5 },
		ts.TerminalStateReached)

	step := ts.New(ts.Mid, 0.0, 1.0, 4, 1, ts.Info{})
	if ender.End(&step) {
		t.Error("episode ended in state 4")
	}

	step.Observation = 5
	if !ender.End(&step) || !step.Last() {
		t.Error("episode did not end in state 5")
	}
}

func TestSpec(t *testing.T) {
	s := NewDiscreteSpec(Action, 4)
	for v, want := range map[int]bool{-1: false, 0: true, 3: true, 4: false} {
		if got := s.Contains(v); got != want {
			t.Errorf("contains(%d): want %v, have %v", v, want, got)
		}
	}
	if s.String() != "Action Spec | Discrete(4)" {
		t.Errorf("unexpected string %q", s.String())
	}

	defer func() {
		if recover() == nil {
			t.Error("want panic for empty discrete spec")
		}
	}()
	NewDiscreteSpec(Observation, 0)
}
