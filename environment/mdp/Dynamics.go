package mdp

import "fmt"

// Outcome is a single possible result of taking an action in a state
type Outcome struct {
	Probability float64
	Next        int
	Done        bool
}

// Dynamics outlines the transition and reward lookups of a finite-state
// MDP with a fixed number of states and actions.
//
// P returns the ordered outcomes of taking action in state. The order
// of outcomes matters only for sampling: the same entropy always
// selects the same index. Callers must not modify the returned slice.
//
// R returns the reward for arriving in state. The action is accepted
// so that rewards may depend on it, but the reward may ignore it.
type Dynamics interface {
	NumStates() int
	NumActions() int
	P(state, action int) ([]Outcome, error)
	R(state, action int) (float64, error)
}

// Unimplemented is Dynamics with a state and action count but no
// transition or reward lookups. Both lookups return ErrNotImplemented.
type Unimplemented struct {
	States  int
	Actions int
}

// NumStates returns the number of states
func (u Unimplemented) NumStates() int { return u.States }

// NumActions returns the number of actions
func (u Unimplemented) NumActions() int { return u.Actions }

// P always returns ErrNotImplemented
func (u Unimplemented) P(state, action int) ([]Outcome, error) {
	return nil, fmt.Errorf("p: %w", ErrNotImplemented)
}

// R always returns ErrNotImplemented
func (u Unimplemented) R(state, action int) (float64, error) {
	return 0, fmt.Errorf("r: %w", ErrNotImplemented)
}

// RewardFunc returns the reward for arriving in state after taking
// action
type RewardFunc func(state, action int) (float64, error)

// Tabular is Dynamics backed by a precomputed transition Table and a
// reward function
type Tabular struct {
	table   Table
	rewards RewardFunc
}

// NewTabular returns Dynamics which look up transitions in t and
// rewards with r. The table is validated before it is accepted.
func NewTabular(t Table, r RewardFunc) (*Tabular, error) {
	if r == nil {
		return nil, fmt.Errorf("newTabular: %w: nil reward function",
			ErrNotImplemented)
	}
	if err := t.Validate(DefaultTolerance); err != nil {
		return nil, fmt.Errorf("newTabular: %w", err)
	}
	return &Tabular{t, r}, nil
}

// NumStates returns the number of states
func (t *Tabular) NumStates() int { return t.table.NumStates() }

// NumActions returns the number of actions
func (t *Tabular) NumActions() int { return t.table.NumActions() }

// P returns the outcomes of taking action in state
func (t *Tabular) P(state, action int) ([]Outcome, error) {
	return t.table.P(state, action)
}

// R returns the reward for arriving in state
func (t *Tabular) R(state, action int) (float64, error) {
	if state < 0 || state >= t.NumStates() {
		return 0, fmt.Errorf("r: %w: %d", ErrInvalidState, state)
	}
	return t.rewards(state, action)
}

// Table returns the transition table
func (t *Tabular) Table() Table {
	return t.table
}
