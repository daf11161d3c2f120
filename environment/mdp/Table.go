package mdp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is the tolerance used when checking that
// probabilities sum to 1
const DefaultTolerance = 1e-9

// Table is a transition table indexed by [state][action]
type Table [][][]Outcome

// NewTable returns an empty table with numStates states and numActions
// actions
func NewTable(numStates, numActions int) Table {
	t := make(Table, numStates)
	for s := range t {
		t[s] = make([][]Outcome, numActions)
	}
	return t
}

// NumStates returns the number of states in the table
func (t Table) NumStates() int {
	return len(t)
}

// NumActions returns the number of actions in the table
func (t Table) NumActions() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// P returns the outcomes of taking action in state
func (t Table) P(state, action int) ([]Outcome, error) {
	if state < 0 || state >= t.NumStates() {
		return nil, fmt.Errorf("p: %w: %d", ErrInvalidState, state)
	}
	if action < 0 || action >= t.NumActions() {
		return nil, fmt.Errorf("p: %w: %d", ErrInvalidAction, action)
	}
	return t[state][action], nil
}

// Validate checks that every state has the same number of actions,
// that every outcome names a valid state, and that the outcome
// probabilities of every (state, action) pair sum to 1 within tol
func (t Table) Validate(tol float64) error {
	if t.NumStates() == 0 || t.NumActions() == 0 {
		return fmt.Errorf("validate: %w: empty table",
			ErrInvalidDistribution)
	}

	actions := t.NumActions()
	for s := range t {
		if len(t[s]) != actions {
			return fmt.Errorf("validate: state %d has %d actions, want %d",
				s, len(t[s]), actions)
		}
		for a := range t[s] {
			if err := checkOutcomes(t[s][a], t.NumStates(), tol); err != nil {
				return fmt.Errorf("validate: state %d action %d: %w", s, a,
					err)
			}
		}
	}
	return nil
}

func checkOutcomes(outcomes []Outcome, numStates int, tol float64) error {
	probs := make([]float64, len(outcomes))
	for i, o := range outcomes {
		if o.Next < 0 || o.Next >= numStates {
			return fmt.Errorf("%w: %d", ErrInvalidState, o.Next)
		}
		probs[i] = o.Probability
	}
	return checkDistribution(probs, tol)
}

// checkDistribution returns an error if weights is not a probability
// distribution within tolerance tol
func checkDistribution(weights []float64, tol float64) error {
	if len(weights) == 0 {
		return fmt.Errorf("%w: no weights", ErrInvalidDistribution)
	}
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: weight %v", ErrInvalidDistribution, w)
		}
	}
	if sum := floats.Sum(weights); !scalar.EqualWithinAbs(sum, 1.0, tol) {
		return fmt.Errorf("%w: weights sum to %v", ErrInvalidDistribution,
			sum)
	}
	return nil
}
