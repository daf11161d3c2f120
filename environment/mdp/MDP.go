// Package mdp implements finite-state Markov Decision Processes with a
// fixed number of states and actions.
//
// An MDP drives episodes against some Dynamics, which supply the
// transition outcomes and rewards of the process. Each MDP owns a
// seeded Sampler which it uses both to sample starting states from its
// initial-state distribution and to sample transition outcomes, so
// that episodes are reproducible given a fixed seed.
//
// An MDP is not safe for concurrent use. Concurrent simulations should
// each construct their own MDP.
package mdp

import (
	"fmt"
)

// NoAction is the last action of an MDP that has not been stepped
// since it was last reset
const NoAction = -1

// Transition is the result of stepping an MDP
type Transition struct {
	State       int
	Reward      float64
	Done        bool
	Probability float64
}

// MDP is a finite-state Markov Decision Process
type MDP struct {
	dynamics Dynamics
	isd      []float64
	sampler  *Sampler

	state      int
	lastAction int
	ret        float64
}

// New returns a new MDP with the given dynamics and initial-state
// distribution isd, using seed to seed the random sampling of starting
// states and transitions. The returned MDP has already been reset.
func New(d Dynamics, isd []float64, seed uint64) (*MDP, error) {
	if d == nil {
		return nil, fmt.Errorf("new: %w: nil dynamics", ErrNotImplemented)
	}
	if len(isd) == 0 {
		return nil, fmt.Errorf("new: %w", ErrNoISD)
	}
	if len(isd) != d.NumStates() {
		return nil, fmt.Errorf("new: %w: initial-state distribution has "+
			"%d entries for %d states", ErrInvalidDistribution, len(isd),
			d.NumStates())
	}
	if err := checkDistribution(isd, DefaultTolerance); err != nil {
		return nil, fmt.Errorf("new: initial-state distribution: %w", err)
	}

	dist := make([]float64, len(isd))
	copy(dist, isd)

	m := &MDP{
		dynamics:   d,
		isd:        dist,
		sampler:    NewSampler(seed),
		lastAction: NoAction,
	}

	if _, err := m.Reset(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	return m, nil
}

// Seed re-seeds the random sampling of the MDP. The current state is
// not changed, Reset must be called to start an episode with the new
// seed.
func (m *MDP) Seed(seed uint64) {
	m.sampler.Seed(seed)
}

// Reset samples a starting state from the initial-state distribution,
// clears the last action and the accumulated return, and returns the
// sampled state
func (m *MDP) Reset() (int, error) {
	if len(m.isd) == 0 {
		return 0, fmt.Errorf("reset: %w", ErrNoISD)
	}

	state, err := m.sampler.Sample(m.isd)
	if err != nil {
		return 0, fmt.Errorf("reset: %w", err)
	}

	m.state = state
	m.lastAction = NoAction
	m.ret = 0.0
	return state, nil
}

// Step takes action in the current state. The next state is sampled
// from the outcomes of the action, and the reward is that of the state
// arrived in. The rewards of all outcomes are looked up before the next
// state is sampled, so if an error is returned the MDP, including its
// random stream, is left unchanged.
//
// Stepping an MDP whose last Transition was Done is allowed, but the
// result depends on the dynamics; typically the MDP remains in the same
// absorbing state. Reset should be called to start a new episode.
func (m *MDP) Step(action int) (Transition, error) {
	if action < 0 || action >= m.dynamics.NumActions() {
		return Transition{}, fmt.Errorf("step: %w: %d not in [0, %d)",
			ErrInvalidAction, action, m.dynamics.NumActions())
	}

	outcomes, err := m.dynamics.P(m.state, action)
	if err != nil {
		return Transition{}, fmt.Errorf("step: %w", err)
	}

	probs := make([]float64, len(outcomes))
	rewards := make([]float64, len(outcomes))
	for i, o := range outcomes {
		probs[i] = o.Probability
		if rewards[i], err = m.dynamics.R(o.Next, action); err != nil {
			return Transition{}, fmt.Errorf("step: %w", err)
		}
	}

	index, err := m.sampler.Sample(probs)
	if err != nil {
		return Transition{}, fmt.Errorf("step: state %d action %d: %w",
			m.state, action, err)
	}
	outcome, reward := outcomes[index], rewards[index]

	m.state = outcome.Next
	m.lastAction = action
	m.ret += reward

	return Transition{
		State:       outcome.Next,
		Reward:      reward,
		Done:        outcome.Done,
		Probability: outcome.Probability,
	}, nil
}

// State returns the current state
func (m *MDP) State() int {
	return m.state
}

// LastAction returns the last action taken, or NoAction if no action
// has been taken since the last reset
func (m *MDP) LastAction() int {
	return m.lastAction
}

// Return returns the sum of rewards received since the last reset
func (m *MDP) Return() float64 {
	return m.ret
}

// StartProbability returns the probability of state under the
// initial-state distribution
func (m *MDP) StartProbability(state int) float64 {
	if state < 0 || state >= len(m.isd) {
		return 0.0
	}
	return m.isd[state]
}

// NumStates returns the number of states in the MDP
func (m *MDP) NumStates() int {
	return m.dynamics.NumStates()
}

// NumActions returns the number of actions in the MDP
func (m *MDP) NumActions() int {
	return m.dynamics.NumActions()
}

// Dynamics returns the dynamics of the MDP
func (m *MDP) Dynamics() Dynamics {
	return m.dynamics
}
