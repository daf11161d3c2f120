package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridworlds/environment/mdp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r1"
)

// Reward is the reward for arriving in a single state. Defined is false
// for states that can never be occupied.
type Reward struct {
	Value   float64
	Defined bool
}

// Rewards holds the reward of each state of a GridWorld
type Rewards []Reward

// NewRewards returns the rewards of the GridWorld described by c. Each
// cell has reward c.StepReward, except for cells with an override and
// illegal cells, which have no reward.
func NewRewards(c Config) Rewards {
	rewards := make(Rewards, c.NumStates())
	for s := range rewards {
		rewards[s] = Reward{Value: c.StepReward, Defined: true}
	}
	for _, o := range c.Overrides {
		rewards[c.ToState(o.Cell)] = Reward{Value: o.Reward, Defined: true}
	}
	for _, cell := range c.Illegal {
		rewards[c.ToState(cell)] = Reward{}
	}
	return rewards
}

// R returns the reward for arriving in state. The action is ignored.
func (r Rewards) R(state, _ int) (float64, error) {
	if state < 0 || state >= len(r) {
		return 0, fmt.Errorf("r: %w: %d", mdp.ErrInvalidState, state)
	}
	if !r[state].Defined {
		return 0, fmt.Errorf("r: %w: %d", mdp.ErrUndefinedReward, state)
	}
	return r[state].Value, nil
}

// Bounds returns the smallest interval containing every defined reward
func (r Rewards) Bounds() r1.Interval {
	values := make([]float64, 0, len(r))
	for _, reward := range r {
		if reward.Defined {
			values = append(values, reward.Value)
		}
	}
	if len(values) == 0 {
		return r1.Interval{}
	}
	return r1.Interval{Min: floats.Min(values), Max: floats.Max(values)}
}
