// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"

	"golang.org/x/exp/rand"

	ts "github.com/samuelfneumann/gridworlds/timestep"
)

// Experiment outlines structs that can run experiments. The Run()
// method runs episodes until the maximum timestep limit is reached.
// The RunEpisode() method runs a single episode and returns whether the
// timestep limit has been reached.
//
// Experiments send each environment TimeStep to their Trackers, which
// determine which data generated during the experiment is kept.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error)
}

// Policy selects actions given the current TimeStep
type Policy interface {
	SelectAction(t ts.TimeStep) int
}

// Random is a Policy which selects actions uniformly at random
type Random struct {
	numActions int
	rng        *rand.Rand
}

// NewRandom returns a new Random policy over numActions actions
func NewRandom(numActions int, seed uint64) *Random {
	if numActions <= 0 {
		panic(fmt.Sprintf("newRandom: number of actions %v must be positive",
			numActions))
	}
	return &Random{numActions, rand.New(rand.NewSource(seed))}
}

// SelectAction selects a random action
func (r *Random) SelectAction(ts.TimeStep) int {
	return r.rng.Intn(r.numActions)
}

// Greedy is a Policy which selects a fixed action in each state, such
// as the greedy policy computed by value iteration
type Greedy []int

// SelectAction selects the action of the Policy for the state of t
func (g Greedy) SelectAction(t ts.TimeStep) int {
	return g[t.Observation]
}

// Fixed is a Policy which replays a sequence of actions, repeating the
// last action once the sequence is exhausted
type Fixed struct {
	actions []int
	next    int
}

// NewFixed returns a new Fixed policy replaying actions
func NewFixed(actions ...int) *Fixed {
	if len(actions) == 0 {
		panic("newFixed: no actions")
	}
	return &Fixed{actions: actions}
}

// SelectAction selects the next action in the sequence
func (f *Fixed) SelectAction(ts.TimeStep) int {
	a := f.actions[f.next]
	if f.next < len(f.actions)-1 {
		f.next++
	}
	return a
}
