// Package planning implements dynamic programming algorithms which
// compute values and policies of finite-state MDPs from their dynamics
package planning

import (
	"errors"
	"fmt"
	"math"

	"github.com/samuelfneumann/gridworlds/environment/mdp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrNotConverged is returned when value iteration does not converge
// within its iteration limit
var ErrNotConverged = errors.New("value iteration did not converge")

// Config configures value iteration
type Config struct {
	Discount      float64
	Tolerance     float64
	MaxIterations int
}

// Result holds the values and greedy policy computed by value iteration
type Result struct {
	Values     *mat.VecDense
	Policy     []int
	Iterations int
}

// ValueIteration computes the optimal state values of the MDP with
// dynamics d. Absorbing states, whose every outcome is a self-loop that
// ends the episode, have value 0. Outcomes which end the episode are
// not bootstrapped from.
//
// States whose transitions or rewards cannot be looked up, such as
// states that can never be occupied, are given value NaN and policy
// mdp.NoAction.
func ValueIteration(d mdp.Dynamics, c Config) (Result, error) {
	if c.Discount < 0 || c.Discount > 1 {
		return Result{}, fmt.Errorf("valueIteration: discount %v not in "+
			"[0, 1]", c.Discount)
	}
	if c.MaxIterations <= 0 {
		if c.Discount == 1 {
			return Result{}, fmt.Errorf("valueIteration: undiscounted " +
				"value iteration requires an iteration limit")
		}
		if c.Tolerance <= 0 {
			return Result{}, fmt.Errorf("valueIteration: tolerance %v "+
				"must be positive without an iteration limit", c.Tolerance)
		}
	}

	n := d.NumStates()
	skip := make([]bool, n)
	for s := 0; s < n; s++ {
		skip[s] = absorbing(d, s) || !valid(d, s)
	}

	values := make([]float64, n)
	next := make([]float64, n)
	q := make([]float64, d.NumActions())

	iterations := 0
	for {
		iterations++
		for s := 0; s < n; s++ {
			if skip[s] {
				continue
			}
			for a := range q {
				q[a] = backup(d, values, s, a, c.Discount)
			}
			next[s] = floats.Max(q)
		}

		delta := floats.Distance(next, values, math.Inf(1))
		copy(values, next)

		if delta <= c.Tolerance {
			break
		}
		if c.MaxIterations > 0 && iterations >= c.MaxIterations {
			return Result{}, fmt.Errorf("valueIteration: %w after %d "+
				"iterations (delta %v)", ErrNotConverged, iterations, delta)
		}
	}

	policy := make([]int, n)
	for s := 0; s < n; s++ {
		switch {
		case !valid(d, s):
			values[s] = math.NaN()
			policy[s] = mdp.NoAction
		case absorbing(d, s):
			policy[s] = 0
		default:
			for a := range q {
				q[a] = backup(d, values, s, a, c.Discount)
			}
			policy[s] = floats.MaxIdx(q)
		}
	}

	return Result{
		Values:     mat.NewVecDense(n, values),
		Policy:     policy,
		Iterations: iterations,
	}, nil
}

// backup returns the expected return of taking action a in state s and
// following values afterwards. Lookup errors are ignored: s must be a
// state for which valid returns true.
func backup(d mdp.Dynamics, values []float64, s, a int,
	discount float64) float64 {
	outcomes, _ := d.P(s, a)

	q := 0.0
	for _, o := range outcomes {
		r, _ := d.R(o.Next, a)
		target := r
		if !o.Done {
			target += discount * values[o.Next]
		}
		q += o.Probability * target
	}
	return q
}

// absorbing returns whether every action in s loops back to s and ends
// the episode
func absorbing(d mdp.Dynamics, s int) bool {
	for a := 0; a < d.NumActions(); a++ {
		outcomes, err := d.P(s, a)
		if err != nil || len(outcomes) != 1 {
			return false
		}
		if outcomes[0].Next != s || !outcomes[0].Done {
			return false
		}
	}
	return true
}

// valid returns whether every transition out of s and every reward
// reachable from s can be looked up
func valid(d mdp.Dynamics, s int) bool {
	if _, err := d.R(s, mdp.NoAction); err != nil {
		return false
	}
	for a := 0; a < d.NumActions(); a++ {
		outcomes, err := d.P(s, a)
		if err != nil {
			return false
		}
		for _, o := range outcomes {
			if _, err := d.R(o.Next, a); err != nil {
				return false
			}
		}
	}
	return true
}
