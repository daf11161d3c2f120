package planning

import (
	"errors"
	"math"
	"testing"

	"github.com/samuelfneumann/gridworlds/environment/gridworld"
	"github.com/samuelfneumann/gridworlds/environment/mdp"
)

func newGridWorld(t *testing.T, c gridworld.Config) *gridworld.GridWorld {
	t.Helper()

	g, _, err := gridworld.New(c, 1.0, 0)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestValueIterationGridWorld(t *testing.T) {
	c := gridworld.GridWorldConfig(gridworld.DefaultWidth,
		gridworld.DefaultHeight, false)
	g := newGridWorld(t, c)

	result, err := ValueIteration(g.Dynamics(), Config{
		Discount:      1.0,
		Tolerance:     1e-10,
		MaxIterations: 1000,
	})
	if err != nil {
		t.Fatal(err)
	}

	value := func(row, col int) float64 {
		return result.Values.AtVec(c.ToState(gridworld.Cell{Row: row,
			Col: col}))
	}

	// Next to the goal, stepping into it is worth the goal reward
	if v := value(2, 2); math.Abs(v-gridworld.GoalReward) > 1e-9 {
		t.Errorf("want value %v next to goal, have %v", gridworld.GoalReward,
			v)
	}
	if value(2, 2) <= value(0, 0) {
		t.Errorf("value near goal %v not greater than value at start %v",
			value(2, 2), value(0, 0))
	}

	// Absorbing cells have no future reward and walls have no value
	if value(2, 3) != 0 || value(1, 3) != 0 {
		t.Errorf("want zero value at absorbing cells")
	}
	if !math.IsNaN(value(1, 1)) {
		t.Errorf("want NaN value at wall, have %v", value(1, 1))
	}

	if p := result.Policy[c.ToState(gridworld.Cell{Row: 2, Col: 2})]; p !=
		gridworld.Right {
		t.Errorf("want policy right next to goal, have %v",
			gridworld.ActionName(p))
	}
	if p := result.Policy[c.ToState(gridworld.Cell{Row: 1, Col: 1})]; p !=
		mdp.NoAction {
		t.Errorf("want no action at wall, have %v", p)
	}
}

func TestValueIterationCliffAvoidsCliff(t *testing.T) {
	c := gridworld.CliffConfig(gridworld.DefaultCliffWidth,
		gridworld.DefaultCliffHeight, false)
	g := newGridWorld(t, c)

	result, err := ValueIteration(g.Dynamics(), Config{
		Discount:      0.9,
		Tolerance:     1e-8,
		MaxIterations: 10000,
	})
	if err != nil {
		t.Fatal(err)
	}

	start := c.ToState(gridworld.Cell{Row: 3, Col: 0})
	if result.Policy[start] != gridworld.Up {
		t.Errorf("want policy up at start, have %v",
			gridworld.ActionName(result.Policy[start]))
	}
}

func TestValueIterationNotConverged(t *testing.T) {
	g := newGridWorld(t, gridworld.WindyConfig(gridworld.DefaultWindyWidth,
		gridworld.DefaultWindyHeight))

	_, err := ValueIteration(g.Dynamics(), Config{
		Discount:      1.0,
		Tolerance:     0,
		MaxIterations: 2,
	})
	if !errors.Is(err, ErrNotConverged) {
		t.Errorf("want ErrNotConverged, have %v", err)
	}
}

func TestValueIterationInvalidDiscount(t *testing.T) {
	u := mdp.Unimplemented{States: 2, Actions: 2}
	if _, err := ValueIteration(u, Config{Discount: 1.5}); err == nil {
		t.Error("want error for discount 1.5")
	}
	if _, err := ValueIteration(u, Config{Discount: 1.0}); err == nil {
		t.Error("want error for undiscounted value iteration without limit")
	}
}

func TestValueIterationTolerance(t *testing.T) {
	u := mdp.Unimplemented{States: 2, Actions: 2}
	for _, tol := range []float64{0, -1e-6} {
		_, err := ValueIteration(u, Config{Discount: 0.9, Tolerance: tol})
		if err == nil {
			t.Errorf("want error for tolerance %v without limit", tol)
		}
	}

	// Deterministic values reach an exact fixed point
	g := newGridWorld(t, gridworld.GridWorldConfig(gridworld.DefaultWidth,
		gridworld.DefaultHeight, false))
	result, err := ValueIteration(g.Dynamics(), Config{
		Discount:      0.9,
		Tolerance:     0,
		MaxIterations: 1000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Iterations >= 1000 {
		t.Errorf("want exact convergence, have %d iterations",
			result.Iterations)
	}

	// The first sweep changes the value next to the goal by exactly the
	// goal reward, the largest change of any state
	loose, err := ValueIteration(g.Dynamics(), Config{
		Discount:  0.9,
		Tolerance: gridworld.GoalReward,
	})
	if err != nil {
		t.Fatal(err)
	}
	if loose.Iterations != 1 || result.Iterations <= 1 {
		t.Errorf("want 1 iteration with a loose tolerance, have %d (exact "+
			"%d)", loose.Iterations, result.Iterations)
	}
}
