// Package gridworld implements 2D gridworld environments.
//
// Every GridWorld is described by a Config: the dimensions of the grid,
// the start, terminal, goal, and illegal cells, an optional per-column
// drift, whether actions slip, and the reward of each cell. The
// transition table and rewards of a GridWorld are generated from its
// Config once, when the GridWorld is created, and never change
// afterwards.
package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridworlds/environment"
	"github.com/samuelfneumann/gridworlds/environment/mdp"
	ts "github.com/samuelfneumann/gridworlds/timestep"
	"gonum.org/v1/gonum/spatial/r1"
)

// GridWorld represents a gridworld environment
//
// A gridworld is represented as a flattened grid: state row*width + col
// is the cell (row, col).
type GridWorld struct {
	config  Config
	table   mdp.Table
	rewards Rewards
	mdp     *mdp.MDP

	ender       environment.Ender
	discount    float64
	currentStep ts.TimeStep
}

// New creates a new GridWorld described by c, with discount factor
// discount. The seed determines the random sampling of start states and
// of transitions. New returns the GridWorld and its first TimeStep.
func New(c Config, discount float64, seed uint64) (*GridWorld, ts.TimeStep,
	error) {
	table, err := Generate(c)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}
	rewards := NewRewards(c)

	dynamics, err := mdp.NewTabular(table, rewards.R)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}

	isd, err := NewUniformStart(c.Start, c)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}

	m, err := mdp.New(dynamics, isd, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}

	g := &GridWorld{
		config:   c,
		table:    table,
		rewards:  rewards,
		mdp:      m,
		discount: discount,
	}

	// The MDP is reset on creation
	return g, g.first(), nil
}

// SetEnder sets an Ender which may end episodes early, for example
// after a fixed number of steps. A nil Ender removes the current one.
func (g *GridWorld) SetEnder(e environment.Ender) {
	g.ender = e
}

// Seed re-seeds the GridWorld. The new seed takes effect for the
// remainder of the current episode and all later episodes.
func (g *GridWorld) Seed(seed uint64) {
	g.mdp.Seed(seed)
}

// Reset resets the environment and returns a starting state drawn
// from the initial-state distribution
func (g *GridWorld) Reset() (ts.TimeStep, error) {
	if _, err := g.mdp.Reset(); err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %w", err)
	}
	return g.first(), nil
}

// first sets the current TimeStep to the first TimeStep of an episode
// starting in the current state
func (g *GridWorld) first() ts.TimeStep {
	state := g.mdp.State()
	info := ts.Info{Probability: g.mdp.StartProbability(state)}
	g.currentStep = ts.New(ts.First, 0.0, g.discount, state, 0, info)
	return g.currentStep
}

// Step takes one environmental step given action and returns the next
// TimeStep and whether or not the episode ended. The reward of the
// TimeStep is the reward of the state arrived in, and its Info holds
// the probability of the sampled outcome.
func (g *GridWorld) Step(action int) (ts.TimeStep, bool, error) {
	tr, err := g.mdp.Step(action)
	if err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w", err)
	}

	stepType := ts.Mid
	if tr.Done {
		stepType = ts.Last
	}
	info := ts.Info{Probability: tr.Probability}
	step := ts.New(stepType, tr.Reward, g.discount, tr.State,
		g.currentStep.Number+1, info)
	if tr.Done {
		step.SetEnd(ts.TerminalStateReached)
	}

	if g.ender != nil {
		g.ender.End(&step)
	}

	g.currentStep = step
	return step, step.Last(), nil
}

// CurrentTimeStep returns the current TimeStep of the environment
func (g *GridWorld) CurrentTimeStep() ts.TimeStep {
	return g.currentStep
}

// ActionSpec returns the action specification of the environment
func (g *GridWorld) ActionSpec() environment.Spec {
	return environment.NewDiscreteSpec(environment.Action, NumActions)
}

// ObservationSpec returns the observation specification of the
// environment
func (g *GridWorld) ObservationSpec() environment.Spec {
	return environment.NewDiscreteSpec(environment.Observation,
		g.config.NumStates())
}

// RewardSpec returns the reward specification of the environment
func (g *GridWorld) RewardSpec() environment.Spec {
	return environment.NewContinuousSpec(environment.Reward,
		g.rewards.Bounds())
}

// DiscountSpec returns the discount specification of the environment
func (g *GridWorld) DiscountSpec() environment.Spec {
	bounds := r1.Interval{Min: g.discount, Max: g.discount}
	return environment.NewContinuousSpec(environment.Discount, bounds)
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.config.Height, g.config.Width
}

// At checks the value at position (i, j) in the gridworld. A value of 1.0
// indicates that the agent is at position (i, j).
func (g *GridWorld) At(i, j int) float64 {
	if g.config.ToState(Cell{i, j}) == g.mdp.State() {
		return 1.0
	}
	return 0.0
}

// State returns the current state
func (g *GridWorld) State() int {
	return g.mdp.State()
}

// Position returns the cell the agent currently occupies
func (g *GridWorld) Position() Cell {
	return g.config.ToCell(g.mdp.State())
}

// LastAction returns the last action taken in the current episode, or
// mdp.NoAction if no action has been taken
func (g *GridWorld) LastAction() int {
	return g.mdp.LastAction()
}

// Return returns the cumulative reward of the current episode
func (g *GridWorld) Return() float64 {
	return g.mdp.Return()
}

// Kind classifies the cell at (row, col)
func (g *GridWorld) Kind(row, col int) CellKind {
	return g.config.Kind(Cell{row, col})
}

// Terminal returns the terminal cells
func (g *GridWorld) Terminal() []Cell {
	return append([]Cell(nil), g.config.Terminal...)
}

// Goal returns the goal cells
func (g *GridWorld) Goal() []Cell {
	return append([]Cell(nil), g.config.Goal...)
}

// Illegal returns the cells that can never be occupied
func (g *GridWorld) Illegal() []Cell {
	return append([]Cell(nil), g.config.Illegal...)
}

// ToState converts a cell to a state
func (g *GridWorld) ToState(cell Cell) int {
	return g.config.ToState(cell)
}

// ToCell converts a state to a cell
func (g *GridWorld) ToCell(state int) Cell {
	return g.config.ToCell(state)
}

// Config returns the configuration of the GridWorld
func (g *GridWorld) Config() Config {
	return g.config
}

// Table returns the transition table of the GridWorld. The table must
// not be modified.
func (g *GridWorld) Table() mdp.Table {
	return g.table
}

// Rewards returns the rewards of each state
func (g *GridWorld) Rewards() Rewards {
	return append(Rewards(nil), g.rewards...)
}

// Dynamics returns the dynamics of the GridWorld
func (g *GridWorld) Dynamics() mdp.Dynamics {
	return g.mdp.Dynamics()
}

func (g *GridWorld) String() string {
	str := "GridWorld | At: %v  |   Goal: %v  |  Bounds: (%d, %d)"
	return fmt.Sprintf(str, g.Position(), g.config.Goal, g.config.Height,
		g.config.Width)
}
