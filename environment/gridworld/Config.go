package gridworld

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config does not describe a valid
// GridWorld
var ErrInvalidConfig = errors.New("invalid gridworld configuration")

// RewardOverride sets the reward for arriving in a single cell
type RewardOverride struct {
	Cell   Cell    `json:"cell"`
	Reward float64 `json:"reward"`
}

// Config describes a GridWorld. Every GridWorld variant is a Config
// value; the transitions and rewards of the GridWorld are generated
// from the Config once, at construction.
//
// Start lists the cells an episode may start in, each equally likely.
// Arriving in a Terminal or Goal cell ends the episode, and both kinds
// of cell are absorbing. Illegal cells can never be occupied: moving
// into one leaves the agent where it was. Drift, if non-nil, has one
// entry per column and pushes the agent that many rows up after every
// move that ends in that column. If Slippery is set, the intended
// action is taken with probability 0.8 and each adjacent action with
// probability 0.1.
//
// Every cell has reward StepReward unless it appears in Overrides.
// Illegal cells have no reward.
type Config struct {
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Start      []Cell           `json:"start"`
	Terminal   []Cell           `json:"terminal,omitempty"`
	Goal       []Cell           `json:"goal,omitempty"`
	Illegal    []Cell           `json:"illegal,omitempty"`
	Drift      []int            `json:"drift,omitempty"`
	Slippery   bool             `json:"slippery"`
	StepReward float64          `json:"stepReward"`
	Overrides  []RewardOverride `json:"overrides,omitempty"`
}

// NumStates returns the number of states in the GridWorld
func (c Config) NumStates() int {
	return c.Width * c.Height
}

// ToState converts a cell to a state index
func (c Config) ToState(cell Cell) int {
	return cell.Row*c.Width + cell.Col
}

// ToCell converts a state index to a cell
func (c Config) ToCell(state int) Cell {
	row := state / c.Width
	return Cell{Row: row, Col: state - row*c.Width}
}

// InBounds returns whether cell lies in the GridWorld
func (c Config) InBounds(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < c.Height && cell.Col >= 0 &&
		cell.Col < c.Width
}

// Validate returns an error describing why the Config is not a valid
// GridWorld, or nil if it is valid
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("validate: %w: dimensions (%d, %d) must be "+
			"positive", ErrInvalidConfig, c.Height, c.Width)
	}

	sets := []struct {
		name  string
		cells []Cell
	}{
		{"start", c.Start},
		{"terminal", c.Terminal},
		{"goal", c.Goal},
		{"illegal", c.Illegal},
	}
	for _, set := range sets {
		for _, cell := range set.cells {
			if !c.InBounds(cell) {
				return fmt.Errorf("validate: %w: %s cell %v out of bounds",
					ErrInvalidConfig, set.name, cell)
			}
		}
	}
	for _, o := range c.Overrides {
		if !c.InBounds(o.Cell) {
			return fmt.Errorf("validate: %w: reward override cell %v out "+
				"of bounds", ErrInvalidConfig, o.Cell)
		}
	}

	if len(c.Start) == 0 {
		return fmt.Errorf("validate: %w: no start cells", ErrInvalidConfig)
	}
	illegal := newCellSet(c.Illegal)
	for _, cell := range c.Start {
		if illegal.contains(cell) {
			return fmt.Errorf("validate: %w: start cell %v is illegal",
				ErrInvalidConfig, cell)
		}
	}
	for _, cell := range append(append([]Cell{}, c.Terminal...), c.Goal...) {
		if illegal.contains(cell) {
			return fmt.Errorf("validate: %w: absorbing cell %v is illegal",
				ErrInvalidConfig, cell)
		}
	}

	if c.Drift != nil {
		if len(c.Drift) != c.Width {
			return fmt.Errorf("validate: %w: drift has %d entries for %d "+
				"columns", ErrInvalidConfig, len(c.Drift), c.Width)
		}
		for col, d := range c.Drift {
			if d < 0 {
				return fmt.Errorf("validate: %w: negative drift %d in "+
					"column %d", ErrInvalidConfig, d, col)
			}
		}
	}
	return nil
}

// Kind classifies cell. Cells that are both terminal and goal cells are
// classified as goals. Open cells returned by HazardCells are hazards.
func (c Config) Kind(cell Cell) CellKind {
	for _, g := range c.Goal {
		if g == cell {
			return Goal
		}
	}
	for _, t := range c.Terminal {
		if t == cell {
			return Terminal
		}
	}
	for _, i := range c.Illegal {
		if i == cell {
			return Illegal
		}
	}
	for _, h := range HazardCells(c) {
		if h == cell {
			return Hazard
		}
	}
	return Open
}
