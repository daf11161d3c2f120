package gridworld

// Default dimensions of each GridWorld variant
const (
	DefaultWidth       = 4
	DefaultHeight      = 3
	DefaultWindyWidth  = 10
	DefaultWindyHeight = 7
	DefaultCliffWidth  = 12
	DefaultCliffHeight = 4
)

// Rewards of each GridWorld variant
const (
	StepReward     = -0.04
	TerminalReward = -1.0
	GoalReward     = 1.0

	WindyStepReward = -1.0

	CliffStepReward = -1.0
	CliffReward     = -100.0
)

// DefaultWind is the upward drift of each column of the default windy
// GridWorld
var DefaultWind = []int{0, 0, 0, 1, 1, 1, 2, 2, 1, 0}

// GridWorldConfig returns the configuration of the GridWorld of chapter
// 17 of Artificial Intelligence: A Modern Approach. The agent starts in
// the top-left cell. Cell (1, 3) is terminal with reward -1, cell
// (2, 3) is the goal with reward +1, cell (1, 1) is a wall, and every
// other cell has reward -0.04.
//
// If slippery is true, the chosen action is taken with probability 0.8
// and each action at right angles to it is taken with probability 0.1.
//
// For non-default dimensions, the special cells that fall outside the
// GridWorld are dropped.
func GridWorldConfig(width, height int, slippery bool) Config {
	c := Config{
		Width:      width,
		Height:     height,
		Start:      []Cell{{0, 0}},
		Slippery:   slippery,
		StepReward: StepReward,
	}

	terminal, goal, wall := Cell{1, 3}, Cell{2, 3}, Cell{1, 1}
	if c.InBounds(terminal) {
		c.Terminal = []Cell{terminal}
		c.Overrides = append(c.Overrides, RewardOverride{terminal,
			TerminalReward})
	}
	if c.InBounds(goal) {
		c.Goal = []Cell{goal}
		c.Overrides = append(c.Overrides, RewardOverride{goal, GoalReward})
	}
	if c.InBounds(wall) {
		c.Illegal = []Cell{wall}
	}
	return c
}

// SlipperyConfig returns the configuration of the slippery GridWorld
func SlipperyConfig(width, height int) Config {
	return GridWorldConfig(width, height, true)
}

// WindyConfig returns the configuration of the windy GridWorld of
// Sutton and Barto. The agent starts in cell (3, 0) and must reach the
// goal in cell (3, 7) while wind pushes it up by DefaultWind[col] rows
// in each column. Every cell has reward -1 and there are no terminal
// cells other than the goal.
//
// For widths other than the default, the wind is truncated or padded
// with calm columns.
func WindyConfig(width, height int) Config {
	wind := make([]int, width)
	copy(wind, DefaultWind)

	c := Config{
		Width:      width,
		Height:     height,
		Start:      []Cell{{3, 0}},
		Drift:      wind,
		StepReward: WindyStepReward,
	}
	if goal := (Cell{3, 7}); c.InBounds(goal) {
		c.Goal = []Cell{goal}
	}
	return c
}

// CliffConfig returns the configuration of the cliff GridWorld of
// Sutton and Barto. The agent starts in the bottom-left cell and must
// reach the goal in the bottom-right cell. The cells between them
// form a cliff with reward -100. Falling off the cliff does not end
// the episode. Every other cell has reward -1.
func CliffConfig(width, height int, slippery bool) Config {
	bottom := height - 1
	c := Config{
		Width:      width,
		Height:     height,
		Start:      []Cell{{bottom, 0}},
		Goal:       []Cell{{bottom, width - 1}},
		Slippery:   slippery,
		StepReward: CliffStepReward,
	}
	for col := 1; col < width-1; col++ {
		c.Overrides = append(c.Overrides, RewardOverride{
			Cell:   Cell{bottom, col},
			Reward: CliffReward,
		})
	}
	return c
}

// HazardCells returns the cells of c with a reward strictly lower than
// the step reward, such as the cliff of the cliff GridWorld
func HazardCells(c Config) []Cell {
	var cells []Cell
	for _, o := range c.Overrides {
		if o.Reward < c.StepReward {
			cells = append(cells, o.Cell)
		}
	}
	return cells
}
