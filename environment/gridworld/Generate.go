package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridworlds/environment/mdp"
)

// Probabilities of taking the intended and each adjacent action in a
// slippery GridWorld. The scheme assumes exactly four actions arranged
// as a rotation.
const (
	IntendedProbability = 0.8
	SlipProbability     = 0.1
)

// attempt is an action that may be taken in place of the chosen action
type attempt struct {
	action      int
	probability float64
}

// attempts returns the actions that may actually be taken when action
// is chosen
func attempts(action int, slippery bool) []attempt {
	if !slippery {
		return []attempt{{action, 1.0}}
	}
	return []attempt{
		{CounterClockwise(action), SlipProbability},
		{action, IntendedProbability},
		{Clockwise(action), SlipProbability},
	}
}

// grid holds the cell classification of a Config during generation
type grid struct {
	Config
	absorbing cellSet
	illegal   cellSet
}

func newGrid(c Config) grid {
	absorbing := newCellSet(c.Terminal)
	for _, g := range c.Goal {
		absorbing[g] = struct{}{}
	}
	return grid{c, absorbing, newCellSet(c.Illegal)}
}

// move returns the cell reached by taking action in cell, clamped to
// the GridWorld. Drift is applied after the move using the column the
// move ended in.
func (g grid) move(cell Cell, action int) Cell {
	row, col := cell.Row, cell.Col

	switch action {
	case Up:
		row = max(row-1, 0)
	case Right:
		col = min(col+1, g.Width-1)
	case Down:
		row = min(row+1, g.Height-1)
	case Left:
		col = max(col-1, 0)
	}

	if g.Drift != nil {
		row = max(row-g.Drift[col], 0)
	}
	return Cell{Row: row, Col: col}
}

// outcomes returns the outcomes of taking action in cell. Attempts
// that reach the same cell are merged into a single outcome.
func (g grid) outcomes(cell Cell, action int) []mdp.Outcome {
	state := g.ToState(cell)
	if g.absorbing.contains(cell) {
		return []mdp.Outcome{{Probability: 1.0, Next: state, Done: true}}
	}

	var outcomes []mdp.Outcome
	index := make(map[int]int, 3)
	for _, at := range attempts(action, g.Slippery) {
		next := g.move(cell, at.action)
		if g.illegal.contains(next) {
			next = cell
		}

		nextState := g.ToState(next)
		if i, ok := index[nextState]; ok {
			outcomes[i].Probability += at.probability
			continue
		}

		index[nextState] = len(outcomes)
		outcomes = append(outcomes, mdp.Outcome{
			Probability: at.probability,
			Next:        nextState,
			Done:        g.absorbing.contains(next),
		})
	}
	return outcomes
}

// Generate returns the transition table of the GridWorld described by
// c. The table has one entry for each cell, including illegal cells,
// although no transition ever leads to an illegal cell.
func Generate(c Config) (mdp.Table, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	g := newGrid(c)
	table := mdp.NewTable(c.NumStates(), NumActions)
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			cell := Cell{Row: row, Col: col}
			state := c.ToState(cell)
			for action := 0; action < NumActions; action++ {
				table[state][action] = g.outcomes(cell, action)
			}
		}
	}
	return table, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
