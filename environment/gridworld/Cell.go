package gridworld

import "fmt"

// Actions available in every GridWorld. The numeric codes are fixed so
// that rotating an action clockwise is (a+1) mod 4 and rotating it
// counter-clockwise is (a-1) mod 4.
const (
	Up int = iota
	Right
	Down
	Left
)

// NumActions is the number of actions in a GridWorld
const NumActions = 4

// Clockwise returns the action rotated one step clockwise
func Clockwise(action int) int {
	return (action + 1) % NumActions
}

// CounterClockwise returns the action rotated one step counter-clockwise
func CounterClockwise(action int) int {
	return (action + NumActions - 1) % NumActions
}

// ActionName returns a human readable name of an action
func ActionName(action int) string {
	switch action {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}
	return "None"
}

// Cell is a (row, col) coordinate in a GridWorld. Row 0 is the top row.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// CellKind classifies cells of a GridWorld
type CellKind int

const (
	Open CellKind = iota
	Terminal
	Goal
	Illegal
	Hazard
)

func (k CellKind) String() string {
	switch k {
	case Terminal:
		return "Terminal"
	case Goal:
		return "Goal"
	case Illegal:
		return "Illegal"
	case Hazard:
		return "Hazard"
	}
	return "Open"
}

// cellSet is a set of cells used for constant time membership checks
type cellSet map[Cell]struct{}

func newCellSet(cells []Cell) cellSet {
	set := make(cellSet, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return set
}

func (s cellSet) contains(c Cell) bool {
	_, ok := s[c]
	return ok
}
