package gridworld

import "fmt"

// NewSingleStart returns an initial-state distribution which always
// starts in cell
func NewSingleStart(cell Cell, c Config) ([]float64, error) {
	return NewUniformStart([]Cell{cell}, c)
}

// NewUniformStart returns an initial-state distribution which starts in
// each of cells with equal probability. Repeated cells are counted
// once.
func NewUniformStart(cells []Cell, c Config) ([]float64, error) {
	unique := newCellSet(cells)
	if len(unique) == 0 {
		return nil, fmt.Errorf("newUniformStart: %w: no start cells",
			ErrInvalidConfig)
	}

	isd := make([]float64, c.NumStates())
	for cell := range unique {
		if !c.InBounds(cell) {
			return nil, fmt.Errorf("newUniformStart: %w: start cell %v out "+
				"of bounds", ErrInvalidConfig, cell)
		}
		isd[c.ToState(cell)] = 1.0 / float64(len(unique))
	}
	return isd, nil
}
