// Package render draws gridworld environments. Renderers only read the
// state of an environment through the Viewer interface and never step
// or modify it.
package render

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gridworlds/environment/gridworld"
)

// Viewer provides read access to the parts of a gridworld needed to
// draw it
type Viewer interface {
	Dims() (rows, cols int)
	Position() gridworld.Cell
	LastAction() int
	Kind(row, col int) gridworld.CellKind
}

// checkValues returns an error if values is non-nil and does not have
// one value per cell of v
func checkValues(v Viewer, values []float64) error {
	rows, cols := v.Dims()
	if values != nil && len(values) != rows*cols {
		return fmt.Errorf("%d values for %d cells", len(values), rows*cols)
	}
	return nil
}

// valueRange returns the smallest and largest finite values
func valueRange(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	return lo, hi
}
