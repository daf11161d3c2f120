package experiment

import (
	"gonum.org/v1/gonum/floats/scalar"

	ts "github.com/samuelfneumann/gridworlds/timestep"
)

func approxEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, 1e-9)
}

func newTimeStep() ts.TimeStep {
	return ts.New(ts.First, 0, 1, 0, 0, ts.Info{})
}
