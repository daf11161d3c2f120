package environment

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r1"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an acion, an observation, a discount, or a reward
type SpecType int

const (
	Action SpecType = iota
	Observation
	Discount
	Reward
)

func (s SpecType) String() string {
	switch s {
	case Action:
		return "Action"
	case Observation:
		return "Observation"
	case Discount:
		return "Discount"
	default:
		return "Reward"
	}
}

// Cardinality determines the cardinality of a number (discrete or continuous)
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec implements an environment specification, which tells the type,
// number of values, and bounds of an action, observation, discount, or
// reward in an environment
//
// For Discrete specifications, N is the number of values, which are the
// integers in [0, N). For Continuous specifications, N is 0 and Bounds
// holds the range of values.
type Spec struct {
	Type   SpecType
	N      int
	Bounds r1.Interval
	Cardinality
}

// NewDiscreteSpec returns a specification for n discrete values
// (0, 1, ..., n-1)
func NewDiscreteSpec(t SpecType, n int) Spec {
	if n <= 0 {
		panic(fmt.Sprintf("newDiscreteSpec: number of values %v must be "+
			"positive", n))
	}
	return Spec{
		Type:        t,
		N:           n,
		Bounds:      r1.Interval{Min: 0, Max: float64(n - 1)},
		Cardinality: Discrete,
	}
}

// NewContinuousSpec returns a specification for values in bounds
func NewContinuousSpec(t SpecType, bounds r1.Interval) Spec {
	if bounds.Min > bounds.Max {
		panic(fmt.Sprintf("newContinuousSpec: lower bound %v greater than "+
			"upper bound %v", bounds.Min, bounds.Max))
	}
	return Spec{
		Type:        t,
		Bounds:      bounds,
		Cardinality: Continuous,
	}
}

// Contains returns whether the discrete value v satisfies the Spec
func (s Spec) Contains(v int) bool {
	if s.Cardinality == Discrete {
		return v >= 0 && v < s.N
	}
	f := float64(v)
	return f >= s.Bounds.Min && f <= s.Bounds.Max
}

func (s Spec) String() string {
	if s.Cardinality == Discrete {
		return fmt.Sprintf("%v Spec | Discrete(%d)", s.Type, s.N)
	}
	return fmt.Sprintf("%v Spec | Continuous[%v, %v]", s.Type, s.Bounds.Min,
		s.Bounds.Max)
}
