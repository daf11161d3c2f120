package mdp

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler samples indices from discrete distributions by inverse-CDF
// sampling. Each Sampler owns its own seeded source, so two Samplers
// with the same seed produce the same sequence of samples.
type Sampler struct {
	seed    uint64
	source  rand.Source
	uniform distuv.Uniform
}

// NewSampler returns a new Sampler seeded with seed
func NewSampler(seed uint64) *Sampler {
	source := rand.NewSource(seed)
	return &Sampler{
		seed:    seed,
		source:  source,
		uniform: distuv.Uniform{Min: 0.0, Max: 1.0, Src: source},
	}
}

// Seed re-seeds the Sampler
func (s *Sampler) Seed(seed uint64) {
	s.seed = seed
	s.source.Seed(seed)
}

// SeedValue returns the seed last used to seed the Sampler
func (s *Sampler) SeedValue() uint64 {
	return s.seed
}

// Sample draws a single uniform value u in [0, 1) and returns the first
// index whose cumulative weight strictly exceeds u. Zero weights that
// precede a non-zero weight can therefore never be selected.
//
// The weights are expected to sum to 1. If floating point error leaves
// every cumulative weight at or below u, the last index with non-zero
// weight is returned.
func (s *Sampler) Sample(weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, fmt.Errorf("sample: %w: no weights", ErrInvalidDistribution)
	}

	cumulative := make([]float64, len(weights))
	floats.CumSum(cumulative, weights)

	return SearchCumulative(cumulative, s.uniform.Rand()), nil
}

// SearchCumulative returns the first index i such that cumulative[i] > u.
// If no such index exists, the index of the last increase in cumulative
// is returned.
func SearchCumulative(cumulative []float64, u float64) int {
	for i, c := range cumulative {
		if c > u {
			return i
		}
	}

	for i := len(cumulative) - 1; i > 0; i-- {
		if cumulative[i] > cumulative[i-1] {
			return i
		}
	}
	return 0
}
