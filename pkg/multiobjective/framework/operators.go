package framework

import (
	"fmt"
	"math/rand/v2"
	"reflect"
)

// CrossoverRecombination combines two parents with the encoding's own
// crossover and keeps the first child. Parents with different encodings
// cannot be recombined; that surfaces as an error so the searcher can take
// its single-parent fallback.
type CrossoverRecombination struct {
	Rate float64
	Rng  *rand.Rand
}

func NewCrossoverRecombination(rate float64, rng *rand.Rand) *CrossoverRecombination {
	return &CrossoverRecombination{Rate: rate, Rng: rng}
}

func (r *CrossoverRecombination) Combine(p1, p2 Solution, space Space) (Solution, error) {
	if reflect.TypeOf(p1) != reflect.TypeOf(p2) {
		return nil, fmt.Errorf("cannot recombine %T with %T", p1, p2)
	}
	child, _ := p1.Crossover(p2, r.Rng, r.Rate)
	return child, nil
}

// PointMutation clones the solution and applies the encoding's own mutation
// with the probability the caller passes in.
type PointMutation struct {
	Rng *rand.Rand
}

func NewPointMutation(rng *rand.Rand) *PointMutation {
	return &PointMutation{Rng: rng}
}

func (m *PointMutation) Mutate(sol Solution, space Space, probability float64) (Solution, error) {
	child := sol.Clone()
	child.Mutate(m.Rng, probability)
	return child, nil
}

const defaultSampleRetries = 100

// SpaceSampler draws candidates from a Space, discarding any the validity
// predicate rejects. The retry loop is bounded: running out of attempts is
// an error, not a hang.
type SpaceSampler struct {
	Space      Space
	Rng        *rand.Rand
	Validate   func(Solution) bool
	MaxRetries int
}

func NewSpaceSampler(space Space, rng *rand.Rand) *SpaceSampler {
	return &SpaceSampler{Space: space, Rng: rng}
}

func (s *SpaceSampler) Sample() (Solution, error) {
	retries := s.MaxRetries
	if retries <= 0 {
		retries = defaultSampleRetries
	}
	for i := 0; i < retries; i++ {
		sol := s.Space.Sample(s.Rng)
		if s.Validate == nil || s.Validate(sol) {
			return sol, nil
		}
	}
	return nil, fmt.Errorf("no valid solution sampled after %d attempts", retries)
}
