package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossoverRecombinationIncompatibleEncodings(t *testing.T) {
	r := NewCrossoverRecombination(0.9, testRng())
	real := NewRealSolution([]float64{0.5}, []Bounds{{L: 0, H: 1}})
	bin := NewBinarySolution([]bool{true})

	_, err := r.Combine(real, bin, nil)
	assert.Error(t, err)
}

func TestCrossoverRecombinationProducesChild(t *testing.T) {
	r := NewCrossoverRecombination(1.0, testRng())
	b := []Bounds{{L: 0, H: 1}}
	p1 := NewRealSolution([]float64{0.2}, b)
	p2 := NewRealSolution([]float64{0.8}, b)

	child, err := r.Combine(p1, p2, nil)
	require.NoError(t, err)
	rs := child.(*RealSolution)
	assert.GreaterOrEqual(t, rs.Variables[0], 0.0)
	assert.LessOrEqual(t, rs.Variables[0], 1.0)
}

func TestPointMutationDoesNotTouchInput(t *testing.T) {
	m := NewPointMutation(testRng())
	sol := NewBinarySolution([]bool{true, true})

	mutated, err := m.Mutate(sol, nil, 1.0)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, sol.Bits)
	assert.Equal(t, []bool{false, false}, mutated.(*BinarySolution).Bits)
}

func TestSpaceSamplerValidityScreen(t *testing.T) {
	space := NewRealVectorSpace([]Bounds{{L: 0, H: 1}})
	sampler := &SpaceSampler{
		Space: space,
		Rng:   testRng(),
		Validate: func(sol Solution) bool {
			return sol.(*RealSolution).Variables[0] > 0.5
		},
	}

	for i := 0; i < 10; i++ {
		sol, err := sampler.Sample()
		require.NoError(t, err)
		assert.Greater(t, sol.(*RealSolution).Variables[0], 0.5)
	}
}

func TestSpaceSamplerRetryExhaustion(t *testing.T) {
	space := NewRealVectorSpace([]Bounds{{L: 0, H: 1}})
	sampler := &SpaceSampler{
		Space:      space,
		Rng:        testRng(),
		Validate:   func(Solution) bool { return false },
		MaxRetries: 5,
	}

	_, err := sampler.Sample()
	assert.ErrorContains(t, err, "no valid solution sampled")
}
