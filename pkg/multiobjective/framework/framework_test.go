package framework

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(7, 13))
}

func TestBinarySolutionCrossoverPreservesBits(t *testing.T) {
	rng := testRng()
	p1 := NewBinarySolution([]bool{true, true, true, true})
	p2 := NewBinarySolution([]bool{false, false, false, false})

	c1, c2 := p1.Crossover(p2, rng, 1.0)
	b1 := c1.(*BinarySolution)
	b2 := c2.(*BinarySolution)

	require.Len(t, b1.Bits, 4)
	require.Len(t, b2.Bits, 4)
	// Swapped suffixes stay complementary under single-point crossover.
	for i := range b1.Bits {
		assert.NotEqual(t, b1.Bits[i], b2.Bits[i])
	}
	// Parents untouched.
	assert.Equal(t, []bool{true, true, true, true}, p1.Bits)
	assert.Equal(t, []bool{false, false, false, false}, p2.Bits)
}

func TestBinarySolutionMutateCertainty(t *testing.T) {
	sol := NewBinarySolution([]bool{true, false, true})
	sol.Mutate(testRng(), 1.0)
	assert.Equal(t, []bool{false, true, false}, sol.Bits)
}

func TestRealSolutionCloneIsDeep(t *testing.T) {
	b := []Bounds{{L: 0, H: 1}}
	sol := NewRealSolution([]float64{0.5}, b)
	clone := sol.Clone().(*RealSolution)
	clone.Variables[0] = 0.9
	assert.Equal(t, 0.5, sol.Variables[0])
}

func TestRealSolutionCrossoverWithinBounds(t *testing.T) {
	rng := testRng()
	b := []Bounds{{L: 0, H: 1}, {L: -1, H: 1}}
	p1 := NewRealSolution([]float64{0.1, -0.5}, b)
	p2 := NewRealSolution([]float64{0.9, 0.5}, b)

	for i := 0; i < 50; i++ {
		c1, c2 := p1.Crossover(p2, rng, 1.0)
		for _, child := range []*RealSolution{c1.(*RealSolution), c2.(*RealSolution)} {
			for j, v := range child.Variables {
				assert.GreaterOrEqual(t, v, b[j].L)
				assert.LessOrEqual(t, v, b[j].H)
			}
		}
	}
}

func TestRealSolutionMutateWithinBounds(t *testing.T) {
	rng := testRng()
	b := []Bounds{{L: 0, H: 1}}
	for i := 0; i < 50; i++ {
		sol := NewRealSolution([]float64{0.5}, b)
		sol.Mutate(rng, 1.0)
		assert.GreaterOrEqual(t, sol.Variables[0], 0.0)
		assert.LessOrEqual(t, sol.Variables[0], 1.0)
	}
}

func TestIntegerSolutionMutateWithinBounds(t *testing.T) {
	rng := testRng()
	b := []IntBounds{{L: 0, H: 4}, {L: 2, H: 2}}
	for i := 0; i < 50; i++ {
		sol := NewIntegerSolution([]int{3, 2}, b)
		sol.Mutate(rng, 1.0)
		assert.GreaterOrEqual(t, sol.Variables[0], 0)
		assert.LessOrEqual(t, sol.Variables[0], 4)
		assert.Equal(t, 2, sol.Variables[1])
	}
}

func TestSpacesSampleWithinBounds(t *testing.T) {
	rng := testRng()

	realSpace := NewRealVectorSpace([]Bounds{{L: -2, H: 2}, {L: 0, H: 1}})
	for i := 0; i < 20; i++ {
		sol := realSpace.Sample(rng).(*RealSolution)
		require.Len(t, sol.Variables, 2)
		assert.GreaterOrEqual(t, sol.Variables[0], -2.0)
		assert.LessOrEqual(t, sol.Variables[0], 2.0)
	}

	binSpace := &BinarySpace{NumBits: 8}
	sol := binSpace.Sample(rng).(*BinarySolution)
	assert.Len(t, sol.Bits, 8)

	intSpace := &IntegerSpace{Bounds: []IntBounds{{L: 1, H: 3}}}
	for i := 0; i < 20; i++ {
		is := intSpace.Sample(rng).(*IntegerSolution)
		assert.GreaterOrEqual(t, is.Variables[0], 1)
		assert.LessOrEqual(t, is.Variables[0], 3)
	}
}
