package framework

import (
	"math"
	"math/rand/v2"
)

// The concrete solution encodings below implement Solution. Their variation
// operators draw from an injected rand source so runs are reproducible under
// a fixed seed. Crossover requires both parents to use the same encoding;
// the recombination operator screens for that before calling in.

// BinarySolution uses a binary encoding scheme, where each bit
// or group of bits can have a meaning in the context of the problem.
type BinarySolution struct {
	Bits []bool
}

func NewBinarySolution(bits []bool) *BinarySolution {
	return &BinarySolution{
		Bits: bits,
	}
}

func (sol *BinarySolution) Clone() Solution {
	newBits := make([]bool, len(sol.Bits))
	copy(newBits, sol.Bits)
	return &BinarySolution{
		Bits: newBits,
	}
}

// Crossover implements Solution interface using single-point crossover
func (sol *BinarySolution) Crossover(other Solution, rng *rand.Rand, crossoverRate float64) (Solution, Solution) {
	o := other.(*BinarySolution)
	child1 := sol.Clone().(*BinarySolution)
	child2 := o.Clone().(*BinarySolution)

	if rng.Float64() < crossoverRate {
		// Single point crossover
		point := rng.IntN(len(sol.Bits))
		for i := point; i < len(sol.Bits); i++ {
			child1.Bits[i], child2.Bits[i] = child2.Bits[i], child1.Bits[i]
		}
	}

	return child1, child2
}

// Mutate implements Solution interface using bit-flip mutation
func (sol *BinarySolution) Mutate(rng *rand.Rand, mutationRate float64) {
	for i := range sol.Bits {
		if rng.Float64() < mutationRate {
			sol.Bits[i] = !sol.Bits[i]
		}
	}
}

// Bounds is the inclusive range of one real-valued variable.
type Bounds struct {
	L float64
	H float64
}

// RealSolution represents a solution with real-valued variables.
type RealSolution struct {
	Variables []float64
	Bounds    []Bounds
}

func NewRealSolution(vars []float64, b []Bounds) *RealSolution {
	return &RealSolution{
		Variables: vars,
		Bounds:    b,
	}
}

func (sol *RealSolution) Clone() Solution {
	vars := make([]float64, len(sol.Variables))
	copy(vars, sol.Variables)
	return &RealSolution{
		Variables: vars,
		Bounds:    sol.Bounds,
	}
}

// Crossover performs SBX (Simulated Binary Crossover)
func (sol *RealSolution) Crossover(other Solution, rng *rand.Rand, crossoverRate float64) (Solution, Solution) {
	o := other.(*RealSolution)
	child1 := sol.Clone().(*RealSolution)
	child2 := o.Clone().(*RealSolution)

	if rng.Float64() < crossoverRate {
		for i := range sol.Variables {
			beta := 0.0
			if rng.Float64() <= 0.5 {
				beta = math.Pow(2*rng.Float64(), 1.0/3.0)
			} else {
				beta = math.Pow(1.0/(2*(1.0-rng.Float64())), 1.0/3.0)
			}

			child1.Variables[i] = 0.5 * ((1+beta)*sol.Variables[i] + (1-beta)*o.Variables[i])
			child2.Variables[i] = 0.5 * ((1-beta)*sol.Variables[i] + (1+beta)*o.Variables[i])

			// Bound checking
			child1.Variables[i] = math.Max(sol.Bounds[i].L, math.Min(sol.Bounds[i].H, child1.Variables[i]))
			child2.Variables[i] = math.Max(sol.Bounds[i].L, math.Min(sol.Bounds[i].H, child2.Variables[i]))
		}
	}

	return child1, child2
}

// Mutate performs polynomial mutation
func (sol *RealSolution) Mutate(rng *rand.Rand, mutationRate float64) {
	for i := range sol.Variables {
		if rng.Float64() < mutationRate {
			delta := 0.0
			if rng.Float64() <= 0.5 {
				delta = math.Pow(2*rng.Float64(), 1.0/3.0) - 1
			} else {
				delta = 1 - math.Pow(2*(1-rng.Float64()), 1.0/3.0)
			}

			sol.Variables[i] += delta * (sol.Bounds[i].H - sol.Bounds[i].L)
			sol.Variables[i] = math.Max(sol.Bounds[i].L, math.Min(sol.Bounds[i].H, sol.Variables[i]))
		}
	}
}

// IntBounds is the inclusive range of one integer variable.
type IntBounds struct {
	L int
	H int
}

// IntegerSolution assigns an integer from a bounded range to each variable,
// for problems like item-to-slot placement.
type IntegerSolution struct {
	Variables []int
	Bounds    []IntBounds
}

func NewIntegerSolution(vars []int, b []IntBounds) *IntegerSolution {
	return &IntegerSolution{
		Variables: vars,
		Bounds:    b,
	}
}

func (sol *IntegerSolution) Clone() Solution {
	vars := make([]int, len(sol.Variables))
	copy(vars, sol.Variables)
	return &IntegerSolution{
		Variables: vars,
		Bounds:    sol.Bounds,
	}
}

// Crossover implements Solution interface using uniform crossover
func (sol *IntegerSolution) Crossover(other Solution, rng *rand.Rand, crossoverRate float64) (Solution, Solution) {
	o := other.(*IntegerSolution)
	child1 := sol.Clone().(*IntegerSolution)
	child2 := o.Clone().(*IntegerSolution)

	if rng.Float64() < crossoverRate {
		for i := range child1.Variables {
			if rng.Float64() < 0.5 {
				child1.Variables[i], child2.Variables[i] = child2.Variables[i], child1.Variables[i]
			}
		}
	}

	return child1, child2
}

// Mutate implements Solution interface using random-reset mutation
func (sol *IntegerSolution) Mutate(rng *rand.Rand, mutationRate float64) {
	for i := range sol.Variables {
		if rng.Float64() < mutationRate {
			span := sol.Bounds[i].H - sol.Bounds[i].L + 1
			sol.Variables[i] = sol.Bounds[i].L + rng.IntN(span)
		}
	}
}

// RealVectorSpace samples real-valued solutions uniformly within bounds.
type RealVectorSpace struct {
	Bounds []Bounds
}

func NewRealVectorSpace(b []Bounds) *RealVectorSpace {
	return &RealVectorSpace{Bounds: b}
}

func (sp *RealVectorSpace) Sample(rng *rand.Rand) Solution {
	vars := make([]float64, len(sp.Bounds))
	for i, b := range sp.Bounds {
		vars[i] = b.L + rng.Float64()*(b.H-b.L)
	}
	return NewRealSolution(vars, sp.Bounds)
}

// BinarySpace samples fixed-width bit strings uniformly.
type BinarySpace struct {
	NumBits int
}

func (sp *BinarySpace) Sample(rng *rand.Rand) Solution {
	bits := make([]bool, sp.NumBits)
	for i := range bits {
		bits[i] = rng.Float64() < 0.5
	}
	return NewBinarySolution(bits)
}

// IntegerSpace samples integer assignments uniformly within bounds.
type IntegerSpace struct {
	Bounds []IntBounds
}

func (sp *IntegerSpace) Sample(rng *rand.Rand) Solution {
	vars := make([]int, len(sp.Bounds))
	for i, b := range sp.Bounds {
		vars[i] = b.L + rng.IntN(b.H-b.L+1)
	}
	return NewIntegerSolution(vars, sp.Bounds)
}
