package framework

import (
	"math"
	"math/rand/v2"
)

// Direction tells whether an objective improves by decreasing or increasing.
type Direction string

const (
	Minimize Direction = "min"
	Maximize Direction = "max"
)

// Objective names one optimization target and the direction it improves in.
// The order of a searcher's objectives is significant: it fixes the layout
// of every score vector for the whole run.
type Objective struct {
	Name      string
	Direction Direction
}

// Directions extracts the direction vector from a list of objectives.
func Directions(objectives []Objective) []Direction {
	directions := make([]Direction, len(objectives))
	for i, o := range objectives {
		directions[i] = o.Direction
	}
	return directions
}

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
// A NaN coordinate marks a score the evaluator never produced.
type ObjectiveSpacePoint []float64

// Valid reports whether every coordinate of the point is known.
func (p ObjectiveSpacePoint) Valid() bool {
	if len(p) == 0 {
		return false
	}
	for _, v := range p {
		if math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Individual pairs an evaluated candidate solution with its score vector
// and the bookkeeping the selection machinery needs. Rank and Distance are
// transient: non-dominated sorting and the tie-break assignment fully
// recompute them on every pass. The dominance counts and dominated sets
// used during sorting live in side tables local to the sort, not here.
type Individual struct {
	Solution Solution
	Scores   ObjectiveSpacePoint

	// Rank is assigned by non-dominated sorting; -1 before sorting.
	// Lower rank means closer to the Pareto front.
	Rank int

	// Distance is the crowding distance (larger is better) or, under
	// r-dominance, the distance to the reference point (smaller is
	// better); -1 before assignment.
	Distance float64
}

func NewIndividual(sol Solution, scores ObjectiveSpacePoint) *Individual {
	return &Individual{
		Solution: sol,
		Scores:   scores,
		Rank:     -1,
		Distance: -1,
	}
}

// Evaluated reports whether the individual carries a complete score vector.
// Individuals that do not are never Pareto-optimal.
func (in *Individual) Evaluated() bool {
	return in.Scores.Valid()
}

// Solution is a candidate configuration. The selection engine treats it as
// opaque: it only clones solutions and hands them to the variation operators.
type Solution interface {
	Clone() Solution
	Crossover(other Solution, rng *rand.Rand, crossoverRate float64) (Solution, Solution)
	Mutate(rng *rand.Rand, mutationRate float64)
}

// Space describes the search space candidate solutions are drawn from.
type Space interface {
	Sample(rng *rand.Rand) Solution
}

// Sampler produces fresh candidate solutions, typically by sampling a Space
// and applying an external validity screen. A sampler that cannot produce a
// candidate reports an error; the searcher does not swallow it.
type Sampler interface {
	Sample() (Solution, error)
}

// Recombination combines two parent solutions into an offspring. Combine may
// fail, for example when the parents use incompatible encodings; the searcher
// then falls back to mutating a single parent.
type Recombination interface {
	Combine(p1, p2 Solution, space Space) (Solution, error)
}

// Mutation perturbs a solution with the given per-gene probability.
type Mutation interface {
	Mutate(sol Solution, space Space, probability float64) (Solution, error)
}
