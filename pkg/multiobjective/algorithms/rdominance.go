package algorithms

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/evolabs/moosearch/pkg/multiobjective/framework"
)

// RNSGAIIName identifies the reference-point-guided variant.
const RNSGAIIName = "R-NSGA-II"

// RDominanceSurvival is the R-NSGA-II strategy. Pareto dominance decides
// first; among pareto-equivalent individuals, the one meaningfully closer to
// the decision maker's reference point r-dominates. "Meaningfully" is
// controlled by the threshold: the distance gap, normalized by the
// front-wide spread of distances, must beat it, so numerical near-ties do
// not flip dominance.
type RDominanceSurvival struct {
	directions     []framework.Direction
	populationSize int
	refPoint       []float64
	weights        []float64
	threshold      float64
}

func NewRDominanceSurvival(objectives []framework.Objective, populationSize int, refPoint, weights []float64, threshold float64) (*RDominanceSurvival, error) {
	if err := validateSurvivalArgs(objectives, populationSize); err != nil {
		return nil, err
	}
	m := len(objectives)
	if refPoint == nil {
		refPoint = make([]float64, m)
	}
	if len(refPoint) != m {
		return nil, fmt.Errorf("reference point has %d coordinates, want %d (one per objective)", len(refPoint), m)
	}
	if weights == nil {
		weights = make([]float64, m)
		for i := range weights {
			weights[i] = 1.0 / float64(m)
		}
	}
	if len(weights) != m {
		return nil, fmt.Errorf("weights vector has %d entries, want %d (one per objective)", len(weights), m)
	}
	if threshold == 0 {
		threshold = 0.3
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("dominance threshold must be in (0, 1], got %v", threshold)
	}
	return &RDominanceSurvival{
		directions:     framework.Directions(objectives),
		populationSize: populationSize,
		refPoint:       refPoint,
		weights:        weights,
		threshold:      threshold,
	}, nil
}

func (s *RDominanceSurvival) Update(population, challengers []*framework.Individual) []*framework.Individual {
	working := mergeEvaluated(population, challengers)
	if len(population) < s.populationSize {
		return working
	}
	spread := s.assignReferenceDistances(working)
	return selectSurvivors(working, s.populationSize, s.dominance(spread), sortFrontByDistance, s.Compare)
}

// Compare prefers lower rank; within a rank, the individual closer to the
// reference point wins.
func (s *RDominanceSurvival) Compare(a, b *framework.Individual) int {
	if a.Rank != b.Rank {
		if a.Rank < b.Rank {
			return 1
		}
		return -1
	}
	switch {
	case a.Distance < b.Distance:
		return 1
	case a.Distance == b.Distance:
		return 0
	default:
		return -1
	}
}

func (s *RDominanceSurvival) NondominatedSet(population []*framework.Individual) []*framework.Individual {
	spread := s.assignReferenceDistances(population)
	return nondominatedSet(population, s.dominance(spread))
}

// dominance builds the r-dominance relation for one pass, with reference
// distances already assigned and their spread fixed.
func (s *RDominanceSurvival) dominance(spread float64) framework.DominanceFn {
	pareto := framework.ParetoDominance(s.directions)
	return func(a, b *framework.Individual) bool {
		if pareto(a, b) {
			return true
		}
		if pareto(b, a) {
			return false
		}
		// Pareto-equivalent: compare distances to the reference point.
		// A zero spread means every distance is the same; nobody is
		// meaningfully closer.
		if spread == 0 || !a.Evaluated() || !b.Evaluated() {
			return false
		}
		return (a.Distance-b.Distance)/spread < -s.threshold
	}
}

// assignReferenceDistances sets every valid individual's Distance to the
// weighted Euclidean distance between its min-max-normalized scores and the
// reference point, and returns the spread (max minus min) of those
// distances. An objective with no spread across the set contributes zero
// rather than dividing by it.
func (s *RDominanceSurvival) assignReferenceDistances(population []*framework.Individual) float64 {
	m := len(s.directions)
	lo := make([]float64, m)
	hi := make([]float64, m)
	column := make([]float64, 0, len(population))
	for j := 0; j < m; j++ {
		column = column[:0]
		for _, in := range population {
			if in.Evaluated() {
				column = append(column, in.Scores[j])
			}
		}
		if len(column) == 0 {
			continue
		}
		lo[j] = floats.Min(column)
		hi[j] = floats.Max(column)
	}

	distances := make([]float64, 0, len(population))
	for _, in := range population {
		if !in.Evaluated() {
			continue
		}
		d := 0.0
		for j := 0; j < m; j++ {
			extent := hi[j] - lo[j]
			if extent == 0 {
				continue
			}
			diff := (in.Scores[j] - s.refPoint[j]) / extent
			d += diff * diff * s.weights[j]
		}
		in.Distance = math.Sqrt(d)
		distances = append(distances, in.Distance)
	}
	if len(distances) == 0 {
		return 0
	}
	return floats.Max(distances) - floats.Min(distances)
}

// sortFrontByDistance is the in-front tie-break: closer to the reference
// point first, mirroring crowding distance's role with the comparison
// direction inverted.
func sortFrontByDistance(front []*framework.Individual) {
	sort.SliceStable(front, func(i, j int) bool {
		return front[i].Distance < front[j].Distance
	})
}

// NewRNSGAIISearcher creates a searcher guided by a decision maker's
// reference point. A nil refPoint defaults to the origin and nil weights to
// uniform; threshold 0 defaults to 0.3.
func NewRNSGAIISearcher(cfg Config, refPoint, weights []float64, threshold float64) (*NSGAIISearcher, error) {
	survival, err := NewRDominanceSurvival(cfg.Objectives, cfg.PopulationSize, refPoint, weights, threshold)
	if err != nil {
		return nil, err
	}
	return newSearcher(cfg, survival)
}
