package algorithms

import (
	"fmt"
	"sort"

	"k8s.io/klog/v2"

	"github.com/evolabs/moosearch/pkg/multiobjective/framework"
)

// Survival decides which individuals persist into the next bounded
// population given the incumbents and a batch of challengers.
type Survival interface {
	// Update merges population and challengers and returns the new
	// population of record. While the population is still filling it is a
	// plain concatenation; once full, non-dominated sorting plus the
	// strategy's tie-break truncate the merged set back to the population
	// size. Individuals with unknown scores are dropped from the merge;
	// they persist in the caller's history only. The inputs are never
	// mutated structurally; callers must adopt the returned slice.
	Update(population, challengers []*framework.Individual) []*framework.Individual

	// Compare returns 1 if a should survive over b, -1 for the reverse and
	// 0 when they are interchangeable. Lower rank always wins; rank ties
	// fall to the strategy's distance measure.
	Compare(a, b *framework.Individual) int

	// NondominatedSet returns every individual with known scores that no
	// other valid individual in the given set dominates. It is typically
	// run over the full evaluation history, not the bounded population.
	NondominatedSet(population []*framework.Individual) []*framework.Individual
}

// RankAndCrowdSurvival is the plain NSGA-II strategy: Pareto rank first,
// crowding distance as the tie-break.
type RankAndCrowdSurvival struct {
	directions     []framework.Direction
	populationSize int
}

func NewRankAndCrowdSurvival(objectives []framework.Objective, populationSize int) (*RankAndCrowdSurvival, error) {
	if err := validateSurvivalArgs(objectives, populationSize); err != nil {
		return nil, err
	}
	return &RankAndCrowdSurvival{
		directions:     framework.Directions(objectives),
		populationSize: populationSize,
	}, nil
}

func validateSurvivalArgs(objectives []framework.Objective, populationSize int) error {
	if len(objectives) == 0 {
		return fmt.Errorf("at least one objective is required")
	}
	if populationSize < 2 {
		return fmt.Errorf("population size must be at least 2, got %d", populationSize)
	}
	return nil
}

func (s *RankAndCrowdSurvival) Update(population, challengers []*framework.Individual) []*framework.Individual {
	working := mergeEvaluated(population, challengers)
	if len(population) < s.populationSize {
		return working
	}
	dom := framework.ParetoDominance(s.directions)
	return selectSurvivors(working, s.populationSize, dom, CrowdingDistance, s.Compare)
}

func (s *RankAndCrowdSurvival) Compare(a, b *framework.Individual) int {
	if a.Rank != b.Rank {
		if a.Rank < b.Rank {
			return 1
		}
		return -1
	}
	switch {
	case a.Distance > b.Distance:
		return 1
	case a.Distance == b.Distance:
		return 0
	default:
		return -1
	}
}

func (s *RankAndCrowdSurvival) NondominatedSet(population []*framework.Individual) []*framework.Individual {
	return nondominatedSet(population, framework.ParetoDominance(s.directions))
}

// mergeEvaluated concatenates population and challengers, dropping any
// individual with unknown scores. Letting one into the sort would put it in
// front 0, since nothing can dominate it, and its NaN scores would bleed into
// the crowding distances of valid individuals.
func mergeEvaluated(population, challengers []*framework.Individual) []*framework.Individual {
	working := make([]*framework.Individual, 0, len(population)+len(challengers))
	for _, in := range population {
		if in.Evaluated() {
			working = append(working, in)
		}
	}
	for _, in := range challengers {
		if in.Evaluated() {
			working = append(working, in)
		}
	}
	return working
}

// selectSurvivors runs the shared survival walk: sort the working set into
// fronts, fill the selection buffer front by front applying the strategy's
// in-front tie-break, then order the buffer with the full comparator and cut
// it to exactly populationSize.
func selectSurvivors(working []*framework.Individual, populationSize int,
	dominates framework.DominanceFn,
	sortFront func([]*framework.Individual),
	compare func(a, b *framework.Individual) int) []*framework.Individual {

	fronts := framework.NonDominatedSort(working, dominates)

	selected := make([]*framework.Individual, 0, len(working))
	for _, front := range fronts {
		sortFront(front)
		selected = append(selected, front...)
		if len(selected) >= populationSize {
			break
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return compare(selected[i], selected[j]) > 0
	})
	if len(selected) <= populationSize {
		return selected
	}
	if klog.V(5).Enabled() {
		for _, in := range selected[populationSize:] {
			klog.V(5).InfoS("individual removed from population",
				"scores", in.Scores, "rank", in.Rank, "distance", in.Distance)
		}
	}
	return selected[:populationSize:populationSize]
}

func nondominatedSet(population []*framework.Individual, dominates framework.DominanceFn) []*framework.Individual {
	var result []*framework.Individual
	for _, in := range population {
		if !in.Evaluated() {
			continue
		}
		isDominated := false
		for _, other := range population {
			if other == in || !other.Evaluated() {
				continue
			}
			if dominates(other, in) {
				isDominated = true
				break
			}
		}
		if !isDominated {
			result = append(result, in)
		}
	}
	return result
}
