package framework

// DominanceFn reports whether a dominates b. Implementations must be
// irreflexive: no individual dominates itself.
type DominanceFn func(a, b *Individual) bool

// Dominates checks if score vector a Pareto-dominates b under the given
// per-objective directions: a is at least as good on every objective and
// strictly better on at least one. Equal vectors never dominate each other.
// Both vectors must have one entry per direction; callers filter out
// unknown scores beforehand.
func Dominates(a, b ObjectiveSpacePoint, directions []Direction) bool {
	better := false
	for i := range directions {
		av, bv := a[i], b[i]
		if directions[i] == Maximize {
			av, bv = bv, av
		}
		if av > bv {
			return false
		}
		if av < bv {
			better = true
		}
	}
	return better
}

// ParetoDominance adapts Dominates to individuals. Individuals with unknown
// scores neither dominate nor are dominated.
func ParetoDominance(directions []Direction) DominanceFn {
	return func(a, b *Individual) bool {
		if !a.Evaluated() || !b.Evaluated() {
			return false
		}
		return Dominates(a.Scores, b.Scores, directions)
	}
}

// NonDominatedSort partitions the population into fronts: front 0 holds the
// individuals nothing dominates, front k the individuals dominated only by
// members of earlier fronts. Every individual lands in exactly one front and
// gets its Rank set to the front index. The dominated sets and dominance
// counts are kept in side tables rebuilt on every call, so the sort is safe
// to run repeatedly on an evolving population.
func NonDominatedSort(population []*Individual, dominates DominanceFn) [][]*Individual {
	for _, p := range population {
		p.Rank = -1
	}

	dominated := make(map[int][]int)
	domCount := make([]int, len(population))

	// Calculate domination for each individual
	for i := 0; i < len(population); i++ {
		dominated[i] = []int{}
		for j := 0; j < len(population); j++ {
			if i != j {
				if dominates(population[i], population[j]) {
					dominated[i] = append(dominated[i], j)
				} else if dominates(population[j], population[i]) {
					domCount[i]++
				}
			}
		}
	}

	// Find first front
	var fronts [][]*Individual
	currentFront := []*Individual{}
	currentFrontIndices := []int{}
	for i := 0; i < len(population); i++ {
		if domCount[i] == 0 {
			population[i].Rank = 0
			currentFront = append(currentFront, population[i])
			currentFrontIndices = append(currentFrontIndices, i)
		}
	}
	fronts = append(fronts, currentFront)

	// Find subsequent fronts
	frontIndex := 0
	for len(currentFront) > 0 {
		nextFront := []*Individual{}
		nextFrontIndices := []int{}
		for _, idx := range currentFrontIndices {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					population[dominatedIdx].Rank = frontIndex + 1
					nextFront = append(nextFront, population[dominatedIdx])
					nextFrontIndices = append(nextFrontIndices, dominatedIdx)
				}
			}
		}
		frontIndex++
		if len(nextFront) > 0 {
			fronts = append(fronts, nextFront)
		}
		currentFront = nextFront
		currentFrontIndices = nextFrontIndices
	}

	return fronts
}
