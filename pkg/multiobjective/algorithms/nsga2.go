package algorithms

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"k8s.io/klog/v2"

	"github.com/evolabs/moosearch/pkg/multiobjective/framework"
)

const (
	Name = "NSGA-II"

	// tournamentRetryLimit bounds the resampling loop that looks for a
	// second, distinct parent. Exhausting it means the population is too
	// small or degenerate to mate.
	tournamentRetryLimit = 10000
)

// CrowdingDistance calculates crowding distance for individuals in a front.
// Boundary individuals per objective get +Inf so they always survive
// truncation; fronts of one or two members are all boundary. An objective
// whose values do not spread across the front contributes nothing.
func CrowdingDistance(front []*framework.Individual) {
	if len(front) <= 2 {
		for i := range front {
			front[i].Distance = math.Inf(1)
		}
		return
	}

	numObjectives := len(front[0].Scores)
	for i := range front {
		front[i].Distance = 0
	}

	for m := 0; m < numObjectives; m++ {
		// Sort by each objective
		sort.Slice(front, func(i, j int) bool {
			return front[i].Scores[m] < front[j].Scores[m]
		})

		// Set boundary points to infinity
		front[0].Distance = math.Inf(1)
		front[len(front)-1].Distance = math.Inf(1)

		objectiveRange := front[len(front)-1].Scores[m] - front[0].Scores[m]
		if objectiveRange == 0 {
			continue
		}

		// Calculate distance for intermediate points
		for i := 1; i < len(front)-1; i++ {
			front[i].Distance += (front[i+1].Scores[m] - front[i-1].Scores[m]) / objectiveRange
		}
	}
}

// Config holds configuration parameters for a searcher.
type Config struct {
	// Objectives fixes the score vector layout and per-objective direction.
	Objectives []framework.Objective

	// PopulationSize bounds the live population. Must be at least 2.
	PopulationSize int

	// MutateProbability is the per-gene mutation probability applied to
	// offspring. Defaults to 0.7.
	MutateProbability float64

	// Sampler produces candidates while the population is filling.
	Sampler framework.Sampler

	// Recombination and Mutation drive reproduction once the population is
	// full.
	Recombination framework.Recombination
	Mutation      framework.Mutation

	// Space returns a fresh search space handed to the operators.
	Space func() framework.Space

	// Rand is the seedable source behind parent selection. Required.
	Rand *rand.Rand
}

func (c *Config) validate() error {
	if c.Sampler == nil {
		return fmt.Errorf("a sampler is required")
	}
	if c.Recombination == nil || c.Mutation == nil {
		return fmt.Errorf("recombination and mutation operators are required")
	}
	if c.Rand == nil {
		return fmt.Errorf("a random source is required")
	}
	return nil
}

// NSGAIISearcher runs one multi-objective search session. It owns the
// bounded population and the append-only history of every recorded result;
// the history, not the population, is the source of truth for reporting.
// The searcher is single-threaded: callers running parallel evaluations
// must serialize Sample and UpdateResult.
type NSGAIISearcher struct {
	objectives        []framework.Objective
	populationSize    int
	mutateProbability float64

	sampler       framework.Sampler
	recombination framework.Recombination
	mutation      framework.Mutation
	spaceFn       func() framework.Space
	rng           *rand.Rand

	survival   Survival
	population []*framework.Individual
	history    []*framework.Individual
}

// NewNSGAIISearcher creates a searcher with rank-and-crowding survival.
func NewNSGAIISearcher(cfg Config) (*NSGAIISearcher, error) {
	survival, err := NewRankAndCrowdSurvival(cfg.Objectives, cfg.PopulationSize)
	if err != nil {
		return nil, err
	}
	return newSearcher(cfg, survival)
}

func newSearcher(cfg Config, survival Survival) (*NSGAIISearcher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	mutateProbability := cfg.MutateProbability
	if mutateProbability == 0 {
		mutateProbability = 0.7
	}
	return &NSGAIISearcher{
		objectives:        cfg.Objectives,
		populationSize:    cfg.PopulationSize,
		mutateProbability: mutateProbability,
		sampler:           cfg.Sampler,
		recombination:     cfg.Recombination,
		mutation:          cfg.Mutation,
		spaceFn:           cfg.Space,
		rng:               cfg.Rand,
		survival:          survival,
	}, nil
}

func (s *NSGAIISearcher) space() framework.Space {
	if s.spaceFn == nil {
		return nil
	}
	return s.spaceFn()
}

// Sample produces the next candidate solution to evaluate. While the
// population is below its bound, candidates come straight from the sampler.
// Once full, two parents are picked by binary tournament and recombined,
// and the offspring is mutated; if recombination or mutation fails, the
// first parent is mutated with certainty instead.
func (s *NSGAIISearcher) Sample() (framework.Solution, error) {
	if len(s.population) < s.populationSize {
		return s.sampler.Sample()
	}

	p1, p2, err := s.binaryTournamentSelect()
	if err != nil {
		return nil, err
	}

	offspring, err := s.recombination.Combine(p1.Solution, p2.Solution, s.space())
	if err == nil {
		var mutated framework.Solution
		mutated, err = s.mutation.Mutate(offspring, s.space(), s.mutateProbability)
		if err == nil {
			return mutated, nil
		}
	}

	klog.V(4).InfoS("recombination failed, mutating first parent directly", "err", err)
	return s.mutation.Mutate(p1.Solution, s.space(), 1.0)
}

// UpdateResult records an evaluation result: the new individual goes into
// history unconditionally and challenges the population through the survival
// engine. The score vector must have one entry per objective; a NaN entry
// marks a score the evaluator could not produce.
func (s *NSGAIISearcher) UpdateResult(sol framework.Solution, scores framework.ObjectiveSpacePoint) error {
	if len(scores) != len(s.objectives) {
		return fmt.Errorf("score vector has %d entries, want %d (one per objective)", len(scores), len(s.objectives))
	}

	indi := framework.NewIndividual(sol, scores)
	s.history = append(s.history, indi)
	s.population = s.survival.Update(s.population, []*framework.Individual{indi})

	accepted := false
	for _, in := range s.population {
		if in == indi {
			accepted = true
			break
		}
	}
	klog.V(5).InfoS("recorded evaluation result",
		"scores", scores, "accepted", accepted,
		"populationSize", len(s.population), "historySize", len(s.history))
	return nil
}

// GetBest returns the solutions of the non-dominated set over the full
// evaluation history. The bounded population only shapes reproduction; the
// history decides what counts as a result.
func (s *NSGAIISearcher) GetBest() []framework.Solution {
	nd := s.NondominatedSet()
	best := make([]framework.Solution, len(nd))
	for i, in := range nd {
		best[i] = in.Solution
	}
	return best
}

// NondominatedSet computes the history-wide non-dominated individuals,
// excluding any with unknown scores.
func (s *NSGAIISearcher) NondominatedSet() []*framework.Individual {
	return s.survival.NondominatedSet(s.history)
}

// Population returns the current bounded population.
func (s *NSGAIISearcher) Population() []*framework.Individual {
	return s.population
}

// History returns every individual recorded so far, in arrival order.
func (s *NSGAIISearcher) History() []*framework.Individual {
	return s.history
}

// binaryTournamentSelect picks two distinct parents. Each slot draws two
// uniform indices and keeps the one the survival comparator does not rank
// worse, ties going to the first draw. The second slot resamples any pair
// containing the first winner, up to the retry limit.
func (s *NSGAIISearcher) binaryTournamentSelect() (*framework.Individual, *framework.Individual, error) {
	pop := s.population
	if len(pop) < 2 {
		return nil, nil, fmt.Errorf("population size %d is too small for tournament selection", len(pop))
	}

	i, j := s.rng.IntN(len(pop)), s.rng.IntN(len(pop))
	first := i
	if s.survival.Compare(pop[i], pop[j]) < 0 {
		first = j
	}

	for tries := 0; tries < tournamentRetryLimit; tries++ {
		i, j = s.rng.IntN(len(pop)), s.rng.IntN(len(pop))
		if i == first || j == first {
			continue
		}
		second := i
		if s.survival.Compare(pop[i], pop[j]) < 0 {
			second = j
		}
		return pop[first], pop[second], nil
	}
	return nil, nil, fmt.Errorf("no distinct second parent found after %d attempts", tournamentRetryLimit)
}
