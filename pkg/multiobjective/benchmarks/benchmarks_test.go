package benchmarks_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolabs/moosearch/pkg/multiobjective/algorithms"
	"github.com/evolabs/moosearch/pkg/multiobjective/benchmarks"
	"github.com/evolabs/moosearch/pkg/multiobjective/framework"
)

func solution(vars ...float64) framework.Solution {
	b := make([]framework.Bounds, len(vars))
	for i := range b {
		b[i] = framework.Bounds{L: 0, H: 1}
	}
	return framework.NewRealSolution(vars, b)
}

func TestZDTKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		problem benchmarks.Problem
		vars    []float64
		want    framework.ObjectiveSpacePoint
	}{
		{
			name:    "ZDT1 at origin",
			problem: benchmarks.NewZDT1(4),
			vars:    []float64{0, 0, 0, 0},
			want:    framework.ObjectiveSpacePoint{0, 1},
		},
		{
			name:    "ZDT1 at x1=1 on the front",
			problem: benchmarks.NewZDT1(4),
			vars:    []float64{1, 0, 0, 0},
			want:    framework.ObjectiveSpacePoint{1, 0},
		},
		{
			name:    "ZDT2 at origin",
			problem: benchmarks.NewZDT2(4),
			vars:    []float64{0, 0, 0, 0},
			want:    framework.ObjectiveSpacePoint{0, 1},
		},
		{
			name:    "ZDT2 at x1=1 on the front",
			problem: benchmarks.NewZDT2(4),
			vars:    []float64{1, 0, 0, 0},
			want:    framework.ObjectiveSpacePoint{1, 0},
		},
		{
			name:    "ZDT3 at origin",
			problem: benchmarks.NewZDT3(4),
			vars:    []float64{0, 0, 0, 0},
			want:    framework.ObjectiveSpacePoint{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := benchmarks.Evaluate(tt.problem, solution(tt.vars...))
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestTrueParetoFronts(t *testing.T) {
	for _, problem := range []benchmarks.Problem{
		benchmarks.NewZDT1(4),
		benchmarks.NewZDT2(4),
		benchmarks.NewZDT3(4),
	} {
		front := problem.TrueParetoFront(50)
		require.Len(t, front, 50, problem.Name())
		for _, p := range front {
			assert.Len(t, p, 2, problem.Name())
		}
		assert.Equal(t, 0.0, front[0][0], problem.Name())
		assert.Equal(t, 1.0, front[49][0], problem.Name())
	}
}

func TestProblemSpaces(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for _, problem := range []benchmarks.Problem{
		benchmarks.NewZDT1(6),
		benchmarks.NewZDT2(6),
		benchmarks.NewZDT3(6),
	} {
		sol := problem.Space().Sample(rng)
		rs, ok := sol.(*framework.RealSolution)
		require.True(t, ok, problem.Name())
		require.Len(t, rs.Variables, 6, problem.Name())
		for _, v := range rs.Variables {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestSearcherSuite(t *testing.T) {
	tests := []struct {
		name        string
		problem     benchmarks.Problem
		evaluations int
	}{
		{name: "ZDT1", problem: benchmarks.NewZDT1(8), evaluations: 200},
		{name: "ZDT2", problem: benchmarks.NewZDT2(8), evaluations: 200},
		{name: "ZDT3", problem: benchmarks.NewZDT3(8), evaluations: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const populationSize = 16
			rng := rand.New(rand.NewPCG(11, 17))
			space := tt.problem.Space()
			searcher, err := algorithms.NewNSGAIISearcher(algorithms.Config{
				Objectives:     tt.problem.Objectives(),
				PopulationSize: populationSize,
				Sampler:        framework.NewSpaceSampler(space, rng),
				Recombination:  framework.NewCrossoverRecombination(0.9, rng),
				Mutation:       framework.NewPointMutation(rng),
				Space:          func() framework.Space { return space },
				Rand:           rng,
			})
			require.NoError(t, err)

			for i := 0; i < tt.evaluations; i++ {
				sol, err := searcher.Sample()
				require.NoError(t, err)
				require.NoError(t, searcher.UpdateResult(sol, benchmarks.Evaluate(tt.problem, sol)))
			}

			assert.Len(t, searcher.Population(), populationSize)

			directions := framework.Directions(tt.problem.Objectives())
			nd := searcher.NondominatedSet()
			require.NotEmpty(t, nd)
			for i := range nd {
				for j := range nd {
					if i != j && framework.Dominates(nd[i].Scores, nd[j].Scores, directions) {
						t.Errorf("best set contains dominated solution %v", nd[j].Scores)
					}
				}
			}
		})
	}
}
