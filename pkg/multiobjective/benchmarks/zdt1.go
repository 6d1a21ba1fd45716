package benchmarks

import (
	"math"

	"github.com/evolabs/moosearch/pkg/multiobjective/framework"
)

// ZDT1 is a benchmark function used to test the correctness
// of multi-objective algorithms. For more details, check the article below:
// https://datacrayon.com/practical-evolutionary-algorithms/synthetic-objective-functions-and-zdt1/
type ZDT1 struct {
	numVars int
}

func NewZDT1(numVars int) *ZDT1 {
	return &ZDT1{
		numVars,
	}
}

func (p *ZDT1) Name() string {
	return "ZDT1"
}

func (p *ZDT1) Objectives() []framework.Objective {
	return minimizeObjectives("f1", "f2")
}

func (p *ZDT1) ObjectiveFuncs() []ObjectiveFunc {
	return []ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT1) f1(x framework.Solution) float64 {
	xx := x.(*framework.RealSolution)
	return xx.Variables[0]
}

func (p *ZDT1) f2(x framework.Solution) float64 {
	xx := x.(*framework.RealSolution).Variables
	g := 1.0
	for i := 1; i < len(xx); i++ {
		g += 9.0 * xx[i] / float64(len(xx)-1)
	}
	return g * (1.0 - math.Sqrt(xx[0]/g))
}

func (p *ZDT1) Space() framework.Space {
	return framework.NewRealVectorSpace(unitBounds(p.numVars))
}

// TrueParetoFront generates numPoints points on the true Pareto front for ZDT1
func (p *ZDT1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, 1.0 - math.Sqrt(x),
		}
	}
	return points
}
