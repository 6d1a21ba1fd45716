package benchmarks

import (
	"math"

	"github.com/evolabs/moosearch/pkg/multiobjective/framework"
)

// ZDT2 has a non-convex Pareto front
type ZDT2 struct {
	numVars int
}

func NewZDT2(numVars int) *ZDT2 {
	return &ZDT2{numVars: numVars}
}

func (p *ZDT2) Name() string {
	return "ZDT2"
}

func (p *ZDT2) Objectives() []framework.Objective {
	return minimizeObjectives("f1", "f2")
}

func (p *ZDT2) ObjectiveFuncs() []ObjectiveFunc {
	return []ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT2) f1(x framework.Solution) float64 {
	xx := x.(*framework.RealSolution)
	return xx.Variables[0]
}

func (p *ZDT2) f2(x framework.Solution) float64 {
	xx := x.(*framework.RealSolution).Variables
	g := 1.0
	for i := 1; i < len(xx); i++ {
		g += 9.0 * xx[i] / float64(len(xx)-1)
	}
	// Note: ZDT2 uses (1 - (x1/g)^2) instead of sqrt
	return g * (1.0 - math.Pow(xx[0]/g, 2))
}

func (p *ZDT2) Space() framework.Space {
	return framework.NewRealVectorSpace(unitBounds(p.numVars))
}

func (p *ZDT2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, 1.0 - x*x,
		}
	}
	return points
}
