package benchmarks

import (
	"math"

	"github.com/evolabs/moosearch/pkg/multiobjective/framework"
)

// ZDT3 has a disconnected Pareto front
type ZDT3 struct {
	numVars int
}

func NewZDT3(numVars int) *ZDT3 {
	return &ZDT3{numVars: numVars}
}

func (p *ZDT3) Name() string {
	return "ZDT3"
}

func (p *ZDT3) Objectives() []framework.Objective {
	return minimizeObjectives("f1", "f2")
}

func (p *ZDT3) ObjectiveFuncs() []ObjectiveFunc {
	return []ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT3) f1(x framework.Solution) float64 {
	xx := x.(*framework.RealSolution)
	return xx.Variables[0]
}

func (p *ZDT3) f2(x framework.Solution) float64 {
	xx := x.(*framework.RealSolution).Variables
	g := 1.0
	for i := 1; i < len(xx); i++ {
		g += 9.0 * xx[i] / float64(len(xx)-1)
	}
	// ZDT3 has a disconnected front due to the sin term
	h := 1.0 - math.Sqrt(xx[0]/g) - (xx[0]/g)*math.Sin(10*math.Pi*xx[0])
	return g * h
}

func (p *ZDT3) Space() framework.Space {
	return framework.NewRealVectorSpace(unitBounds(p.numVars))
}

func (p *ZDT3) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		f1 := x
		f2 := 1.0 - math.Sqrt(x) - x*math.Sin(10*math.Pi*x)
		points[i] = framework.ObjectiveSpacePoint{f1, f2}
	}
	return points
}
