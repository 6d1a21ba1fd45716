package benchmarks

import (
	"github.com/evolabs/moosearch/pkg/multiobjective/framework"
)

// ObjectiveFunc scores one solution on one objective.
type ObjectiveFunc func(framework.Solution) float64

// Problem describes a synthetic benchmark used to exercise the searchers.
type Problem interface {
	Name() string
	Objectives() []framework.Objective
	ObjectiveFuncs() []ObjectiveFunc
	Space() framework.Space

	// TrueParetoFront is optional due to the difficulty of finding the true
	// front in some types of problems. When there isn't a way to find the
	// true front, just return nil.
	TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint
}

// Evaluate scores a solution against all of the problem's objectives.
func Evaluate(p Problem, sol framework.Solution) framework.ObjectiveSpacePoint {
	funcs := p.ObjectiveFuncs()
	point := make(framework.ObjectiveSpacePoint, len(funcs))
	for i, f := range funcs {
		point[i] = f(sol)
	}
	return point
}

func minimizeObjectives(names ...string) []framework.Objective {
	objectives := make([]framework.Objective, len(names))
	for i, name := range names {
		objectives[i] = framework.Objective{Name: name, Direction: framework.Minimize}
	}
	return objectives
}

func unitBounds(numVars int) []framework.Bounds {
	b := make([]framework.Bounds, numVars)
	for i := range b {
		b[i] = framework.Bounds{L: 0.0, H: 1.0}
	}
	return b
}
