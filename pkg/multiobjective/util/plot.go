package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/evolabs/moosearch/pkg/multiobjective/framework"
)

// ParetoReference supplies a known Pareto front to compare results against.
type ParetoReference interface {
	Name() string
	TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint
}

// PlotFront renders an HTML scatter plot of the found objective-space points
// against the reference's true Pareto front.
func PlotFront(w io.Writer, results []framework.ObjectiveSpacePoint, ref ParetoReference, algorithmName string) error {
	if len(results) == 0 {
		return fmt.Errorf("results are empty for %s", ref.Name())
	}

	if len(results[0]) != 2 {
		return fmt.Errorf("can only plot 2D results for %s", ref.Name())
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Results for %s", algorithmName, ref.Name()),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	trueParetoFront := ref.TrueParetoFront(100)
	trueX := make([]opts.ScatterData, len(trueParetoFront))
	for i, p := range trueParetoFront {
		trueX[i] = opts.ScatterData{
			Value:      p,
			Symbol:     "circle",
			SymbolSize: 10,
		}
	}

	foundX := make([]opts.ScatterData, len(results))
	for i, res := range results {
		foundX[i] = opts.ScatterData{
			Value:      []float64{res[0], res[1]},
			Symbol:     "triangle",
			SymbolSize: 10,
		}
	}

	scatter.AddSeries("True Pareto Front", trueX).
		AddSeries(fmt.Sprintf("%s Solutions", algorithmName), foundX).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	return scatter.Render(w)
}
