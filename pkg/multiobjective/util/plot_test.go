package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolabs/moosearch/pkg/multiobjective/benchmarks"
	"github.com/evolabs/moosearch/pkg/multiobjective/framework"
)

func TestPlotFront(t *testing.T) {
	results := []framework.ObjectiveSpacePoint{
		{0.1, 0.7},
		{0.5, 0.3},
	}

	var buf bytes.Buffer
	err := PlotFront(&buf, results, benchmarks.NewZDT1(4), "NSGA-II")
	require.NoError(t, err)

	html := buf.String()
	assert.True(t, strings.Contains(html, "True Pareto Front"))
	assert.True(t, strings.Contains(html, "NSGA-II Solutions"))
}

func TestPlotFrontRejectsEmptyResults(t *testing.T) {
	var buf bytes.Buffer
	err := PlotFront(&buf, nil, benchmarks.NewZDT1(4), "NSGA-II")
	assert.Error(t, err)
}

func TestPlotFrontRejectsNon2D(t *testing.T) {
	var buf bytes.Buffer
	results := []framework.ObjectiveSpacePoint{{1, 2, 3}}
	err := PlotFront(&buf, results, benchmarks.NewZDT1(4), "NSGA-II")
	assert.Error(t, err)
}
