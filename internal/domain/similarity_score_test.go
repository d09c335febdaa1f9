package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutatest.dev/pkg/mutatest/internal/model"
	pkg "mutatest.dev/pkg/mutatest/pkg"
)

func TestSummarize(t *testing.T) {
	summary := summarize([]float64{0.2, 0.9, 0.4}, 5, 2)

	assert.Equal(t, 5, summary.Cases)
	assert.Equal(t, 2, summary.NonMutated)
	assert.InDelta(t, 0.5, summary.Average, 1e-9)
	assert.InDelta(t, 0.4, summary.Median, 1e-9)
	assert.InDelta(t, 0.2, summary.Min, 1e-9)
	assert.InDelta(t, 0.9, summary.Max, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	summary := summarize(nil, 3, 3)

	assert.Equal(t, 3, summary.Cases)
	assert.Equal(t, 3, summary.NonMutated)
	assert.True(t, math.IsNaN(summary.Average))
	assert.True(t, math.IsNaN(summary.Median))
	assert.True(t, math.IsNaN(summary.Min))
	assert.True(t, math.IsNaN(summary.Max))
}

func TestSummaryFromReports(t *testing.T) {
	spill, err := pkg.NewFileSpill[m.CaseReport](t.TempDir())
	require.NoError(t, err)

	t.Cleanup(func() { _ = spill.Close() })

	require.NoError(t, spill.AppendBatch([]m.CaseReport{
		{Index: 0, Input: "a b", Variants: []string{"a"}, Similarities: []float64{0.5}, Average: 0.5},
		{Index: 1, Input: "c", Average: math.NaN()},
		{Index: 2, Input: "d e", Variants: []string{"d", "e"}, Similarities: []float64{1, 0.8}, Average: 0.9},
	}))

	summary, err := summaryFromReports(spill)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Cases)
	assert.Equal(t, 1, summary.NonMutated)
	assert.InDelta(t, 0.7, summary.Average, 1e-9)
	assert.InDelta(t, 0.5, summary.Min, 1e-9)
	assert.InDelta(t, 0.9, summary.Max, 1e-9)
}
