package domain

import (
	"math"

	"github.com/montanaflynn/stats"

	m "mutatest.dev/pkg/mutatest/internal/model"
	pkg "mutatest.dev/pkg/mutatest/pkg"
)

// summarize aggregates per-case averages. Statistics of an empty list are NaN.
func summarize(averages []float64, cases, nonMutated int) m.SuiteSummary {
	summary := m.SuiteSummary{
		Cases:      cases,
		NonMutated: nonMutated,
		Average:    math.NaN(),
		Median:     math.NaN(),
		Min:        math.NaN(),
		Max:        math.NaN(),
	}

	if len(averages) == 0 {
		return summary
	}

	summary.Average = meanOrNaN(averages)

	if median, err := stats.Median(averages); err == nil {
		summary.Median = median
	}

	if lowest, err := stats.Min(averages); err == nil {
		summary.Min = lowest
	}

	if highest, err := stats.Max(averages); err == nil {
		summary.Max = highest
	}

	return summary
}

// summaryFromReports aggregates spilled case reports. Cases without variants
// count as non-mutated and do not contribute to the statistics.
func summaryFromReports(reports pkg.FileSpill[m.CaseReport]) (m.SuiteSummary, error) {
	averages := make([]float64, 0, reports.Len())
	nonMutated := 0

	err := reports.Range(func(_ uint64, report m.CaseReport) error {
		if !report.Mutated() {
			nonMutated++
			return nil
		}

		if len(report.Similarities) > 0 {
			averages = append(averages, report.Average)
		}

		return nil
	})
	if err != nil {
		return m.SuiteSummary{}, err
	}

	return summarize(averages, int(reports.Len()), nonMutated), nil
}
