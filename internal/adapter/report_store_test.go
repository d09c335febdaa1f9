package adapter

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

func sampleReport(id string, created time.Time) m.SuiteReport {
	return m.SuiteReport{
		ID:         id,
		CreatedAt:  created,
		Mutator:    m.DefaultReplacementConfig(),
		Model:      "tokens",
		Similarity: "jaccard",
		Summary: m.SuiteSummary{
			Cases:      2,
			NonMutated: 1,
			Average:    0.8,
			Median:     0.8,
			Min:        0.8,
			Max:        0.8,
		},
		Cases: []m.CaseReport{
			{
				Index:        0,
				Input:        "the quick brown fox",
				Variants:     []string{"the speedy brown fox"},
				Similarities: []float64{0.8},
				Average:      0.8,
			},
			{Index: 1, Input: "of the", Average: math.NaN()},
		},
	}
}

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore()
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))

	older := sampleReport("older", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	newer := sampleReport("newer", time.Date(2026, 2, 2, 3, 4, 5, 0, time.UTC))

	newerPath, err := store.SaveReport(ctx, dir, newer)
	require.NoError(t, err)
	assert.Equal(t, "20260202T030405-newer.yaml", filepath.Base(string(newerPath)))

	_, err = store.SaveReport(ctx, dir, older)
	require.NoError(t, err)

	reports, err := store.LoadReports(ctx, dir)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "older", reports[0].ID)
	assert.Equal(t, "newer", reports[1].ID)
	assert.Equal(t, newer.Mutator, reports[1].Mutator)
	assert.Equal(t, newer.Cases[0], reports[1].Cases[0])
	assert.True(t, math.IsNaN(reports[1].Cases[1].Average))
	assert.Empty(t, reports[1].Cases[1].Variants)
}

func TestLocalReportStore_LoadMissingDir(t *testing.T) {
	reports, err := NewReportStore().LoadReports(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestLocalReportStore_SkipsForeignFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewReportStore()

	_, err := store.SaveReport(ctx, m.Path(dir), sampleReport("kept", time.Now()))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a report"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("cases: [\n"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o750))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.yaml"), filepath.Join(dir, "dangling.yaml")))

	reports, err := store.LoadReports(ctx, m.Path(dir))
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "kept", reports[0].ID)
}

func TestLocalReportStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReportStore().SaveReport(ctx, m.Path(t.TempDir()), sampleReport("x", time.Now()))
	require.ErrorIs(t, err, context.Canceled)
}
