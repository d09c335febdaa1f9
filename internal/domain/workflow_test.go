package domain_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mutatest.dev/pkg/mutatest/internal/adapter"
	adaptermocks "mutatest.dev/pkg/mutatest/internal/adapter/mocks"
	controllermocks "mutatest.dev/pkg/mutatest/internal/controller/mocks"
	"mutatest.dev/pkg/mutatest/internal/domain"
	m "mutatest.dev/pkg/mutatest/internal/model"
)

func dropoutConfig(variants int) m.MutatorConfig {
	config := m.DefaultDropoutConfig()
	config.NumVariants = variants

	return config
}

func writeSentences(t *testing.T, lines string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sentences.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))

	return m.Path(path)
}

func TestWorkflow_Mutate(t *testing.T) {
	tests := []struct {
		name  string
		diff  bool
		setup func(ui *controllermocks.MockUI)
	}{
		{
			name: "plain",
			setup: func(ui *controllermocks.MockUI) {
				ui.EXPECT().Start(mock.Anything).Return(nil)
			},
		},
		{
			name: "with diff",
			diff: true,
			setup: func(ui *controllermocks.MockUI) {
				ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := adaptermocks.NewMockReportStore(t)
			ui := controllermocks.NewMockUI(t)
			tt.setup(ui)
			ui.EXPECT().DisplayVariants(mock.Anything, "the cat sat", []string{"the sat", "the cat"}).Return(nil)
			ui.EXPECT().Close(mock.Anything).Return()

			wf := domain.NewWorkflow(adapter.LoadLexicon, store, ui)

			err := wf.Mutate(context.Background(), domain.MutateArgs{
				Sentence: "the cat sat",
				Mutator:  dropoutConfig(5),
				Diff:     tt.diff,
			})
			require.NoError(t, err)
		})
	}
}

func TestWorkflow_MutateErrors(t *testing.T) {
	t.Run("lexicon", func(t *testing.T) {
		loadErr := errors.New("no lexicon")
		loader := func(context.Context, []m.Path) (adapter.LexicalAnnotator, error) {
			return nil, loadErr
		}

		wf := domain.NewWorkflow(loader, adaptermocks.NewMockReportStore(t), controllermocks.NewMockUI(t))

		err := wf.Mutate(context.Background(), domain.MutateArgs{Sentence: "a cat", Mutator: dropoutConfig(1)})
		require.ErrorIs(t, err, loadErr)
	})

	t.Run("configuration", func(t *testing.T) {
		config := m.DefaultReplacementConfig()
		config.Strategy = "weighted"

		wf := domain.NewWorkflow(adapter.LoadLexicon, adaptermocks.NewMockReportStore(t), controllermocks.NewMockUI(t))

		err := wf.Mutate(context.Background(), domain.MutateArgs{Sentence: "a cat", Mutator: config})
		require.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("missing lexicon shard", func(t *testing.T) {
		wf := domain.NewWorkflow(adapter.LoadLexicon, adaptermocks.NewMockReportStore(t), controllermocks.NewMockUI(t))

		err := wf.Mutate(context.Background(), domain.MutateArgs{
			Sentence: "a cat",
			Lexicon:  []m.Path{m.Path(filepath.Join(t.TempDir(), "missing.yaml"))},
			Mutator:  dropoutConfig(1),
		})
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestWorkflow_Run(t *testing.T) {
	for _, threads := range []int{1, 4} {
		t.Run(fmt.Sprintf("threads=%d", threads), func(t *testing.T) {
			input := writeSentences(t, "the cat sat\n\nthe of\n")
			reports := m.Path(t.TempDir())

			store := adaptermocks.NewMockReportStore(t)
			ui := controllermocks.NewMockUI(t)

			var saved m.SuiteReport

			ui.EXPECT().Start(mock.Anything).Return(nil)
			ui.EXPECT().DisplayCase(mock.Anything, mock.MatchedBy(func(report m.CaseReport) bool {
				return report.Index == 0 && report.Input == "the cat sat"
			})).Return().Once()
			ui.EXPECT().DisplayCase(mock.Anything, mock.MatchedBy(func(report m.CaseReport) bool {
				return report.Index == 1 && !report.Mutated()
			})).Return().Once()
			store.EXPECT().SaveReport(mock.Anything, reports, mock.Anything).
				Run(func(_ context.Context, _ m.Path, report m.SuiteReport) { saved = report }).
				Return(reports+"/report.yaml", nil)
			ui.EXPECT().DisplaySuite(mock.Anything, mock.Anything).
				Run(func(_ context.Context, report m.SuiteReport) {
					assert.Equal(t, saved.ID, report.ID)
				}).
				Return(nil)
			ui.EXPECT().Close(mock.Anything).Return()

			wf := domain.NewWorkflow(adapter.LoadLexicon, store, ui)

			err := wf.Run(context.Background(), domain.RunArgs{
				Input:      input,
				Reports:    reports,
				Mutator:    dropoutConfig(1),
				Model:      domain.ModelTokens,
				Similarity: domain.SimilarityJaccard,
				Threads:    threads,
				SpillDir:   t.TempDir(),
			})
			require.NoError(t, err)

			assert.NotEmpty(t, saved.ID)
			assert.WithinDuration(t, time.Now().UTC(), saved.CreatedAt, time.Minute)
			assert.Equal(t, domain.ModelTokens, saved.Model)
			assert.Equal(t, domain.SimilarityJaccard, saved.Similarity)
			assert.Equal(t, m.MutatorDropout, saved.Mutator.Kind)
			require.Len(t, saved.Cases, 2)
			assert.Equal(t, []string{"the sat"}, saved.Cases[0].Variants)
			assert.InDelta(t, 2.0/3, saved.Cases[0].Average, 1e-9)
			assert.Equal(t, 2, saved.Summary.Cases)
			assert.Equal(t, 1, saved.Summary.NonMutated)
			assert.InDelta(t, 2.0/3, saved.Summary.Average, 1e-9)
		})
	}
}

func TestWorkflow_RunErrors(t *testing.T) {
	input := writeSentences(t, "the cat sat\n")

	tests := []struct {
		name string
		args domain.RunArgs
		want error
	}{
		{
			name: "missing input",
			args: domain.RunArgs{Input: m.Path(filepath.Join(t.TempDir(), "missing.txt")), Mutator: dropoutConfig(1), Model: domain.ModelTokens, Similarity: domain.SimilarityJaccard},
			want: os.ErrNotExist,
		},
		{
			name: "unknown model",
			args: domain.RunArgs{Input: input, Mutator: dropoutConfig(1), Model: "bert", Similarity: domain.SimilarityJaccard},
			want: domain.ErrConfiguration,
		},
		{
			name: "unknown similarity",
			args: domain.RunArgs{Input: input, Mutator: dropoutConfig(1), Model: domain.ModelBag, Similarity: "cosine"},
			want: domain.ErrConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf := domain.NewWorkflow(adapter.LoadLexicon, adaptermocks.NewMockReportStore(t), controllermocks.NewMockUI(t))

			err := wf.Run(context.Background(), tt.args)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWorkflow_RunSaveError(t *testing.T) {
	saveErr := errors.New("disk full")

	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().DisplayCase(mock.Anything, mock.Anything).Return()
	ui.EXPECT().Close(mock.Anything).Return()
	store.EXPECT().SaveReport(mock.Anything, mock.Anything, mock.Anything).Return("", saveErr)

	wf := domain.NewWorkflow(adapter.LoadLexicon, store, ui)

	err := wf.Run(context.Background(), domain.RunArgs{
		Input:      writeSentences(t, "the cat sat\n"),
		Reports:    m.Path(t.TempDir()),
		Mutator:    dropoutConfig(1),
		Model:      domain.ModelTokens,
		Similarity: domain.SimilarityDice,
		SpillDir:   t.TempDir(),
	})
	require.ErrorIs(t, err, saveErr)
}

func TestWorkflow_View(t *testing.T) {
	reports := []m.SuiteReport{
		{ID: "older", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "newer", CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	t.Run("list", func(t *testing.T) {
		store := adaptermocks.NewMockReportStore(t)
		ui := controllermocks.NewMockUI(t)

		store.EXPECT().LoadReports(mock.Anything, m.Path("reports")).Return(reports, nil)
		ui.EXPECT().Start(mock.Anything).Return(nil)
		ui.EXPECT().DisplayReports(mock.Anything, reports).Return(nil)
		ui.EXPECT().Close(mock.Anything).Return()

		wf := domain.NewWorkflow(adapter.LoadLexicon, store, ui)
		require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Reports: "reports"}))
	})

	t.Run("latest", func(t *testing.T) {
		store := adaptermocks.NewMockReportStore(t)
		ui := controllermocks.NewMockUI(t)

		store.EXPECT().LoadReports(mock.Anything, m.Path("reports")).Return(reports, nil)
		ui.EXPECT().Start(mock.Anything).Return(nil)
		ui.EXPECT().DisplaySuite(mock.Anything, reports[1]).Return(nil)
		ui.EXPECT().Close(mock.Anything).Return()

		wf := domain.NewWorkflow(adapter.LoadLexicon, store, ui)
		require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Reports: "reports", Latest: true}))
	})

	t.Run("latest without reports", func(t *testing.T) {
		store := adaptermocks.NewMockReportStore(t)
		ui := controllermocks.NewMockUI(t)

		store.EXPECT().LoadReports(mock.Anything, m.Path("reports")).Return(nil, nil)
		ui.EXPECT().Start(mock.Anything).Return(nil)
		ui.EXPECT().DisplayReports(mock.Anything, []m.SuiteReport(nil)).Return(nil)
		ui.EXPECT().Close(mock.Anything).Return()

		wf := domain.NewWorkflow(adapter.LoadLexicon, store, ui)
		require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Reports: "reports", Latest: true}))
	})

	t.Run("load error", func(t *testing.T) {
		loadErr := errors.New("permission denied")

		store := adaptermocks.NewMockReportStore(t)
		store.EXPECT().LoadReports(mock.Anything, m.Path("reports")).Return(nil, loadErr)

		wf := domain.NewWorkflow(adapter.LoadLexicon, store, controllermocks.NewMockUI(t))
		require.ErrorIs(t, wf.View(context.Background(), domain.ViewArgs{Reports: "reports"}), loadErr)
	})
}
