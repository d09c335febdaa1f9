package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mutatest.dev/pkg/mutatest/internal/adapter"
	"mutatest.dev/pkg/mutatest/internal/controller"
	m "mutatest.dev/pkg/mutatest/internal/model"
	pkg "mutatest.dev/pkg/mutatest/pkg"
)

// AnnotatorLoader builds a ready LexicalAnnotator from extra lexicon shards.
type AnnotatorLoader func(ctx context.Context, paths []m.Path) (adapter.LexicalAnnotator, error)

// MutateArgs contains the arguments for mutating a single sentence.
type MutateArgs struct {
	Sentence string
	Lexicon  []m.Path
	Mutator  m.MutatorConfig
	Diff     bool
}

// RunArgs contains the arguments for running a mutamorphic test suite.
type RunArgs struct {
	Input      m.Path
	Reports    m.Path
	Lexicon    []m.Path
	Mutator    m.MutatorConfig
	Model      string
	Similarity string
	Threads    int
	SpillDir   string
}

// ViewArgs contains the arguments for viewing saved reports.
type ViewArgs struct {
	Reports m.Path
	Latest  bool
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Mutate(ctx context.Context, args MutateArgs) error
	Run(ctx context.Context, args RunArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	loadAnnotator AnnotatorLoader
	adapter.ReportStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	loadAnnotator AnnotatorLoader,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		loadAnnotator: loadAnnotator,
		ReportStore:   reportStore,
		UI:            ui,
	}
}

func (w *workflow) Mutate(ctx context.Context, args MutateArgs) error {
	mutator, _, err := w.newMutator(ctx, args.Lexicon, args.Mutator)
	if err != nil {
		return err
	}

	variants, err := mutator.Mutate(args.Sentence, args.Mutator.RandomSeed)
	if err != nil {
		return fmt.Errorf("mutate sentence: %w", err)
	}

	var options []controller.StartOption
	if args.Diff {
		options = append(options, controller.WithDiff())
	}

	if err := w.Start(ctx, options...); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	return w.DisplayVariants(ctx, args.Sentence, variants)
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	sentences, err := adapter.LoadSentences(args.Input)
	if err != nil {
		return fmt.Errorf("load sentences: %w", err)
	}

	mutator, annotator, err := w.newMutator(ctx, args.Lexicon, args.Mutator)
	if err != nil {
		return err
	}

	model, err := BuiltinModel(args.Model, annotator)
	if err != nil {
		return err
	}

	similarity, err := BuiltinSimilarity(args.Similarity)
	if err != nil {
		return err
	}

	spill, err := pkg.NewFileSpill[m.CaseReport](args.SpillDir)
	if err != nil {
		return fmt.Errorf("create case spill: %w", err)
	}
	defer func() { _ = spill.Close() }()

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	suite := NewTestSuite(sentences, mutator, model, similarity, args.Mutator.RandomSeed,
		WithCaseObserver(func(index int, tc *TestCase[[]string]) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			report := tc.Report(index)
			w.DisplayCase(ctx, report)

			return spill.Append(report)
		}))

	slog.Info("Running suite", "cases", len(sentences), "mutator", mutator.Config().Kind, "model", args.Model, "similarity", args.Similarity, "threads", args.Threads)

	if err := suite.RunConcurrently(ctx, args.Threads); err != nil {
		return fmt.Errorf("run suite: %w", err)
	}

	report, err := buildSuiteReport(spill, mutator.Config(), args.Model, args.Similarity)
	if err != nil {
		return err
	}

	path, err := w.SaveReport(ctx, args.Reports, report)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	slog.Info("Suite finished", "report", path, "average", report.Summary.Average, "non_mutated", report.Summary.NonMutated)

	return w.DisplaySuite(ctx, report)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	if args.Latest && len(reports) > 0 {
		return w.DisplaySuite(ctx, reports[len(reports)-1])
	}

	return w.DisplayReports(ctx, reports)
}

func (w *workflow) newMutator(ctx context.Context, lexicon []m.Path, config m.MutatorConfig) (Mutator, adapter.LexicalAnnotator, error) {
	annotator, err := w.loadAnnotator(ctx, lexicon)
	if err != nil {
		return nil, nil, fmt.Errorf("load lexicon: %w", err)
	}

	mutator, err := NewMutator(config, NewWordVariantModel(annotator))
	if err != nil {
		return nil, nil, err
	}

	return mutator, annotator, nil
}

func buildSuiteReport(cases pkg.FileSpill[m.CaseReport], config m.MutatorConfig, model, similarity string) (m.SuiteReport, error) {
	summary, err := summaryFromReports(cases)
	if err != nil {
		return m.SuiteReport{}, fmt.Errorf("summarize cases: %w", err)
	}

	report := m.SuiteReport{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Mutator:    config,
		Model:      model,
		Similarity: similarity,
		Summary:    summary,
		Cases:      make([]m.CaseReport, 0, cases.Len()),
	}

	err = cases.Range(func(_ uint64, c m.CaseReport) error {
		report.Cases = append(report.Cases, c)
		return nil
	})
	if err != nil {
		return m.SuiteReport{}, fmt.Errorf("collect cases: %w", err)
	}

	return report, nil
}
