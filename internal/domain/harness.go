package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

// Stage is the lifecycle position of a TestCase.
type Stage int

// Stages run strictly in this order.
const (
	StageCreated Stage = iota
	StageVariantsComputed
	StageOutputsComputed
	StageSimilaritiesComputed
)

func (s Stage) String() string {
	switch s {
	case StageCreated:
		return "created"
	case StageVariantsComputed:
		return "variants computed"
	case StageOutputsComputed:
		return "outputs computed"
	case StageSimilaritiesComputed:
		return "similarities computed"
	}

	return fmt.Sprintf("stage(%d)", int(s))
}

// ModelFunc runs the model under test on a sentence.
type ModelFunc[O any] func(sentence string) (O, error)

// SimilarityFunc scores how alike two model outputs are.
type SimilarityFunc[O any] func(original, variant O) (float64, error)

// TestCase tracks one input sentence through variants, model outputs and
// similarities.
type TestCase[O any] struct {
	input          string
	stage          Stage
	variants       []string
	outputOriginal O
	outputVariants []O
	similarities   []float64
}

// NewTestCase creates a test case for input.
func NewTestCase[O any](input string) *TestCase[O] {
	return &TestCase[O]{input: input}
}

// Input returns the original sentence.
func (tc *TestCase[O]) Input() string { return tc.input }

// Stage returns the last completed stage.
func (tc *TestCase[O]) Stage() Stage { return tc.stage }

// Variants returns the generated variant sentences.
func (tc *TestCase[O]) Variants() []string { return tc.variants }

// OriginalOutput returns the model output for the input sentence.
func (tc *TestCase[O]) OriginalOutput() O { return tc.outputOriginal }

// VariantOutputs returns the model outputs for the variants, in variant order.
func (tc *TestCase[O]) VariantOutputs() []O { return tc.outputVariants }

// Similarities returns the pairwise scores, in variant order.
func (tc *TestCase[O]) Similarities() []float64 { return tc.similarities }

// ComputeVariants runs mutator on the input. Running it again discards the
// outputs and similarities of the previous pass.
func (tc *TestCase[O]) ComputeVariants(mutator Mutator, seed int64) error {
	variants, err := mutator.Mutate(tc.input, seed)
	if err != nil {
		return fmt.Errorf("compute variants: %w", err)
	}

	var zero O

	tc.variants = variants
	tc.outputOriginal = zero
	tc.outputVariants = nil
	tc.similarities = nil
	tc.stage = StageVariantsComputed

	return nil
}

// ComputeModelOutputs runs model once on the input and once per variant.
func (tc *TestCase[O]) ComputeModelOutputs(model ModelFunc[O]) error {
	if tc.stage < StageVariantsComputed {
		return fmt.Errorf("%w: compute variants before model outputs", ErrSequence)
	}

	original, err := model(tc.input)
	if err != nil {
		return fmt.Errorf("model output for original: %w", err)
	}

	outputs := make([]O, 0, len(tc.variants))

	for i, variant := range tc.variants {
		output, err := model(variant)
		if err != nil {
			return fmt.Errorf("model output for variant %d: %w", i, err)
		}

		outputs = append(outputs, output)
	}

	tc.outputOriginal = original
	tc.outputVariants = outputs
	tc.similarities = nil
	tc.stage = StageOutputsComputed

	return nil
}

// ComputeSimilarities scores the original output against each variant output.
func (tc *TestCase[O]) ComputeSimilarities(similarity SimilarityFunc[O]) error {
	if tc.stage < StageOutputsComputed {
		return fmt.Errorf("%w: compute model outputs before similarities", ErrSequence)
	}

	scores := make([]float64, 0, len(tc.outputVariants))

	for i, output := range tc.outputVariants {
		score, err := similarity(tc.outputOriginal, output)
		if err != nil {
			return fmt.Errorf("similarity for variant %d: %w", i, err)
		}

		scores = append(scores, score)
	}

	tc.similarities = scores
	tc.stage = StageSimilaritiesComputed

	return nil
}

// AverageSimilarity is the mean of the scores, NaN when there are none.
func (tc *TestCase[O]) AverageSimilarity() float64 {
	return meanOrNaN(tc.similarities)
}

// Report snapshots the case for persistence.
func (tc *TestCase[O]) Report(index int) m.CaseReport {
	return m.CaseReport{
		Index:        index,
		Input:        tc.input,
		Variants:     append([]string(nil), tc.variants...),
		Similarities: append([]float64(nil), tc.similarities...),
		Average:      tc.AverageSimilarity(),
	}
}

// SuiteOption configures a TestSuite.
type SuiteOption[O any] func(*TestSuite[O])

// WithCaseObserver registers a callback invoked after each case finishes all
// stages. An observer error stops the run.
func WithCaseObserver[O any](observer func(index int, tc *TestCase[O]) error) SuiteOption[O] {
	return func(s *TestSuite[O]) {
		s.observers = append(s.observers, observer)
	}
}

// TestSuite runs test cases sharing one mutator, model, similarity and seed.
type TestSuite[O any] struct {
	cases      []*TestCase[O]
	mutator    Mutator
	model      ModelFunc[O]
	similarity SimilarityFunc[O]
	seed       int64
	observers  []func(int, *TestCase[O]) error
}

// NewTestSuite creates one test case per input, keeping input order.
func NewTestSuite[O any](inputs []string, mutator Mutator, model ModelFunc[O], similarity SimilarityFunc[O], seed int64, options ...SuiteOption[O]) *TestSuite[O] {
	suite := &TestSuite[O]{
		cases:      make([]*TestCase[O], 0, len(inputs)),
		mutator:    mutator,
		model:      model,
		similarity: similarity,
		seed:       seed,
	}

	for _, input := range inputs {
		suite.cases = append(suite.cases, NewTestCase[O](input))
	}

	for _, option := range options {
		option(suite)
	}

	return suite
}

// Cases returns the test cases in insertion order.
func (s *TestSuite[O]) Cases() []*TestCase[O] { return s.cases }

// Run takes every case through all stages, one case at a time.
func (s *TestSuite[O]) Run() error {
	for i, tc := range s.cases {
		if err := s.runCase(tc); err != nil {
			slog.Error("Test case failed", "index", i, "input", tc.Input(), "error", err)
			return fmt.Errorf("test case %d: %w", i, err)
		}

		for _, observer := range s.observers {
			if err := observer(i, tc); err != nil {
				return fmt.Errorf("observe test case %d: %w", i, err)
			}
		}
	}

	return nil
}

// RunConcurrently takes the cases through all stages on up to threads
// goroutines. The model and similarity callbacks must be safe for concurrent
// use. Observers run afterwards in case order. threads <= 1 is the same as Run.
func (s *TestSuite[O]) RunConcurrently(ctx context.Context, threads int) error {
	if threads <= 1 {
		return s.Run()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, tc := range s.cases {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			if err := s.runCase(tc); err != nil {
				slog.Error("Test case failed", "index", i, "input", tc.Input(), "error", err)
				return fmt.Errorf("test case %d: %w", i, err)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return s.notify()
}

func (s *TestSuite[O]) notify() error {
	for i, tc := range s.cases {
		for _, observer := range s.observers {
			if err := observer(i, tc); err != nil {
				return fmt.Errorf("observe test case %d: %w", i, err)
			}
		}
	}

	return nil
}

func (s *TestSuite[O]) runCase(tc *TestCase[O]) error {
	if err := tc.ComputeVariants(s.mutator, s.seed); err != nil {
		return err
	}

	if err := tc.ComputeModelOutputs(s.model); err != nil {
		return err
	}

	return tc.ComputeSimilarities(s.similarity)
}

// NonMutated counts the cases whose mutator returned no variants.
func (s *TestSuite[O]) NonMutated() int {
	count := 0

	for _, tc := range s.cases {
		if tc.Stage() >= StageVariantsComputed && len(tc.Variants()) == 0 {
			count++
		}
	}

	return count
}

// AverageSimilarity is the mean of the per-case averages. Cases without
// variants are skipped; NaN means no case was scored.
func (s *TestSuite[O]) AverageSimilarity() float64 {
	return meanOrNaN(s.caseAverages())
}

// Scored reports whether at least one case contributes to AverageSimilarity.
func (s *TestSuite[O]) Scored() bool {
	return len(s.caseAverages()) > 0
}

// Summary aggregates the suite for reporting.
func (s *TestSuite[O]) Summary() m.SuiteSummary {
	return summarize(s.caseAverages(), len(s.cases), s.NonMutated())
}

func (s *TestSuite[O]) caseAverages() []float64 {
	averages := make([]float64, 0, len(s.cases))

	for _, tc := range s.cases {
		if tc.Stage() < StageSimilaritiesComputed || len(tc.Similarities()) == 0 {
			continue
		}

		averages = append(averages, tc.AverageSimilarity())
	}

	return averages
}

func meanOrNaN(values []float64) float64 {
	mean, err := stats.Mean(values)
	if err != nil {
		return math.NaN()
	}

	return mean
}
