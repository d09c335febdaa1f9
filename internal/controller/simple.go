package controller

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

const notAvailable = "n/a"

// SimpleUI implements UI using plain tables written to the command output.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.config = StartConfig{}
	for _, option := range options {
		option(&s.config)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayVariants prints the variants of sentence as a numbered table.
func (s *SimpleUI) DisplayVariants(ctx context.Context, sentence string, variants []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Original: %s\n\n", sentence)

	if len(variants) == 0 {
		s.printf("No variants could be generated.\n")
		return nil
	}

	s.printf("%s", renderVariantsTable(variants))

	if s.config.diff {
		for i, variant := range variants {
			s.printf("\n#%d\n%s", i+1, wordDiff(sentence, variant))
		}
	}

	return nil
}

// DisplayCase prints a one line summary of a finished test case.
func (s *SimpleUI) DisplayCase(ctx context.Context, report m.CaseReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Case %d: %d variant(s), average similarity %s\n", report.Index+1, len(report.Variants), formatScore(report.Average))
}

// DisplaySuite prints per case results followed by the aggregate summary.
func (s *SimpleUI) DisplaySuite(ctx context.Context, report m.SuiteReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s\n%s", suiteHeader(report), renderSuiteTable(report))

	return nil
}

// DisplayReports lists saved suite reports.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.SuiteReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		s.printf("No reports found.\n")
		return nil
	}

	s.printf("%s", renderReportsTable(reports))

	return nil
}

func suiteHeader(report m.SuiteReport) string {
	config := report.Mutator

	var mutator string
	if config.Kind == m.MutatorDropout {
		mutator = fmt.Sprintf("dropout k=%d", config.NumDropouts)
	} else {
		mutator = fmt.Sprintf("replacement k=%d strategy=%s", config.NumReplacements, config.Strategy)
	}

	return fmt.Sprintf("Report %s: %s variants=%d seed=%d model=%s similarity=%s",
		report.ID, mutator, config.NumVariants, config.RandomSeed, report.Model, report.Similarity)
}

func renderVariantsTable(variants []string) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"#", "Variant"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for i, variant := range variants {
		table.Append([]string{fmt.Sprintf("%d", i+1), variant})
	}

	table.Render()

	return buffer.String()
}

func renderSuiteTable(report m.SuiteReport) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"#", "Input", "Variants", "Similarity"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	for _, c := range report.Cases {
		table.Append([]string{fmt.Sprintf("%d", c.Index+1), truncate(c.Input, 60), fmt.Sprintf("%d", len(c.Variants)), formatScore(c.Average)})
	}

	summary := report.Summary
	table.SetFooter([]string{
		"",
		fmt.Sprintf("cases %d, non-mutated %d", summary.Cases, summary.NonMutated),
		fmt.Sprintf("min %s max %s", formatScore(summary.Min), formatScore(summary.Max)),
		fmt.Sprintf("mean %s", formatScore(summary.Average)),
	})

	table.Render()

	return buffer.String()
}

func renderReportsTable(reports []m.SuiteReport) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"ID", "Created", "Mutator", "Cases", "Similarity"})
	table.SetBorder(false)

	for _, report := range reports {
		table.Append([]string{
			report.ID,
			report.CreatedAt.Format("2006-01-02 15:04:05"),
			string(report.Mutator.Kind),
			fmt.Sprintf("%d", report.Summary.Cases),
			formatScore(report.Summary.Average),
		})
	}

	table.Render()

	return buffer.String()
}

// wordDiff renders a unified diff with one word per line.
func wordDiff(original, variant string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.Join(strings.Fields(original), "\n") + "\n"),
		B:        difflib.SplitLines(strings.Join(strings.Fields(variant), "\n") + "\n"),
		FromFile: "original",
		ToFile:   "variant",
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return err.Error() + "\n"
	}

	return text
}

func formatScore(score float64) string {
	if math.IsNaN(score) {
		return notAvailable
	}

	return fmt.Sprintf("%.3f", score)
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit-1]) + "…"
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
