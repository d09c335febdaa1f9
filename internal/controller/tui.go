package controller

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

const (
	defaultPagerWidth  = 100
	defaultPagerHeight = 24
	// header and footer lines kept outside the viewport.
	pagerChrome = 4
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2)
	subtleStyle   = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("8"))
	goodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	badStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	addedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	variantNumber = lipgloss.NewStyle().Bold(true).Width(5).Align(lipgloss.Right)
)

// TUI implements UI with styled output, paging long content through Bubble Tea.
type TUI struct {
	output io.Writer
	config StartConfig
	height int
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{output: cmd.OutOrStdout(), height: defaultPagerHeight}
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.config = StartConfig{}
	for _, option := range options {
		option(&t.config)
	}

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close(_ context.Context) {}

// DisplayVariants shows the variants of sentence.
func (t *TUI) DisplayVariants(ctx context.Context, sentence string, variants []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Mutatest - Variants") + "\n\n")
	fmt.Fprintf(&b, "  %s %s\n\n", subtleStyle.Render("original:"), sentence)

	if len(variants) == 0 {
		b.WriteString(warnStyle.Render("  No variants could be generated.") + "\n")
		return t.show("Variants", b.String())
	}

	for i, variant := range variants {
		fmt.Fprintf(&b, "%s  %s\n", variantNumber.Render(fmt.Sprintf("%d.", i+1)), variant)

		if t.config.diff {
			b.WriteString(styledDiff(sentence, variant))
		}
	}

	return t.show("Variants", b.String())
}

// DisplayCase prints a progress line for a finished case.
func (t *TUI) DisplayCase(ctx context.Context, report m.CaseReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(t.output, "  %s %s %s\n",
		subtleStyle.Render(fmt.Sprintf("[%d]", report.Index+1)),
		truncate(report.Input, 60),
		scoreStyle(report.Average).Render(formatScore(report.Average)))
}

// DisplaySuite shows the results of a suite run.
func (t *TUI) DisplaySuite(ctx context.Context, report m.SuiteReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Mutatest - Suite Report") + "\n\n")
	b.WriteString(subtleStyle.Render("  "+suiteHeader(report)) + "\n\n")

	for _, c := range report.Cases {
		fmt.Fprintf(&b, "%s  %s\n", variantNumber.Render(fmt.Sprintf("%d.", c.Index+1)), c.Input)

		if !c.Mutated() {
			b.WriteString(subtleStyle.Render("       no variants") + "\n")
			continue
		}

		for i, variant := range c.Variants {
			fmt.Fprintf(&b, "       %s %s\n", scoreStyle(c.Similarities[i]).Render(formatScore(c.Similarities[i])), variant)
		}

		fmt.Fprintf(&b, "       %s %s\n", subtleStyle.Render("average"), scoreStyle(c.Average).Render(formatScore(c.Average)))
	}

	summary := report.Summary
	b.WriteString("\n")
	fmt.Fprintf(&b, "  📊 %d case(s), %d without variants\n", summary.Cases, summary.NonMutated)
	fmt.Fprintf(&b, "  📊 similarity mean %s median %s min %s max %s\n",
		scoreStyle(summary.Average).Render(formatScore(summary.Average)),
		formatScore(summary.Median), formatScore(summary.Min), formatScore(summary.Max))

	return t.show("Suite Report", b.String())
}

// DisplayReports lists saved suite reports.
func (t *TUI) DisplayReports(ctx context.Context, reports []m.SuiteReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Mutatest - Reports") + "\n\n")

	if len(reports) == 0 {
		b.WriteString("  📭 No reports found\n")
		return t.show("Reports", b.String())
	}

	for _, report := range reports {
		fmt.Fprintf(&b, "  %s  %s  %-11s %4d case(s)  %s\n",
			subtleStyle.Render(report.CreatedAt.Format("2006-01-02 15:04:05")),
			report.ID,
			report.Mutator.Kind,
			report.Summary.Cases,
			scoreStyle(report.Summary.Average).Render(formatScore(report.Summary.Average)))
	}

	return t.show("Reports", b.String())
}

// show prints short content directly and pages anything taller than the screen.
func (t *TUI) show(title, content string) error {
	if strings.Count(content, "\n") <= t.height-pagerChrome {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	program := tea.NewProgram(newPagerModel(title, content), tea.WithOutput(t.output), tea.WithAltScreen())
	_, err := program.Run()

	return err
}

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case math.IsNaN(score):
		return subtleStyle
	case score >= 0.8:
		return goodStyle
	case score >= 0.5:
		return warnStyle
	default:
		return badStyle
	}
}

func styledDiff(original, variant string) string {
	var b strings.Builder

	for _, line := range strings.Split(wordDiff(original, variant), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			continue
		case strings.HasPrefix(line, "+"):
			b.WriteString("         " + addedStyle.Render(line) + "\n")
		case strings.HasPrefix(line, "-"):
			b.WriteString("         " + removedStyle.Render(line) + "\n")
		}
	}

	return b.String()
}

// pagerModel is a scrollable Bubble Tea model around a viewport.
type pagerModel struct {
	title    string
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, content string) pagerModel {
	vp := viewport.New(defaultPagerWidth, defaultPagerHeight-pagerChrome)
	vp.SetContent(content)

	return pagerModel{title: title, viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChrome, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := subtleStyle.Render(fmt.Sprintf("  %s | %3.0f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		pm.title, pm.viewport.ScrollPercent()*100))

	return pm.viewport.View() + "\n\n" + footer + "\n"
}
