// Package controller provides output adapters for displaying variants and
// mutamorphic test results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	diff bool
}

// WithDiff renders a word level diff under every displayed variant.
func WithDiff() StartOption {
	return func(c *StartConfig) {
		c.diff = true
	}
}

// UI defines how variants, test cases and suite reports are displayed.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayVariants(ctx context.Context, sentence string, variants []string) error
	DisplayCase(ctx context.Context, report m.CaseReport)
	DisplaySuite(ctx context.Context, report m.SuiteReport) error
	DisplayReports(ctx context.Context, reports []m.SuiteReport) error
}

// NewUI returns the interactive TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
