package controller

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_ShortContentIsPrinted(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewTUI(cmd)
	require.NoError(t, ui.Start(context.Background(), WithDiff()))

	require.NoError(t, ui.DisplayVariants(context.Background(), "the cat sat", []string{"the feline sat"}))

	got := out.String()
	assert.Contains(t, got, "Mutatest - Variants")
	assert.Contains(t, got, "the feline sat")
	assert.Contains(t, got, "+feline")
}

func TestTUI_DisplaySuite(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewTUI(cmd)

	require.NoError(t, ui.DisplaySuite(context.Background(), sampleSuite()))

	got := out.String()
	assert.Contains(t, got, "Mutatest - Suite Report")
	assert.Contains(t, got, "no variants")
	assert.Contains(t, got, "2 case(s), 1 without variants")
}

func TestTUI_DisplayReportsEmpty(t *testing.T) {
	cmd, out := newTestCommand()

	require.NoError(t, NewTUI(cmd).DisplayReports(context.Background(), nil))
	assert.Contains(t, out.String(), "No reports found")
}

func TestPagerModel(t *testing.T) {
	content := strings.Repeat("line\n", 100)
	model := newPagerModel("Variants", content)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	pager := updated.(pagerModel)
	assert.Equal(t, 6, pager.viewport.Height)
	assert.Contains(t, pager.View(), "Variants")

	updated, _ = pager.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	pager = updated.(pagerModel)
	assert.True(t, pager.viewport.AtBottom())

	updated, _ = pager.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	pager = updated.(pagerModel)
	assert.True(t, pager.viewport.AtTop())

	updated, cmd := pager.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	pager = updated.(pagerModel)
	assert.NotNil(t, cmd)
	assert.Empty(t, pager.View())
}
