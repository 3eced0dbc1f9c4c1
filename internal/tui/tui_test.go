package tui

import (
	"bytes"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/ddz/ddz"
	"github.com/lox/ddz/internal/randutil"
	"github.com/lox/ddz/internal/render"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	r := render.New(&bytes.Buffer{}, false, true)
	return New(ddz.NewFinder(), randutil.New(1), 17, r, logger)
}

func press(m *Model, msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEscape}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestExplorerDeals(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	assert.Equal(t, 17, m.Hand().Len())
	assert.Equal(t, 17, m.Next().Len())
	assert.Zero(t, m.Selection().Len())
	assert.Empty(t, m.Responses())

	first := m.Hand()
	press(m, runes("n"))
	assert.NotEqual(t, first.IDs(), m.Hand().IDs())
}

func TestExplorerAnswersSelection(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	press(m, space)
	sel := m.Selection()
	require.Equal(t, 1, sel.Len())
	assert.Equal(t, ddz.Single, sel.Shape())

	want, err := ddz.FindBeating(m.Next(), sel)
	require.NoError(t, err)
	assert.Equal(t, want, m.Responses())

	press(m, right, space)
	assert.Equal(t, 2, m.Selection().Len())

	press(m, runes("c"))
	assert.Zero(t, m.Selection().Len())
	assert.Empty(t, m.Responses())
}

func TestExplorerCursorStaysInHand(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	press(m, left, left)
	assert.Equal(t, 0, m.cursor)
	for i := 0; i < 40; i++ {
		press(m, right)
	}
	assert.Equal(t, 16, m.cursor)
}

func TestExplorerAnswersTypedTarget(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	press(m, tab, runes("3c"), enter)
	want, err := ddz.FindBeating(m.Hand(), ddz.MustHand(3))
	require.NoError(t, err)
	assert.Equal(t, want, m.Responses())

	// Typing q in the target box is text, not a quit.
	_, cmd := m.Update(runes("q"))
	assert.False(t, m.quitting)
	_ = cmd

	press(m, enter)
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "invalid card")
}

func TestExplorerQuit(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	_, cmd := m.Update(runes("q"))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestExplorerEscapeLeavesTargetPane(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	press(m, tab, runes("3c"))
	require.Equal(t, paneTarget, m.focusedPane)

	_, cmd := m.Update(esc)
	assert.False(t, m.quitting)
	assert.Nil(t, cmd)
	assert.Equal(t, paneHand, m.focusedPane)

	_, cmd = m.Update(esc)
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
}

func TestExplorerView(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	press(m, space)

	view := m.View()
	assert.Contains(t, view, "Deal #1")
	assert.Contains(t, view, "Selected:")
	assert.Contains(t, view, "Single")
	assert.Contains(t, view, "Next seat holds 17 cards")
}
