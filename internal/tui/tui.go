// Package tui is an interactive explorer over a dealt hand: select cards to
// see what they form and how the next seat could answer, or type a target
// and see every way your hand beats it.
package tui

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/ddz/ddz"
	"github.com/lox/ddz/internal/render"
)

const (
	paneHand = iota
	paneTarget
)

// Model is the explorer's bubbletea model.
type Model struct {
	logger   *log.Logger
	finder   *ddz.Finder
	render   *render.Renderer
	rng      *rand.Rand
	handSize int

	// Deal state
	deal     int
	hand     ddz.Hand
	next     ddz.Hand
	cards    []ddz.Card
	selected []bool
	cursor   int

	// What the list pane currently shows
	title     string
	responses [][]ddz.Card
	err       error

	keys        keyMap
	help        help.Model
	list        viewport.Model
	targetInput textinput.Model
	focusedPane int

	width    int
	height   int
	quitting bool
}

// New creates an explorer and deals the first hands.
func New(finder *ddz.Finder, rng *rand.Rand, handSize int, r *render.Renderer, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "target to beat, e.g. 9c 9d"
	ti.Prompt = "> "
	ti.CharLimit = 120
	ti.Width = 60

	m := &Model{
		logger:      logger.WithPrefix("tui"),
		finder:      finder,
		render:      r,
		rng:         rng,
		handSize:    handSize,
		keys:        defaultKeys(),
		help:        help.New(),
		list:        viewport.New(60, 10),
		targetInput: ti,
		focusedPane: paneHand,
	}
	m.dealHands()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.Width = max(msg.Width-2, 1)
		m.list.Height = max(msg.Height-12, 3)
		return m, nil

	case tea.KeyMsg:
		// esc leaves the target pane rather than quitting.
		if m.focusedPane == paneTarget && key.Matches(msg, m.keys.Back) {
			m.toggleFocus()
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) && (m.focusedPane == paneHand || msg.Type != tea.KeyRunes) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Focus) {
			m.toggleFocus()
			return m, nil
		}
		if m.focusedPane == paneTarget {
			return m.updateTarget(msg)
		}
		return m.updateHand(msg)
	}
	return m, nil
}

func (m *Model) updateHand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.cards)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if len(m.cards) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
			m.answerSelection()
		}
	case key.Matches(msg, m.keys.Clear):
		clear(m.selected)
		m.answerSelection()
	case key.Matches(msg, m.keys.Deal):
		m.dealHands()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.list.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.list.ScrollDown(1)
	}
	return m, nil
}

func (m *Model) updateTarget(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		m.answerTarget(strings.TrimSpace(m.targetInput.Value()))
		return m, nil
	}
	var cmd tea.Cmd
	m.targetInput, cmd = m.targetInput.Update(msg)
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focusedPane == paneHand {
		m.focusedPane = paneTarget
		m.targetInput.Focus()
		return
	}
	m.focusedPane = paneHand
	m.targetInput.Blur()
	m.answerSelection()
}

func (m *Model) dealHands() {
	hands, err := ddz.NewDeck(m.rng).Split(m.handSize)
	if err != nil {
		m.err = err
		return
	}
	m.deal++
	m.hand = hands[0]
	m.next = ddz.Hand{}
	if len(hands) > 1 {
		m.next = hands[1]
	}
	m.cards = m.hand.Cards()
	m.selected = make([]bool, len(m.cards))
	m.cursor = 0
	m.logger.Debug("Dealt hands", "deal", m.deal, "hand", m.hand, "next", m.next.Len())
	m.answerSelection()
}

// Selection returns the currently selected cards as a hand.
func (m *Model) Selection() ddz.Hand {
	var cards []ddz.Card
	for i, c := range m.cards {
		if m.selected[i] {
			cards = append(cards, c)
		}
	}
	h, _ := ddz.HandOf(cards...)
	return h
}

// Hand returns the explorer's own hand.
func (m *Model) Hand() ddz.Hand { return m.hand }

// Next returns the next seat's hand.
func (m *Model) Next() ddz.Hand { return m.next }

// Responses returns the candidates currently listed.
func (m *Model) Responses() [][]ddz.Card { return m.responses }

// answerSelection lists how the next seat can beat the selection.
func (m *Model) answerSelection() {
	m.err = nil
	sel := m.Selection()
	m.title = "Next seat's answers"
	m.responses = nil
	if sel.Len() > 0 {
		m.responses, m.err = m.finder.FindBeating(m.next, sel)
	}
	m.refreshList()
}

// answerTarget lists how our hand can beat a typed target.
func (m *Model) answerTarget(input string) {
	m.err = nil
	m.title = "Your answers"
	m.responses = nil
	target, err := ddz.ParseHand(input)
	if err != nil {
		m.err = err
		m.refreshList()
		return
	}
	m.responses, m.err = m.finder.FindBeating(m.hand, target)
	m.logger.Debug("Answered target", "target", target, "candidates", len(m.responses))
	m.refreshList()
}

func (m *Model) refreshList() {
	if m.err != nil {
		m.list.SetContent(m.render.Bad.Render(m.err.Error()))
		return
	}
	m.list.SetContent(m.render.Candidates(m.responses))
	m.list.GotoTop()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.render.Header.Render(fmt.Sprintf("Deal #%d", m.deal)))
	b.WriteString("\n\n")
	b.WriteString(m.renderHand())
	b.WriteString("\n")

	sel := m.Selection()
	if sel.Len() > 0 {
		fmt.Fprintf(&b, "Selected: %s\n", m.render.Hand(sel))
	} else {
		b.WriteString(m.render.Muted.Render("Nothing selected") + "\n")
	}
	fmt.Fprintf(&b, "Next seat holds %d cards\n\n", m.next.Len())

	b.WriteString(m.targetInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.render.Shape.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderHand draws every card over a marker row: ^ for the cursor, * for
// selected cards.
func (m *Model) renderHand() string {
	cell := lipgloss.NewStyle().Width(4)
	cols := make([]string, len(m.cards))
	for i, c := range m.cards {
		marker := " "
		switch {
		case i == m.cursor && m.focusedPane == paneHand:
			marker = "^"
		case m.selected[i]:
			marker = "*"
		}
		if i == m.cursor && m.selected[i] && m.focusedPane == paneHand {
			marker = "^*"
		}
		cols[i] = lipgloss.JoinVertical(lipgloss.Left, cell.Render(m.render.Card(c)), cell.Render(marker))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
