// Package render formats cards, hands and response lists for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/ddz/ddz"
)

// Renderer holds the styles bound to one output.
type Renderer struct {
	lg       *lipgloss.Renderer
	showSuit bool

	red    lipgloss.Style
	black  lipgloss.Style
	joker  lipgloss.Style
	Header lipgloss.Style
	Shape  lipgloss.Style
	Muted  lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style
}

// New returns a renderer for w. With color disabled every style degrades to
// plain text regardless of what the terminal supports.
func New(w io.Writer, color, showSuit bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if !color {
		lg.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		lg:       lg,
		showSuit: showSuit,
		red:      lg.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		black:    lg.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		joker:    lg.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Header:   lg.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Bold(true).Padding(0, 1),
		Shape:    lg.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Muted:    lg.NewStyle().Foreground(lipgloss.Color("#626262")),
		Good:     lg.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
		Bad:      lg.NewStyle().Foreground(lipgloss.Color("#FFEAA7")),
	}
}

// Card renders one card.
func (r *Renderer) Card(c ddz.Card) string {
	text := c.Face()
	if r.showSuit {
		text = c.String()
	}

	switch {
	case c.Rank() >= ddz.RankLittleJoker:
		return r.joker.Render(text)
	case c.Suit().IsRed():
		return r.red.Render(text)
	default:
		return r.black.Render(text)
	}
}

// Cards renders cards separated by spaces.
func (r *Renderer) Cards(cards []ddz.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, " ")
}

// Hand renders a hand followed by its shape and value.
func (r *Renderer) Hand(h ddz.Hand) string {
	if h.Len() == 0 {
		return r.Muted.Render("(no cards)")
	}
	label := h.Shape().String()
	if v := h.Value(); v.Tier != ddz.TierIncomparable {
		label = fmt.Sprintf("%s, rank %s", label, v.Rank)
	}
	return fmt.Sprintf("%s  %s", r.Cards(h.Cards()), r.Shape.Render(label))
}

// Comparison renders a comparison result.
func (r *Renderer) Comparison(c ddz.Comparison) string {
	switch c {
	case ddz.Greater:
		return r.Good.Render(c.String())
	case ddz.NotGreater:
		return r.Bad.Render(c.String())
	default:
		return r.Muted.Render(c.String())
	}
}

// Candidates renders a numbered list of responses, one per line.
func (r *Renderer) Candidates(cands [][]ddz.Card) string {
	if len(cands) == 0 {
		return r.Muted.Render("no response beats this hand")
	}
	width := len(fmt.Sprint(len(cands)))
	var b strings.Builder
	for i, cand := range cands {
		fmt.Fprintf(&b, "%s %s  %s\n",
			r.Muted.Render(fmt.Sprintf("%*d.", width, i+1)),
			r.Cards(cand),
			r.Shape.Render(ddz.Classify(cand).String()))
	}
	return strings.TrimRight(b.String(), "\n")
}
