package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/ddz/internal/randutil"
	"github.com/lox/ddz/internal/tui"
)

// ExploreCmd starts the interactive explorer.
type ExploreCmd struct {
	Seed *int64 `kong:"help='Deterministic seed (default: config, else random)'"`
	Size int    `kong:"help='Cards per hand (default: config)'"`
}

func (c *ExploreCmd) Run(g *Globals) error {
	e, err := g.env()
	if err != nil {
		return err
	}

	seed := e.cfg.Deck.Seed
	if c.Seed != nil {
		seed = *c.Seed
	}
	size := e.cfg.Deck.HandSize
	if c.Size != 0 {
		size = c.Size
	}
	rng, seed := randutil.Seeded(seed)
	e.logger.Debug("Starting explorer", "seed", seed, "size", size)

	model := tui.New(e.finder, rng, size, e.render, e.logger)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
