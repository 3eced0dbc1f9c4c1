package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/lox/ddz/ddz"
	"github.com/lox/ddz/internal/fileutil"
	"github.com/lox/ddz/internal/randutil"
)

// DealCmd shuffles a deck and splits it into hands.
type DealCmd struct {
	Seed *int64 `kong:"help='Deterministic seed (default: config, else random)'"`
	Size int    `kong:"help='Cards per hand (default: config)'"`
	Out  string `kong:"type='path',help='Also write a JSON report to this file'"`
}

func (c *DealCmd) Run(g *Globals) error {
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
	hands, err := ddz.NewDeck(rng).Split(size)
	if err != nil {
		return err
	}
	e.logger.Debug("Dealt hands", "seed", seed, "size", size, "hands", len(hands))

	fmt.Fprintf(e.out, "Seed %d\n\n", seed)
	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	report := dealReport{Seed: seed}
	for i, h := range hands {
		label := fmt.Sprintf("Seat %d", i+1)
		if i == len(hands)-1 && h.Len() < size {
			label = "Kitty"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", label, h.Len(), e.render.Cards(h.Cards()))
		report.Hands = append(report.Hands, newHandReport(h))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if c.Out != "" {
		return fileutil.WriteJSON(c.Out, report)
	}
	return nil
}
