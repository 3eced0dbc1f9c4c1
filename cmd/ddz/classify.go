package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/lox/ddz/ddz"
)

// ClassifyCmd prints a hand's shape and value.
type ClassifyCmd struct {
	Cards []string `arg:"" help:"Cards, e.g. 3c 3d 3h 3s or 3,16,29,42"`
	JSON  bool     `kong:"help='Print the classification as JSON'"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	e, err := g.env()
	if err != nil {
		return err
	}
	h, err := parseHandArgs(c.Cards)
	if err != nil {
		return err
	}
	e.logger.Debug("Classified hand", "hand", h, "value", h.Value())

	if c.JSON {
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		return enc.Encode(newHandReport(h))
	}

	v := h.Value()
	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Cards\t%s\n", e.render.Cards(h.Cards()))
	fmt.Fprintf(w, "Shape\t%s\n", e.render.Shape.Render(h.Shape().String()))
	fmt.Fprintf(w, "Tier\t%s\n", v.Tier)
	fmt.Fprintf(w, "Length\t%d\n", v.Length)
	if v.Tier != ddz.TierIncomparable {
		fmt.Fprintf(w, "Rank\t%s\n", v.Rank)
	}
	return w.Flush()
}
