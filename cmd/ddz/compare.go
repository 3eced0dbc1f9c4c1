package main

import (
	"fmt"
)

// CompareCmd compares hand A against hand B.
type CompareCmd struct {
	A string `arg:"" help:"First hand, quoted: \"4c 4d 4h 4s\""`
	B string `arg:"" help:"Second hand, quoted"`
}

func (c *CompareCmd) Run(g *Globals) error {
	e, err := g.env()
	if err != nil {
		return err
	}
	a, err := parseHandArgs([]string{c.A})
	if err != nil {
		return fmt.Errorf("hand A: %w", err)
	}
	b, err := parseHandArgs([]string{c.B})
	if err != nil {
		return fmt.Errorf("hand B: %w", err)
	}

	fmt.Fprintf(e.out, "A  %s\n", e.render.Hand(a))
	fmt.Fprintf(e.out, "B  %s\n", e.render.Hand(b))
	fmt.Fprintf(e.out, "A vs B: %s\n", e.render.Comparison(a.Compare(b)))
	return nil
}
