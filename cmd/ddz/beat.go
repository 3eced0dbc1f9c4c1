package main

import (
	"fmt"

	"github.com/lox/ddz/ddz"
	"github.com/lox/ddz/internal/fileutil"
)

// BeatCmd enumerates every response a pool can play against a target.
type BeatCmd struct {
	Pool       string   `kong:"required,short='p',help='Cards available to answer with'"`
	Target     []string `kong:"arg,help='Hand to beat'"`
	Sequential bool     `kong:"help='Run generators one after another instead of concurrently'"`
	Out        string   `kong:"type='path',help='Also write a JSON report to this file'"`
}

func (c *BeatCmd) Run(g *Globals) error {
	e, err := g.env()
	if err != nil {
		return err
	}
	pool, err := parseHandArgs([]string{c.Pool})
	if err != nil {
		return fmt.Errorf("pool: %w", err)
	}
	target, err := parseHandArgs(c.Target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	var found [][]ddz.Card
	if e.cfg.Parallel() && !c.Sequential {
		found, err = e.finder.FindBeatingContext(ctx, pool, target)
	} else {
		found, err = e.finder.FindBeating(pool, target)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(e.out, "Target  %s\n", e.render.Hand(target))
	fmt.Fprintf(e.out, "Pool    %s\n\n", e.render.Cards(pool.Cards()))
	fmt.Fprintln(e.out, e.render.Candidates(found))

	if c.Out != "" {
		if err := fileutil.WriteJSON(c.Out, newBeatReport(pool, target, found)); err != nil {
			return err
		}
		e.logger.Info("Wrote report", "path", c.Out, "candidates", len(found))
	}
	return nil
}
