package main

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/ddz/internal/bench"
	"github.com/lox/ddz/internal/fileutil"
)

// BenchCmd times response enumeration over many seeded deals.
type BenchCmd struct {
	Rounds     int    `kong:"default='1000',help='Pools to deal'"`
	Seed       *int64 `kong:"help='Deterministic seed (default: config, else random)'"`
	Size       int    `kong:"help='Cards per pool (default: config)'"`
	Sequential bool   `kong:"help='Answer targets one at a time instead of with the worker pool'"`
	Out        string `kong:"type='path',help='Also write a JSON report to this file'"`
}

func (c *BenchCmd) Run(g *Globals) error {
	e, err := g.env()
	if err != nil {
		return err
	}

	opts := bench.Options{
		Rounds:   c.Rounds,
		HandSize: e.cfg.Deck.HandSize,
		Seed:     e.cfg.Deck.Seed,
		Parallel: e.cfg.Parallel() && !c.Sequential,
	}
	if c.Seed != nil {
		opts.Seed = *c.Seed
	}
	if c.Size != 0 {
		opts.HandSize = c.Size
	}
	step := max(c.Rounds/10, 1)
	opts.Progress = func(round int, elapsed time.Duration) {
		if round%step == 0 {
			e.logger.Debug("Progress", "round", round, "elapsed", elapsed)
		}
	}

	ctx, cancel := signalContext()
	defer cancel()

	res, err := bench.NewRunner(e.finder, quartz.NewReal(), e.logger).Run(ctx, opts)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Seed\t%d\n", res.Seed)
	fmt.Fprintf(w, "Rounds\t%d\n", res.Rounds)
	fmt.Fprintf(w, "Targets per round\t%d\n", res.Targets)
	fmt.Fprintf(w, "Candidates\t%d\n", res.Candidates)
	fmt.Fprintf(w, "Per round\t%.1f ± %.1f (median %.0f, max %.0f)\n",
		res.MeanPerRound, res.StdDevPerRound, res.MedianPerRound, res.MaxPerRound)
	for _, shape := range slices.Sorted(maps.Keys(res.Shapes)) {
		fmt.Fprintf(w, "  %s\t%d\n", shape, res.Shapes[shape])
	}
	fmt.Fprintf(w, "Elapsed\t%s\n", res.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "Enumerations/sec\t%.0f\n", res.PerSecond())
	if err := w.Flush(); err != nil {
		return err
	}

	if c.Out != "" {
		return fileutil.WriteJSON(c.Out, res)
	}
	return nil
}
