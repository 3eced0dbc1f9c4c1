// Package bench measures response enumeration throughput over seeded deals.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/ddz/ddz"
	"github.com/lox/ddz/internal/randutil"
)

// Targets is one hand of every answerable shape. Each round answers all of
// them from a freshly dealt pool.
var Targets = []string{
	"3c", "Qd", "4c 4d", "9c 9d", "5c 5d 5h",
	"6c 6d 6h 3s", "6c 6d 6h 3s 3d",
	"3c 4d 5h 6s 7c", "3c 4d 5h 6s 7c 8d 9h",
	"3c 3d 4c 4d 5c 5d",
	"3c 3d 3h 4c 4d 4h 5c 5d 5h",
	"3c 3d 3h 4c 4d 4h 5c 5d 5h 9s Jc Kc",
	"3h 3s 3d 4h 4s 4d 5c 5d 5h 9c 9d Jh Js Qc Qd",
	"4c 4d 4h 4s 3c 9d",
	"4c 4d 4h 4s 3c 3d 9c 9d",
	"3c 3d 3h 3s",
}

// Options configures a run.
type Options struct {
	Rounds   int
	HandSize int
	Seed     int64
	Parallel bool
	// Progress, when set, is called after every round.
	Progress func(round int, elapsed time.Duration)
}

// Result summarises a run.
type Result struct {
	Seed       int64         `json:"seed"`
	Rounds     int           `json:"rounds"`
	Targets    int           `json:"targets"`
	Candidates int           `json:"candidates"`
	Elapsed    time.Duration `json:"elapsed_ns"`

	// Candidates per round
	MeanPerRound   float64 `json:"mean_per_round"`
	StdDevPerRound float64 `json:"stddev_per_round"`
	MedianPerRound float64 `json:"median_per_round"`
	MaxPerRound    float64 `json:"max_per_round"`

	Shapes ShapeCounts `json:"shapes"`
}

// PerSecond returns enumerations (one target answered from one pool) per
// second, or zero when no time elapsed.
func (r Result) PerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Rounds*r.Targets) / r.Elapsed.Seconds()
}

// Runner runs benchmarks.
type Runner struct {
	finder *ddz.Finder
	clock  quartz.Clock
	logger *log.Logger
}

// NewRunner creates a runner timing through clock.
func NewRunner(finder *ddz.Finder, clock quartz.Clock, logger *log.Logger) *Runner {
	return &Runner{
		finder: finder,
		clock:  clock,
		logger: logger.WithPrefix("bench"),
	}
}

// Run deals opts.Rounds pools and answers every target from each.
func (r *Runner) Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Rounds <= 0 {
		return Result{}, fmt.Errorf("rounds must be positive, got %d", opts.Rounds)
	}
	if opts.HandSize <= 0 || opts.HandSize > ddz.DeckSize {
		return Result{}, fmt.Errorf("hand size %d outside 1..%d", opts.HandSize, ddz.DeckSize)
	}

	targets := make([]ddz.Hand, len(Targets))
	for i, s := range Targets {
		h, err := ddz.ParseHand(s)
		if err != nil {
			return Result{}, fmt.Errorf("target %q: %w", s, err)
		}
		targets[i] = h
	}

	rng, seed := randutil.Seeded(opts.Seed)
	res := Result{Seed: seed, Rounds: opts.Rounds, Targets: len(targets), Shapes: ShapeCounts{}}
	var perRound Summary
	r.logger.Info("Starting benchmark", "rounds", opts.Rounds, "seed", seed, "parallel", opts.Parallel)

	start := r.clock.Now("bench", "start")
	for round := 1; round <= opts.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		pool, err := ddz.HandOf(ddz.NewDeck(rng).Deal(opts.HandSize)...)
		if err != nil {
			return res, err
		}

		results, err := r.answer(ctx, pool, targets, opts.Parallel)
		if err != nil {
			return res, fmt.Errorf("round %d: %w", round, err)
		}
		n := 0
		for _, found := range results {
			n += len(found)
			res.Shapes.Add(found)
		}
		res.Candidates += n
		perRound.Add(float64(n))

		if opts.Progress != nil {
			opts.Progress(round, r.clock.Since(start, "bench", "progress"))
		}
	}
	res.Elapsed = r.clock.Since(start, "bench", "stop")
	res.MeanPerRound = perRound.Mean()
	res.StdDevPerRound = perRound.StdDev()
	res.MedianPerRound = perRound.Median()
	res.MaxPerRound = perRound.Max()

	r.logger.Info("Finished benchmark",
		"elapsed", res.Elapsed,
		"candidates", res.Candidates,
		"per_second", fmt.Sprintf("%.0f", res.PerSecond()))
	return res, nil
}

func (r *Runner) answer(ctx context.Context, pool ddz.Hand, targets []ddz.Hand, parallel bool) ([][][]ddz.Card, error) {
	if parallel {
		return r.finder.FindAll(ctx, pool, targets)
	}

	results := make([][][]ddz.Card, len(targets))
	for i, target := range targets {
		found, err := r.finder.FindBeating(pool, target)
		if err != nil {
			return nil, err
		}
		results[i] = found
	}
	return results, nil
}
