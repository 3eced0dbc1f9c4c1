package ddz

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FindBeatingContext is FindBeating with the shape-specific generator, the
// bomb supplement and the rocket supplement run concurrently. The result
// order matches FindBeating.
func (f *Finder) FindBeatingContext(ctx context.Context, pool, target Hand) ([][]Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !answerable(target) {
		return nil, nil
	}

	var shaped, bombs [][]Card
	var rocket []Card

	g, ctx := errgroup.WithContext(ctx)
	if gen := GeneratorFor(target.Shape()); gen != nil {
		g.Go(func() error {
			var err error
			shaped, err = gen(pool, target)
			return err
		})
	}
	g.Go(func() error {
		bombs = FindBombs(pool, target)
		return ctx.Err()
	})
	g.Go(func() error {
		rocket = FindRocket(pool, target)
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([][]Card, 0, len(shaped)+len(bombs)+1)
	out = append(out, shaped...)
	out = append(out, bombs...)
	if rocket != nil {
		out = append(out, rocket)
	}

	f.logger.Debug("Enumerated responses", "target", target, "shape", target.Shape(), "pool", pool.Len(), "candidates", len(out), "parallel", true)
	return out, nil
}

// FindAll enumerates responses to many targets from one pool, running at
// most the configured number of workers at once. results[i] answers
// targets[i].
func (f *Finder) FindAll(ctx context.Context, pool Hand, targets []Hand) ([][][]Card, error) {
	results := make([][][]Card, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for i, target := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found, err := f.FindBeating(pool, target)
			if err != nil {
				return err
			}
			results[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	f.logger.Debug("Enumerated batch", "targets", len(targets), "workers", f.workers)
	return results, nil
}
