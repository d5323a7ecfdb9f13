package sim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// WorldFactory builds an independent world for a seed.
type WorldFactory func(seed int64) (*World, error)

// Ensemble runs independent seeded worlds concurrently. Each world is still
// stepped by a single goroutine.
type Ensemble struct {
	factory   WorldFactory
	metrics   func() []Metric
	numRuns   int
	seedStart int64
}

func NewEnsemble(factory WorldFactory, metrics func() []Metric, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{factory: factory, metrics: metrics, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		idx := i
		g.Go(func() error {
			w, err := e.factory(e.seedStart + int64(idx))
			if err != nil {
				return err
			}

			s := New(w)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}

			res, err := s.Run(ctx, cfg)
			if err != nil {
				return err
			}
			results[idx] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
