// Package app wires the support engine into caller-facing services.
package app

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gosupport/adapters/stats/support"
	"gosupport/domain/stats"
)

// BatchService analyzes many independent tables concurrently. The engine
// keeps no cross-call state, so tables fan out without synchronization; the
// first fatal validation error cancels the remaining work.
type BatchService struct {
	engine *support.Engine
	limit  int
}

// NewBatchService creates a batch service with a worker limit of NumCPU.
func NewBatchService(engine *support.Engine) *BatchService {
	return &BatchService{engine: engine, limit: runtime.NumCPU()}
}

// WithLimit overrides the concurrency limit.
func (s *BatchService) WithLimit(limit int) *BatchService {
	if limit > 0 {
		s.limit = limit
	}
	return s
}

// OneWayAll runs a one-way analysis per count vector, preserving order.
func (s *BatchService) OneWayAll(ctx context.Context, observed [][]float64, opts stats.CategoricalOptions) ([]*stats.OneWayResult, error) {
	results := make([]*stats.OneWayResult, len(observed))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)

	for i, counts := range observed {
		i, counts := i, counts
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.engine.OneWay(counts, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// TwoWayAll runs a two-way analysis per table, preserving order.
func (s *BatchService) TwoWayAll(ctx context.Context, tables [][][]float64) ([]*stats.TwoWayResult, error) {
	results := make([]*stats.TwoWayResult, len(tables))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)

	for i, table := range tables {
		i, table := i, table
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.engine.TwoWay(table)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
