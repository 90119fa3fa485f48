// Package service provides application layer services that orchestrate domain operations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/rofferom/aoc2023/domain/rewrite"
)

// DefaultWorkers is the parallelism used when WithWorkers is not given.
const DefaultWorkers = 4

// ReducerOption configures a Reducer.
type ReducerOption func(*Reducer)

// WithWorkers sets how many goroutines a reduction may run at once.
// Values below one are treated as one.
func WithWorkers(n int) ReducerOption {
	return func(r *Reducer) {
		r.workers = max(n, 1)
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ReducerOption {
	return func(r *Reducer) {
		if l != nil {
			r.logger = l
		}
	}
}

// Reducer computes minimum final values over a pipeline, fanning the work
// out over independent seeds or seed ranges.
type Reducer struct {
	pipeline rewrite.Pipeline
	workers  int
	logger   *slog.Logger
}

// NewReducer creates a Reducer for p.
func NewReducer(p rewrite.Pipeline, opts ...ReducerOption) *Reducer {
	r := &Reducer{
		pipeline: p,
		workers:  DefaultWorkers,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Workers returns the configured parallelism.
func (r *Reducer) Workers() int { return r.workers }

// MinimumOver returns the smallest final value reached by any seed.
func (r *Reducer) MinimumOver(ctx context.Context, seeds []int64) (int64, error) {
	if len(seeds) == 0 {
		return 0, fmt.Errorf("minimum over seeds: %w", rewrite.ErrEmptyInput)
	}

	chunks := chunk(seeds, r.workers)
	r.logger.Debug("reducing seeds", "seeds", len(seeds), "chunks", len(chunks), "workers", r.workers)

	lowest, err := r.fanOut(ctx, len(chunks), func(i int) (int64, error) {
		return r.pipeline.MinimumOver(chunks[i])
	})
	if err != nil {
		return 0, fmt.Errorf("minimum over seeds: %w", err)
	}

	r.logger.Debug("reduction finished", "mode", "seeds", "minimum", lowest)
	return lowest, nil
}

// MinimumOverRanges returns the smallest final value reached by any value
// in ranges. Overlapping ranges are merged before any work is scheduled.
func (r *Reducer) MinimumOverRanges(ctx context.Context, ranges []rewrite.ValueRange) (int64, error) {
	if len(ranges) == 0 {
		return 0, fmt.Errorf("minimum over ranges: %w", rewrite.ErrEmptyInput)
	}

	for _, rg := range ranges {
		if err := rg.Validate(); err != nil {
			return 0, fmt.Errorf("minimum over ranges: %w", err)
		}
	}

	merged := rewrite.MergeRanges(ranges)
	r.logger.Debug("reducing ranges", "ranges", len(ranges), "merged", len(merged), "workers", r.workers)

	lowest, err := r.fanOut(ctx, len(merged), func(i int) (int64, error) {
		out := r.pipeline.RunRange(merged[i])
		r.logger.Debug("range mapped", "range", merged[i].String(), "fragments", len(out))
		lowest, ok := out.Min()
		if !ok {
			return 0, rewrite.ErrEmptyInput
		}
		return lowest, nil
	})
	if err != nil {
		return 0, fmt.Errorf("minimum over ranges: %w", err)
	}

	r.logger.Debug("reduction finished", "mode", "ranges", "minimum", lowest)
	return lowest, nil
}

// fanOut runs task for every index in [0, n) on at most r.workers
// goroutines and returns the smallest result. n must be positive.
func (r *Reducer) fanOut(ctx context.Context, n int, task func(i int) (int64, error)) (int64, error) {
	results := make([]int64, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := task(i)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return slices.Min(results), nil
}

// chunk splits values into at most n contiguous, nonempty parts.
func chunk(values []int64, n int) [][]int64 {
	size := (len(values) + n - 1) / n
	parts := make([][]int64, 0, n)
	for start := 0; start < len(values); start += size {
		parts = append(parts, values[start:min(start+size, len(values))])
	}
	return parts
}
