package rewrite

import (
	"fmt"
	"slices"
)

// Pipeline applies stages left to right. Immutable once built and safe for
// concurrent use.
type Pipeline struct {
	stages  []Stage
	compact bool
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithCompaction controls whether the range set produced by each stage is
// merged before being fed to the next one. Enabled by default.
func WithCompaction(enabled bool) PipelineOption {
	return func(p *Pipeline) { p.compact = enabled }
}

// NewPipeline creates a Pipeline from stages in application order.
func NewPipeline(stages []Stage, opts ...PipelineOption) Pipeline {
	p := Pipeline{
		stages:  slices.Clone(stages),
		compact: true,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Stages returns a copy of the stages in application order.
func (p Pipeline) Stages() []Stage { return slices.Clone(p.stages) }

// Compacting reports whether intermediate range sets are merged.
func (p Pipeline) Compacting() bool { return p.compact }

// RunScalar folds a value through every stage.
func (p Pipeline) RunScalar(seed int64) int64 {
	v := seed
	for _, stage := range p.stages {
		v = stage.MapValue(v)
	}
	return v
}

// RunRange folds a single range through every stage.
func (p Pipeline) RunRange(r ValueRange) RangeSet {
	return p.RunRangeSet(RangeSet{r})
}

// RunRangeSet folds a range set through every stage.
func (p Pipeline) RunRangeSet(rs RangeSet) RangeSet {
	current := slices.Clone(rs)
	for _, stage := range p.stages {
		current = stage.MapRangeSet(current)
		if p.compact {
			current = current.Compact()
		}
	}
	return current
}

// MinimumOver returns the smallest final value reached by any seed.
func (p Pipeline) MinimumOver(seeds []int64) (int64, error) {
	if len(seeds) == 0 {
		return 0, fmt.Errorf("minimum over seeds: %w", ErrEmptyInput)
	}
	lowest := p.RunScalar(seeds[0])
	for _, seed := range seeds[1:] {
		lowest = min(lowest, p.RunScalar(seed))
	}
	return lowest, nil
}

// MinimumOverRanges returns the smallest final value reached by any value
// in ranges. Every member must be a valid range. Overlapping inputs are
// merged first so no value is processed twice.
func (p Pipeline) MinimumOverRanges(ranges []ValueRange) (int64, error) {
	if len(ranges) == 0 {
		return 0, fmt.Errorf("minimum over ranges: %w", ErrEmptyInput)
	}
	for _, r := range ranges {
		if err := r.Validate(); err != nil {
			return 0, fmt.Errorf("minimum over ranges: %w", err)
		}
	}
	lowest, ok := p.RunRangeSet(MergeRanges(ranges)).Min()
	if !ok {
		return 0, fmt.Errorf("minimum over ranges: %w", ErrEmptyInput)
	}
	return lowest, nil
}
