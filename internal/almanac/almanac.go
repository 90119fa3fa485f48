// Package almanac loads seed lists and rewrite pipelines from puzzle input.
package almanac

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rofferom/aoc2023/domain/rewrite"
)

// ErrMalformed indicates input that does not follow the almanac grammar.
var ErrMalformed = errors.New("almanac: malformed input")

// Almanac is the parsed puzzle input: the seed numbers and the stages they
// pass through.
type Almanac struct {
	seeds  []int64
	stages []rewrite.Stage
}

// New creates an Almanac. Slices are copied.
func New(seeds []int64, stages []rewrite.Stage) Almanac {
	return Almanac{
		seeds:  slices.Clone(seeds),
		stages: slices.Clone(stages),
	}
}

// Seeds returns the seed numbers as listed.
func (a Almanac) Seeds() []int64 { return slices.Clone(a.seeds) }

// Stages returns the stages in application order.
func (a Almanac) Stages() []rewrite.Stage { return slices.Clone(a.stages) }

// Pipeline builds a pipeline over the almanac's stages.
func (a Almanac) Pipeline(opts ...rewrite.PipelineOption) rewrite.Pipeline {
	return rewrite.NewPipeline(a.stages, opts...)
}

// SeedRanges reads the seed list as (start, length) pairs.
func (a Almanac) SeedRanges() ([]rewrite.ValueRange, error) {
	if len(a.seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: %d seed values cannot form (start, length) pairs", ErrMalformed, len(a.seeds))
	}

	ranges := make([]rewrite.ValueRange, 0, len(a.seeds)/2)
	for i := 0; i < len(a.seeds); i += 2 {
		r, err := rewrite.NewValueRange(a.seeds[i], a.seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("seed pair %d: %w", i/2+1, err)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// Load reads an almanac from path. Files ending in .yaml or .yml are read
// as YAML, anything else as the puzzle text format.
func Load(path string) (Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		return Almanac{}, fmt.Errorf("open almanac: %w", err)
	}
	defer func() { _ = f.Close() }()

	var a Almanac
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		a, err = ParseYAML(f)
	default:
		a, err = Parse(f)
	}
	if err != nil {
		return Almanac{}, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}
