package service

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rofferom/aoc2023/domain/rewrite"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func samplePipeline(t *testing.T) rewrite.Pipeline {
	t.Helper()

	maps := [][][3]int64{
		{{50, 98, 2}, {52, 50, 48}},
		{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}},
		{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}},
		{{88, 18, 7}, {18, 25, 70}},
		{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}},
		{{0, 69, 1}, {1, 0, 69}},
		{{60, 56, 37}, {56, 93, 4}},
	}

	stages := make([]rewrite.Stage, 0, len(maps))
	for _, m := range maps {
		rules := make([]rewrite.Rule, 0, len(m))
		for _, tr := range m {
			rule, err := rewrite.NewRule(tr[0], tr[1], tr[2])
			require.NoError(t, err)
			rules = append(rules, rule)
		}
		stages = append(stages, rewrite.NewStage("", rules...))
	}
	return rewrite.NewPipeline(stages)
}

func seedRanges(t *testing.T, pairs ...[2]int64) []rewrite.ValueRange {
	t.Helper()
	ranges := make([]rewrite.ValueRange, 0, len(pairs))
	for _, p := range pairs {
		r, err := rewrite.NewValueRange(p[0], p[1])
		require.NoError(t, err)
		ranges = append(ranges, r)
	}
	return ranges
}

func TestReducer_MinimumOver(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 4, 16} {
		r := NewReducer(samplePipeline(t), WithWorkers(workers))

		got, err := r.MinimumOver(context.Background(), []int64{79, 14, 55, 13})
		require.NoError(t, err)
		assert.Equal(t, int64(35), got, "workers=%d", workers)
	}
}

func TestReducer_MinimumOverRanges(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		r := NewReducer(samplePipeline(t), WithWorkers(workers))

		got, err := r.MinimumOverRanges(context.Background(), seedRanges(t, [2]int64{79, 14}, [2]int64{55, 13}))
		require.NoError(t, err)
		assert.Equal(t, int64(46), got, "workers=%d", workers)
	}
}

func TestReducer_MatchesSequential(t *testing.T) {
	p := samplePipeline(t)
	r := NewReducer(p, WithWorkers(5))

	seeds := make([]int64, 0, 150)
	for v := int64(0); v < 150; v++ {
		seeds = append(seeds, v)
	}
	want, err := p.MinimumOver(seeds)
	require.NoError(t, err)
	got, err := r.MinimumOver(context.Background(), seeds)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	ranges := seedRanges(t, [2]int64{3, 9}, [2]int64{90, 30}, [2]int64{5, 2}, [2]int64{40, 12})
	want, err = p.MinimumOverRanges(ranges)
	require.NoError(t, err)
	got, err = r.MinimumOverRanges(context.Background(), ranges)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReducer_EmptyInput(t *testing.T) {
	r := NewReducer(samplePipeline(t))

	_, err := r.MinimumOver(context.Background(), nil)
	assert.ErrorIs(t, err, rewrite.ErrEmptyInput)

	_, err = r.MinimumOverRanges(context.Background(), []rewrite.ValueRange{})
	assert.ErrorIs(t, err, rewrite.ErrEmptyInput)
}

func TestReducer_RejectsZeroRange(t *testing.T) {
	r := NewReducer(samplePipeline(t))

	_, err := r.MinimumOverRanges(context.Background(), []rewrite.ValueRange{{}})
	assert.ErrorIs(t, err, rewrite.ErrInvalidRange)
}

func TestReducer_CancelledContext(t *testing.T) {
	r := NewReducer(samplePipeline(t), WithWorkers(2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.MinimumOver(ctx, []int64{79, 14, 55, 13})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = r.MinimumOverRanges(ctx, seedRanges(t, [2]int64{79, 14}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReducer_Options(t *testing.T) {
	p := samplePipeline(t)

	assert.Equal(t, DefaultWorkers, NewReducer(p).Workers())
	assert.Equal(t, 1, NewReducer(p, WithWorkers(0)).Workers())
	assert.Equal(t, 1, NewReducer(p, WithWorkers(-3)).Workers())
	assert.NotNil(t, NewReducer(p, WithLogger(nil)).logger)
}

func TestReducer_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewReducer(samplePipeline(t), WithLogger(logger), WithWorkers(2))

	_, err := r.MinimumOverRanges(context.Background(), seedRanges(t, [2]int64{79, 14}, [2]int64{80, 2}))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "merged=1")
	assert.Contains(t, buf.String(), "minimum=")
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		input []int64
		want  [][]int64
	}{
		{"even", 2, []int64{1, 2, 3, 4}, [][]int64{{1, 2}, {3, 4}}},
		{"uneven", 3, []int64{1, 2, 3, 4}, [][]int64{{1, 2}, {3, 4}}},
		{"more workers than values", 8, []int64{1, 2}, [][]int64{{1}, {2}}},
		{"single", 1, []int64{1, 2, 3}, [][]int64{{1, 2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chunk(tt.input, tt.n))
		})
	}
}
