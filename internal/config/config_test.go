package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig()

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel())
	assert.Equal(t, LogFormatPretty, cfg.LogFormat())
	assert.Equal(t, DefaultWorkerCount, cfg.WorkerCount())
	assert.True(t, cfg.CompactRanges())
}

func TestAppConfig_WithOptions(t *testing.T) {
	cfg := NewAppConfigWithOptions(
		WithLogLevel("DEBUG"),
		WithLogFormat(LogFormatJSON),
		WithWorkerCount(16),
		WithCompactRanges(false),
	)

	assert.Equal(t, "DEBUG", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, 16, cfg.WorkerCount())
	assert.False(t, cfg.CompactRanges())
}

func TestAppConfig_WorkerCountIgnoresNonPositive(t *testing.T) {
	cfg := NewAppConfigWithOptions(WithWorkerCount(0))
	assert.Equal(t, DefaultWorkerCount, cfg.WorkerCount())

	cfg = cfg.Apply(WithWorkerCount(-2))
	assert.Equal(t, DefaultWorkerCount, cfg.WorkerCount())
}

func TestAppConfig_ApplyDoesNotMutateReceiver(t *testing.T) {
	base := NewAppConfig()
	changed := base.Apply(WithWorkerCount(9))

	assert.Equal(t, DefaultWorkerCount, base.WorkerCount())
	assert.Equal(t, 9, changed.WorkerCount())
}

func TestAppConfig_LogAttrs(t *testing.T) {
	attrs := NewAppConfig().LogAttrs()

	keys := make(map[string]slog.Value, len(attrs))
	for _, a := range attrs {
		keys[a.Key] = a.Value
	}
	assert.Equal(t, "INFO", keys["log_level"].String())
	assert.Equal(t, int64(DefaultWorkerCount), keys["worker_count"].Int64())
	assert.True(t, keys["compact_ranges"].Bool())
}
