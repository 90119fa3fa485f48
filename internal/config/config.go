// Package config provides application configuration.
package config

import (
	"log/slog"
)

// Default configuration values.
const (
	DefaultLogLevel      = "INFO"
	DefaultWorkerCount   = 4
	DefaultCompactRanges = true
	DefaultEnvFile       = ".env"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig holds the main application configuration.
type AppConfig struct {
	logLevel      string
	logFormat     LogFormat
	workerCount   int
	compactRanges bool
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		logLevel:      DefaultLogLevel,
		logFormat:     LogFormatPretty,
		workerCount:   DefaultWorkerCount,
		compactRanges: DefaultCompactRanges,
	}
}

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// WorkerCount returns the number of goroutines used by reductions.
func (c AppConfig) WorkerCount() int { return c.workerCount }

// CompactRanges reports whether range sets are merged between stages.
func (c AppConfig) CompactRanges() bool { return c.compactRanges }

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithWorkerCount sets the number of reduction workers. Non-positive values
// are ignored.
func WithWorkerCount(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 0 {
			c.workerCount = n
		}
	}
}

// WithCompactRanges enables or disables range-set merging between stages.
func WithCompactRanges(enabled bool) AppConfigOption {
	return func(c *AppConfig) { c.compactRanges = enabled }
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("log_level", c.logLevel),
		slog.String("log_format", string(c.logFormat)),
		slog.Int("worker_count", c.workerCount),
		slog.Bool("compact_ranges", c.compactRanges),
	}
}
