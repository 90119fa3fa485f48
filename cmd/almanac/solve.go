package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rofferom/aoc2023/application/service"
	"github.com/rofferom/aoc2023/domain/rewrite"
	"github.com/rofferom/aoc2023/internal/almanac"
	"github.com/rofferom/aoc2023/internal/config"
	"github.com/rofferom/aoc2023/internal/log"
)

// Parts selectable with --part.
const (
	partBoth   = 0
	partSeeds  = 1
	partRanges = 2
)

type solveOptions struct {
	envFile string
	part    int
	workers int
}

func solveCmd() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve <input>",
		Short: "Print the lowest location for the seeds and for the seed ranges",
		Long: `Print the lowest location reachable from an almanac.

Part 1 treats every seed number as a seed. Part 2 reads the seed numbers as
(start, length) pairs and considers every seed in those ranges.

Input ending in .yaml or .yml is read as YAML, anything else as puzzle text.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  LOG_LEVEL        Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT       Log format: pretty, json (default: pretty)
  WORKER_COUNT     Goroutines per reduction (default: 4)
  COMPACT_RANGES   Merge range fragments between maps (default: true)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runSolve(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "Path to .env file, ignored when missing")
	cmd.Flags().IntVar(&opts.part, "part", partBoth, "Part to solve: 1 (seeds), 2 (seed ranges) or 0 for both")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Goroutines per reduction (default: WORKER_COUNT)")

	return cmd
}

func runSolve(ctx context.Context, stdout, stderr io.Writer, path string, opts solveOptions) error {
	if opts.part != partBoth && opts.part != partSeeds && opts.part != partRanges {
		return fmt.Errorf("invalid --part %d: want 0, 1 or 2", opts.part)
	}

	cfg, err := loadConfig(opts.envFile)
	if err != nil {
		return err
	}
	cfg = cfg.Apply(config.WithWorkerCount(opts.workers))

	logger := log.Configure(cfg, stderr).With("input", path)
	logger.Slog().LogAttrs(ctx, slog.LevelDebug, "configuration loaded", cfg.LogAttrs()...)

	a, err := almanac.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("almanac loaded", "seeds", len(a.Seeds()), "stages", len(a.Stages()))

	reducer := service.NewReducer(
		a.Pipeline(rewrite.WithCompaction(cfg.CompactRanges())),
		service.WithWorkers(cfg.WorkerCount()),
		service.WithLogger(logger.Slog()),
	)

	if opts.part == partBoth || opts.part == partSeeds {
		lowest, err := reducer.MinimumOver(ctx, a.Seeds())
		if err != nil {
			return fmt.Errorf("part 1: %w", err)
		}
		fmt.Fprintf(stdout, "Part 1: %d\n", lowest)
		logger.Info("part 1 solved", "minimum", lowest, "seeds", len(a.Seeds()))
	}

	if opts.part == partBoth || opts.part == partRanges {
		ranges, err := a.SeedRanges()
		if err != nil {
			return fmt.Errorf("part 2: %w", err)
		}
		lowest, err := reducer.MinimumOverRanges(ctx, ranges)
		if err != nil {
			return fmt.Errorf("part 2: %w", err)
		}
		fmt.Fprintf(stdout, "Part 2: %d\n", lowest)
		logger.Info("part 2 solved", "minimum", lowest, "ranges", len(ranges))
	}

	return nil
}
