package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rofferom/aoc2023/internal/almanac"
	"github.com/rofferom/aoc2023/internal/log"
)

var samplePath = filepath.Join("..", "..", "internal", "almanac", "testdata", "sample.txt")

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, v := range []string{"LOG_LEVEL", "LOG_FORMAT", "WORKER_COUNT", "COMPACT_RANGES"} {
		t.Setenv(v, "")
		_ = os.Unsetenv(v)
	}

	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSolve_BothParts(t *testing.T) {
	out, _, err := execute(t, "solve", samplePath)
	require.NoError(t, err)

	assert.Equal(t, "Part 1: 35\nPart 2: 46\n", out)
}

func TestSolve_SinglePart(t *testing.T) {
	out, _, err := execute(t, "solve", "--part", "2", "--workers", "1", samplePath)
	require.NoError(t, err)
	assert.Equal(t, "Part 2: 46\n", out)

	out, _, err = execute(t, "solve", "--part", "1", samplePath)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 35\n", out)
}

func TestSolve_YAML(t *testing.T) {
	path := filepath.Join("..", "..", "internal", "almanac", "testdata", "sample.yaml")

	out, _, err := execute(t, "solve", path)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 35\nPart 2: 46\n", out)
}

func TestSolve_EnvFileEnablesDebugLogs(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LOG_LEVEL=DEBUG\nCOMPACT_RANGES=false\n"), 0o644))

	out, logs, err := execute(t, "solve", "--env-file", envFile, samplePath)
	require.NoError(t, err)

	assert.Equal(t, "Part 1: 35\nPart 2: 46\n", out)
	assert.Contains(t, logs, "almanac loaded")
	assert.Contains(t, logs, "compact_ranges=false")
}

func TestSolve_LogsResultsAtInfo(t *testing.T) {
	out, logs, err := execute(t, "solve", "--part", "2", samplePath)
	require.NoError(t, err)

	assert.Equal(t, "Part 2: 46\n", out)
	assert.Contains(t, logs, "part 2 solved")
	assert.Contains(t, logs, "minimum=46")
	assert.Contains(t, logs, "input=")
	assert.NotContains(t, logs, "almanac loaded")
	assert.Same(t, log.Default().Slog(), slog.Default())
}

func TestSolve_EnvFileDefault(t *testing.T) {
	flag := solveCmd().Flags().Lookup("env-file")
	require.NotNil(t, flag)
	assert.Equal(t, ".env", flag.DefValue)
}

func TestSolve_InvalidPart(t *testing.T) {
	_, _, err := execute(t, "solve", "--part", "3", samplePath)
	assert.ErrorContains(t, err, "invalid --part 3")
}

func TestSolve_OddSeedCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd.txt")
	require.NoError(t, os.WriteFile(path, []byte("seeds: 1 2 3\n\na map:\n0 1 1\n"), 0o644))

	out, _, err := execute(t, "solve", path)

	assert.ErrorIs(t, err, almanac.ErrMalformed)
	assert.Equal(t, "Part 1: 0\n", out)
}

func TestSolve_MissingInput(t *testing.T) {
	_, _, err := execute(t, "solve", filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "almanac version dev")
	assert.Contains(t, out, "commit: unknown")
}
