package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rofferom/aoc2023/domain/rewrite"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
)

// Parse reads the puzzle text format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
func Parse(r io.Reader) (Almanac, error) {
	var (
		a       Almanac
		current *stageBuilder
		sawSeed bool
		lineNo  int
	)

	flush := func() {
		if current != nil {
			a.stages = append(a.stages, rewrite.NewStage(current.name, current.rules...))
			current = nil
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			flush()

		case !sawSeed:
			rest, ok := strings.CutPrefix(line, seedsPrefix)
			if !ok {
				return Almanac{}, fmt.Errorf("%w: line %d: expected %q", ErrMalformed, lineNo, seedsPrefix)
			}
			seeds, err := parseInts(rest)
			if err == nil {
				err = checkSeeds(seeds)
			}
			if err != nil {
				return Almanac{}, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
			}
			a.seeds = seeds
			sawSeed = true

		case strings.HasSuffix(line, mapSuffix):
			flush()
			current = &stageBuilder{name: strings.TrimSpace(strings.TrimSuffix(line, mapSuffix))}

		case current == nil:
			return Almanac{}, fmt.Errorf("%w: line %d: rule outside of a map block", ErrMalformed, lineNo)

		default:
			rule, err := parseRule(line)
			if err != nil {
				return Almanac{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			current.rules = append(current.rules, rule)
		}
	}
	if err := scanner.Err(); err != nil {
		return Almanac{}, fmt.Errorf("read almanac: %w", err)
	}
	if !sawSeed {
		return Almanac{}, fmt.Errorf("%w: missing %q line", ErrMalformed, seedsPrefix)
	}

	flush()
	return a, nil
}

type stageBuilder struct {
	name  string
	rules []rewrite.Rule
}

func parseRule(line string) (rewrite.Rule, error) {
	fields, err := parseInts(line)
	if err != nil {
		return rewrite.Rule{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(fields) != 3 {
		return rewrite.Rule{}, fmt.Errorf("%w: rule needs 3 numbers, got %d", ErrMalformed, len(fields))
	}
	return rewrite.NewRule(fields[0], fields[1], fields[2])
}

func checkSeeds(seeds []int64) error {
	for _, v := range seeds {
		if v < 0 {
			return fmt.Errorf("negative seed %d", v)
		}
	}
	return nil
}

func parseInts(s string) ([]int64, error) {
	fields := strings.Fields(s)
	values := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		values = append(values, v)
	}
	return values, nil
}
