package almanac

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rofferom/aoc2023/domain/rewrite"
)

type yamlAlmanac struct {
	Seeds  []int64     `yaml:"seeds"`
	Stages []yamlStage `yaml:"stages"`
}

type yamlStage struct {
	Name  string    `yaml:"name"`
	Rules [][]int64 `yaml:"rules"`
}

// ParseYAML reads an almanac written as YAML:
//
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - name: seed-to-soil
//	    rules:
//	      - [50, 98, 2]
//	      - [52, 50, 48]
//
// Each rule lists destination, source and length.
func ParseYAML(r io.Reader) (Almanac, error) {
	var doc yamlAlmanac
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Almanac{}, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return Almanac{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Seeds == nil {
		return Almanac{}, fmt.Errorf("%w: missing seeds", ErrMalformed)
	}
	if err := checkSeeds(doc.Seeds); err != nil {
		return Almanac{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	stages := make([]rewrite.Stage, 0, len(doc.Stages))
	for i, s := range doc.Stages {
		rules := make([]rewrite.Rule, 0, len(s.Rules))
		for j, fields := range s.Rules {
			if len(fields) != 3 {
				return Almanac{}, fmt.Errorf("%w: stage %d rule %d needs 3 numbers, got %d", ErrMalformed, i+1, j+1, len(fields))
			}
			rule, err := rewrite.NewRule(fields[0], fields[1], fields[2])
			if err != nil {
				return Almanac{}, fmt.Errorf("stage %d rule %d: %w", i+1, j+1, err)
			}
			rules = append(rules, rule)
		}
		stages = append(stages, rewrite.NewStage(s.Name, rules...))
	}

	return New(doc.Seeds, stages), nil
}
