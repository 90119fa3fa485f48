package rewrite

import "slices"

// Stage is one ordered rule table. When several rules match a value the
// earliest one wins; values no rule matches pass through unchanged.
type Stage struct {
	name  string
	rules []Rule
}

// NewStage creates a Stage. The rules are copied.
func NewStage(name string, rules ...Rule) Stage {
	return Stage{
		name:  name,
		rules: slices.Clone(rules),
	}
}

// Name returns the stage name, e.g. "seed-to-soil".
func (s Stage) Name() string { return s.name }

// Rules returns a copy of the rules in match order.
func (s Stage) Rules() []Rule { return slices.Clone(s.rules) }

// MapValue maps a single value through the stage.
func (s Stage) MapValue(v int64) int64 {
	for _, rule := range s.rules {
		if mapped, ok := rule.Apply(v); ok {
			return mapped
		}
	}
	return v
}

// MapRange maps every value of r through the stage without enumerating
// them. The fragments partition r on the input side, so their lengths
// always sum to r.Length().
func (s Stage) MapRange(r ValueRange) RangeSet {
	var mapped RangeSet
	pending := []ValueRange{r}

	for _, rule := range s.rules {
		if len(pending) == 0 {
			break
		}
		src := rule.SourceRange()

		var unresolved []ValueRange
		for _, frag := range pending {
			hit, ok := frag.Intersect(src)
			if !ok {
				unresolved = append(unresolved, frag)
				continue
			}
			if hit.start > frag.start {
				unresolved = append(unresolved, between(frag.start, hit.start))
			}
			// Resolved values leave the worklist so later rules cannot claim them.
			mapped = append(mapped, hit.Shift(rule.Offset()))
			if hit.End() < frag.End() {
				unresolved = append(unresolved, between(hit.End(), frag.End()))
			}
		}
		pending = unresolved
	}

	return append(mapped, pending...)
}

// MapRangeSet maps each member of rs and concatenates the results.
// Members from different inputs may overlap; no merging is done here.
func (s Stage) MapRangeSet(rs RangeSet) RangeSet {
	out := make(RangeSet, 0, len(rs))
	for _, r := range rs {
		out = append(out, s.MapRange(r)...)
	}
	return out
}
