package rewrite

import (
	"fmt"
	"math"
)

// Rule maps the source interval [source, source+length) onto
// [destination, destination+length) by a constant offset.
// Immutable value object.
type Rule struct {
	destination int64
	source      int64
	length      int64
}

// NewRule creates a Rule. Rules must cover at least one value and neither
// interval may run past math.MaxInt64.
func NewRule(destination, source, length int64) (Rule, error) {
	if length <= 0 {
		return Rule{}, fmt.Errorf("%w: length %d must be positive", ErrInvalidRule, length)
	}
	if destination < 0 || source < 0 {
		return Rule{}, fmt.Errorf("%w: negative bound (destination %d, source %d)", ErrInvalidRule, destination, source)
	}
	if length > math.MaxInt64-source || length > math.MaxInt64-destination {
		return Rule{}, fmt.Errorf("%w: length %d overflows", ErrInvalidRule, length)
	}
	return Rule{destination: destination, source: source, length: length}, nil
}

// Destination returns the first value of the output interval.
func (r Rule) Destination() int64 { return r.destination }

// Source returns the first value of the input interval.
func (r Rule) Source() int64 { return r.source }

// Length returns the number of values the rule covers.
func (r Rule) Length() int64 { return r.length }

// Offset returns the amount added to every matched value.
func (r Rule) Offset() int64 { return r.destination - r.source }

// SourceRange returns the interval of values the rule matches.
func (r Rule) SourceRange() ValueRange {
	return ValueRange{start: r.source, length: r.length}
}

// Apply maps v when it lies in the source interval. The boolean reports
// whether the rule matched.
func (r Rule) Apply(v int64) (int64, bool) {
	if v < r.source || v-r.source >= r.length {
		return v, false
	}
	return r.destination + (v - r.source), true
}

func (r Rule) String() string {
	return fmt.Sprintf("%d %d %d", r.destination, r.source, r.length)
}
