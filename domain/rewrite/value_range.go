// Package rewrite provides the interval-rewrite engine: rules, stages and
// pipelines that map scalar values and whole value ranges through ordered
// rule tables with identity fallback.
package rewrite

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// ValueRange is the half-open interval [start, start+length).
// Immutable value object.
type ValueRange struct {
	start  int64
	length int64
}

// NewValueRange creates a ValueRange, rejecting empty, negative and
// overflowing intervals.
func NewValueRange(start, length int64) (ValueRange, error) {
	if start < 0 {
		return ValueRange{}, fmt.Errorf("%w: negative start %d", ErrInvalidRange, start)
	}
	if length <= 0 {
		return ValueRange{}, fmt.Errorf("%w: length %d must be positive", ErrInvalidRange, length)
	}
	if length > math.MaxInt64-start {
		return ValueRange{}, fmt.Errorf("%w: start %d length %d overflows", ErrInvalidRange, start, length)
	}
	return ValueRange{start: start, length: length}, nil
}

// Validate reports whether r describes a nonempty interval. The zero
// ValueRange is invalid.
func (r ValueRange) Validate() error {
	_, err := NewValueRange(r.start, r.length)
	return err
}

// Start returns the first value in the range.
func (r ValueRange) Start() int64 { return r.start }

// Length returns the number of values in the range.
func (r ValueRange) Length() int64 { return r.length }

// End returns the exclusive upper bound.
func (r ValueRange) End() int64 { return r.start + r.length }

// Contains reports whether v lies in the range.
func (r ValueRange) Contains(v int64) bool {
	return r.start <= v && v < r.End()
}

// Overlaps reports whether r and o share at least one value.
func (r ValueRange) Overlaps(o ValueRange) bool {
	return r.start < o.End() && o.start < r.End()
}

// Intersect returns the values common to r and o. The boolean is false
// when the ranges do not overlap.
func (r ValueRange) Intersect(o ValueRange) (ValueRange, bool) {
	start := max(r.start, o.start)
	end := min(r.End(), o.End())
	if end <= start {
		return ValueRange{}, false
	}
	return ValueRange{start: start, length: end - start}, true
}

// Shift moves the range by offset, keeping its length.
func (r ValueRange) Shift(offset int64) ValueRange {
	return ValueRange{start: r.start + offset, length: r.length}
}

// String formats the range as [start,end).
func (r ValueRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.start, r.End())
}

// between builds the range [start, end). Callers guarantee start < end.
func between(start, end int64) ValueRange {
	return ValueRange{start: start, length: end - start}
}

// RangeSet is a collection of value ranges interpreted as their union.
type RangeSet []ValueRange

// TotalLength sums the lengths of the members.
func (s RangeSet) TotalLength() int64 {
	var total int64
	for _, r := range s {
		total += r.length
	}
	return total
}

// Min returns the smallest value in the set. The boolean is false for an
// empty set.
func (s RangeSet) Min() (int64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	lowest := s[0].start
	for _, r := range s[1:] {
		lowest = min(lowest, r.start)
	}
	return lowest, true
}

// Compact returns the minimal sorted, disjoint set covering the same values.
// Overlapping and adjacent members are merged. The receiver is not modified.
func (s RangeSet) Compact() RangeSet {
	return MergeRanges(s)
}

// MergeRanges normalises ranges into a sorted RangeSet whose members neither
// overlap nor touch.
func MergeRanges(ranges []ValueRange) RangeSet {
	if len(ranges) == 0 {
		return nil
	}

	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b ValueRange) int {
		if a.start != b.start {
			return cmp.Compare(a.start, b.start)
		}
		return cmp.Compare(a.length, b.length)
	})

	merged := make(RangeSet, 0, len(sorted))
	current := sorted[0]
	for _, r := range sorted[1:] {
		if r.start <= current.End() {
			if r.End() > current.End() {
				current = between(current.start, r.End())
			}
			continue
		}
		merged = append(merged, current)
		current = r
	}
	return append(merged, current)
}
