package rewrite

import "errors"

// Errors returned by the rewrite engine.
var (
	// ErrEmptyInput indicates a reduction was asked to minimise over nothing.
	ErrEmptyInput = errors.New("rewrite: empty input")

	// ErrInvalidRule indicates a rule that cannot describe a nonempty interval.
	ErrInvalidRule = errors.New("rewrite: invalid rule")

	// ErrInvalidRange indicates a value range that cannot describe a nonempty interval.
	ErrInvalidRange = errors.New("rewrite: invalid range")
)
