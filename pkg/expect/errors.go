package expect

import "errors"

var (
	// ErrInvalidPattern is returned when a pattern expectation is built
	// from a regular expression that does not compile.
	ErrInvalidPattern = errors.New("invalid regular expression")

	// ErrEmptySet is returned when an in-set expectation is built with
	// no allowed values.
	ErrEmptySet = errors.New("allowed value set cannot be empty")
)
