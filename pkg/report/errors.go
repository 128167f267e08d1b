package report

import "errors"

var (
	// ErrWriteReport is returned when the report destination cannot be written.
	ErrWriteReport = errors.New("failed to write validation report")

	// ErrParseReport is returned when a report document cannot be decoded.
	ErrParseReport = errors.New("failed to parse validation report")

	// ErrNilResult is returned when emitting without a result.
	ErrNilResult = errors.New("nil validation result")
)
