package datagen

import "errors"

var (
	// ErrNilSchema is returned when Generate is called without a schema.
	ErrNilSchema = errors.New("generation requires a schema")

	// ErrInvalidCount is returned when the requested record count is not positive.
	ErrInvalidCount = errors.New("record count must be positive")

	// ErrUnsupportedType is returned when the schema declares a data
	// type with no registered generation strategy.
	ErrUnsupportedType = errors.New("no generation strategy registered for data type")
)
