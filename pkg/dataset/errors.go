package dataset

import "errors"

var (
	// ErrReadInput is returned when an input file cannot be decoded at all.
	ErrReadInput = errors.New("failed to read input data")

	// ErrNilSchema is returned when a dataset is built without a schema.
	ErrNilSchema = errors.New("dataset requires a schema")

	// ErrRecordOutOfRange is returned when indexing past the last record.
	ErrRecordOutOfRange = errors.New("record index out of range")
)
