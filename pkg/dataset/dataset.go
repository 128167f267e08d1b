package dataset

import (
	"errors"
	"fmt"

	"github.com/felipearaujo/datacontracts/pkg/schema"
)

// Dataset is an ordered, read-only sequence of records conforming to
// one schema. It is never mutated after construction.
type Dataset struct {
	schema  *schema.Schema
	records []Record
}

// New wraps records in a Dataset. The record slice is copied so later
// mutation of the caller's slice cannot reach the dataset.
func New(s *schema.Schema, records []Record) (*Dataset, error) {
	if s == nil {
		return nil, ErrNilSchema
	}
	d := &Dataset{
		schema:  s,
		records: make([]Record, len(records)),
	}
	copy(d.records, records)
	return d, nil
}

// Schema returns the schema all records conform to.
func (d *Dataset) Schema() *schema.Schema { return d.schema }

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Record returns the record at index i.
func (d *Dataset) Record(i int) (Record, error) {
	if i < 0 || i >= len(d.records) {
		return nil, errors.Join(ErrRecordOutOfRange, fmt.Errorf("index %d, length %d", i, len(d.records)))
	}
	return d.records[i], nil
}

// Records returns the record sequence. The slice is shared; callers
// must treat it as read-only.
func (d *Dataset) Records() []Record { return d.records }
