package dataset

import (
	"encoding/json"
	"errors"
	"io"
	"math"

	"github.com/felipearaujo/datacontracts/pkg/schema"
)

// FromJSON loads records from a JSON array of objects. Keys the schema
// does not declare are dropped; declared fields absent from an object
// (or explicitly null) are stored as Missing.
func FromJSON(r io.Reader, s *schema.Schema) (*Dataset, error) {
	if s == nil {
		return nil, ErrNilSchema
	}

	var raw []map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Join(ErrReadInput, err)
	}

	records := make([]Record, 0, len(raw))
	for _, row := range raw {
		rec := make(Record, s.FieldCount())
		for _, f := range s.Fields() {
			v, ok := row[f.Name]
			if !ok || v == nil {
				rec[f.Name] = Missing
				continue
			}
			rec[f.Name] = coerceJSON(v, f.Type)
		}
		records = append(records, rec)
	}
	return New(s, records)
}

// coerceJSON nudges decoded JSON values toward the declared type.
// JSON numbers always decode as float64; integer fields get them back
// as int64 when the value is integral. Anything that does not fit is
// returned unchanged for the validator to flag.
func coerceJSON(v any, dt schema.DataType) any {
	if dt == schema.TypeInteger {
		if f, ok := v.(float64); ok && f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int64(f)
		}
	}
	return v
}
