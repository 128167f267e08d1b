package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/felipearaujo/datacontracts/pkg/schema"
)

// FromCSV loads records from CSV input with a header row. Columns the
// schema does not declare are ignored; declared fields missing from
// the header map to Missing in every record. An empty cell on an
// optional field becomes Missing; on a required field it is kept as an
// empty string so the not-null expectation reports it.
func FromCSV(r io.Reader, s *schema.Schema) (*Dataset, error) {
	if s == nil {
		return nil, ErrNilSchema
	}

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, errors.Join(ErrReadInput, err)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrReadInput, err)
		}

		rec := make(Record, s.FieldCount())
		for i, col := range header {
			if i >= len(row) || !s.Has(col) {
				continue
			}
			f, err := s.Field(col)
			if err != nil {
				return nil, err
			}
			cell := row[i]
			if cell == "" && !f.Required {
				rec[col] = Missing
				continue
			}
			rec[col] = coerceCell(cell, f.Type)
		}
		for _, f := range s.Fields() {
			if _, ok := rec[f.Name]; !ok {
				rec[f.Name] = Missing
			}
		}
		records = append(records, rec)
	}
	return New(s, records)
}

// coerceCell parses a CSV cell toward the declared type. Cells that do
// not parse are kept as raw strings; the validator reports them as
// type mismatches rather than the load failing.
func coerceCell(cell string, dt schema.DataType) any {
	switch dt {
	case schema.TypeInteger:
		if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
			return n
		}
	case schema.TypeFloat:
		if f, err := strconv.ParseFloat(cell, 64); err == nil {
			return f
		}
	case schema.TypeBoolean:
		if b, err := strconv.ParseBool(cell); err == nil {
			return b
		}
	case schema.TypeArray:
		var arr []any
		if err := json.Unmarshal([]byte(cell), &arr); err == nil {
			return arr
		}
	case schema.TypeObject:
		var obj map[string]any
		if err := json.Unmarshal([]byte(cell), &obj); err == nil {
			return obj
		}
	}
	return cell
}
