// Package dataset holds the runtime data model of the pipeline:
// records conforming to a schema, with an explicit marker for missing
// optional values, plus loaders for externally supplied JSON and CSV
// files.
//
// Value conventions per declared type: string fields carry string,
// integer fields int64, float fields float64, boolean fields bool,
// date fields a "2006-01-02" string, datetime fields an RFC 3339
// string, array fields []any and object fields map[string]any.
//
// Loaders coerce raw input cells toward the declared type but never
// fail on a cell that does not fit — the offending raw value is kept
// as-is so the validator can report it as a type mismatch instead of
// the load aborting the run.
package dataset
