package expect

import "fmt"

// Kind names an expectation family for reporting.
type Kind string

const (
	KindNotNull   Kind = "not_null"
	KindNotEmpty  Kind = "not_empty"
	KindTypeMatch Kind = "type_match"
	KindBetween   Kind = "between"
	KindAtLeast   Kind = "at_least"
	KindAtMost    Kind = "at_most"
	KindMinLength Kind = "min_length"
	KindMaxLength Kind = "max_length"
	KindPattern   Kind = "pattern"
	KindInSet     Kind = "in_set"
	KindUnique    Kind = "unique"
	KindRowCount  Kind = "row_count"
)

// Cell is one record's view of the target field: the value and
// whether the record actually carries one.
type Cell struct {
	Value   any
	Present bool
}

// CheckFunc evaluates an expectation over the target field's column
// (nil for dataset-scoped expectations) and the dataset row count.
// It returns the outcome plus failure detail when ok is false.
type CheckFunc func(cells []Cell, rows int) (ok bool, detail string)

// Expectation is a single evaluable data-quality rule. Target is the
// field it applies to; dataset-scoped expectations leave it empty.
type Expectation struct {
	Kind        Kind
	Target      string
	Description string
	Check       CheckFunc
}

// DatasetScoped reports whether the expectation applies to the dataset
// as a whole rather than to a field's values.
func (e Expectation) DatasetScoped() bool { return e.Target == "" }

// perValue builds a field expectation from a per-value predicate.
// Missing cells pass unless failMissing is set: only presence-style
// rules treat absence as a violation, value-shape rules judge the
// values that exist.
func perValue(kind Kind, field, desc string, failMissing bool, pred func(v any) bool) Expectation {
	return Expectation{
		Kind:        kind,
		Target:      field,
		Description: desc,
		Check: func(cells []Cell, _ int) (bool, string) {
			failed := 0
			for _, c := range cells {
				if !c.Present {
					if failMissing {
						failed++
					}
					continue
				}
				if !pred(c.Value) {
					failed++
				}
			}
			if failed == 0 {
				return true, ""
			}
			return false, fmt.Sprintf("%d of %d records failed", failed, len(cells))
		},
	}
}
