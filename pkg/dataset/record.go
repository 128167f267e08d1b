package dataset

// missingValue is the type of the Missing sentinel. A dedicated type
// keeps the marker distinguishable from nil and from any value a
// generator or loader could produce.
type missingValue struct{}

func (missingValue) String() string { return "<missing>" }

// MarshalJSON renders the marker as null so serialized records stay
// plain JSON.
func (missingValue) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Missing marks an optional field that carries no value in a record.
var Missing = missingValue{}

// Record maps field names to values. A field may map to Missing; a
// name absent from the map is treated the same way.
type Record map[string]any

// IsMissing reports whether v is the missing marker (or nil, which
// loaders may produce for explicit JSON nulls).
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(missingValue)
	return ok
}

// Value returns the value for the named field and whether the record
// actually carries one. Missing markers and absent keys both report
// false.
func (r Record) Value(name string) (any, bool) {
	v, ok := r[name]
	if !ok || IsMissing(v) {
		return nil, false
	}
	return v, true
}
