package expect

import (
	"fmt"
	"time"

	"github.com/felipearaujo/datacontracts/pkg/schema"
)

// TypeMatch expects every present value to have the runtime shape of
// the declared data type. Missing values are judged by NotNull, not
// here.
func TypeMatch(field string, dt schema.DataType) Expectation {
	return perValue(KindTypeMatch, field,
		fmt.Sprintf("%s values are of type %s", field, dt),
		false,
		func(v any) bool { return matchesType(v, dt) },
	)
}

// matchesType implements the runtime value conventions documented in
// the dataset package.
func matchesType(v any, dt schema.DataType) bool {
	switch dt {
	case schema.TypeString:
		_, ok := v.(string)
		return ok
	case schema.TypeInteger:
		switch v.(type) {
		case int, int32, int64:
			return true
		}
		return false
	case schema.TypeFloat:
		switch v.(type) {
		case float32, float64:
			return true
		}
		return false
	case schema.TypeBoolean:
		_, ok := v.(bool)
		return ok
	case schema.TypeDate:
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	case schema.TypeDateTime:
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, err := time.Parse(time.RFC3339, s)
		return err == nil
	case schema.TypeArray:
		_, ok := v.([]any)
		return ok
	case schema.TypeObject:
		_, ok := v.(map[string]any)
		return ok
	}
	return false
}
