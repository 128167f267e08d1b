package expect

import "fmt"

// Between expects present numeric values to satisfy min <= v <= max.
// Both bounds are inclusive. Non-numeric values fail the check.
func Between(field string, min, max float64) Expectation {
	return perValue(KindBetween, field,
		fmt.Sprintf("%s values are between %v and %v", field, min, max),
		false,
		func(v any) bool {
			n, ok := asFloat(v)
			return ok && n >= min && n <= max
		},
	)
}

// AtLeast expects present numeric values to be >= min.
func AtLeast(field string, min float64) Expectation {
	return perValue(KindAtLeast, field,
		fmt.Sprintf("%s values are at least %v", field, min),
		false,
		func(v any) bool {
			n, ok := asFloat(v)
			return ok && n >= min
		},
	)
}

// AtMost expects present numeric values to be <= max.
func AtMost(field string, max float64) Expectation {
	return perValue(KindAtMost, field,
		fmt.Sprintf("%s values are at most %v", field, max),
		false,
		func(v any) bool {
			n, ok := asFloat(v)
			return ok && n <= max
		},
	)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
