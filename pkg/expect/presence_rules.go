package expect

import (
	"fmt"
	"strings"
)

// NotNull expects every record to carry a value for the field. Missing
// markers and absent keys both count as violations.
func NotNull(field string) Expectation {
	return perValue(KindNotNull, field,
		fmt.Sprintf("%s is never missing", field),
		true,
		func(any) bool { return true },
	)
}

// NotEmpty expects present string values to contain non-whitespace
// content, and fails on missing values like NotNull does.
func NotEmpty(field string) Expectation {
	return perValue(KindNotEmpty, field,
		fmt.Sprintf("%s is never empty", field),
		true,
		func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return true
			}
			return strings.TrimSpace(s) != ""
		},
	)
}
