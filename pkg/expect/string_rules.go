package expect

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
)

// MinLength expects present string values to have at least n bytes.
func MinLength(field string, n int) Expectation {
	return perValue(KindMinLength, field,
		fmt.Sprintf("%s values have at least %d characters", field, n),
		false,
		func(v any) bool {
			s, ok := v.(string)
			return ok && len(s) >= n
		},
	)
}

// MaxLength expects present string values to have at most n bytes.
func MaxLength(field string, n int) Expectation {
	return perValue(KindMaxLength, field,
		fmt.Sprintf("%s values have at most %d characters", field, n),
		false,
		func(v any) bool {
			s, ok := v.(string)
			return ok && len(s) <= n
		},
	)
}

// MatchesPattern expects present string values to match the regular
// expression. The pattern is compiled here so a bad one fails at
// construction, not mid-run. Matching is unanchored RE2; anchor with
// ^...$ for full-string semantics.
func MatchesPattern(field, pattern string) (Expectation, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Expectation{}, errors.Join(ErrInvalidPattern, err)
	}
	return perValue(KindPattern, field,
		fmt.Sprintf("%s values match pattern %s", field, pattern),
		false,
		func(v any) bool {
			s, ok := v.(string)
			return ok && re.MatchString(s)
		},
	), nil
}

// InSet expects present values to be one of the allowed strings.
func InSet(field string, allowed []string) (Expectation, error) {
	if len(allowed) == 0 {
		return Expectation{}, errors.Join(ErrEmptySet, fmt.Errorf("field %q", field))
	}
	set := slices.Clone(allowed)
	return perValue(KindInSet, field,
		fmt.Sprintf("%s values are in %v", field, set),
		false,
		func(v any) bool {
			s, ok := v.(string)
			return ok && slices.Contains(set, s)
		},
	), nil
}
