package expect

import "fmt"

// Unique expects no two records to carry the same present value for
// the field. Missing values never count as duplicates of each other.
func Unique(field string) Expectation {
	return Expectation{
		Kind:        KindUnique,
		Target:      field,
		Description: fmt.Sprintf("%s values are unique", field),
		Check: func(cells []Cell, _ int) (bool, string) {
			seen := make(map[string]int, len(cells))
			dups := 0
			for _, c := range cells {
				if !c.Present {
					continue
				}
				key := fmt.Sprintf("%v", c.Value)
				seen[key]++
				if seen[key] == 2 {
					dups++
				}
			}
			if dups == 0 {
				return true, ""
			}
			return false, fmt.Sprintf("%d duplicated values", dups)
		},
	}
}

// RowCountBetween expects the dataset to hold between min and max
// records, both bounds inclusive. It is dataset-scoped: ForField never
// returns it and All orders it after the field expectations.
func RowCountBetween(min, max int) Expectation {
	return Expectation{
		Kind:        KindRowCount,
		Description: fmt.Sprintf("row count is between %d and %d", min, max),
		Check: func(_ []Cell, rows int) (bool, string) {
			if rows >= min && rows <= max {
				return true, ""
			}
			return false, fmt.Sprintf("dataset has %d rows", rows)
		},
	}
}
