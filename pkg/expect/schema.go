package expect

import (
	"github.com/felipearaujo/datacontracts/pkg/schema"
)

// FromSchema derives the default rule set a data contract implies:
// a type expectation per field, not-null for required fields, and one
// expectation per declared constraint. Field order follows the schema.
func FromSchema(s *schema.Schema) (*RuleSet, error) {
	rs := NewRuleSet()
	for _, f := range s.Fields() {
		rs.Add(TypeMatch(f.Name, f.Type))
		if f.Required {
			rs.Add(NotNull(f.Name))
		}

		c := f.Constraints
		switch {
		case c.MinValue != nil && c.MaxValue != nil:
			rs.Add(Between(f.Name, *c.MinValue, *c.MaxValue))
		case c.MinValue != nil:
			rs.Add(AtLeast(f.Name, *c.MinValue))
		case c.MaxValue != nil:
			rs.Add(AtMost(f.Name, *c.MaxValue))
		}

		if c.MinLength != nil {
			rs.Add(MinLength(f.Name, *c.MinLength))
		}
		if c.MaxLength != nil {
			rs.Add(MaxLength(f.Name, *c.MaxLength))
		}
		if c.Pattern != "" {
			e, err := MatchesPattern(f.Name, c.Pattern)
			if err != nil {
				return nil, err
			}
			rs.Add(e)
		}
		if len(c.Enum) > 0 {
			e, err := InSet(f.Name, c.Enum)
			if err != nil {
				return nil, err
			}
			rs.Add(e)
		}
		if c.Unique {
			rs.Add(Unique(f.Name))
		}
	}
	return rs, nil
}
