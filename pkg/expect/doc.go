// Package expect defines data-quality expectations and the ordered
// rule sets that group them.
//
// An Expectation is a small value combining a check closure with
// reporting metadata (kind, target field, human-readable description).
// Each source file groups a family of constructors for one concern
// (presence, types, numeric ranges, string shapes, dataset-wide
// rules). Constructors never evaluate anything; evaluation happens in
// the validate package against a concrete dataset.
//
// A RuleSet preserves insertion order and never deduplicates: adding
// the same expectation twice yields two independent entries in the
// validation report.
//
// # Usage
//
//	rs := expect.NewRuleSet(
//	    expect.NotNull("email"),
//	    expect.TypeMatch("customer_id", schema.TypeInteger),
//	    expect.Unique("customer_id"),
//	)
//	rs.Add(expect.RowCountBetween(1, 10_000))
//
// Or derive the default contract rule set straight from a schema with
// FromSchema.
package expect
