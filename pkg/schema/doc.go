// Package schema defines the declarative data model behind a data
// contract: a named, ordered set of typed fields with required-ness
// flags and optional value constraints.
//
// A Schema is constructed once via New (or parsed from a YAML/JSON
// definition file) and is immutable afterwards. All downstream stages
// of the pipeline — synthetic data generation, expectation derivation,
// validation — only read it.
//
// # Usage
//
//	s, err := schema.New("customer", []schema.Field{
//	    {Name: "customer_id", Type: schema.TypeInteger, Required: true},
//	    {Name: "email", Type: schema.TypeString, Required: true},
//	})
//	if err != nil {
//	    // malformed definition: empty field list, duplicate names, etc.
//	}
//
// # Error Handling
//
// Constructors return sentinel errors (ErrEmptySchema,
// ErrDuplicateField, ...) joined with contextual detail, so callers
// can branch with errors.Is while logs keep the specifics.
package schema
