// Package datagen turns a schema into a dataset of synthetic records.
//
// A Generator is configured once with functional options (seed,
// locale, missing-value rate, date range) and can then produce any
// number of datasets. Value production is driven by an explicit
// strategy registry keyed by data type, resolved at construction;
// a schema declaring a type with no registered strategy fails loudly
// before any record is built.
//
// # Determinism
//
// All randomness flows from a single seeded source, including the
// decision to drop optional values, so a fixed (schema, count, locale,
// seed) tuple reproduces the dataset exactly. The default date range
// is anchored to the current UTC day; set WithDateRange for output
// that is stable across days.
//
// # Usage
//
//	gen := datagen.New(
//	    datagen.WithSeed(1),
//	    datagen.WithLocale(language.BrazilianPortuguese),
//	)
//	ds, err := gen.Generate(customerSchema, 100)
package datagen
