// Package faker produces realistic-looking synthetic values (names,
// emails, cities, phone numbers) from locale-specific word tables.
//
// A Faker draws exclusively from the *rand.Rand supplied at
// construction, so two Fakers built with equally seeded sources emit
// identical value streams. The package keeps no global state.
//
// Locale selection goes through golang.org/x/text language matching:
// unknown or unsupported tags fall back to English.
package faker
