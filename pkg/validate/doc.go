// Package validate evaluates a rule set against a dataset and
// produces an immutable result.
//
// Evaluation is exhaustive: every expectation runs even after earlier
// failures, so the result always covers the whole rule set. An
// expectation that cannot be evaluated at all (its target field is not
// declared in the schema) becomes a failing outcome with detail — the
// run itself never aborts, and failing data is a normal result, not an
// error.
package validate
