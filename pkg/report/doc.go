// Package report serializes validation results to their durable
// forms: a stable JSON document for downstream consumers (the
// validation UI, the metadata catalog) and a structured log stream
// with one line per expectation outcome plus a summary line.
//
// Emitting a failing result is the normal case, not an error: Emit
// only fails when the destination cannot be written, and the computed
// result stays available to the caller either way.
//
// The JSON field set is part of the package's contract — consumers
// parse it — so fields are only ever added, never renamed.
package report
