// Package catalog pushes contract schemas and validation runs to an
// external metadata catalog over its REST API.
//
// The integration is optional: a Client built with an empty base URL
// is disabled and every publish call is a silent no-op, so callers
// never branch on whether a catalog is deployed. Publish failures are
// returned for logging but are never fatal to the pipeline — the
// catalog is an observer, not a dependency.
package catalog
