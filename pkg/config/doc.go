// Package config loads the pipeline configuration from environment
// variables, with an optional .env file for local development.
//
// Configuration is a plain value handed explicitly to the components
// that need it (generator, emitter, server); there is no process-wide
// mutable configuration state.
package config
