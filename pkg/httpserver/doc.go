// Package httpserver wraps net/http with graceful shutdown for the
// contracts API service.
//
// Run blocks until the context is cancelled or an interrupt/TERM
// signal arrives, then drains in-flight requests within the shutdown
// timeout. Errors are wrapped with the ErrStart and ErrShutdown
// sentinels for errors.Is inspection.
package httpserver
