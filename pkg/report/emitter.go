package report

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/felipearaujo/datacontracts/pkg/logger"
	"github.com/felipearaujo/datacontracts/pkg/validate"
)

// Option configures the emitter.
type Option func(*config)

// WithLogger supplies the logger for the outcome stream. Nil keeps the
// noop default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithIndent pretty-prints the JSON document with the given indent.
func WithIndent(indent string) Option {
	return func(c *config) { c.indent = indent }
}

type config struct {
	log    *slog.Logger
	indent string
}

// Emitter writes validation results to durable destinations.
type Emitter struct {
	cfg *config
}

// New builds an Emitter.
func New(opts ...Option) *Emitter {
	cfg := &config{log: logger.Noop()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Emitter{cfg: cfg}
}

// Emit writes the JSON report to w and streams one log line per
// outcome plus a summary line. A failing result emits normally; only a
// write failure is an error.
func (e *Emitter) Emit(res *validate.Result, w io.Writer) error {
	if res == nil {
		return ErrNilResult
	}

	for _, o := range res.Outcomes {
		attrs := []any{
			logger.SchemaName(res.SchemaName),
			logger.RunID(res.RunID),
			logger.Expectation(o.Expectation),
			logger.Target(o.Target),
			logger.Outcome(o.Success),
		}
		if o.Detail != nil {
			attrs = append(attrs, slog.String("detail", *o.Detail))
		}
		if o.Success {
			e.cfg.log.Info("expectation passed", attrs...)
		} else {
			e.cfg.log.Warn("expectation failed", attrs...)
		}
	}
	e.cfg.log.Info("validation run summary",
		logger.SchemaName(res.SchemaName),
		logger.RunID(res.RunID),
		logger.Outcome(res.Success),
		slog.Int("passed", res.Passed),
		slog.Int("failed", res.Failed),
	)

	enc := json.NewEncoder(w)
	if e.cfg.indent != "" {
		enc.SetIndent("", e.cfg.indent)
	}
	if err := enc.Encode(FromResult(res)); err != nil {
		return errors.Join(ErrWriteReport, err)
	}
	return nil
}

// EmitFile writes the report to path, creating parent directories as
// needed. The file is closed on every path, including after a write
// failure.
func (e *Emitter) EmitFile(res *validate.Result, path string) error {
	if res == nil {
		return ErrNilResult
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Join(ErrWriteReport, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Join(ErrWriteReport, err)
	}

	emitErr := e.Emit(res, f)
	if closeErr := f.Close(); closeErr != nil && emitErr == nil {
		return errors.Join(ErrWriteReport, closeErr)
	}
	return emitErr
}
