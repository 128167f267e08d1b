package validate

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/felipearaujo/datacontracts/pkg/dataset"
	"github.com/felipearaujo/datacontracts/pkg/expect"
	"github.com/felipearaujo/datacontracts/pkg/logger"
)

// Option configures the validator.
type Option func(*config)

// WithLogger supplies a logger for run progress. Nil keeps the noop
// default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithNow overrides the clock used for run timestamps. Test hook.
func WithNow(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

type config struct {
	log *slog.Logger
	now func() time.Time
}

// Validator evaluates rule sets against datasets. It holds no
// per-run state and is safe to reuse across runs.
type Validator struct {
	cfg *config
}

// New builds a Validator.
func New(opts ...Option) *Validator {
	cfg := &config{
		log: logger.Noop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Validator{cfg: cfg}
}

// Run evaluates every expectation in rs against ds, in rs.All() order,
// and returns the aggregate result. It never short-circuits and never
// returns an error: failing expectations are data in the result.
func (v *Validator) Run(ds *dataset.Dataset, rs *expect.RuleSet) *Result {
	res := &Result{
		RunID:     uuid.New(),
		StartedAt: v.cfg.now().UTC(),
	}
	if ds != nil {
		res.SchemaName = ds.Schema().Name()
	}

	var exps []expect.Expectation
	if rs != nil {
		exps = rs.All()
	}

	v.cfg.log.Debug("validation run started",
		logger.SchemaName(res.SchemaName),
		logger.RunID(res.RunID),
		slog.Int("expectations", len(exps)),
	)

	res.Outcomes = make([]Outcome, 0, len(exps))
	for _, e := range exps {
		res.Outcomes = append(res.Outcomes, v.evaluate(ds, e))
	}

	res.Success = true
	for _, o := range res.Outcomes {
		if o.Success {
			res.Passed++
		} else {
			res.Failed++
			res.Success = false
		}
	}
	res.FinishedAt = v.cfg.now().UTC()

	v.cfg.log.Debug("validation run finished",
		logger.SchemaName(res.SchemaName),
		logger.RunID(res.RunID),
		logger.Outcome(res.Success),
		logger.Duration(res.FinishedAt.Sub(res.StartedAt)),
	)
	return res
}

// evaluate runs a single expectation. A field expectation whose target
// the schema does not declare fails with detail instead of aborting
// the run.
func (v *Validator) evaluate(ds *dataset.Dataset, e expect.Expectation) Outcome {
	out := Outcome{
		Kind:        e.Kind,
		Expectation: e.Description,
		Target:      e.Target,
	}
	if e.DatasetScoped() {
		out.Target = DatasetTarget
	}

	rows := 0
	if ds != nil {
		rows = ds.Len()
	}

	switch {
	case e.DatasetScoped():
		out.Success, out.Detail = asDetail(e.Check(nil, rows))
	case ds == nil || !ds.Schema().Has(e.Target):
		schemaName := ""
		if ds != nil {
			schemaName = ds.Schema().Name()
		}
		detail := fmt.Sprintf("field %q is not declared in schema %q", e.Target, schemaName)
		out.Detail = &detail
	default:
		out.Success, out.Detail = asDetail(e.Check(column(ds, e.Target), rows))
	}
	return out
}

// column projects the target field across all records.
func column(ds *dataset.Dataset, field string) []expect.Cell {
	cells := make([]expect.Cell, 0, ds.Len())
	for _, rec := range ds.Records() {
		v, ok := rec.Value(field)
		cells = append(cells, expect.Cell{Value: v, Present: ok})
	}
	return cells
}

func asDetail(ok bool, detail string) (bool, *string) {
	if ok {
		return true, nil
	}
	return false, &detail
}
