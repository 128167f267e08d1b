package report

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/felipearaujo/datacontracts/pkg/validate"
)

// Report is the wire form of a validation result. Field names are
// consumed externally; treat them as frozen.
type Report struct {
	SchemaName   string    `json:"schema_name"`
	RunID        string    `json:"run_id"`
	RunTimestamp time.Time `json:"run_timestamp"`
	Success      bool      `json:"success"`
	Passed       int       `json:"passed"`
	Failed       int       `json:"failed"`
	Results      []Entry   `json:"results"`
}

// Entry is one expectation outcome. Detail is explicitly null for
// passing entries.
type Entry struct {
	Expectation string  `json:"expectation"`
	Target      string  `json:"target"`
	Success     bool    `json:"success"`
	Detail      *string `json:"detail"`
}

// FromResult converts an in-memory result to its wire form.
func FromResult(res *validate.Result) *Report {
	r := &Report{
		SchemaName:   res.SchemaName,
		RunID:        res.RunID.String(),
		RunTimestamp: res.StartedAt,
		Success:      res.Success,
		Passed:       res.Passed,
		Failed:       res.Failed,
		Results:      make([]Entry, 0, len(res.Outcomes)),
	}
	for _, o := range res.Outcomes {
		r.Results = append(r.Results, Entry{
			Expectation: o.Expectation,
			Target:      o.Target,
			Success:     o.Success,
			Detail:      o.Detail,
		})
	}
	return r
}

// Parse decodes a report document, for round-trip tests and consumers
// that read reports back.
func Parse(r io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, errors.Join(ErrParseReport, err)
	}
	return &rep, nil
}
