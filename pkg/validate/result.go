package validate

import (
	"time"

	"github.com/google/uuid"

	"github.com/felipearaujo/datacontracts/pkg/expect"
)

// DatasetTarget is the reported target for dataset-scoped expectations.
const DatasetTarget = "dataset"

// Outcome is the result of evaluating one expectation. Detail is nil
// on success and holds the failure reason otherwise.
type Outcome struct {
	Kind        expect.Kind
	Expectation string
	Target      string
	Success     bool
	Detail      *string
}

// Result summarizes one validation run. It is created once per run and
// never mutated; a later run supersedes it with a new Result.
type Result struct {
	SchemaName string
	RunID      uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Success    bool
	Passed     int
	Failed     int
	Outcomes   []Outcome
}
