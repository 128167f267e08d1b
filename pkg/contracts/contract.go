package contracts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/felipearaujo/datacontracts/pkg/expect"
	"github.com/felipearaujo/datacontracts/pkg/schema"
)

// Status is the lifecycle state of a contract.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusActive     Status = "active"
	StatusDeprecated Status = "deprecated"
)

// Valid reports whether s is a known lifecycle state.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusDeprecated:
		return true
	}
	return false
}

// Contract binds a schema to an owner and a lifecycle. The schema
// carries the field constraints the contract's expectations derive
// from.
type Contract struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Owner     string         `json:"owner"`
	Status    Status         `json:"status"`
	Schema    *schema.Schema `json:"schema"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// validate checks the invariants persistence relies on. A zero Status
// is defaulted to draft rather than rejected.
func (c *Contract) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.Join(ErrInvalidContract, errors.New("contract name cannot be empty"))
	}
	if c.Schema == nil {
		return errors.Join(ErrInvalidContract, fmt.Errorf("contract %q has no schema", c.Name))
	}
	if c.Status == "" {
		c.Status = StatusDraft
	}
	if !c.Status.Valid() {
		return errors.Join(ErrInvalidContract, fmt.Errorf("contract %q has unknown status %q", c.Name, c.Status))
	}
	return nil
}

// RuleSet derives the expectations the contract's schema implies.
func (c *Contract) RuleSet() (*expect.RuleSet, error) {
	if c.Schema == nil {
		return nil, errors.Join(ErrInvalidContract, fmt.Errorf("contract %q has no schema", c.Name))
	}
	return expect.FromSchema(c.Schema)
}
