package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/felipearaujo/datacontracts/pkg/contracts"
	"github.com/felipearaujo/datacontracts/pkg/logger"
	"github.com/felipearaujo/datacontracts/pkg/report"
	"github.com/felipearaujo/datacontracts/pkg/validate"
)

// ErrPublish is returned when the catalog rejects or fails a publish
// request.
var ErrPublish = errors.New("failed to publish to metadata catalog")

// Config carries the catalog connection settings. An empty BaseURL
// disables the client.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Option configures the client.
type Option func(*Client)

// WithLogger supplies a logger. Nil keeps the noop default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Test hook.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// Client talks to the metadata catalog.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

// New builds a Client. Timeout defaults to 10s when unset.
func New(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
		log:  logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether a catalog endpoint is configured.
func (c *Client) Enabled() bool { return c.cfg.BaseURL != "" }

// schemaPayload is the catalog's view of a contract: lineage metadata
// plus the flat field list.
type schemaPayload struct {
	Name   string `json:"name"`
	Owner  string `json:"owner"`
	Status string `json:"status"`
	Fields []struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		Required bool   `json:"required"`
	} `json:"fields"`
}

// PublishSchema registers the contract's schema with the catalog.
// No-op when disabled.
func (c *Client) PublishSchema(ctx context.Context, contract *contracts.Contract) error {
	if !c.Enabled() {
		return nil
	}

	p := schemaPayload{
		Name:   contract.Name,
		Owner:  contract.Owner,
		Status: string(contract.Status),
	}
	for _, f := range contract.Schema.Fields() {
		p.Fields = append(p.Fields, struct {
			Name     string `json:"name"`
			Type     string `json:"type"`
			Required bool   `json:"required"`
		}{Name: f.Name, Type: string(f.Type), Required: f.Required})
	}

	err := c.post(ctx, "/api/v1/schemas", p)
	c.log.Debug("published contract schema",
		logger.ContractID(contract.ID),
		logger.SchemaName(contract.Schema.Name()),
		logger.Error(err),
	)
	return err
}

// PublishValidation records a validation run for lineage. No-op when
// disabled.
func (c *Client) PublishValidation(ctx context.Context, res *validate.Result) error {
	if !c.Enabled() {
		return nil
	}

	err := c.post(ctx, "/api/v1/validations", report.FromResult(res))
	c.log.Debug("published validation run",
		logger.SchemaName(res.SchemaName),
		logger.RunID(res.RunID),
		logger.Error(err),
	)
	return err
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Join(ErrPublish, err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrPublish, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrPublish, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Join(ErrPublish, fmt.Errorf("catalog returned %s", resp.Status))
	}
	return nil
}
