// Command datacontracts drives the data contract pipeline.
//
// Two modes are supported:
//
//	datacontracts run   -schema customer.yaml -count 500 -seed 42
//	datacontracts serve
//
// "run" generates a synthetic dataset for a schema, validates it, and
// writes the report to the report directory. "serve" starts the
// contracts HTTP API over a file-backed store. Configuration comes from
// the environment (DC_* variables, optional .env file).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/felipearaujo/datacontracts/modules/contractsapi"
	"github.com/felipearaujo/datacontracts/pkg/catalog"
	"github.com/felipearaujo/datacontracts/pkg/config"
	"github.com/felipearaujo/datacontracts/pkg/contracts"
	"github.com/felipearaujo/datacontracts/pkg/datagen"
	"github.com/felipearaujo/datacontracts/pkg/expect"
	"github.com/felipearaujo/datacontracts/pkg/httpserver"
	"github.com/felipearaujo/datacontracts/pkg/logger"
	"github.com/felipearaujo/datacontracts/pkg/report"
	"github.com/felipearaujo/datacontracts/pkg/schema"
	"github.com/felipearaujo/datacontracts/pkg/validate"
)

func main() {
	mode := "run"
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		mode, args = args[0], args[1:]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.ParseFormat(cfg.LogFormat)),
		logger.WithService("datacontracts"),
	)

	switch mode {
	case "run":
		err = runPipeline(args, cfg, log)
	case "serve":
		err = serve(cfg, log)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q (expected run or serve)\n", mode)
		os.Exit(2)
	}
	if err != nil {
		log.Error("command failed", logger.Error(err))
		os.Exit(1)
	}
}

// runPipeline generates, validates, and reports. A failing validation
// is a result, not an error: the report records it and the process
// exits 0.
func runPipeline(args []string, cfg config.Config, log *slog.Logger) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "path to a YAML/JSON schema definition (built-in customer schema when empty)")
	count := fs.Int("count", cfg.RecordCount, "number of records to generate")
	seed := fs.Int64("seed", 0, "random seed; 0 seeds from the clock")
	out := fs.String("out", "", "report file path (default <report-dir>/<schema>-<run-id>.json)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := loadSchema(*schemaPath)
	if err != nil {
		return err
	}

	opts := []datagen.Option{
		datagen.WithLocale(cfg.LocaleTag()),
		datagen.WithMissingRate(cfg.MissingRate),
	}
	if *seed != 0 {
		opts = append(opts, datagen.WithSeed(*seed))
	}
	ds, err := datagen.New(opts...).Generate(s, *count)
	if err != nil {
		return err
	}
	log.Info("dataset generated",
		logger.SchemaName(s.Name()),
		logger.RecordCount(ds.Len()),
	)

	rs, err := expect.FromSchema(s)
	if err != nil {
		return err
	}
	res := validate.New(validate.WithLogger(log)).Run(ds, rs)

	path := *out
	if path == "" {
		path = filepath.Join(cfg.ReportDir, fmt.Sprintf("%s-%s.json", s.Name(), res.RunID))
	}
	emitter := report.New(report.WithLogger(log), report.WithIndent("  "))
	if err := emitter.EmitFile(res, path); err != nil {
		return err
	}
	log.Info("report written", logger.RunID(res.RunID), logger.Outcome(res.Success), "path", path)

	return publishToCatalog(cfg, log, s, res)
}

func serve(cfg config.Config, log *slog.Logger) error {
	store, err := contracts.NewFileStore(cfg.ContractsDir)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Mount("/api/v1", contractsapi.Router(contractsapi.RouterOptions{
		Store:  store,
		Logger: log,
		Locale: cfg.LocaleTag(),
	}))

	srv := httpserver.New(
		httpserver.WithAddr(cfg.HTTPAddr),
		httpserver.WithLogger(log),
	)
	return srv.Run(context.Background(), r)
}

func loadSchema(path string) (*schema.Schema, error) {
	if path == "" {
		return demoSchema()
	}
	return schema.ParseFile(path)
}

// publishToCatalog pushes the schema and the run result to the metadata
// catalog when one is configured. A disabled catalog is a no-op.
func publishToCatalog(cfg config.Config, log *slog.Logger, s *schema.Schema, res *validate.Result) error {
	client := catalog.New(catalog.Config{
		BaseURL: cfg.CatalogURL,
		Token:   cfg.CatalogToken,
		Timeout: cfg.CatalogTimeout,
	}, catalog.WithLogger(log))
	if !client.Enabled() {
		return nil
	}

	ctx := context.Background()
	c := &contracts.Contract{Name: s.Name(), Status: contracts.StatusActive, Schema: s}
	if err := client.PublishSchema(ctx, c); err != nil {
		return err
	}
	return client.PublishValidation(ctx, res)
}

// demoSchema is the built-in customer schema used when no definition
// file is supplied. Mirrors the kind of contract the pipeline is meant
// to guard.
func demoSchema() (*schema.Schema, error) {
	minAge, maxAge := 18.0, 120.0
	minName := 1
	return schema.New("customer", []schema.Field{
		{Name: "customer_id", Type: schema.TypeString, Required: true,
			Constraints: schema.Constraints{Unique: true}},
		{Name: "full_name", Type: schema.TypeString, Required: true,
			Constraints: schema.Constraints{MinLength: &minName}},
		{Name: "email", Type: schema.TypeString, Required: true,
			Constraints: schema.Constraints{Pattern: `^[^@\s]+@[^@\s]+\.[^@\s]+$`}},
		{Name: "age", Type: schema.TypeInteger, Required: true,
			Constraints: schema.Constraints{MinValue: &minAge, MaxValue: &maxAge}},
		{Name: "city", Type: schema.TypeString, Required: false},
		{Name: "signup_date", Type: schema.TypeDate, Required: true},
		{Name: "active", Type: schema.TypeBoolean, Required: true},
	})
}

