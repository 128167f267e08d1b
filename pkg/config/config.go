package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// ErrParsingConfig is returned when environment variables cannot be
// parsed into the config struct.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config carries every tunable of the pipeline and the API server.
type Config struct {
	// Generation defaults.
	Locale      string  `env:"DC_LOCALE" envDefault:"en"`
	RecordCount int     `env:"DC_RECORD_COUNT" envDefault:"100"`
	MissingRate float64 `env:"DC_MISSING_RATE" envDefault:"0.1"`

	// Artifact locations.
	ReportDir    string `env:"DC_REPORT_DIR" envDefault:"reports"`
	ContractsDir string `env:"DC_CONTRACTS_DIR" envDefault:"contracts"`

	// Logging.
	LogLevel  string `env:"DC_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DC_LOG_FORMAT" envDefault:"json"`

	// API server.
	HTTPAddr string `env:"DC_HTTP_ADDR" envDefault:":8080"`

	// Optional metadata catalog. Empty URL disables the integration.
	CatalogURL     string        `env:"DC_CATALOG_URL"`
	CatalogToken   string        `env:"DC_CATALOG_TOKEN"`
	CatalogTimeout time.Duration `env:"DC_CATALOG_TIMEOUT" envDefault:"10s"`
}

var defaultEnvLoaded sync.Once

// Load reads the configuration from the environment. The default .env
// file is loaded once per process if present; its absence is not an
// error.
func Load() (Config, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure. For binaries that
// cannot start without configuration.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

// LocaleTag parses the configured locale, falling back to English for
// unparseable tags.
func (c Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
