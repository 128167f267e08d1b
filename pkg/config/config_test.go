package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/felipearaujo/datacontracts/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Locale)
		assert.Equal(t, 100, cfg.RecordCount)
		assert.InDelta(t, 0.1, cfg.MissingRate, 1e-9)
		assert.Equal(t, "reports", cfg.ReportDir)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Empty(t, cfg.CatalogURL)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DC_LOCALE", "pt-BR")
		t.Setenv("DC_RECORD_COUNT", "25")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "pt-BR", cfg.Locale)
		assert.Equal(t, 25, cfg.RecordCount)
	})

	t.Run("invalid value fails", func(t *testing.T) {
		t.Setenv("DC_RECORD_COUNT", "lots")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestLocaleTag(t *testing.T) {
	assert.Equal(t, language.BrazilianPortuguese, config.Config{Locale: "pt-BR"}.LocaleTag())
	assert.Equal(t, language.English, config.Config{Locale: "not a tag"}.LocaleTag())
}
