package datagen

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Option configures the generator.
type Option func(*config)

// WithSeed fixes the random seed. Without it every run seeds from the
// wall clock and produces a fresh dataset.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seedSet = true
	}
}

// WithLocale sets the locale used for text values.
func WithLocale(tag language.Tag) Option {
	return func(c *config) { c.locale = tag }
}

// WithMissingRate sets the probability that an optional field is
// emitted as the missing marker. Panics outside [0, 1] to enforce
// fail-fast configuration.
func WithMissingRate(rate float64) Option {
	if rate < 0 || rate > 1 {
		panic(fmt.Sprintf("WithMissingRate: rate %v outside [0, 1]", rate))
	}
	return func(c *config) { c.missingRate = rate }
}

// WithDateRange bounds generated date and datetime values. Panics when
// the range is inverted.
func WithDateRange(min, max time.Time) Option {
	if max.Before(min) {
		panic("WithDateRange: max before min")
	}
	return func(c *config) {
		c.dateMin = min
		c.dateMax = max
	}
}

// WithNow overrides the clock used for the default date range and the
// fallback seed. Test hook; nil restores the real clock.
func WithNow(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

type config struct {
	seed        int64
	seedSet     bool
	locale      language.Tag
	missingRate float64
	dateMin     time.Time
	dateMax     time.Time
	now         func() time.Time
}

// defaultConfig mirrors the original system's defaults: 10% missing
// chance for optional fields and English text.
func defaultConfig() *config {
	return &config{
		locale:      language.English,
		missingRate: 0.1,
		now:         time.Now,
	}
}
