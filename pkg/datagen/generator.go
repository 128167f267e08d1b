package datagen

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/felipearaujo/datacontracts/pkg/dataset"
	"github.com/felipearaujo/datacontracts/pkg/faker"
	"github.com/felipearaujo/datacontracts/pkg/schema"
)

// strategy produces one value for a field during a run.
type strategy func(run *runState, f schema.Field) any

// runState carries the per-run randomness and resolved date bounds.
// A fresh one is built for every Generate call so runs never share
// state.
type runState struct {
	rnd     *rand.Rand
	fk      *faker.Faker
	dateMin time.Time
	dateMax time.Time
}

// Generator produces synthetic datasets from schemas.
type Generator struct {
	cfg        *config
	strategies map[schema.DataType]strategy
}

// New builds a Generator. The strategy registry is resolved here, one
// entry per supported data type.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Generator{
		cfg: cfg,
		strategies: map[schema.DataType]strategy{
			schema.TypeString:   genString,
			schema.TypeInteger:  genInteger,
			schema.TypeFloat:    genFloat,
			schema.TypeBoolean:  genBoolean,
			schema.TypeDate:     genDate,
			schema.TypeDateTime: genDateTime,
			schema.TypeArray:    genArray,
			schema.TypeObject:   genObject,
		},
	}
}

// Generate produces count records conforming to s. Optional fields are
// emitted as the missing marker with the configured probability; the
// draw comes from the same seeded source as the values, so output is
// fully reproducible for a fixed seed.
func (g *Generator) Generate(s *schema.Schema, count int) (*dataset.Dataset, error) {
	if s == nil {
		return nil, ErrNilSchema
	}
	if count <= 0 {
		return nil, errors.Join(ErrInvalidCount, fmt.Errorf("got %d", count))
	}
	for _, f := range s.Fields() {
		if _, ok := g.strategies[f.Type]; !ok {
			return nil, errors.Join(ErrUnsupportedType, fmt.Errorf("field %q, type %q", f.Name, f.Type))
		}
	}

	seed := g.cfg.seed
	if !g.cfg.seedSet {
		seed = g.cfg.now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	run := &runState{
		rnd: rnd,
		fk:  faker.New(g.cfg.locale, rnd),
	}
	run.dateMin, run.dateMax = g.dateRange()

	records := make([]dataset.Record, 0, count)
	for i := 0; i < count; i++ {
		rec := make(dataset.Record, s.FieldCount())
		for _, f := range s.Fields() {
			if !f.Required && rnd.Float64() < g.cfg.missingRate {
				rec[f.Name] = dataset.Missing
				continue
			}
			rec[f.Name] = g.strategies[f.Type](run, f)
		}
		records = append(records, rec)
	}
	return dataset.New(s, records)
}

// dateRange resolves the configured bounds, defaulting to the two
// years ending at the current UTC day. Truncating to the day keeps
// runs within the same day identical for a fixed seed.
func (g *Generator) dateRange() (time.Time, time.Time) {
	if !g.cfg.dateMax.IsZero() || !g.cfg.dateMin.IsZero() {
		return g.cfg.dateMin, g.cfg.dateMax
	}
	max := g.cfg.now().UTC().Truncate(24 * time.Hour)
	return max.AddDate(-2, 0, 0), max
}
