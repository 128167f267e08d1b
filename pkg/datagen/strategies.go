package datagen

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/felipearaujo/datacontracts/pkg/schema"
)

const (
	defaultNumericMin = 0
	defaultNumericMax = 1_000_000
	defaultTextMin    = 5
	defaultTextMax    = 50
)

// genString honors constraints in order of specificity: an enum picks
// from the allowed set, explicit length bounds force plain text, and
// otherwise the field name chooses the value kind (email, name, ...).
func genString(run *runState, f schema.Field) any {
	c := f.Constraints
	if len(c.Enum) > 0 {
		return c.Enum[run.rnd.Intn(len(c.Enum))]
	}
	if c.Unique {
		// Unique strings come out as UUIDs so the column never
		// violates its own uniqueness expectation.
		id, err := uuid.NewRandomFromReader(run.rnd)
		if err != nil {
			id = uuid.Nil
		}
		return id.String()
	}
	if c.MinLength != nil || c.MaxLength != nil {
		min, max := defaultTextMin, defaultTextMax
		if c.MinLength != nil {
			min = *c.MinLength
		}
		if c.MaxLength != nil {
			max = *c.MaxLength
		}
		return run.fk.Text(min, max)
	}
	return run.fk.ForField(f.Name)
}

func genInteger(run *runState, f schema.Field) any {
	min, max := numericBounds(f)
	lo, hi := int64(min), int64(max)
	if hi <= lo {
		return lo
	}
	return lo + run.rnd.Int63n(hi-lo+1)
}

// genFloat rounds to two decimals, matching how monetary-style sample
// data is usually presented.
func genFloat(run *runState, f schema.Field) any {
	min, max := numericBounds(f)
	v := min + run.rnd.Float64()*(max-min)
	return math.Round(v*100) / 100
}

func genBoolean(run *runState, _ schema.Field) any {
	return run.rnd.Intn(2) == 1
}

func genDate(run *runState, _ schema.Field) any {
	return run.randTime().Format("2006-01-02")
}

func genDateTime(run *runState, _ schema.Field) any {
	return run.randTime().Format(time.RFC3339)
}

func genArray(run *runState, _ schema.Field) any {
	n := 1 + run.rnd.Intn(5)
	out := make([]any, n)
	for i := range out {
		out[i] = run.fk.Word()
	}
	return out
}

// genObject emits a small generic object with a deterministic UUID
// drawn from the run's random source.
func genObject(run *runState, _ schema.Field) any {
	id, err := uuid.NewRandomFromReader(run.rnd)
	if err != nil {
		// rand.Rand.Read never fails.
		id = uuid.Nil
	}
	return map[string]any{
		"id":    id.String(),
		"name":  run.fk.Word(),
		"value": run.rnd.Int63n(defaultNumericMax),
	}
}

func numericBounds(f schema.Field) (float64, float64) {
	min, max := float64(defaultNumericMin), float64(defaultNumericMax)
	if f.Constraints.MinValue != nil {
		min = *f.Constraints.MinValue
	}
	if f.Constraints.MaxValue != nil {
		max = *f.Constraints.MaxValue
	}
	if max < min {
		max = min
	}
	return min, max
}

func (run *runState) randTime() time.Time {
	span := run.dateMax.Sub(run.dateMin)
	if span <= 0 {
		return run.dateMin
	}
	return run.dateMin.Add(time.Duration(run.rnd.Int63n(int64(span))))
}
