package expect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipearaujo/datacontracts/pkg/expect"
	"github.com/felipearaujo/datacontracts/pkg/schema"
)

func TestRuleSet(t *testing.T) {
	t.Run("preserves insertion order and duplicates", func(t *testing.T) {
		rs := expect.NewRuleSet(
			expect.NotNull("email"),
			expect.NotNull("email"),
			expect.NotNull("customer_id"),
		)
		assert.Equal(t, 3, rs.Len())

		forEmail := rs.ForField("email")
		require.Len(t, forEmail, 2)
		assert.Equal(t, expect.KindNotNull, forEmail[0].Kind)
	})

	t.Run("dataset-scoped expectations come last in All", func(t *testing.T) {
		rs := expect.NewRuleSet(
			expect.RowCountBetween(1, 10),
			expect.NotNull("email"),
			expect.Unique("customer_id"),
		)

		all := rs.All()
		require.Len(t, all, 3)
		assert.Equal(t, expect.KindNotNull, all[0].Kind)
		assert.Equal(t, expect.KindUnique, all[1].Kind)
		assert.Equal(t, expect.KindRowCount, all[2].Kind)
	})

	t.Run("for field skips dataset-scoped entries", func(t *testing.T) {
		rs := expect.NewRuleSet(expect.RowCountBetween(1, 10))
		assert.Empty(t, rs.ForField(""))
	})
}

func TestFromSchema(t *testing.T) {
	minV := float64(0)
	s, err := schema.New("order", []schema.Field{
		{Name: "order_id", Type: schema.TypeInteger, Required: true,
			Constraints: schema.Constraints{Unique: true}},
		{Name: "total", Type: schema.TypeFloat, Required: true,
			Constraints: schema.Constraints{MinValue: &minV}},
		{Name: "status", Type: schema.TypeString,
			Constraints: schema.Constraints{Enum: []string{"pending", "paid"}}},
	})
	require.NoError(t, err)

	rs, err := expect.FromSchema(s)
	require.NoError(t, err)

	// order_id: type, not-null, unique; total: type, not-null, at-least;
	// status: type, in-set.
	assert.Equal(t, 8, rs.Len())

	kinds := make([]expect.Kind, 0, rs.Len())
	for _, e := range rs.All() {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []expect.Kind{
		expect.KindTypeMatch, expect.KindNotNull, expect.KindUnique,
		expect.KindTypeMatch, expect.KindNotNull, expect.KindAtLeast,
		expect.KindTypeMatch, expect.KindInSet,
	}, kinds)

	t.Run("bad pattern bubbles up", func(t *testing.T) {
		s, err := schema.New("broken", []schema.Field{
			{Name: "code", Type: schema.TypeString,
				Constraints: schema.Constraints{Pattern: "([bad"}},
		})
		require.NoError(t, err)
		_, err = expect.FromSchema(s)
		assert.ErrorIs(t, err, expect.ErrInvalidPattern)
	})
}
