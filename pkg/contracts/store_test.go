package contracts_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipearaujo/datacontracts/pkg/contracts"
	"github.com/felipearaujo/datacontracts/pkg/schema"
)

func testContract(t *testing.T, name string) *contracts.Contract {
	t.Helper()
	s, err := schema.New(name, []schema.Field{
		{Name: "id", Type: schema.TypeInteger, Required: true,
			Constraints: schema.Constraints{Unique: true}},
		{Name: "email", Type: schema.TypeString, Required: true},
	})
	require.NoError(t, err)
	return &contracts.Contract{
		Name:   name,
		Owner:  "data-team",
		Schema: s,
	}
}

func newStore(t *testing.T, opts ...contracts.FileStoreOption) *contracts.FileStore {
	t.Helper()
	fs, err := contracts.NewFileStore(t.TempDir(), opts...)
	require.NoError(t, err)
	return fs
}

func TestFileStoreCRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns id, status and timestamps", func(t *testing.T) {
		fs := newStore(t)
		c := testContract(t, "customer")
		require.NoError(t, fs.Create(ctx, c))

		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.Equal(t, contracts.StatusDraft, c.Status)
		assert.False(t, c.CreatedAt.IsZero())
	})

	t.Run("round-trips through disk", func(t *testing.T) {
		fs := newStore(t)
		c := testContract(t, "customer")
		require.NoError(t, fs.Create(ctx, c))

		got, err := fs.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.Name, got.Name)
		assert.Equal(t, c.Owner, got.Owner)
		assert.Equal(t, "customer", got.Schema.Name())
		assert.Equal(t, 2, got.Schema.FieldCount())
	})

	t.Run("get unknown contract", func(t *testing.T) {
		fs := newStore(t)
		_, err := fs.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, contracts.ErrContractNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		clock := base
		fs := newStore(t, contracts.WithClock(func() time.Time {
			clock = clock.Add(time.Hour)
			return clock
		}))

		first := testContract(t, "first")
		second := testContract(t, "second")
		require.NoError(t, fs.Create(ctx, first))
		require.NoError(t, fs.Create(ctx, second))

		list, err := fs.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "second", list[0].Name)
		assert.Equal(t, "first", list[1].Name)
	})

	t.Run("update preserves identity and creation time", func(t *testing.T) {
		fs := newStore(t)
		c := testContract(t, "customer")
		require.NoError(t, fs.Create(ctx, c))
		created := c.CreatedAt

		updated := testContract(t, "customer")
		updated.Owner = "platform-team"
		updated.Status = contracts.StatusActive
		require.NoError(t, fs.Update(ctx, c.ID, updated))

		got, err := fs.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "platform-team", got.Owner)
		assert.Equal(t, contracts.StatusActive, got.Status)
		assert.Equal(t, created, got.CreatedAt)
	})

	t.Run("update unknown contract", func(t *testing.T) {
		fs := newStore(t)
		err := fs.Update(ctx, uuid.New(), testContract(t, "ghost"))
		assert.ErrorIs(t, err, contracts.ErrContractNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		fs := newStore(t)
		c := testContract(t, "customer")
		require.NoError(t, fs.Create(ctx, c))
		require.NoError(t, fs.Delete(ctx, c.ID))

		_, err := fs.Get(ctx, c.ID)
		assert.ErrorIs(t, err, contracts.ErrContractNotFound)

		assert.ErrorIs(t, fs.Delete(ctx, c.ID), contracts.ErrContractNotFound)
	})
}

func TestContractValidation(t *testing.T) {
	ctx := context.Background()
	fs := newStore(t)

	t.Run("empty name rejected", func(t *testing.T) {
		c := testContract(t, "customer")
		c.Name = "  "
		assert.ErrorIs(t, fs.Create(ctx, c), contracts.ErrInvalidContract)
	})

	t.Run("missing schema rejected", func(t *testing.T) {
		c := testContract(t, "customer")
		c.Schema = nil
		assert.ErrorIs(t, fs.Create(ctx, c), contracts.ErrInvalidContract)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		c := testContract(t, "customer")
		c.Status = contracts.Status("retired")
		assert.ErrorIs(t, fs.Create(ctx, c), contracts.ErrInvalidContract)
	})
}

func TestRuleSet(t *testing.T) {
	c := testContract(t, "customer")
	rs, err := c.RuleSet()
	require.NoError(t, err)
	// id: type + not-null + unique; email: type + not-null.
	assert.Equal(t, 5, rs.Len())

	c.Schema = nil
	_, err = c.RuleSet()
	assert.ErrorIs(t, err, contracts.ErrInvalidContract)
}
