package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipearaujo/datacontracts/pkg/schema"
)

func TestNew(t *testing.T) {
	t.Run("constructs schema with valid fields", func(t *testing.T) {
		s, err := schema.New("customer", []schema.Field{
			{Name: "customer_id", Type: schema.TypeInteger, Required: true},
			{Name: "email", Type: schema.TypeString, Required: true},
			{Name: "age", Type: schema.TypeInteger},
		})
		require.NoError(t, err)
		assert.Equal(t, "customer", s.Name())
		assert.Equal(t, 3, s.FieldCount())
	})

	t.Run("fails for empty name", func(t *testing.T) {
		_, err := schema.New("  ", []schema.Field{
			{Name: "id", Type: schema.TypeInteger},
		})
		assert.ErrorIs(t, err, schema.ErrEmptySchemaName)
	})

	t.Run("fails for empty field list", func(t *testing.T) {
		_, err := schema.New("customer", nil)
		assert.ErrorIs(t, err, schema.ErrEmptySchema)
	})

	t.Run("fails for duplicate field names", func(t *testing.T) {
		_, err := schema.New("customer", []schema.Field{
			{Name: "email", Type: schema.TypeString},
			{Name: "email", Type: schema.TypeString},
		})
		assert.ErrorIs(t, err, schema.ErrDuplicateField)
	})

	t.Run("fails for empty field name", func(t *testing.T) {
		_, err := schema.New("customer", []schema.Field{
			{Name: "", Type: schema.TypeString},
		})
		assert.ErrorIs(t, err, schema.ErrEmptyFieldName)
	})

	t.Run("fails for unknown data type", func(t *testing.T) {
		_, err := schema.New("customer", []schema.Field{
			{Name: "blob", Type: schema.DataType("binary")},
		})
		assert.ErrorIs(t, err, schema.ErrUnknownDataType)
	})
}

func TestSchemaAccessors(t *testing.T) {
	s, err := schema.New("order", []schema.Field{
		{Name: "order_id", Type: schema.TypeInteger, Required: true},
		{Name: "total", Type: schema.TypeFloat, Required: true},
		{Name: "note", Type: schema.TypeString},
	})
	require.NoError(t, err)

	t.Run("field lookup by name", func(t *testing.T) {
		f, err := s.Field("total")
		require.NoError(t, err)
		assert.Equal(t, schema.TypeFloat, f.Type)
		assert.True(t, f.Required)
	})

	t.Run("lookup of undeclared field fails", func(t *testing.T) {
		_, err := s.Field("phone")
		assert.ErrorIs(t, err, schema.ErrFieldNotFound)
	})

	t.Run("required fields in declaration order", func(t *testing.T) {
		assert.Equal(t, []string{"order_id", "total"}, s.RequiredFields())
	})

	t.Run("fields returns a copy", func(t *testing.T) {
		fields := s.Fields()
		fields[0].Name = "mutated"
		again, err := s.Field("order_id")
		require.NoError(t, err)
		assert.Equal(t, "order_id", again.Name)
	})

	t.Run("has", func(t *testing.T) {
		assert.True(t, s.Has("note"))
		assert.False(t, s.Has("missing"))
	})
}

func TestDataTypeValid(t *testing.T) {
	valid := []schema.DataType{
		schema.TypeString, schema.TypeInteger, schema.TypeFloat,
		schema.TypeBoolean, schema.TypeDate, schema.TypeDateTime,
		schema.TypeArray, schema.TypeObject,
	}
	for _, dt := range valid {
		assert.True(t, dt.Valid(), string(dt))
	}
	assert.False(t, schema.DataType("decimal").Valid())
	assert.False(t, schema.DataType("").Valid())
}
