package schema

import "errors"

var (
	// ErrEmptySchemaName is returned when a schema is constructed without a name.
	ErrEmptySchemaName = errors.New("schema name cannot be empty")

	// ErrEmptySchema is returned when a schema is constructed with no fields.
	ErrEmptySchema = errors.New("schema must declare at least one field")

	// ErrEmptyFieldName is returned when a field is declared without a name.
	ErrEmptyFieldName = errors.New("field name cannot be empty")

	// ErrDuplicateField is returned when two fields share the same name.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrUnknownDataType is returned when a field declares a data type
	// outside the supported set.
	ErrUnknownDataType = errors.New("unknown data type")

	// ErrFieldNotFound is returned when looking up a field the schema
	// does not declare.
	ErrFieldNotFound = errors.New("field not found in schema")

	// ErrParseDefinition is returned when a schema definition file
	// cannot be decoded.
	ErrParseDefinition = errors.New("failed to parse schema definition")
)
