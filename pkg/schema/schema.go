package schema

import (
	"errors"
	"fmt"
	"strings"
)

// DataType enumerates the value types a schema field may declare.
type DataType string

const (
	TypeString   DataType = "string"
	TypeInteger  DataType = "integer"
	TypeFloat    DataType = "float"
	TypeBoolean  DataType = "boolean"
	TypeDate     DataType = "date"
	TypeDateTime DataType = "datetime"
	TypeArray    DataType = "array"
	TypeObject   DataType = "object"
)

// Valid reports whether t is one of the supported data types.
func (t DataType) Valid() bool {
	switch t {
	case TypeString, TypeInteger, TypeFloat, TypeBoolean,
		TypeDate, TypeDateTime, TypeArray, TypeObject:
		return true
	}
	return false
}

// Constraints narrows the set of acceptable values for a field.
// Nil pointer bounds mean "unconstrained" on that side.
type Constraints struct {
	MinLength *int     `yaml:"min_length,omitempty" json:"min_length,omitempty"`
	MaxLength *int     `yaml:"max_length,omitempty" json:"max_length,omitempty"`
	MinValue  *float64 `yaml:"min_value,omitempty" json:"min_value,omitempty"`
	MaxValue  *float64 `yaml:"max_value,omitempty" json:"max_value,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Enum      []string `yaml:"allowed_values,omitempty" json:"allowed_values,omitempty"`
	Unique    bool     `yaml:"unique,omitempty" json:"unique,omitempty"`
}

// Field describes a single column of a dataset.
type Field struct {
	Name        string      `yaml:"name" json:"name"`
	Type        DataType    `yaml:"type" json:"type"`
	Required    bool        `yaml:"required" json:"required"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Constraints Constraints `yaml:"constraints,omitempty" json:"constraints,omitempty"`
}

// Schema is an immutable, ordered collection of uniquely named fields.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// New constructs a Schema from a name and a field list. The field
// order is preserved and significant for generation and reporting.
func New(name string, fields []Field) (*Schema, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptySchemaName
	}
	if len(fields) == 0 {
		return nil, errors.Join(ErrEmptySchema, fmt.Errorf("schema %q", name))
	}

	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if strings.TrimSpace(f.Name) == "" {
			return nil, errors.Join(ErrEmptyFieldName, fmt.Errorf("schema %q, field at position %d", name, i))
		}
		if !f.Type.Valid() {
			return nil, errors.Join(ErrUnknownDataType, fmt.Errorf("field %q declares type %q", f.Name, f.Type))
		}
		if _, exists := index[f.Name]; exists {
			return nil, errors.Join(ErrDuplicateField, fmt.Errorf("field %q declared twice in schema %q", f.Name, name))
		}
		index[f.Name] = i
	}

	s := &Schema{
		name:   name,
		fields: make([]Field, len(fields)),
		index:  index,
	}
	copy(s.fields, fields)
	return s, nil
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// FieldCount returns the number of declared fields.
func (s *Schema) FieldCount() int { return len(s.fields) }

// Field looks up a field by name.
func (s *Schema) Field(name string) (Field, error) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, errors.Join(ErrFieldNotFound, fmt.Errorf("field %q, schema %q", name, s.name))
	}
	return s.fields[i], nil
}

// Has reports whether the schema declares the named field.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Fields returns a copy of the field list in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// RequiredFields returns the names of all required fields in
// declaration order.
func (s *Schema) RequiredFields() []string {
	var out []string
	for _, f := range s.fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}
