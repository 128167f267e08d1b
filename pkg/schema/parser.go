package schema

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// definition is the on-disk shape of a schema file. It is decoded and
// then funneled through New so file-based schemas get the same
// validation as programmatic ones.
type definition struct {
	Name   string  `yaml:"name" json:"name"`
	Fields []Field `yaml:"fields" json:"fields"`
}

// ParseYAML decodes a YAML schema definition.
//
// Expected document shape:
//
//	name: customer
//	fields:
//	  - name: customer_id
//	    type: integer
//	    required: true
//	  - name: email
//	    type: string
//	    required: true
//	    constraints:
//	      pattern: "^[^@]+@[^@]+$"
func ParseYAML(r io.Reader) (*Schema, error) {
	var def definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, errors.Join(ErrParseDefinition, err)
	}
	return New(def.Name, def.Fields)
}

// ParseJSON decodes a JSON schema definition with the same shape as
// ParseYAML.
func ParseJSON(r io.Reader) (*Schema, error) {
	var def definition
	if err := json.NewDecoder(r).Decode(&def); err != nil {
		return nil, errors.Join(ErrParseDefinition, err)
	}
	return New(def.Name, def.Fields)
}

// ParseFile loads a schema definition from disk, choosing the decoder
// by file extension (.yaml/.yml or .json).
func ParseFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrParseDefinition, err)
	}
	defer f.Close()

	if hasJSONExt(path) {
		return ParseJSON(f)
	}
	return ParseYAML(f)
}

func hasJSONExt(path string) bool {
	return len(path) > 5 && path[len(path)-5:] == ".json"
}

// MarshalJSON serializes the schema in definition-file shape, so a
// persisted schema is also a valid definition document.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(definition{Name: s.name, Fields: s.fields})
}

// UnmarshalJSON rebuilds a schema through New, so decoded schemas get
// the same validation as constructed ones.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var def definition
	if err := json.Unmarshal(data, &def); err != nil {
		return errors.Join(ErrParseDefinition, err)
	}
	built, err := New(def.Name, def.Fields)
	if err != nil {
		return err
	}
	*s = *built
	return nil
}
