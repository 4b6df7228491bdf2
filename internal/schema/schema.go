package schema

import (
	"fmt"
	"sort"
	"strings"
)

// DataType is the closed set of value types a model may declare for a field.
type DataType string

const (
	TypeString  DataType = "string"
	TypeInteger DataType = "integer"
	TypeLong    DataType = "long"
	TypeFloat   DataType = "float"
	TypeDouble  DataType = "double"
	TypeBoolean DataType = "boolean"
	TypeBinary  DataType = "binary"
)

var validTypes = map[DataType]struct{}{
	TypeString:  {},
	TypeInteger: {},
	TypeLong:    {},
	TypeFloat:   {},
	TypeDouble:  {},
	TypeBoolean: {},
	TypeBinary:  {},
}

func (d DataType) Valid() bool {
	_, ok := validTypes[d]
	return ok
}

// FieldSpec declares one named, typed field. Immutable once constructed.
type FieldSpec struct {
	Name     string   `json:"name"`
	Type     DataType `json:"type"`
	Required bool     `json:"required"`
}

func (f FieldSpec) String() string {
	required := "optional"
	if f.Required {
		required = "required"
	}
	return fmt.Sprintf("%s:%s:%s", f.Name, f.Type, required)
}

// Schema is the declared input/output signature of one model version.
// Field order is preserved for contract generation but is not significant
// for compatibility.
type Schema struct {
	Inputs  []FieldSpec `json:"inputs"`
	Outputs []FieldSpec `json:"outputs"`
}

// Compatible reports whether two schemas are interchangeable: input field
// specs equal as sets, and likewise for outputs.
func (s Schema) Compatible(other Schema) bool {
	return fieldSetEqual(s.Inputs, other.Inputs) && fieldSetEqual(s.Outputs, other.Outputs)
}

func fieldSetEqual(a, b []FieldSpec) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[FieldSpec]struct{}, len(a))
	for _, f := range a {
		set[f] = struct{}{}
	}
	for _, f := range b {
		if _, ok := set[f]; !ok {
			return false
		}
	}
	return true
}

// Describe renders a stable human-readable description of the schema for
// error messages. Fields are sorted by name so two compatible schemas
// always describe identically.
func (s Schema) Describe() string {
	return "inputs[" + describeFields(s.Inputs) + "] outputs[" + describeFields(s.Outputs) + "]"
}

func describeFields(fields []FieldSpec) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.String())
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
