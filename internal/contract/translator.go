package contract

import (
	"errors"
	"fmt"

	"github.com/Meesho/BharatMLStack/model-mux/internal/schema"
)

var (
	ErrUnsupportedType = errors.New("unsupported field type")
	ErrInvalidSchema   = errors.New("invalid schema")
)

// Contract is the concrete request/response shape generated from a schema.
// Field order follows the schema's declared order.
type Contract struct {
	Inputs  []schema.FieldSpec
	Outputs []schema.FieldSpec
}

// Translate generates the serving contract for a schema. It is deterministic
// and has no side effects.
//
// An empty input schema is valid and yields a request accepting no fields.
// An empty output schema cannot be served and fails with ErrInvalidSchema.
func Translate(s schema.Schema) (*Contract, error) {
	if len(s.Outputs) == 0 {
		return nil, fmt.Errorf("%w: schema declares no output fields", ErrInvalidSchema)
	}
	if err := checkFields(s.Inputs, "input"); err != nil {
		return nil, err
	}
	if err := checkFields(s.Outputs, "output"); err != nil {
		return nil, err
	}
	c := &Contract{
		Inputs:  make([]schema.FieldSpec, len(s.Inputs)),
		Outputs: make([]schema.FieldSpec, len(s.Outputs)),
	}
	copy(c.Inputs, s.Inputs)
	copy(c.Outputs, s.Outputs)
	return c, nil
}

func checkFields(fields []schema.FieldSpec, direction string) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("%w: %s field with empty name", ErrInvalidSchema, direction)
		}
		if !f.Type.Valid() {
			return fmt.Errorf("%w: %s field '%s' has type '%s'", ErrUnsupportedType, direction, f.Name, f.Type)
		}
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("%w: duplicate %s field '%s'", ErrInvalidSchema, direction, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}
