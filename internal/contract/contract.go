package contract

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Meesho/BharatMLStack/model-mux/internal/schema"
)

// ValidationError reports a request payload that does not conform to the
// contract's request shape. Client-visible, never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "request validation failed: " + e.Reason
}

// ValidateRequest checks a raw JSON request body against the contract's
// input fields. It accepts exactly the declared fields: unknown fields and
// missing required fields are rejected. The returned map holds the raw JSON
// value per present field.
func (c *Contract) ValidateRequest(body []byte) (map[string]json.RawMessage, error) {
	payload := make(map[string]json.RawMessage)
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, &ValidationError{Reason: "body is not a JSON object"}
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, &ValidationError{Reason: "unexpected content after JSON body"}
	}

	declared := make(map[string]schema.FieldSpec, len(c.Inputs))
	for _, f := range c.Inputs {
		declared[f.Name] = f
	}
	for name := range payload {
		if _, ok := declared[name]; !ok {
			return nil, &ValidationError{Reason: fmt.Sprintf("unexpected field '%s'", name)}
		}
	}
	for _, f := range c.Inputs {
		raw, ok := payload[f.Name]
		if !ok {
			if f.Required {
				return nil, &ValidationError{Reason: fmt.Sprintf("missing required field '%s'", f.Name)}
			}
			continue
		}
		if err := checkValue(raw, f); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

// Record is one response row. It marshals its fields in the contract's
// declared output order.
type Record struct {
	fields []schema.FieldSpec
	values map[string]json.RawMessage
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(r.values[f.Name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the raw value of the named field.
func (r Record) Get(name string) (json.RawMessage, bool) {
	v, ok := r.values[name]
	return v, ok
}

// BuildResponse shapes raw prediction rows into contract records. Every
// declared output field must be present and well-typed in every row.
func (c *Contract) BuildResponse(rows []map[string]json.RawMessage) ([]Record, error) {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		values := make(map[string]json.RawMessage, len(c.Outputs))
		for _, f := range c.Outputs {
			raw, ok := row[f.Name]
			if !ok {
				return nil, fmt.Errorf("prediction row %d is missing output field '%s'", i, f.Name)
			}
			if err := checkValue(raw, f); err != nil {
				return nil, fmt.Errorf("prediction row %d: %s", i, err.Error())
			}
			values[f.Name] = raw
		}
		records = append(records, Record{fields: c.Outputs, values: values})
	}
	return records, nil
}

func checkValue(raw json.RawMessage, f schema.FieldSpec) error {
	switch f.Type {
	case schema.TypeString:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return &ValidationError{Reason: fmt.Sprintf("field '%s' must be a string", f.Name)}
		}
	case schema.TypeInteger, schema.TypeLong:
		var v int64
		if err := json.Unmarshal(raw, &v); err != nil {
			return &ValidationError{Reason: fmt.Sprintf("field '%s' must be an integer", f.Name)}
		}
	case schema.TypeFloat, schema.TypeDouble:
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return &ValidationError{Reason: fmt.Sprintf("field '%s' must be a number", f.Name)}
		}
	case schema.TypeBoolean:
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return &ValidationError{Reason: fmt.Sprintf("field '%s' must be a boolean", f.Name)}
		}
	case schema.TypeBinary:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return &ValidationError{Reason: fmt.Sprintf("field '%s' must be a base64 string", f.Name)}
		}
		if _, err := base64.StdEncoding.DecodeString(v); err != nil {
			return &ValidationError{Reason: fmt.Sprintf("field '%s' is not valid base64", f.Name)}
		}
	default:
		return &ValidationError{Reason: fmt.Sprintf("field '%s' has unsupported type '%s'", f.Name, f.Type)}
	}
	return nil
}
