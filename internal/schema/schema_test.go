package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseSchema() Schema {
	return Schema{
		Inputs: []FieldSpec{
			{Name: "prompt", Type: TypeString, Required: true},
			{Name: "temperature", Type: TypeDouble, Required: false},
		},
		Outputs: []FieldSpec{
			{Name: "translation_text", Type: TypeString, Required: true},
			{Name: "score", Type: TypeFloat, Required: true},
		},
	}
}

func TestDataTypeValid(t *testing.T) {
	for _, d := range []DataType{TypeString, TypeInteger, TypeLong, TypeFloat, TypeDouble, TypeBoolean, TypeBinary} {
		assert.True(t, d.Valid(), "expected %s to be valid", d)
	}
	assert.False(t, DataType("tensor").Valid())
	assert.False(t, DataType("").Valid())
}

func TestCompatible(t *testing.T) {
	t.Run("identical schemas are compatible", func(t *testing.T) {
		assert.True(t, baseSchema().Compatible(baseSchema()))
	})

	t.Run("field order does not matter", func(t *testing.T) {
		reordered := baseSchema()
		reordered.Inputs[0], reordered.Inputs[1] = reordered.Inputs[1], reordered.Inputs[0]
		reordered.Outputs[0], reordered.Outputs[1] = reordered.Outputs[1], reordered.Outputs[0]
		assert.True(t, baseSchema().Compatible(reordered))
	})

	t.Run("renamed field breaks compatibility", func(t *testing.T) {
		renamed := baseSchema()
		renamed.Inputs[0].Name = "text_to_translate"
		assert.False(t, baseSchema().Compatible(renamed))
	})

	t.Run("retyped field breaks compatibility", func(t *testing.T) {
		retyped := baseSchema()
		retyped.Outputs[1].Type = TypeDouble
		assert.False(t, baseSchema().Compatible(retyped))
	})

	t.Run("changed required flag breaks compatibility", func(t *testing.T) {
		flipped := baseSchema()
		flipped.Inputs[1].Required = true
		assert.False(t, baseSchema().Compatible(flipped))
	})

	t.Run("extra field breaks compatibility", func(t *testing.T) {
		extra := baseSchema()
		extra.Inputs = append(extra.Inputs, FieldSpec{Name: "lang", Type: TypeString, Required: false})
		assert.False(t, baseSchema().Compatible(extra))
	})

	t.Run("empty schemas are compatible", func(t *testing.T) {
		assert.True(t, Schema{}.Compatible(Schema{}))
	})
}

func TestDescribe(t *testing.T) {
	t.Run("compatible schemas describe identically", func(t *testing.T) {
		reordered := baseSchema()
		reordered.Inputs[0], reordered.Inputs[1] = reordered.Inputs[1], reordered.Inputs[0]
		assert.Equal(t, baseSchema().Describe(), reordered.Describe())
	})

	t.Run("description carries field details", func(t *testing.T) {
		desc := baseSchema().Describe()
		assert.Contains(t, desc, "prompt:string:required")
		assert.Contains(t, desc, "temperature:double:optional")
	})
}
