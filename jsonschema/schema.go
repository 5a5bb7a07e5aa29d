package jsonschema

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	// Core
	Schema      string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Const       any    `json:"const,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// String
	MinLength *int `json:"minLength,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Draft is the dialect identifier placed in $schema by exporters.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Number returns a number schema bounded by min and max when they are
// non-nil.
func Number(min, max *float64) *Schema { return &Schema{Type: "number", Minimum: min, Maximum: max} }

// String returns a string schema.
func String() *Schema { return &Schema{Type: "string"} }

// NonEmptyString returns a string schema that rejects "".
func NonEmptyString() *Schema {
	one := 1
	return &Schema{Type: "string", MinLength: &one}
}

// DateTime returns a string schema with the date-time format.
func DateTime() *Schema { return &Schema{Type: "string", Format: "date-time"} }

// Enum returns a string schema restricted to values.
func Enum(values ...string) *Schema {
	e := make([]any, len(values))
	for i, v := range values {
		e[i] = v
	}
	return &Schema{Type: "string", Enum: e}
}

// Const returns a string schema fixed to v.
func Const(v string) *Schema { return &Schema{Type: "string", Const: v} }

// Object returns an object schema.
func Object(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: "object", Properties: props, Required: required}
}

// Array returns an array schema of items.
func Array(items *Schema) *Schema { return &Schema{Type: "array", Items: items} }
