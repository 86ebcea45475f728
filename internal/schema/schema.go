// Package schema declares the JSON shapes requested from the generation
// API and checks model output against them before it is trusted.
package schema

import "encoding/json"

type Type string

const (
	Object  Type = "OBJECT"
	Array   Type = "ARRAY"
	String  Type = "STRING"
	Number  Type = "NUMBER"
	Integer Type = "INTEGER"
	Boolean Type = "BOOLEAN"
)

// Schema is serialised in the provider's responseSchema dialect.
type Schema struct {
	Type        Type               `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Obj declares an object whose listed keys are all required.
func Obj(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: Object, Properties: props, Required: required}
}

func Str(desc string) *Schema { return &Schema{Type: String, Description: desc} }

func Num(desc string) *Schema { return &Schema{Type: Number, Description: desc} }

func Int(desc string) *Schema { return &Schema{Type: Integer, Description: desc} }

func Arr(items *Schema, desc string) *Schema {
	return &Schema{Type: Array, Items: items, Description: desc}
}

// Describe sets the description and returns s.
func (s *Schema) Describe(desc string) *Schema {
	s.Description = desc
	return s
}

// JSON renders the schema for embedding into a prompt.
func (s *Schema) JSON() string {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
