package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrMalformed is returned when the raw text is not JSON at all.
var ErrMalformed = errors.New("malformed JSON")

// Violation is one place where a document departs from its schema.
type Violation struct {
	Path    string
	Reason  string
	Missing bool
}

func (v Violation) String() string { return v.Path + ": " + v.Reason }

// DecodeError reports why a document was rejected.
type DecodeError struct {
	Violations []Violation
}

func (e *DecodeError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "schema violations: " + strings.Join(parts, "; ")
}

// Decode parses raw against s and stores the result in out.
//
// Malformed JSON and type mismatches always fail. A missing required field
// fails only when strict is set; otherwise it is returned as a violation and
// the zero value is left in out.
func Decode(raw []byte, s *Schema, out any, strict bool) ([]Violation, error) {
	raw = stripFences(raw)

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	violations := Check(doc, s)
	var fatal bool
	for _, v := range violations {
		if !v.Missing || strict {
			fatal = true
			break
		}
	}
	if fatal {
		return violations, &DecodeError{Violations: violations}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return violations, fmt.Errorf("decode into %T: %w", out, err)
	}
	return violations, nil
}

// Check walks doc (as produced by json.Unmarshal into any) against s.
func Check(doc any, s *Schema) []Violation {
	var out []Violation
	check("$", doc, s, &out)
	return out
}

func check(path string, v any, s *Schema, out *[]Violation) {
	if s == nil {
		return
	}
	mismatch := func() {
		*out = append(*out, Violation{Path: path, Reason: fmt.Sprintf("expected %s, got %s", s.Type, kindOf(v))})
	}

	switch s.Type {
	case Object:
		obj, ok := v.(map[string]any)
		if !ok {
			mismatch()
			return
		}
		for _, key := range s.Required {
			if val, present := obj[key]; !present || val == nil {
				*out = append(*out, Violation{Path: path + "." + key, Reason: "missing required field", Missing: true})
			}
		}
		for key, sub := range s.Properties {
			if val, present := obj[key]; present && val != nil {
				check(path+"."+key, val, sub, out)
			}
		}
	case Array:
		arr, ok := v.([]any)
		if !ok {
			mismatch()
			return
		}
		for i, item := range arr {
			check(fmt.Sprintf("%s[%d]", path, i), item, s.Items, out)
		}
	case String:
		if _, ok := v.(string); !ok {
			mismatch()
		}
	case Number:
		if _, ok := v.(float64); !ok {
			mismatch()
		}
	case Integer:
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) {
			mismatch()
		}
	case Boolean:
		if _, ok := v.(bool); !ok {
			mismatch()
		}
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	}
	return fmt.Sprintf("%T", v)
}

// stripFences removes a surrounding ```json fence some models add anyway.
func stripFences(raw []byte) []byte {
	raw = bytes.TrimSpace(raw)
	if !bytes.HasPrefix(raw, []byte("```")) {
		return raw
	}
	raw = bytes.TrimPrefix(raw, []byte("```"))
	if nl := bytes.IndexByte(raw, '\n'); nl >= 0 {
		raw = raw[nl+1:]
	}
	raw = bytes.TrimSuffix(bytes.TrimSpace(raw), []byte("```"))
	return bytes.TrimSpace(raw)
}
