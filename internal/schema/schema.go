// Package schema validates persisted and imported JSON documents before they
// are decoded into model types.
package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ProfileSchema describes an importable profile. Every field is optional;
// fields that are present must carry the right JSON type.
const ProfileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "name":       {"type": "string"},
    "email":      {"type": "string"},
    "phone":      {"type": "string"},
    "position":   {"type": "string"},
    "height":     {"type": "string"},
    "weight":     {"type": "string"},
    "gpa":        {"type": "string"},
    "testScores": {"type": "string"},
    "achievements": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["id", "text"],
        "properties": {
          "id":   {"type": "integer", "minimum": 1, "maximum": 9007199254740991},
          "text": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var profileLoader = gojsonschema.NewStringLoader(ProfileSchema)

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a JSON field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SyntaxError means the document is not well-formed JSON.
type SyntaxError struct {
	Cause error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed json: %v", e.Cause)
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// ValidateProfile checks raw against ProfileSchema.
func ValidateProfile(raw string) error {
	return validate(profileLoader, raw)
}

func validate(schemaLoader gojsonschema.JSONLoader, raw string) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		// The schema is a compiled-in constant, so a load failure is the
		// document failing to parse.
		return &SyntaxError{Cause: err}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
