// Package validation checks request documents against JSON schemas.
package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	apperrors "cogni-recommender/internal/common/errors"

	"github.com/xeipuuv/gojsonschema"
)

// JSONSchema defines the structure for input/output schemas
type JSONSchema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties"`
	Required             []string            `json:"required,omitempty"`
	AdditionalProperties *bool               `json:"additionalProperties,omitempty"`
}

type Property struct {
	Type        string              `json:"type,omitempty"`
	Description string              `json:"description,omitempty"`
	Enum        []string            `json:"enum,omitempty"`
	Pattern     *string             `json:"pattern,omitempty"`
	MinLength   *int                `json:"minLength,omitempty"`
	MaxLength   *int                `json:"maxLength,omitempty"`
	Minimum     *float64            `json:"minimum,omitempty"`
	Maximum     *float64            `json:"maximum,omitempty"`
	Items       *Property           `json:"items,omitempty"`
	Properties  map[string]Property `json:"properties,omitempty"`
	Required    []string            `json:"required,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Schema is a compiled JSONSchema. It is safe for concurrent use.
type Schema struct {
	name     string
	compiled *gojsonschema.Schema
}

// Compile builds a Schema from s.
func Compile(name string, s JSONSchema) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(s))
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", name, err)
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// MustCompile is Compile for package-level schemas.
func MustCompile(name string, s JSONSchema) *Schema {
	schema, err := Compile(name, s)
	if err != nil {
		panic(err)
	}
	return schema
}

// ValidateInput validates a decoded document, e.g. Zeebe job variables.
func (s *Schema) ValidateInput(input map[string]interface{}) *ValidationResult {
	return s.validate(gojsonschema.NewGoLoader(input))
}

// ValidateJSON validates a raw JSON body. Malformed JSON is reported as a
// single error on the document root.
func (s *Schema) ValidateJSON(raw []byte) *ValidationResult {
	if !json.Valid(raw) {
		return &ValidationResult{Errors: []ValidationError{{
			Field:   "(root)",
			Message: "body is not valid JSON",
			Code:    "INVALID_JSON",
		}}}
	}
	return s.validate(gojsonschema.NewBytesLoader(raw))
}

func (s *Schema) validate(doc gojsonschema.JSONLoader) *ValidationResult {
	result, err := s.compiled.Validate(doc)
	if err != nil {
		return &ValidationResult{Errors: []ValidationError{{
			Field:   "(root)",
			Message: err.Error(),
			Code:    "INVALID_DOCUMENT",
		}}}
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, re := range result.Errors() {
		out.Errors = append(out.Errors, toValidationError(re))
	}
	return out
}

// gojsonschema reports a missing required property on its parent, so the
// property name is pulled out of the details to keep Field pointing at it.
func toValidationError(re gojsonschema.ResultError) ValidationError {
	field := re.Field()
	if re.Type() == "required" {
		if prop, ok := re.Details()["property"].(string); ok {
			if field == "(root)" {
				field = prop
			} else {
				field = field + "." + prop
			}
		}
	}
	return ValidationError{
		Field:   field,
		Message: re.Description(),
		Code:    strings.ToUpper(re.Type()),
	}
}

// Err converts a failed result into a REQUEST_VALIDATION_FAILED error.
func (vr *ValidationResult) Err() error {
	if vr.Valid {
		return nil
	}
	return apperrors.NewRequestValidationFailedError(strings.Join(vr.GetErrorMessages(), "; ")).
		WithMetadata("errors", vr.Errors)
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-\(\)]{10,}$`)
)

// ValidateEmail validates email format
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone validates basic phone number format
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
