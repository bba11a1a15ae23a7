package validation

import (
	"testing"

	apperrors "cogni-recommender/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minLen(n int) *int { return &n }

func testSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := Compile("test", JSONSchema{
		Type: "object",
		Properties: map[string]Property{
			"name": {Type: "string", MinLength: minLen(1)},
			"tags": {Type: "array", Items: &Property{Type: "string"}},
		},
		Required: []string{"name"},
	})
	require.NoError(t, err)
	return s
}

// codesFor returns the error codes reported against field.
func codesFor(res *ValidationResult, field string) []string {
	var codes []string
	for _, e := range res.Errors {
		if e.Field == field {
			codes = append(codes, e.Code)
		}
	}
	return codes
}

func TestSchema_ValidateJSON(t *testing.T) {
	s := testSchema(t)

	tests := []struct {
		name      string
		body      string
		wantValid bool
		wantField string
		wantCode  string
	}{
		{"valid", `{"name":"a","tags":["x"]}`, true, "", ""},
		{"extra fields allowed", `{"name":"a","other":1}`, true, "", ""},
		{"missing required", `{"tags":[]}`, false, "name", "REQUIRED"},
		{"wrong type", `{"name":5}`, false, "name", "INVALID_TYPE"},
		{"empty string", `{"name":""}`, false, "name", "STRING_GTE"},
		{"malformed", `{"name":`, false, "(root)", "INVALID_JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.ValidateJSON([]byte(tt.body))
			assert.Equal(t, tt.wantValid, res.Valid)
			if tt.wantValid {
				assert.Empty(t, res.Errors)
				assert.NoError(t, res.Err())
				return
			}
			require.NotEmpty(t, res.Errors)
			assert.Contains(t, codesFor(res, tt.wantField), tt.wantCode, "%+v", res.Errors)
		})
	}
}

func TestSchema_ValidateInput(t *testing.T) {
	s := testSchema(t)

	assert.True(t, s.ValidateInput(map[string]interface{}{"name": "a"}).Valid)

	res := s.ValidateInput(map[string]interface{}{"tags": []interface{}{1}})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"REQUIRED"}, codesFor(res, "name"))
	assert.Equal(t, []string{"INVALID_TYPE"}, codesFor(res, "tags.0"))
}

func TestValidationResult_Err(t *testing.T) {
	res := testSchema(t).ValidateJSON([]byte(`{}`))

	err := res.Err()
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeRequestValidationFailed))
	assert.Contains(t, err.Error(), "name")
}

func TestValidateEmailAndPhone(t *testing.T) {
	assert.True(t, ValidateEmail("support@cogni.ai"))
	assert.False(t, ValidateEmail("support@"))
	assert.True(t, ValidatePhone("(555) 123-4567"))
	assert.False(t, ValidatePhone("12"))
}
