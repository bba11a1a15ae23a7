package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Inspection
// ==========================

func TestAs_UnwrapsChain(t *testing.T) {
	base := NewPackageNotFoundError("Gold")
	wrapped := fmt.Errorf("building recommendation: %w", base)

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Same(t, base, got)
	assert.Equal(t, ErrCodePackageNotFound, CodeOf(wrapped))
	assert.True(t, IsCode(wrapped, ErrCodePackageNotFound))
}

func TestCodeOf_PlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, CodeOf(stderrors.New("boom")))
	assert.False(t, IsCode(nil, ErrCodeInternal))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeInvalidInput, http.StatusUnprocessableEntity},
		{ErrCodeRequestValidationFailed, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodePackageNotFound, http.StatusInternalServerError},
		{ErrCodeTemplateMissing, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeCacheUnavailable, http.StatusServiceUnavailable},
		{ErrCodeTimeout, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.code))
		})
	}
}

func TestStandardError_Error(t *testing.T) {
	assert.Equal(t, "StandardError[TEMPLATE_MISSING]: No sales message template registered (package: Fresh Start)",
		NewTemplateMissingError("Fresh Start").Error())

	err := &StandardError{Code: ErrCodeInternal, Message: "Unexpected error"}
	assert.Equal(t, "StandardError[INTERNAL_ERROR]: Unexpected error", err.Error())
}

func TestWithMetadata(t *testing.T) {
	err := NewInvalidInputError("missing").WithMetadata("fields", []string{"org_type"})
	assert.Equal(t, []string{"org_type"}, err.Metadata["fields"])
}

// ==========================
// BPMN conversion
// ==========================

func TestConvertToBPMNError(t *testing.T) {
	tests := []struct {
		name        string
		err         *StandardError
		wantCode    string
		wantRetries int
	}{
		{"invalid input", NewInvalidInputError("x"), "INVALID_INPUT", 0},
		{"schema failure", NewRequestValidationFailedError("x"), "INVALID_INPUT", 0},
		{"template missing", NewTemplateMissingError("x"), "RECOMMENDATION_FAILED", 0},
		{"cache", NewCacheUnavailableError(stderrors.New("down")), "CACHE_UNAVAILABLE", 3},
		{"timeout", NewTimeoutError("zeebe", stderrors.New("slow")), "TIMEOUT_ERROR", 2},
		{"unmapped", NewAuthenticationError("x"), "AUTHENTICATION_ERROR", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpmn := ConvertToBPMNError(tt.err)
			assert.Equal(t, tt.wantCode, bpmn.Code)
			assert.Equal(t, tt.wantRetries, bpmn.Retries)

			vars := bpmn.ToErrorVariables()
			assert.Equal(t, string(tt.err.Code), vars["originalErrorCode"])
			assert.Equal(t, tt.wantCode, vars["errorCode"])
		})
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInvalidInput))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeRequestValidationFailed))
	assert.Equal(t, "CATALOG", GetErrorCategory(ErrCodePackageNotFound))
	assert.Equal(t, "TEMPLATE", GetErrorCategory(ErrCodeTemplateMissing))
	assert.Equal(t, "CACHE", GetErrorCategory(ErrCodeCacheUnavailable))
	assert.Equal(t, "INTEGRATION", GetErrorCategory(ErrCodeTimeout))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeAuthentication))
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeExternalService))
	assert.False(t, IsRetryableErrorCode(ErrCodeInvalidInput))
}
