// Package errors provides standardized error handling for the recommendation
// pipeline, its HTTP surface and BPMN workflow integration.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidInput            ErrorCode = "INVALID_INPUT"
	ErrCodeRequestValidationFailed ErrorCode = "REQUEST_VALIDATION_FAILED"

	ErrCodePackageNotFound   ErrorCode = "PACKAGE_NOT_FOUND"
	ErrCodeTemplateMissing   ErrorCode = "TEMPLATE_MISSING"
	ErrCodeCatalogLoadFailed ErrorCode = "CATALOG_LOAD_FAILED"

	ErrCodeCacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"

	ErrCodeInternal        ErrorCode = "INTERNAL_ERROR"
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
	ErrCodeTimeout         ErrorCode = "TIMEOUT_ERROR"
	ErrCodeNotFound        ErrorCode = "RESOURCE_NOT_FOUND"
	ErrCodeBusinessRule    ErrorCode = "BUSINESS_RULE_VIOLATION"
	ErrCodeAuthentication  ErrorCode = "AUTHENTICATION_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata attaches a key/value pair and returns the same error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidInputError reports questionnaire answers the classifier cannot use.
func NewInvalidInputError(details string) *StandardError {
	return newError(ErrCodeInvalidInput, "Invalid questionnaire input", details, false)
}

// NewRequestValidationFailedError reports a request body that fails its schema.
func NewRequestValidationFailedError(details string) *StandardError {
	return newError(ErrCodeRequestValidationFailed, "Request validation failed", details, false)
}

// NewPackageNotFoundError reports a package name absent from the catalog.
func NewPackageNotFoundError(name string) *StandardError {
	return newError(ErrCodePackageNotFound, "Package not found in catalog", fmt.Sprintf("package: %s", name), false)
}

// NewTemplateMissingError reports a package with no registered sales message template.
func NewTemplateMissingError(name string) *StandardError {
	return newError(ErrCodeTemplateMissing, "No sales message template registered", fmt.Sprintf("package: %s", name), false)
}

// NewCatalogLoadFailedError reports an unreadable or inconsistent catalog document.
func NewCatalogLoadFailedError(details string) *StandardError {
	return newError(ErrCodeCatalogLoadFailed, "Catalog could not be loaded", details, false)
}

// NewCacheUnavailableError creates a retryable cache error.
func NewCacheUnavailableError(err error) *StandardError {
	return newError(ErrCodeCacheUnavailable, "Recommendation cache unavailable", err.Error(), true)
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), false)
}

// Generic constructors

func NewBusinessRuleError(message, details string) *StandardError {
	return newError(ErrCodeBusinessRule, message, details, false)
}

func NewExternalServiceError(service string, err error) *StandardError {
	return newError(ErrCodeExternalService, fmt.Sprintf("External service '%s' error", service), err.Error(), true)
}

func NewTimeoutError(service string, err error) *StandardError {
	return newError(ErrCodeTimeout, fmt.Sprintf("Service '%s' timeout", service), err.Error(), true)
}

func NewResourceNotFoundError(service, details string) *StandardError {
	return newError(ErrCodeNotFound, fmt.Sprintf("Resource not found in %s", service), details, false)
}

func NewAuthenticationError(details string) *StandardError {
	return newError(ErrCodeAuthentication, "Authentication failed", details, false)
}

// ==========================
// 4. Inspection
// ==========================

// As extracts a StandardError from anywhere in err's chain.
func As(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// CodeOf returns the code of err, or INTERNAL_ERROR when err is not a StandardError.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := As(err); ok {
		return stdErr.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// HTTPStatus maps an error code onto the status used by the recommendation API.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidInput:
		return http.StatusUnprocessableEntity
	case ErrCodeRequestValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeExternalService, ErrCodeCacheUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// 5. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to the codes caught by boundary events.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInvalidInput:            "INVALID_INPUT",
	ErrCodeRequestValidationFailed: "INVALID_INPUT",
	ErrCodePackageNotFound:         "RECOMMENDATION_FAILED",
	ErrCodeTemplateMissing:         "RECOMMENDATION_FAILED",
	ErrCodeCatalogLoadFailed:       "RECOMMENDATION_FAILED",
	ErrCodeInternal:                "RECOMMENDATION_FAILED",
	ErrCodeCacheUnavailable:        "CACHE_UNAVAILABLE",
	ErrCodeExternalService:         "EXTERNAL_SERVICE_ERROR",
	ErrCodeTimeout:                 "TIMEOUT_ERROR",
}

// GetRetryCount returns the recommended retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeExternalService, ErrCodeCacheUnavailable:
		return 3
	case ErrCodeTimeout:
		return 2
	default:
		return 0 // business and consistency errors
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 6. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	case strings.Contains(codeStr, "PACKAGE") || strings.Contains(codeStr, "CATALOG"):
		return "CATALOG"
	case strings.Contains(codeStr, "TEMPLATE"):
		return "TEMPLATE"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "EXTERNAL") || strings.Contains(codeStr, "TIMEOUT"):
		return "INTEGRATION"
	default:
		return "OTHER"
	}
}
