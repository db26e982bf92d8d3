// Package errors provides standardized error handling for the activities API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeDuplicateSignup  ErrorCode = "DUPLICATE_SIGNUP"
	ErrCodeNotRegistered    ErrorCode = "NOT_REGISTERED"

	ErrCodeMissingEmail     ErrorCode = "MISSING_EMAIL"
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"

	ErrCodeSeedValidationFailed ErrorCode = "SEED_VALIDATION_FAILED"
	ErrCodeSeedLoadFailed       ErrorCode = "SEED_LOAD_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewActivityNotFoundError reports a lookup of an unknown activity name.
func NewActivityNotFoundError(activityName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeActivityNotFound,
		Message:   "Activity not found",
		Details:   fmt.Sprintf("activityName: %s", activityName),
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateSignupError reports a signup for an activity the student is already in.
func NewDuplicateSignupError(activityName, email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateSignup,
		Message:   "Student already signed up for this activity",
		Details:   fmt.Sprintf("activityName: %s, email: %s", activityName, email),
		Timestamp: time.Now().UTC(),
	}
}

// NewNotRegisteredError reports an unregister for a student not on the roster.
func NewNotRegisteredError(activityName, email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotRegistered,
		Message:   "Student is not registered for this activity",
		Details:   fmt.Sprintf("activityName: %s, email: %s", activityName, email),
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingEmailError reports a request without the required email query parameter.
func NewMissingEmailError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingEmail,
		Message:   "email query parameter is required",
		Timestamp: time.Now().UTC(),
	}
}

// NewMethodNotAllowedError reports an unsupported HTTP method on a known route.
func NewMethodNotAllowedError(method string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMethodNotAllowed,
		Message:   "Method not allowed",
		Details:   fmt.Sprintf("method: %s", method),
		Timestamp: time.Now().UTC(),
	}
}

// NewSeedValidationFailedError reports a seed catalog that failed schema validation.
func NewSeedValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSeedValidationFailed,
		Message:   "Activity seed catalog failed validation",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewSeedLoadFailedError reports a seed catalog that could not be read or parsed.
func NewSeedLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSeedLoadFailed,
		Message:   "Activity seed catalog could not be loaded",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Status Mapping
// ==========================

// HTTPStatusMapping maps internal error codes to HTTP status codes.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeActivityNotFound: http.StatusNotFound,
	ErrCodeDuplicateSignup:  http.StatusBadRequest,
	ErrCodeNotRegistered:    http.StatusBadRequest,
	ErrCodeMissingEmail:     http.StatusBadRequest,
	ErrCodeMethodNotAllowed: http.StatusMethodNotAllowed,

	ErrCodeSeedValidationFailed: http.StatusInternalServerError,
	ErrCodeSeedLoadFailed:       http.StatusInternalServerError,
	ErrCodeInternal:             http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status code for an error code.
func HTTPStatus(code ErrorCode) int {
	if status, exists := HTTPStatusMapping[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}

// ==========================
// 4. Utility Functions
// ==========================

// IsClientError reports whether the error code maps to a 4xx response.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatus(code)
	return status >= 400 && status < 500
}
