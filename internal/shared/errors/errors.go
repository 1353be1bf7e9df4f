// Package errors provides application-level error types and utilities.
// It classifies failures of the payment pipeline so handlers can map them onto HTTP statuses.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation_error"
	ErrorTypeAuth       ErrorType = "auth_error"
	ErrorTypeUpstream   ErrorType = "upstream_error"
	ErrorTypeTransport  ErrorType = "transport_error"
	ErrorTypeInternal   ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause records the underlying error so errors.Is/As can see through the AppError.
func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	return e
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewAuthError creates an error for a failed gateway token acquisition.
// It surfaces to clients as a 500 because it means the service itself is misconfigured.
func NewAuthError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeAuth, http.StatusInternalServerError, message, details)
}

// NewUpstreamError creates an error carrying the status reported by the gateway.
func NewUpstreamError(status int, message string, details ...string) *AppError {
	return newAppError(ErrorTypeUpstream, status, message, details)
}

// NewTransportError creates an error for a gateway call that never produced a response.
func NewTransportError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeTransport, http.StatusInternalServerError, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsAuthError checks if the error came from token acquisition
func IsAuthError(err error) bool {
	return isType(err, ErrorTypeAuth)
}

// IsTransportError checks if the error is a network-level gateway failure
func IsTransportError(err error) bool {
	return isType(err, ErrorTypeTransport)
}
