// Package errors provides standardized error handling for the dashboard
// aggregation service. The taxonomy distinguishes the one recoverable case
// (404 on a list endpoint, handled inside the upstream client and never
// surfaced here) from the errors that do reach callers.
package errors

import (
	stderrors "errors"
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
	// ErrCodeNotFound: a single-entity detail fetch came back 404. The
	// entity is genuinely absent; screens show an empty-state panel.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeUpstreamError: the marketplace API answered with a non-404
	// failure status. The whole screen flips to the error view.
	ErrCodeUpstreamError ErrorCode = "UPSTREAM_ERROR"

	// ErrCodeUpstreamTimeout: the request to the marketplace API timed out
	// or its context was cancelled.
	ErrCodeUpstreamTimeout ErrorCode = "UPSTREAM_TIMEOUT"

	// ErrCodeValidationFailed: a create/edit payload failed field-level
	// validation. Surfaced inline, never as a screen-level error.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	ErrCodeCacheError ErrorCode = "CACHE_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Fields    map[string]string      `json:"fields,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewNotFoundError marks a detail entity as absent (non-retryable).
func NewNotFoundError(collection, id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   "Entity not found",
		Details:   fmt.Sprintf("collection: %s, id: %s", collection, id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamError wraps a non-404 failure status from the marketplace API.
func NewUpstreamError(endpoint string, status int) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamError,
		Message:   "Marketplace API request failed",
		Details:   fmt.Sprintf("endpoint: %s, status: %d", endpoint, status),
		Retryable: status >= http.StatusInternalServerError,
		Metadata:  map[string]interface{}{"status": status},
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamTimeoutError wraps a transport-level failure or timeout.
func NewUpstreamTimeoutError(endpoint string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamTimeout,
		Message:   "Marketplace API request timed out",
		Details:   fmt.Sprintf("endpoint: %s, error: %s", endpoint, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationError carries field-level messages for a rejected payload.
func NewValidationError(fields map[string]string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Payload validation failed",
		Retryable: false,
		Fields:    fields,
		Timestamp: time.Now().UTC(),
	}
}

func NewBadRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBadRequest,
		Message:   "Invalid request",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheError wraps a Redis failure. Cache failures are retryable and a
// caller may choose to bypass the cache instead of failing the screen.
func NewCacheError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheError,
		Message:   "Query cache error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping & Utilities
// ==========================

// HTTPStatus maps an error code to the response status of this service.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case ErrCodeUpstreamTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeUpstreamError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AsStandard extracts a *StandardError from an error chain, wrapping
// anything else as a generic upstream error.
func AsStandard(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeUpstreamError,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsNotFound reports whether err is a detail-level not-found.
func IsNotFound(err error) bool {
	var stdErr *StandardError
	return stderrors.As(err, &stdErr) && stdErr.Code == ErrCodeNotFound
}
