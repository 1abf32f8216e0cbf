// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Toggle wiring errors
	CodeToggleMisconfigured Code = "TOGGLE_MISCONFIGURED"

	// Content type errors
	CodeContentTypeNotFound Code = "CONTENT_TYPE_NOT_FOUND"
	CodeContentTypeExists   Code = "CONTENT_TYPE_EXISTS"
	CodeContentTypeInvalid  Code = "CONTENT_TYPE_INVALID"

	// Operator auth errors
	CodeUnauthorized Code = "UNAUTHORIZED"

	// Storage errors
	CodeStoreUnavailable Code = "STORE_UNAVAILABLE"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeContentTypeInvalid:
		return http.StatusBadRequest
	case CodeContentTypeNotFound:
		return http.StatusNotFound
	case CodeContentTypeExists:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
