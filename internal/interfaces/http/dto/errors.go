package dto

import (
	"net/http"
	"strings"
)

// Error codes produced by the HTTP layer itself
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeTooLarge     = "REQUEST_TOO_LARGE"
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	ErrCodeInvalidToken = "INVALID_TOKEN"
)

// domainCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall through to the INVALID_ prefix rule, then to 500.
var domainCodeHTTPStatus = map[string]int{
	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"UNAUTHORIZED":         http.StatusUnauthorized,
	"FORBIDDEN":            http.StatusForbidden,
	"INVALID_INPUT":        http.StatusBadRequest,
	"BAD_REQUEST":          http.StatusBadRequest,
	"VALIDATION_ERROR":     http.StatusBadRequest,
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"QUOTE_NOT_ACCEPTED":   http.StatusUnprocessableEntity,
	"QUOTE_EXPIRED":        http.StatusUnprocessableEntity,
	"PASSWORD_HASH_ERROR":  http.StatusInternalServerError,
	"INTERNAL_ERROR":       http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Field-level INVALID_* rule violations map to 422 Unprocessable Entity,
// anything unknown to 500.
func GetHTTPStatus(code string) int {
	if status, ok := domainCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
