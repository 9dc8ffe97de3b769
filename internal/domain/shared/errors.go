package shared

import (
	"sort"
	"strings"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)

// FieldErrors is a field-keyed map of validation messages. Validation rules
// are all evaluated; an entry per failing field is collected rather than
// short-circuiting on the first failure.
type FieldErrors map[string]string

// Valid reports whether no validation rule failed
func (f FieldErrors) Valid() bool {
	return len(f) == 0
}

// Add records a message for a field. The first message for a field wins so
// independent rules can be evaluated in a fixed order.
func (f FieldErrors) Add(field, message string) {
	if _, ok := f[field]; !ok {
		f[field] = message
	}
}

// Fields returns the failing field names in sorted order
func (f FieldErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// ValidationError carries a FieldErrors map across the application boundary.
// It is data about a recoverable, user-correctable condition: callers render
// it per field and abort persistence, they never treat it as a fault.
type ValidationError struct {
	Errors FieldErrors
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	for i, field := range e.Errors.Fields() {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(e.Errors[field])
	}
	return b.String()
}

// NewValidationError creates a ValidationError from a field error map
func NewValidationError(errors FieldErrors) *ValidationError {
	return &ValidationError{Errors: errors}
}
