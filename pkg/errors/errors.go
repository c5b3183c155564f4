// Package errors provides structured error types for guiscale.
//
// Every failure produced while interpreting texture metadata carries a
// machine-readable [Code] and a human-readable message:
//   - MISSING_SECTION: a required sub-section is absent
//   - MISSING_FIELD: a required field is absent within a named section
//   - INVALID_VALUE: a field is present but violates a range constraint
//   - UNKNOWN_TYPE: the scaling type is outside the known set
//
// The remaining codes cover the surrounding tooling (reading and decoding
// metadata files).
//
// # Usage
//
//	err := errors.MissingField("width", "scaling")
//	if errors.Is(err, errors.ErrCodeMissingField) {
//	    // Handle missing field
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Metadata validation errors
	ErrCodeMissingSection Code = "MISSING_SECTION"
	ErrCodeMissingField   Code = "MISSING_FIELD"
	ErrCodeInvalidValue   Code = "INVALID_VALUE"
	ErrCodeUnknownType    Code = "UNKNOWN_TYPE"

	// Metadata file errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Section string // Metadata section the error refers to (optional)
	Field   string // Metadata field the error refers to (optional)
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
// This lets callers compare against a bare code carrier:
//
//	errors.Is(err, &errors.Error{Code: errors.ErrCodeUnknownType})
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// MissingSection reports that the named sub-section is absent.
func MissingSection(section string) *Error {
	return &Error{
		Code:    ErrCodeMissingSection,
		Message: fmt.Sprintf("missing %s section", section),
		Section: section,
	}
}

// MissingField reports that field is absent within section.
func MissingField(field, section string) *Error {
	return &Error{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("missing %s field in %s section", field, section),
		Section: section,
		Field:   field,
	}
}

// InvalidValue reports a present field that violates a range constraint.
func InvalidValue(format string, args ...any) *Error {
	return New(ErrCodeInvalidValue, format, args...)
}

// UnknownType reports a scaling type outside the known set.
// The raw value is kept verbatim in the message.
func UnknownType(raw string) *Error {
	return &Error{
		Code:    ErrCodeUnknownType,
		Message: fmt.Sprintf("unknown scaling type %q", raw),
		Field:   "type",
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
