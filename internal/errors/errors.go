// Package errors holds the failure categories shared by the podspec loaders,
// the specification model and the CLI, plus the detailed form printed to users.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DetailError describes a failure while loading, querying or checksumming a
// specification manifest, in the layout the CLI prints.
type DetailError struct {
	// Type is a short headline such as "checksum unavailable".
	Type string

	// Message says what went wrong.
	Message string

	// Location is the manifest path, with a line when the parser reports one.
	Location string

	// Field names the attribute or flag at fault.
	Field string

	// Context carries extra pairs such as the subspec name or platform.
	Context map[string]string

	// Hint suggests a fix.
	Hint string

	// Cause is usually one of the sentinels, so exit codes can be derived.
	Cause error
}

// Error renders the headline, the located fields and the hint.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap exposes Cause to errors.Is.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError reports a rejected flag, setting or attribute.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError reports a missing manifest or subspec.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewParseError reports user input that could not be parsed, such as a
// JSONPath query.
func NewParseError(message, hint string) error {
	return &DetailError{
		Type:    "parse failed",
		Message: message,
		Hint:    hint,
		Cause:   ErrParse,
	}
}

// Wrap prefixes message to sentinel so the exit code survives.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError carries the podspec exit code through cobra's error return.
type ExitError struct {
	Err  error
	Code int

	// Printed is set once the command layer has already reported Err.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
