//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	sentinels := []error{ErrValidation, ErrEvaluation, ErrNotFound, ErrParse, ErrInvalidOperation}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "unknown attribute",
		Location: "/path/to/Pod.podspec.yaml:42",
		Field:    "sourcefiles",
		Context:  map[string]string{"Spec": "Pod/Core", "Platform": "ios"},
		Hint:     "Did you mean source_files?",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /path/to/Pod.podspec.yaml:42")
	assert.Contains(t, output, "Field: sourcefiles")
	assert.Contains(t, output, "Spec: Pod/Core")
	assert.Contains(t, output, "unknown attribute")
	assert.Contains(t, output, "Hint: Did you mean source_files?")
	// Context keys are rendered in sorted order
	assert.Less(t, strings.Index(output, "Platform:"), strings.Index(output, "Spec:"))
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError(
		"unknown attribute",
		"/path/to/Pod.podspec.yaml:42",
		"sourcefiles",
		"Check the attribute name",
	)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "unknown attribute", detail.Message)
	assert.Equal(t, "/path/to/Pod.podspec.yaml:42", detail.Location)
	assert.Equal(t, "sourcefiles", detail.Field)
	assert.Equal(t, "Check the attribute name", detail.Hint)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("manifest does not exist", "Pod.podspec.yaml", "")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestNewParseError(t *testing.T) {
	err := NewParseError(`invalid jsonpath "$[": unexpected end`, "Queries use JSONPath.")

	assert.True(t, errors.Is(err, ErrParse))
	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "parse failed", detail.Type)
	assert.Contains(t, err.Error(), "Hint: Queries use JSONPath.")
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrParse, "reading display string")

	assert.True(t, errors.Is(wrapped, ErrParse))
	assert.Contains(t, wrapped.Error(), "reading display string")
}

func TestExitError(t *testing.T) {
	inner := Wrap(ErrNotFound, "missing manifest")
	exitErr := &ExitError{Err: inner, Code: 5}

	assert.Equal(t, inner.Error(), exitErr.Error())
	assert.True(t, errors.Is(exitErr, ErrNotFound))

	bare := &ExitError{Code: 2}
	assert.Equal(t, "exit status 2", bare.Error())
}
