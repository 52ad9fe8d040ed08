package core

import (
	"fmt"

	oerrors "github.com/alycrisco/Core/internal/errors"
)

// LookupError indicates a subspec path could not be resolved.
type LookupError struct {
	// Name is the full relative name that was requested.
	Name string

	// Segment is the path segment that had no matching child.
	Segment string

	// Searched is the name of the specification whose children were searched.
	Searched string

	// Reason is an optional refinement, such as a case mismatch.
	Reason string
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("unable to find a specification named %q in %q", e.Segment, e.Searched)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *LookupError) Unwrap() error {
	return oerrors.ErrNotFound
}

// ParseError indicates a display string or version could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return oerrors.ErrParse
}

// InvalidOperationError indicates an operation the receiver does not permit.
type InvalidOperationError struct {
	Op     string
	Spec   string
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("%s on %q: %s", e.Op, e.Spec, e.Reason)
}

func (e *InvalidOperationError) Unwrap() error {
	return oerrors.ErrInvalidOperation
}

// UnknownAttributeError indicates an attribute name absent from the schema.
type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute %q", e.Name)
}

func (e *UnknownAttributeError) Unwrap() error {
	return oerrors.ErrValidation
}
