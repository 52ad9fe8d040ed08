package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a manifest or attribute failed structural checks.
	ErrValidation = errors.New("validation error")

	// ErrEvaluation indicates the manifest evaluator itself failed.
	ErrEvaluation = errors.New("evaluation error")

	// ErrNotFound indicates a manifest file or subspec was not found.
	ErrNotFound = errors.New("not found")

	// ErrParse indicates a display string did not match the expected shape.
	ErrParse = errors.New("parse error")

	// ErrInvalidOperation indicates an operation not permitted on the receiver,
	// such as setting the defining file on a subspec.
	ErrInvalidOperation = errors.New("invalid operation")
)
