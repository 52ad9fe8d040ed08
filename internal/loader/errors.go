package loader

import (
	"fmt"

	oerrors "github.com/alycrisco/Core/internal/errors"
)

// ManifestNotFoundError indicates the manifest path does not exist.
type ManifestNotFoundError struct {
	Path string
}

func (e *ManifestNotFoundError) Error() string {
	return fmt.Sprintf("manifest not found: %s", e.Path)
}

func (e *ManifestNotFoundError) Unwrap() error {
	return oerrors.ErrNotFound
}

// InvalidManifestError indicates the manifest evaluated to something that is
// not a specification.
type InvalidManifestError struct {
	Path   string
	Reason string
}

func (e *InvalidManifestError) Error() string {
	if e.Path == "" {
		return "invalid manifest: " + e.Reason
	}
	return fmt.Sprintf("invalid manifest %s: %s", e.Path, e.Reason)
}

func (e *InvalidManifestError) Unwrap() error {
	return oerrors.ErrValidation
}

// ManifestEvaluationError wraps a failure raised while evaluating manifest
// source, with the position it was reported at when the format provides one.
type ManifestEvaluationError struct {
	Path string

	// Location is "file:line:col" or empty.
	Location string

	Cause error
}

func (e *ManifestEvaluationError) Error() string {
	where := e.Path
	if e.Location != "" {
		where = e.Location
	}
	return fmt.Sprintf("evaluating manifest %s: %v", where, e.Cause)
}

// Unwrap returns the original failure.
func (e *ManifestEvaluationError) Unwrap() error {
	return e.Cause
}

// Is matches oerrors.ErrEvaluation.
func (e *ManifestEvaluationError) Is(target error) bool {
	return target == oerrors.ErrEvaluation
}
