package errors

import "errors"

// Process exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates an invalid manifest, attribute or config.
	ExitValidationError = 2

	// ExitEvaluationError indicates a manifest evaluator failed.
	ExitEvaluationError = 3

	// ExitInvalidOperation indicates an operation not permitted on its target.
	ExitInvalidOperation = 4

	// ExitNotFound indicates a manifest file or subspec was not found.
	ExitNotFound = 5

	// ExitParseError indicates a malformed version, requirement, platform or
	// display string.
	ExitParseError = 6
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitEvaluationError:
		return "Evaluation Error"
	case ExitInvalidOperation:
		return "Invalid Operation"
	case ExitNotFound:
		return "Not Found"
	case ExitParseError:
		return "Parse Error"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the exit code for err. An ExitError anywhere
// in the chain wins; otherwise the first matching sentinel decides.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrEvaluation):
		return ExitEvaluationError
	case errors.Is(err, ErrInvalidOperation):
		return ExitInvalidOperation
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrParse):
		return ExitParseError
	default:
		return ExitGeneralError
	}
}
