package cli

import (
	"errors"

	"github.com/thenoetrevino/plantel/internal/api"
	"github.com/thenoetrevino/plantel/internal/board"
	"github.com/thenoetrevino/plantel/internal/config"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/validation"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a general error occurred.
	// Use for: backend unreachable, timeouts, unexpected responses.
	ExitFailure = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags, bad dates, unknown report dimensions.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: athlete, program, catalog record or appointment ids the
	// backend does not know.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a rejected move, a conflicting booking, a record still in use.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: invalid CURP, missing record fields, out of range values.
	ExitValidation = 5
)

// ExitError carries the process exit code for a failed command. The message
// has already been printed by the formatter when Reported is set.
type ExitError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the exit code reported by the process
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, validation.ErrInvalid), api.IsValidation(err):
		return ExitValidation
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, board.ErrUnknownAthlete),
		errors.Is(err, board.ErrUnknownProgram),
		api.IsNotFound(err):
		return ExitNotFound
	case errors.Is(err, board.ErrMoveRejected), api.IsConflict(err):
		return ExitDataErr
	case errors.Is(err, api.ErrInvalidFilter),
		errors.Is(err, models.ErrUnknownResource),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, config.ErrInvalidDensity),
		errors.Is(err, api.ErrServiceNotConfigured):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// ErrorCode returns the machine readable code printed in JSON errors
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "CONFLICT"
	case ExitUsage:
		return "USAGE_ERROR"
	default:
		return "BACKEND_ERROR"
	}
}
