package ninja

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScriptFailed indicates a command script could not be read or run.
	ErrScriptFailed = errors.New("script failed")

	// ErrNotInteractive indicates an interactive feature was requested
	// while stdin or stdout is not attached to a terminal.
	ErrNotInteractive = errors.New("not running in an interactive terminal")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrScriptFailed):
		return ExitScriptError
	case errors.Is(err, ErrNotInteractive):
		return ExitNotInteractive
	}

	return ExitGeneralError
}
