package cli

import (
	"errors"
	"fmt"
)

// errReported marks a failure the user has already been told about through
// the surface; Execute only sets the exit code.
var errReported = errors.New("reported")

// exitError carries a specific exit code.
type exitError struct {
	code    int
	message string
	err     error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

func (e *exitError) Unwrap() error {
	return e.err
}

// wrapExitError wraps err with an exit code.
func wrapExitError(code int, message string, err error) *exitError {
	return &exitError{code: code, message: message, err: err}
}

// exitCode extracts the exit code from an error. Errors without one are user
// errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// flowFailed converts a flow error into the CLI's reported error. Flows
// surface their own messages, so nothing more is printed.
func flowFailed(err error) error {
	if err == nil {
		return nil
	}
	return wrapExitError(exitUserError, "flow failed", fmt.Errorf("%w: %w", errReported, err))
}
