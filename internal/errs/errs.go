// Package errs defines the error taxonomy shared by the engine and the CLI.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState marks an operation attempted outside its legal window,
	// e.g. confirming a dose that is not actionable or refilling with a
	// mismatched product. Nothing is mutated when it is returned.
	ErrInvalidState = errors.New("invalid state")

	// ErrValidation marks rejected user input, raised before any persistence
	// write.
	ErrValidation = errors.New("validation failed")
)

// ConnectivityError wraps a failed remote call. It is surfaced as an alert for
// user-initiated connectivity tests and swallowed for best-effort calls.
type ConnectivityError struct {
	Endpoint string
	Err      error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("robot unreachable at %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// IsConnectivity reports whether err is (or wraps) a ConnectivityError.
func IsConnectivity(err error) bool {
	var ce *ConnectivityError
	return errors.As(err, &ce)
}
