// Package engineerr defines the sentinel error kinds the engine uses to
// classify failures, per the error handling design in spec §7. Callers use
// errors.Is against the sentinels, or Kind to pull the classification back
// out of a wrapped error for HTTP status mapping.
package engineerr

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrRepositoryUnavailable = errors.New("repository unavailable")
	ErrAccessDenied         = errors.New("access denied")
	ErrFileReadError        = errors.New("file read error")
	ErrPatternCompileError  = errors.New("pattern compile error")
	ErrValidatorError       = errors.New("validator error")
	ErrTimeout              = errors.New("timeout")
	ErrInternal             = errors.New("internal error")
)

// Kind returns the sentinel error this err wraps, for mapping onto a
// behavior (HTTP status, retry decision, log level). It walks the chain with
// errors.Is and returns ErrInternal if none of the known sentinels match.
func Kind(err error) error {
	for _, sentinel := range []error{
		ErrInvalidInput,
		ErrRepositoryUnavailable,
		ErrAccessDenied,
		ErrFileReadError,
		ErrPatternCompileError,
		ErrValidatorError,
		ErrTimeout,
		ErrInternal,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return ErrInternal
}
