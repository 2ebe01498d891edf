package llm

import (
	"errors"
	"net"
)

var (
	// ErrUnavailable means the model endpoint could not be reached.
	ErrUnavailable = errors.New("model endpoint unreachable")

	// ErrTimeout means the call exceeded the task's deadline.
	ErrTimeout = errors.New("model call timed out")

	// ErrInvalidOutput means the model's text could not be turned into
	// the structure the caller asked for.
	ErrInvalidOutput = errors.New("unusable model output")

	// ErrRetriesExhausted means every attempt failed.
	ErrRetriesExhausted = errors.New("model call retries exhausted")
)

// connectionError reports whether err is a transport-level failure, the
// signal that maps to ErrUnavailable.
func connectionError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
