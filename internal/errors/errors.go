package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between implementations.
	ExitErrorConfig   = 4   // Indicates a configuration or argument error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidArgumentError represents a rejected summation argument, such as a
// negative item count or a non-positive chunk size. It identifies which
// argument failed validation and provides a human-readable explanation.
type InvalidArgumentError struct {
	// Argument is the name of the argument that failed validation.
	Argument string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Message)
}

// NewInvalidArgument creates a new InvalidArgumentError for the named argument.
//
// Parameters:
//   - argument: The name of the offending argument.
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new InvalidArgumentError instance.
func NewInvalidArgument(argument, format string, a ...any) error {
	return InvalidArgumentError{Argument: argument, Message: fmt.Sprintf(format, a...)}
}

// IsInvalidArgument reports whether err is (or wraps) an InvalidArgumentError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error belongs to the invalid-argument class.
func IsInvalidArgument(err error) bool {
	var iae InvalidArgumentError
	return errors.As(err, &iae)
}

// ComputeError encapsulates a summation error while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during the array summation.
type ComputeError struct {
	// Cause is the underlying error that triggered this compute error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e ComputeError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the ComputeError.
func (e ComputeError) Unwrap() error { return e.Cause }

// TimeoutError represents a summation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeForError maps an error to the application exit code for its class.
//
// Parameters:
//   - err: The error to classify (may be nil).
//
// Returns:
//   - int: ExitSuccess for nil, otherwise the code matching the error class.
func ExitCodeForError(err error) int {
	var timeout TimeoutError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &timeout):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case IsInvalidArgument(err):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
