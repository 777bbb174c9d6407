package flows

import (
	"errors"
	"fmt"
)

// ErrPermissionDenied is returned when the invoker fails an access check.
var ErrPermissionDenied = errors.New("permission denied")

// NotFoundError is returned when a referenced entity does not exist. Hint,
// when set, replaces the default reply wording.
type NotFoundError struct {
	What string
	Hint string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.What)
}

// UserMessage returns the reply shown to the invoker.
func (e *NotFoundError) UserMessage() string {
	if e.Hint != "" {
		return e.Hint
	}
	return fmt.Sprintf("%s not found.", e.What)
}

// Code returns the error code logged for this failure.
func (e *NotFoundError) Code() string { return "not_found" }

// ValidationError is returned when user input fails a check. It carries a
// reply that tells the user what to fix.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UserMessage returns the reply shown to the invoker.
func (e *ValidationError) UserMessage() string {
	return fmt.Sprintf("Invalid %s: %s", e.Field, e.Reason)
}

// Code returns the error code logged for this failure.
func (e *ValidationError) Code() string { return "validation" }

// ExternalError is returned when an outbound platform operation fails in
// a way the invoker must hear about (role edits, channel posts).
type ExternalError struct {
	Op  string
	Err error
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ExternalError) Unwrap() error { return e.Err }

// UserMessage returns the reply shown to the invoker.
func (e *ExternalError) UserMessage() string {
	return fmt.Sprintf("The %s failed. Please try again.", e.Op)
}

// Code returns the error code logged for this failure.
func (e *ExternalError) Code() string { return "external" }
