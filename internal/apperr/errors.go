// Package apperr defines the error kinds shared by the listing and recruiting contexts.
package apperr

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a referenced posting, application, employer or
// notification does not exist or is not visible to the caller.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// InvalidTransitionError is returned when the application state machine rejects a move.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transition %s → %s is not allowed", e.From, e.To)
}

// ConflictError reports an operation that clashes with the current state of a record.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// ValidationError wraps a user-facing validation message.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

// UpstreamReadError reports a failed or timed out store read.
type UpstreamReadError struct {
	Source string
	Err    error
}

func (e *UpstreamReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Source, e.Err)
}

func (e *UpstreamReadError) Unwrap() error { return e.Err }

// NotFound is shorthand for &NotFoundError{...}.
func NotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// Invalid is shorthand for &ValidationError{...}.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// Upstream wraps err as an UpstreamReadError unless it is nil.
func Upstream(source string, err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamReadError{Source: source, Err: err}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsInvalidTransition(err error) bool {
	var target *InvalidTransitionError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target *UpstreamReadError
	return errors.As(err, &target)
}
