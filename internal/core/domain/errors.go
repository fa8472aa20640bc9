package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent conversion failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Conversion Errors.

	// ErrMalformedLine indicates a RESP line that cannot be tokenized,
	// or a group whose values do not fit its template.
	ErrMalformedLine = errors.New("malformed line")

	// ErrRepeatOverflow indicates more values for a loop field than the
	// template has slots.
	ErrRepeatOverflow = errors.New("more values than loop slots")

	// ErrUnknownField indicates a field id with no slot in its template.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownGroupType indicates a group type with no registered template.
	ErrUnknownGroupType = errors.New("unknown group type")
)

// MalformedLineError reports an input line that could not be used.
type MalformedLineError struct {
	Line    int
	Content string
	Reason  string
	// Cause optionally narrows the failure, e.g. ErrRepeatOverflow.
	Cause error
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: malformed line %q: %s", e.Line, e.Content, e.Reason)
}

// Unwrap exposes ErrMalformedLine and the optional cause.
func (e *MalformedLineError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrMalformedLine, e.Cause}
	}
	return []error{ErrMalformedLine}
}

// UnknownFieldError reports a field id its group template does not define.
type UnknownFieldError struct {
	Group GroupType
	Field int
	Line  int
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("line %d: group %s has no field %d", e.Line, e.Group, e.Field)
}

func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }

// UnknownGroupTypeError reports a group type missing from the registry.
type UnknownGroupTypeError struct {
	Group GroupType
}

func (e *UnknownGroupTypeError) Error() string {
	return fmt.Sprintf("no template for group type %s", e.Group)
}

func (e *UnknownGroupTypeError) Unwrap() error { return ErrUnknownGroupType }

// GroupError scopes a failure to the group instance it prevented.
type GroupError struct {
	Group GroupType
	// Line is where the failed group started.
	Line int
	Err  error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("group %s at line %d: %v", e.Group, e.Line, e.Err)
}

func (e *GroupError) Unwrap() error { return e.Err }
