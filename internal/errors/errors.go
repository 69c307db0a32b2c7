// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages, so commands can tell a bad lesson name apart from a
// broken config file or an arithmetic failure inside a lesson.
//
// The package supports wrapping underlying errors while maintaining error kind information.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// UnknownLesson indicates a lesson name that is not registered.
	UnknownLesson Kind = "unknown_lesson"
	// UnknownFormat indicates an output format the renderer does not support.
	UnknownFormat Kind = "unknown_format"
	// DivisionByZero indicates an integer division with a zero divisor.
	DivisionByZero Kind = "division_by_zero"
	// ConfigInvalid indicates a config file that could not be decoded.
	ConfigInvalid Kind = "config_invalid"
	// RenderFailed indicates that lesson output could not be written.
	RenderFailed Kind = "render_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

// Is reports a match when target is an *E of the same kind.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	return ok && t.Kind == e.Kind && t.Message == ""
}

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Sentinel returns a kind-only error usable as an errors.Is target.
func Sentinel(kind Kind) *E { return &E{Kind: kind} }

// KindOf returns the kind of the first *E in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
