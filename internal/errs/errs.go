// Package errs defines the error kinds every business operation can fail
// with. All four kinds are caller-recoverable: the operation performed no
// partial mutation and the message carries enough context to correct the
// input and retry.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure.
type Kind int

const (
	// KindInvalidInput marks malformed, out-of-range, or missing input,
	// detected before or instead of a store write.
	KindInvalidInput Kind = iota + 1
	// KindNotFound marks a referenced id that does not resolve.
	KindNotFound
	// KindConflict marks a booking or uniqueness collision.
	KindConflict
	// KindInvalidTransition marks an illegal status change.
	KindInvalidTransition
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindInvalidTransition:
		return "invalid transition"
	default:
		return "unknown"
	}
}

// Error is a classified operation failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional underlying cause
}

// Error returns the message, with the cause appended when present.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Invalidf builds an InvalidInput error.
func Invalidf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Conflictf builds a Conflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// Transitionf builds an InvalidTransition error.
func Transitionf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidTransition, Msg: fmt.Sprintf(format, args...)}
}

// Wrap shapes an unclassified lower-level error into an InvalidInput error
// carrying the underlying message. Already-classified errors pass through
// unchanged, so the caller never observes a raw store-layer failure.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != 0 {
		return err
	}
	return &Error{Kind: KindInvalidInput, Msg: msg, Err: err}
}

// KindOf returns the kind of a classified error, or 0 for any other error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err is classified with the given kind.
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}
