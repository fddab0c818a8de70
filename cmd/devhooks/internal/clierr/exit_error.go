// Package clierr carries process exit codes through cobra's error return.
package clierr

import (
	"errors"
	"fmt"
)

// Kind classifies a CLI failure. Every kind currently exits with 1; the kind
// exists so callers and tests can tell a usage mistake from a failed check.
type Kind int

const (
	KindRuntime Kind = iota
	KindUsage
	KindNotFound
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindNotFound:
		return "not-found"
	case KindValidation:
		return "validation"
	default:
		return "runtime"
	}
}

type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError is an error that carries an explicit process exit code.
// It supports wrapping via Unwrap so errors.Is/As work as expected.
//
// An ExitError with an empty message is silent: the command already wrote
// its own report and main must only set the exit status.
type ExitError struct {
	code  int
	kind  Kind
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

func (e *ExitError) Unwrap() error { return e.cause }

// Silent reports whether main should skip printing this error.
func (e *ExitError) Silent() bool { return e.msg == "" && e.cause == nil }

// New creates an ExitError of the given kind.
func New(kind Kind, msg string) error {
	return &ExitError{code: 1, kind: kind, msg: msg}
}

// Newf is a formatted variant.
func Newf(kind Kind, format string, args ...any) error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap creates an ExitError that wraps an underlying cause.
func Wrap(kind Kind, msg string, cause error) error {
	if cause == nil {
		return New(kind, msg)
	}
	return &ExitError{code: 1, kind: kind, msg: msg, cause: cause}
}

// Silent returns an error that only sets the exit code.
func Silent(kind Kind) error {
	return &ExitError{code: 1, kind: kind}
}

// ExitCodeOf extracts an exit code from any error, defaulting to 1.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

// KindOf returns the kind of err, or KindRuntime for foreign errors.
func KindOf(err error) Kind {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.kind
	}
	return KindRuntime
}

// IsSilent reports whether err is a silent ExitError.
func IsSilent(err error) bool {
	var ee *ExitError
	return errors.As(err, &ee) && ee.Silent()
}
