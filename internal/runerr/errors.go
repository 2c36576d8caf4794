// Package runerr defines the failure taxonomy of the runner generator.
//
// Every fatal error maps to one Class, which decides the process exit status.
// Soft parse gaps are never reported through this package: they only shrink
// the generated output.
package runerr

import (
	"errors"
	"fmt"
)

// Class is a stable failure category.
type Class string

const (
	// Config is an unsupported or unreadable configuration source.
	Config Class = "CONFIG"
	// MissingSection is a configuration file without a unity or cmock section.
	MissingSection Class = "MISSING_SECTION"
	// NoInput is an invocation without a test source file.
	NoInput Class = "NO_INPUT"
	// IO is a failure reading inputs or writing outputs.
	IO Class = "IO"
	// Stale is reported by check mode when generated files are out of date.
	Stale Class = "STALE"
	// Internal is an unexpected generator failure.
	Internal Class = "INTERNAL"
)

// ExitCode returns the process exit status for this class.
func (c Class) ExitCode() int {
	switch c {
	case NoInput:
		return 2
	case Config, MissingSection:
		return 3
	case IO, Internal:
		return 10
	default:
		return 1
	}
}

// Error is the structured error type for fatal generator failures.
type Error struct {
	Class   Class
	Path    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, e.Message)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Class, msg, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Class, msg)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given class.
func New(class Class, path, message string) *Error {
	return &Error{Class: class, Path: path, Message: message}
}

// Wrap creates an Error wrapping cause.
func Wrap(class Class, path, message string, cause error) *Error {
	return &Error{Class: class, Path: path, Message: message, Cause: cause}
}

// Is reports whether err carries the given class anywhere in its chain.
func Is(err error, class Class) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Class == class
}

// ExitCode maps an error chain to a process exit status. Unclassified errors exit with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Class.ExitCode()
	}

	return 1
}
