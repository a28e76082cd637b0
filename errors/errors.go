package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which thread-lifecycle operation the error occurred in
type Phase string

const (
	PhaseSpawn Phase = "spawn" // thread creation
	PhaseJoin  Phase = "join"  // waiting for completion
	PhasePin   Phase = "pin"   // CPU affinity
	PhaseExit  Phase = "exit"  // teardown at thread end
)

// Kind categorizes the error
type Kind string

const (
	KindResourceExhausted Kind = "resource_exhausted"
	KindDisabled          Kind = "disabled"
	KindUnsupported       Kind = "unsupported"
	KindOutOfRange        Kind = "out_of_range"
	KindInvalidHandle     Kind = "invalid_handle"
	KindInvalidInput      Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ResourceExhausted creates the recoverable creation-refused error.
// The caller may retry or reduce concurrency.
func ResourceExhausted(cause error, detail string) *Error {
	return &Error{
		Phase:  PhaseSpawn,
		Kind:   KindResourceExhausted,
		Detail: detail,
		Cause:  cause,
	}
}

// Disabled creates the error returned when thread support is switched off
func Disabled() *Error {
	return &Error{
		Phase:  PhaseSpawn,
		Kind:   KindDisabled,
		Detail: "thread support disabled for this process",
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// OutOfRange creates an out of range error
func OutOfRange(phase Phase, what string, value, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("%s %d out of range (limit %d)", what, value, limit),
	}
}

// InvalidHandle creates an invalid handle error
func InvalidHandle(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidHandle,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
