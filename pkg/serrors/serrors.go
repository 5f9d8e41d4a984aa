// Package serrors provides semantic error kinds shared by the address book,
// the storage backends and the command layer. Callers branch on the kind with
// errors.Is and render the message to the user.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be used with errors.Is/As through the
// serrors.Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrDuplicate indicates an add or replace would put two "same" entries in a unique list.
	ErrDuplicate = NewKind("DUPLICATE")
	// ErrNotFound indicates the targeted entry is not present.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrInvalidValue indicates a field value violates its constraints, or stored data is inconsistent.
	ErrInvalidValue = NewKind("INVALID_VALUE")
	// ErrInvalidFormat indicates user input does not follow a command's grammar.
	ErrInvalidFormat = NewKind("INVALID_FORMAT")
	// ErrCommand indicates a well-formed command could not be carried out.
	ErrCommand = NewKind("COMMAND_FAILED")
	// ErrStorage indicates data could not be read from or written to disk.
	ErrStorage = NewKind("STORAGE")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error, an optional message and optionally the entity that caused it.
//
// Matching semantics:
//   - errors.Is(err, target) will match if target matches either the kind
//     sentinel or the wrapped error.
//   - errors.As(err, target) will succeed for either the kind sentinel or the
//     wrapped error.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind   Kind
	err    error
	msg    string
	entity any
}

// With constructs a new semantic error with the given kind and a
// human-readable message. Use Wrap if you also want to wrap a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wraps the provided
// cause and adds a message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// WithEntity attaches the offending entity and returns e.
func (e *Error) WithEntity(entity any) *Error {
	e.entity = entity

	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the kind sentinel or the wrapped
// error in the chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// Entity returns the attached entity, or nil.
func (e *Error) Entity() any { return e.entity }

// EntityOf extracts the entity attached to the first *Error in err's chain.
func EntityOf(err error) (any, bool) {
	var se *Error
	if !errors.As(err, &se) || se.entity == nil {
		return nil, false
	}

	return se.entity, true
}

// MessageOf returns the message of the first *Error in err's chain that has
// one, falling back to err.Error().
func MessageOf(err error) string {
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		if se, ok := cur.(*Error); ok && se.msg != "" { //nolint: errorlint
			return se.msg
		}
	}
	if err == nil {
		return ""
	}

	return err.Error()
}

// KindOf returns the kind of the first *Error in err's chain, or nil when err
// carries no semantic kind.
func KindOf(err error) Kind {
	var se *Error
	if !errors.As(err, &se) {
		return nil
	}

	return se.kind
}
