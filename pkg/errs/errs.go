package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the HTTP layer can map it to a status code
// without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindUnavailable
	KindUnauthenticated
	KindForbidden
	KindPersistence
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil && e.msg != "" {
		return e.msg + ": " + e.err.Error()
	}
	if e.err != nil {
		return e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return newf(KindValidation, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return newf(KindNotFound, format, args...)
}

func Unavailable(format string, args ...any) *Error {
	return newf(KindUnavailable, format, args...)
}

func Unauthenticated(format string, args ...any) *Error {
	return newf(KindUnauthenticated, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return newf(KindForbidden, format, args...)
}

// Persistence wraps a store failure. The original cause stays unwrappable
// for logs; the message is what the shell shows.
func Persistence(err error, msg string) *Error {
	return &Error{kind: KindPersistence, msg: msg, err: err}
}

// KindOf reports the kind of err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }
