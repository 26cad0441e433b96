// Package apperr carries the application error taxonomy and its HTTP
// mapping. Services return these errors; the echo error handler converts
// them into the wire shape {"message": "..."} without leaking internals
// for unexpected failures.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Unexpected Kind = iota
	Validation
	Authentication
	Authorization
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Authentication:
		return "authentication"
	case Authorization:
		return "authorization"
	case NotFound:
		return "not_found"
	default:
		return "unexpected"
	}
}

// Error is a classified application error. Field carries field-level context
// for validation failures.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validationf builds a field-scoped validation error.
func Validationf(field, format string, args ...interface{}) *Error {
	return &Error{Kind: Validation, Field: field, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(message string) *Error {
	return &Error{Kind: Authorization, Message: message}
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: Authentication, Message: message}
}

// KindOf classifies an arbitrary error. Anything that is not an *Error is
// Unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unexpected
}

// HTTPStatus maps the taxonomy onto HTTP status codes.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Validation:
		return http.StatusBadRequest
	case Authentication:
		return http.StatusUnauthorized
	case Authorization:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
