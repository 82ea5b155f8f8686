package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so the HTTP boundary can pick a status without
// knowing which package produced it.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindPrecondition  Kind = "precondition"
	KindConflict      Kind = "conflict"
	KindState         Kind = "state"
	KindNotFound      Kind = "not_found"
	KindConfiguration Kind = "configuration"
	KindUnauthorized  Kind = "unauthorized"
	KindForbidden     Kind = "forbidden"
)

// Error is a domain failure with a stable machine-readable code.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details any
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string { return e.Message }

// Is matches on Code so copies made by WithDetails still satisfy errors.Is
// against the package sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithDetails returns a copy carrying extra context for the response body.
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// WithMessage returns a copy with a more specific human-readable message.
func (e *Error) WithMessage(message string) *Error {
	cp := *e
	cp.Message = message
	return &cp
}

// As extracts the first *Error in the chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err, or "" for unclassified errors.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return ""
}

func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindPrecondition, KindConflict, KindState:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
