// Package apperr defines the error taxonomy every handler funnels into.
// Nothing is recovered locally; the central handler in handler.go maps
// each kind (or a raw storage error) onto one HTTP status.
package apperr

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindConflict
	KindInvalidReference
	KindInvalidState
	KindUnauthenticated
	KindForbidden
)

type Error struct {
	Kind    Kind
	Message string
	// Fields carries per-field validation messages, or the offending
	// field for a unique-constraint conflict.
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

func Validationf(field, format string, args ...any) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "validation failed",
		Fields:  map[string]string{field: fmt.Sprintf(format, args...)},
	}
}

func Conflict(field string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: "duplicate value",
		Fields:  map[string]string{field: "already exists"},
	}
}

func InvalidReference() *Error {
	return &Error{Kind: KindInvalidReference, Message: "invalid reference"}
}

func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// FromValidator flattens validator.ValidationErrors into per-field messages.
func FromValidator(err error) *Error {
	fields := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = fmt.Sprintf("failed '%s' validation", fe.Tag())
		}
		return Validation(fields)
	}
	return Validationf("body", "invalid request body")
}
