// Package apperror defines the application error taxonomy: a stable error
// code, a response type, and a detail list carried verbatim to the client.
package apperror

import (
	"errors"
	"net/http"
)

// Type classifies an error for HTTP status mapping.
type Type string

const (
	TypeBadRequest          Type = "BAD_REQUEST"
	TypeUnauthorized        Type = "UNAUTHORIZED"
	TypeForbidden           Type = "FORBIDDEN"
	TypeNotFound            Type = "NOT_FOUND"
	TypeInternalServerError Type = "INTERNAL_SERVER_ERROR"
)

// HTTPStatus maps an error type to its response status code.
func (t Type) HTTPStatus() int {
	switch t {
	case TypeBadRequest:
		return http.StatusBadRequest
	case TypeUnauthorized:
		return http.StatusUnauthorized
	case TypeForbidden:
		return http.StatusForbidden
	case TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error codes exposed in the errorCode response field.
const (
	CodeInternalServerError       = "INTERNAL_SERVER_ERROR"
	CodeInvalidInputParams        = "INVALID_INPUT_PARAMS"
	CodeInvalidAuthParams         = "INVALID_AUTH_PARAMS"
	CodeRecordNotFound            = "RECORD_NOT_FOUND"
	CodeUserNotFound              = "USER_NOT_FOUND"
	CodeMtcNameAlreadyRegistered  = "MTC_NAME_IS_ALREADY_REGISTERED"
	CodeEmailAlreadyRegistered    = "EMAIL_IS_ALREADY_REGISTERED"
	CodeResetPasswordInvalidToken = "RESET_PASSWORD_INVALID_TOKEN"
	CodeGeoCoderError             = "GEO_CODER_ERROR"
	CodeEmailSenderError          = "EMAIL_SENDER_ERROR"
)

// Error is the single error shape crossing the service boundary. Details
// hold field errors for validation failures or human-readable strings for
// everything else; the full list is always returned in one response.
type Error struct {
	Code    string
	Details []any
	Type    Type
}

func (e *Error) Error() string {
	return e.Code
}

func newError(t Type, code string, details ...any) *Error {
	if details == nil {
		details = []any{}
	}
	return &Error{Code: code, Details: details, Type: t}
}

// NewBadRequest builds a BAD_REQUEST error.
func NewBadRequest(code string, details ...any) *Error {
	return newError(TypeBadRequest, code, details...)
}

// NewUnauthorized builds an UNAUTHORIZED error.
func NewUnauthorized(code string, details ...any) *Error {
	return newError(TypeUnauthorized, code, details...)
}

// NewForbidden builds a FORBIDDEN error.
func NewForbidden(code string, details ...any) *Error {
	return newError(TypeForbidden, code, details...)
}

// NewNotFound builds a NOT_FOUND error.
func NewNotFound(code string, details ...any) *Error {
	return newError(TypeNotFound, code, details...)
}

// NewInternal builds an INTERNAL_SERVER_ERROR error.
func NewInternal(code string, details ...any) *Error {
	return newError(TypeInternalServerError, code, details...)
}

// From returns err as an *Error, wrapping unrecognized errors as internal
// server errors with the raw error text embedded for diagnostics.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal(CodeInternalServerError, err.Error())
}
