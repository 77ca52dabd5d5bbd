// Package errors defines domain-level error types carrying HTTP semantics
// so that the delivery layer can render them without switching on sentinels.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the contract every domain error satisfies. The delivery layer
// renders HTTPCode/ErrorCode/Message into the response envelope; Details is
// optional diagnostic context.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is the canonical AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	cause     error
}

// NewBaseError creates a BaseError with the given codes and message.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.errorCode, e.message, e.details)
	}
	return fmt.Sprintf("%s: %s", e.errorCode, e.message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Unwrap exposes the wrapped cause for errors.Is/As chains.
func (e *BaseError) Unwrap() error { return e.cause }

// Is matches on error code so wrapped copies compare equal to the predefined
// variables below.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	return ok && t.errorCode == e.errorCode
}

// WithDetails returns a copy carrying extra diagnostic context.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details
	return &clone
}

// WithDetailsf is WithDetails with fmt formatting.
func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WrapMessage returns a copy that records err as the cause while keeping the
// outward-facing code and message stable.
func (e *BaseError) WrapMessage(err error) *BaseError {
	clone := *e
	clone.cause = err
	if err != nil {
		clone.details = err.Error()
	}
	return &clone
}

// Predefined domain errors. Handlers and services return these (optionally via
// WithDetails/WrapMessage) and the error middleware maps them onto the wire.
var (
	ErrCustomerNotFound = NewBaseError(http.StatusNotFound, "CUSTOMER_NOT_FOUND", "customer not found")
	ErrContactNotFound  = NewBaseError(http.StatusNotFound, "CONTACT_NOT_FOUND", "contact not found")

	ErrEmailExists    = NewBaseError(http.StatusUnprocessableEntity, "EMAIL_EXISTS", "email address is already in use")
	ErrUsernameExists = NewBaseError(http.StatusUnprocessableEntity, "USERNAME_EXISTS", "username is already in use")
	ErrContactExists  = NewBaseError(http.StatusUnprocessableEntity, "CONTACT_EXISTS", "an equivalent contact already exists")

	ErrVersionOutdated = NewBaseError(http.StatusPreconditionFailed, "VERSION_OUTDATED", "supplied version is older than the stored one")
	ErrVersionAhead    = NewBaseError(http.StatusPreconditionFailed, "VERSION_AHEAD", "supplied version is newer than the stored one")
	ErrVersionMissing  = NewBaseError(http.StatusPreconditionRequired, "VERSION_MISSING", "If-Match header is required")
	ErrVersionInvalid  = NewBaseError(http.StatusPreconditionFailed, "VERSION_INVALID", "If-Match header is not a valid version")

	ErrAccessForbidden = NewBaseError(http.StatusForbidden, "ACCESS_FORBIDDEN", "insufficient permissions for this operation")
	ErrUnauthorized    = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "authentication is required")

	ErrPasswordInvalid  = NewBaseError(http.StatusBadRequest, "PASSWORD_INVALID", "password does not meet the policy")
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "request validation failed")
	ErrInvalidArgument  = NewBaseError(http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request argument")

	ErrSignUpFailed = NewBaseError(http.StatusInternalServerError, "SIGN_UP_FAILED", "account could not be created")
	ErrInternal     = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
)

// DatabaseExecuteError wraps persistence failures that do not map to a domain
// condition.
type DatabaseExecuteError struct {
	*BaseError
}

// NewDatabaseExecuteError wraps err as an internal persistence failure.
func NewDatabaseExecuteError(err error) *DatabaseExecuteError {
	return &DatabaseExecuteError{
		BaseError: NewBaseError(http.StatusInternalServerError, "DATABASE_ERROR", "database operation failed").WrapMessage(err),
	}
}
