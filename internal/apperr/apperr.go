// Package apperr defines the closed set of failures the API can surface to a
// client. Every error that reaches the HTTP layer is classified by Render into
// exactly one status code and one plain-text message.
//
// Variants:
//   - *ValidationError:   a field constraint was violated (400, first field message)
//   - *DuplicateKeyError: a uniqueness constraint was violated (400)
//   - *NotFoundError:     a referenced record or route does not exist (400 or 404)
//   - *InternalError:     anything else that went wrong server-side (500)
//
// Errors that are not one of the variants above render as a generic 500 so
// that internal details never leak to clients.
package apperr

import (
	"errors"
	"net/http"
)

// DefaultMessage is rendered for server-side failures that carry no message.
const DefaultMessage = "Internal Server Error"

// Error is implemented by every variant in this package. The unexported
// marker keeps the set closed.
type Error interface {
	error
	// Status returns the HTTP status code used to render the error.
	Status() int
	// Message returns the client-facing, single-line message.
	Message() string

	apperr()
}

// FieldError is a single failed constraint on a named field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries the ordered list of failed field constraints.
type ValidationError struct {
	Fields []FieldError
}

// Validation builds a ValidationError from field/message pairs.
func Validation(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error implements error.
func (e *ValidationError) Error() string { return "validation failed: " + e.Message() }

// Status implements Error.
func (e *ValidationError) Status() int { return http.StatusBadRequest }

// Message returns the first field's message.
func (e *ValidationError) Message() string {
	if len(e.Fields) == 0 || e.Fields[0].Message == "" {
		return "Validation failed"
	}
	return e.Fields[0].Message
}

func (*ValidationError) apperr() {}

// DuplicateKeyError reports a uniqueness violation.
type DuplicateKeyError struct {
	Msg string
	Err error
}

// DuplicateKey builds a DuplicateKeyError wrapping the store error.
func DuplicateKey(msg string, err error) *DuplicateKeyError {
	return &DuplicateKeyError{Msg: msg, Err: err}
}

func (e *DuplicateKeyError) Error() string   { return e.Msg }
func (e *DuplicateKeyError) Unwrap() error   { return e.Err }
func (e *DuplicateKeyError) Status() int     { return http.StatusBadRequest }
func (e *DuplicateKeyError) Message() string { return e.Msg }
func (*DuplicateKeyError) apperr()           {}

// NotFoundError reports a missing record or route. Code is the HTTP status;
// unknown references use 400 while unmatched routes use 404.
type NotFoundError struct {
	Code int
	Msg  string
}

// NotFound builds a NotFoundError.
func NotFound(code int, msg string) *NotFoundError {
	return &NotFoundError{Code: code, Msg: msg}
}

func (e *NotFoundError) Error() string { return e.Msg }

func (e *NotFoundError) Status() int {
	if e.Code == 0 {
		return http.StatusNotFound
	}
	return e.Code
}

func (e *NotFoundError) Message() string {
	if e.Msg == "" {
		return http.StatusText(http.StatusNotFound)
	}
	return e.Msg
}

func (*NotFoundError) apperr() {}

// InternalError wraps an unexpected failure. Err is logged by the HTTP layer
// and never rendered.
type InternalError struct {
	Msg string
	Err error
}

// Internal wraps err as an InternalError with the default message.
func Internal(err error) *InternalError {
	return &InternalError{Err: err}
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return e.Message() + ": " + e.Err.Error()
	}
	return e.Message()
}

func (e *InternalError) Unwrap() error { return e.Err }
func (e *InternalError) Status() int   { return http.StatusInternalServerError }

func (e *InternalError) Message() string {
	if e.Msg == "" {
		return DefaultMessage
	}
	return e.Msg
}

func (*InternalError) apperr() {}

// Render classifies err and returns the status code and message to send.
// A nil error renders as a 500 with the default message.
func Render(err error) (int, string) {
	var ae Error
	if errors.As(err, &ae) {
		return ae.Status(), ae.Message()
	}
	return http.StatusInternalServerError, DefaultMessage
}

// Cause returns the wrapped error of an InternalError or DuplicateKeyError,
// or err itself otherwise. Used for logging.
func Cause(err error) error {
	if u := errors.Unwrap(err); u != nil {
		return u
	}
	return err
}
