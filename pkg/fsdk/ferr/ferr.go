// Package ferr defines the SDK error taxonomy: stable codes callers can
// switch on, plus the HTTP status and server-provided detail when a call
// reached the backend and was refused.
package ferr

import "fmt"

// Code represents a stable error category that callers can switch on.
type Code string

const (
	CodeUnknown Code = "unknown"
	// CodeNetwork means the request produced no HTTP response at all.
	CodeNetwork Code = "network"
	// CodeHTTP means the backend answered with a non-2xx status other
	// than the handled 401 cases.
	CodeHTTP Code = "http_error"
	// CodeUnauthorized means no usable credentials were available.
	CodeUnauthorized Code = "unauthorized"
	// CodeSessionExpired means a 401 survived the refresh attempt; the
	// stored tokens have been purged.
	CodeSessionExpired Code = "session_expired"
	CodeRefreshFailed  Code = "refresh_failed"
	// CodeValidation means a client-side check rejected the input before
	// any network call.
	CodeValidation Code = "validation"
)

// Error is a value type that carries a Code, the HTTP status and server
// detail when applicable, and the underlying error.
type Error struct {
	Code   Code
	Status int    // HTTP status code; 0 when the request never completed
	Detail string // server-provided error detail, or raw body
	err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Status != 0 && e.Detail != "":
		return fmt.Sprintf("%s (status %d): %s", e.Code, e.Status, e.Detail)
	case e.Status != 0:
		return fmt.Sprintf("%s (status %d)", e.Code, e.Status)
	case e.err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.err)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Detail)
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// New wraps an error with the provided code. If err is nil a nil is
// returned.
func New(code Code, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, err: err}
}

// NewHTTP builds an error for a completed request the backend refused.
func NewHTTP(code Code, status int, detail string) error {
	return &Error{Code: code, Status: status, Detail: detail}
}

// Validation builds a client-side validation error for a named field.
func Validation(field, problem string) error {
	return &Error{Code: CodeValidation, Detail: fmt.Sprintf("%s: %s", field, problem)}
}

// IsCode helps callers compare codes without type assertions.
func IsCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	if e, ok := err.(*Error); ok {
		return e.Code == code
	}
	return false
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not
// an SDK error or never reached the backend.
func StatusOf(err error) int {
	if e, ok := err.(*Error); ok {
		return e.Status
	}
	return 0
}

// DetailOf returns the server-provided detail carried by err, or "".
func DetailOf(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Detail
	}
	return ""
}
