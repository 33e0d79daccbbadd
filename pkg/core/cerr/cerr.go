package cerr

import (
	"fmt"
	"net/http"
)

// Error carries the HTTP status code which the façade should report
// for Err. Code is an optional machine readable reason, such as
// INVALID_PHONE, which some endpoints include in their error bodies.
// Details may keep the raw message of an upstream provider.
type Error struct {
	Err            error
	HTTPStatusCode int
	Code           string
	Details        string
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%d %s] %s", e.HTTPStatusCode, e.Code, e.Err.Error())
	}
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

// WithCode sets the machine readable reason of e and returns e.
func (e *Error) WithCode(code string) *Error {
	e.Code = code
	return e
}

// WithDetails sets the upstream details of e and returns e.
func (e *Error) WithDetails(details string) *Error {
	e.Details = details
	return e
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}

func Internal(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusInternalServerError}
}

// BadGateway reports a failure of a third-party delivery provider.
func BadGateway(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadGateway}
}

// Unavailable reports a collaborator which is not configured or
// timed out before answering.
func Unavailable(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusServiceUnavailable}
}
