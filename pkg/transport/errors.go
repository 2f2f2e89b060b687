package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the closed set of failure kinds surfaced to adapters.
type Code string

const (
	CodeServerError     Code = "SERVER_ERROR"
	CodeUnauthorized    Code = "UNAUTHORIZED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInvalidJSON     Code = "INVALID_JSON"
	CodeTimeout         Code = "TIMEOUT"
	CodeNetworkError    Code = "NETWORK_ERROR"
	CodeInvalidResponse Code = "INVALID_RESPONSE"
)

// Error is returned by every failed request. StatusCode is zero when no
// response was received.
type Error struct {
	Code       Code
	Message    string
	StatusCode int
	RequestID  string
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsError extracts a transport error from err. Errors of any other type are
// reported as NETWORK_ERROR with their message preserved.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var terr *Error
	if errors.As(err, &terr) {
		return terr
	}
	return &Error{Code: CodeNetworkError, Message: err.Error()}
}

// codeForStatus maps a non-2xx status to its taxonomy code. Statuses outside
// the named ones are reported as NETWORK_ERROR with the status attached.
func codeForStatus(status int) Code {
	switch {
	case status == http.StatusUnauthorized:
		return CodeUnauthorized
	case status == http.StatusForbidden:
		return CodeForbidden
	case status == http.StatusNotFound:
		return CodeNotFound
	case status >= http.StatusInternalServerError:
		return CodeServerError
	default:
		return CodeNetworkError
	}
}
