package httpapi

import (
	"errors"
	"net/http"
)

const (
	msgBadRequest     = "Bad Request"
	msgNotFound       = "Resource not found"
	msgInternalServer = "Internal Server Error"
	msgUnauthorized   = "Unauthorized"
)

// HTTPError is an error with an associated HTTP status code and a
// user-facing message.
type HTTPError struct {
	cause   error  // the underlying error, can be nil
	Code    int    // HTTP status code
	Message string // user-facing error message
}

// Error returns the Message, which is intended for the HTTP response.
func (he HTTPError) Error() string {
	return he.Message
}

// Unwrap provides compatibility for errors.Is and errors.As.
func (he HTTPError) Unwrap() error {
	return he.cause
}

func defaultMessageIfEmpty(initialMsg, defaultVal string) string {
	if initialMsg == "" {
		return defaultVal
	}
	return initialMsg
}

func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		cause:   errors.New(message),
		Code:    code,
		Message: message,
	}
}

// NewHTTPErrorWrap creates an HTTPError that wraps an existing cause while
// exposing only the user-facing message.
func NewHTTPErrorWrap(code int, message string, cause error) *HTTPError {
	return &HTTPError{
		cause:   cause,
		Code:    code,
		Message: message,
	}
}

func ErrBadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, defaultMessageIfEmpty(message, msgBadRequest))
}

func ErrBadRequestWrap(message string, cause error) *HTTPError {
	return NewHTTPErrorWrap(http.StatusBadRequest, defaultMessageIfEmpty(message, msgBadRequest), cause)
}

func ErrUnauthorized(message string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, defaultMessageIfEmpty(message, msgUnauthorized))
}

func ErrNotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, defaultMessageIfEmpty(message, msgNotFound))
}

func ErrInternalServer(message string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, defaultMessageIfEmpty(message, msgInternalServer))
}
