package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError carries a status code and a message that is safe to show to users.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrUnauthorized        = HTTPError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden           = HTTPError{Code: http.StatusForbidden, Message: "You are not allowed to do that"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Message: "Page not found"}
	ErrUnprocessableEntity = HTTPError{Code: http.StatusUnprocessableEntity, Message: "The submitted data is invalid"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "Something went wrong"}
)

// NewHTTPError creates a custom HTTP error.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

// errorResponse defers rendering to the error handler by failing Render.
type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

// Error returns a Response that routes err to the configured ErrorHandler.
func Error(err error) Response {
	return errorResponse{err: err}
}
