package api

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/matzehuels/loracharts/pkg/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Err            error `json:"-"` // low-level error
	HTTPStatusCode int   `json:"-"` // response status code

	StatusText string `json:"status"`          // user-level status message
	ErrorText  string `json:"error,omitempty"` // what went wrong
	Code       string `json:"code,omitempty"`  // pkg/errors code, when known
}

// Render sets the response status.
func (e *ErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// ErrorInvalidRequest returns a 400 response for err.
func ErrorInvalidRequest(err error) *ErrorResponse {
	return &ErrorResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request",
		ErrorText:      errors.UserMessage(err),
		Code:           string(errors.GetCode(err)),
	}
}

// ErrorUnprocessable returns a 422 response for a well-formed request the
// service cannot handle.
func ErrorUnprocessable(err error) *ErrorResponse {
	return &ErrorResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		StatusText:     "Unprocessable request",
		ErrorText:      errors.UserMessage(err),
		Code:           string(errors.GetCode(err)),
	}
}

// ErrorRender returns a 422 response for a failure while rendering a response.
func ErrorRender(err error) *ErrorResponse {
	return &ErrorResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		StatusText:     "Error rendering response",
		ErrorText:      err.Error(),
	}
}

// ErrorNotFoundText returns a 404 response with the given text.
func ErrorNotFoundText(text string) *ErrorResponse {
	return &ErrorResponse{
		HTTPStatusCode: http.StatusNotFound,
		StatusText:     "Resource not found",
		ErrorText:      text,
	}
}

// ErrorInternalServer returns a 500 response for err.
func ErrorInternalServer(err error) *ErrorResponse {
	return &ErrorResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal Server Error",
		ErrorText:      err.Error(),
	}
}

// ErrorFor picks the response matching err's code. Errors without a code come
// from request decoding and are treated as invalid requests.
func ErrorFor(err error) *ErrorResponse {
	code := errors.GetCode(err)
	switch {
	case code == "" || errors.IsValidation(err):
		return ErrorInvalidRequest(err)
	case code == errors.ErrCodeNotFound || code == errors.ErrCodeFileNotFound:
		return ErrorNotFoundText(errors.UserMessage(err))
	case code == errors.ErrCodeUnsupported:
		return ErrorUnprocessable(err)
	default:
		return ErrorInternalServer(err)
	}
}

// ErrNotFound is the router's page-not-found response.
var ErrNotFound = &ErrorResponse{HTTPStatusCode: http.StatusNotFound, StatusText: "Page not found."}

// ErrMethodNotAllowed is the router's method-not-allowed response.
var ErrMethodNotAllowed = &ErrorResponse{HTTPStatusCode: http.StatusMethodNotAllowed, StatusText: "Method not allowed."}
