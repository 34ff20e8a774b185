package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrApplicationNotFound is returned when an application is absent or no
	// longer pending for a transition that requires the pending state.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrCandidateNotFound is returned when a candidate is not found.
	ErrCandidateNotFound = errors.New("candidate not found")
	// ErrClientNotFound is returned when a client is not found.
	ErrClientNotFound = errors.New("client not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUnknownTemplate is returned when a resume template name is not recognized.
	ErrUnknownTemplate = errors.New("unknown resume template")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unexpected errors are
// collapsed to a generic 500 so storage details never reach callers.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrApplicationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "APPLICATION_NOT_FOUND")
	case errors.Is(err, ErrCandidateNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CANDIDATE_NOT_FOUND")
	case errors.Is(err, ErrClientNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CLIENT_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrUnknownTemplate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNKNOWN_TEMPLATE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
