package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/moviecat/internal/catalog"
	"github.com/mcoot/moviecat/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeNotAuthenticated   = "NOT_AUTHENTICATED"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidTheme       = "INVALID_THEME"
	CodeCatalogError       = "CATALOG_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var remote *catalog.RemoteCatalogError
	if errors.As(err, &remote) {
		return &httpError{http.StatusBadGateway, APIError{CodeCatalogError, remote.Error()}}
	}

	switch {
	case errors.Is(err, model.ErrDuplicateEmail):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateEmail, "Email already registered"}}
	case errors.Is(err, model.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid email or password"}}
	case errors.Is(err, model.ErrNotAuthenticated):
		return &httpError{http.StatusUnauthorized, APIError{CodeNotAuthenticated, "No active session"}}
	case errors.Is(err, model.ErrInvalidTheme):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTheme, "Theme must be 'dark' or 'light'"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
