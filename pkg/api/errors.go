package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
)

// AuthenticationError is returned for a missing or invalid API key.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

// APIError is an error response received by the Client.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// statusForError maps error kinds to HTTP status codes.
func statusForError(err error) int {
	var (
		authErr     *AuthenticationError
		validErr    *coordinator.ValidationError
		conflictErr *coordinator.ReindexConflictError
		headErr     *coordinator.HeadUnavailableError
	)

	switch {
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &validErr):
		return http.StatusBadRequest
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	case errors.As(err, &headErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
