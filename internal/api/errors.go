package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-2xx backend response. The backend reports failures as
// {"detail": "..."}; Detail carries that message when the body had one.
type APIError struct {
	Method string
	Path   string
	Status int
	Detail string
}

// Error formats the failure with method, path and status for diagnostics.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api %s %s: %d: %s", e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("api %s %s: %s", e.Method, e.Path, http.StatusText(e.Status))
}

// decodeError builds an APIError from a failed response, consuming the body.
func decodeError(method, path string, resp *http.Response) *APIError {
	apiErr := &APIError{Method: method, Path: path, Status: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}

func statusIs(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool { return statusIs(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is a 403 from the backend.
func IsForbidden(err error) bool { return statusIs(err, http.StatusForbidden) }

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool { return statusIs(err, http.StatusNotFound) }

// IsRateLimited reports whether err is a 429 from the backend.
func IsRateLimited(err error) bool { return statusIs(err, http.StatusTooManyRequests) }
