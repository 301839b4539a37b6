package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a failed call to the remote backend. Status is zero for
// transport-level failures that never produced a response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend: %s", e.Message)
	}
	return fmt.Sprintf("backend: status=%d message=%s", e.Status, e.Message)
}

// UserMessage translates the failure into an operator-facing string.
// A message supplied by the backend wins; otherwise the HTTP status class
// decides.
func (e *APIError) UserMessage() string {
	if strings.TrimSpace(e.Message) != "" && e.Status != 0 {
		return e.Message
	}

	switch e.Status {
	case 0:
		return "Network error. Please check your connection."
	case http.StatusBadRequest:
		return "Invalid request. Please check your input."
	case http.StatusUnauthorized:
		return "Unauthorized. Please login again."
	case http.StatusForbidden:
		return "Access denied. You do not have permission."
	case http.StatusNotFound:
		return "Resource not found."
	case http.StatusConflict:
		return "Conflict. Resource already exists."
	case http.StatusUnprocessableEntity:
		return "Validation error. Please check your input."
	case http.StatusInternalServerError:
		return "Server error. Please try again later."
	case http.StatusServiceUnavailable:
		return "Service unavailable. Please try again later."
	default:
		return fmt.Sprintf("Error: %d", e.Status)
	}
}

// UserMessage resolves err into an operator-facing string, falling back to
// a generic message for non-API errors.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	if err != nil {
		return "An unexpected error occurred."
	}
	return ""
}

// IsUnauthorized reports whether err is a 401 from the backend, meaning the
// stored token is no longer valid and the local session must be cleared.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// errorBody covers the message shapes the backend is known to produce.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

// newAPIError builds an APIError from a non-2xx response body.
func newAPIError(status int, body []byte) *APIError {
	msg := ""
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Message != "":
			msg = parsed.Message
		case parsed.Error != "":
			msg = parsed.Error
		case parsed.Detail != "":
			msg = parsed.Detail
		}
	} else if s := strings.TrimSpace(string(body)); s != "" && !strings.HasPrefix(s, "<") {
		msg = s
	}
	return &APIError{Status: status, Message: msg}
}
