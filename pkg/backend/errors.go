package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ConnectionError marks a request that never produced an HTTP response:
// the backend was unreachable or the connection dropped mid-flight.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// APIError is a non-2xx response from the backend. Message carries the
// error field from the response body when one was present, otherwise a
// status-derived fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// IsConnectionError reports whether err was a transport failure rather
// than an application-level rejection.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// Message extracts the user-facing message for err. Application errors
// surface the backend's own message; anything else gets the fallback.
func Message(err error, fallback string) string {
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}

// StatusOf maps err to the HTTP status a relaying handler should emit:
// the backend's own status for application errors, 502 for transport
// failures.
func StatusOf(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	if IsConnectionError(err) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return &APIError{StatusCode: status, Message: payload.Error}
		}
		if payload.Message != "" {
			return &APIError{StatusCode: status, Message: payload.Message}
		}
	}
	return &APIError{
		StatusCode: status,
		Message:    fmt.Sprintf("Erro HTTP %d: %s", status, http.StatusText(status)),
	}
}
