package client

import "fmt"

// AuthError indicates the upstream rejected the supplied credentials (401/403).
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NotFoundError indicates the requested resource does not exist (404).
type NotFoundError struct {
	Endpoint string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Resource not found: %s", e.Endpoint)
}

// ConnectionError indicates the request never produced an HTTP response
// (dial failure, timeout, TLS handshake, ...).
type ConnectionError struct {
	Message string
}

func (e *ConnectionError) Error() string { return e.Message }

// APIError carries any other non-2xx response. It exposes the status code so
// callers can detect specific cases without parsing text messages.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP error: %d - %s", e.StatusCode, e.Body)
}
