package backend

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnsupported is returned for endpoints the configured revision lacks.
var ErrUnsupported = errors.New("backend: endpoint not available in this revision")

// APIError is a non-success response. Message is whatever the backend put
// in its "message" (or "error") field, and is empty when it said nothing.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend: %s %s returned %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("backend: %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Message)
}

// Message picks the text shown to the operator: the backend's own message
// when it sent one, fallback otherwise (transport failures included).
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	if s, ok := payload.Error.(string); ok {
		return s
	}
	return ""
}
