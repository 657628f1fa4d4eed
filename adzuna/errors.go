package adzuna

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the Adzuna client.
var (
	// ErrDecodeResponse indicates a 2xx response whose body could not be
	// decoded into the expected shape. It is kept distinct from APIError so
	// callers do not mistake contract drift for an auth or quota problem.
	ErrDecodeResponse = errors.New("failed to decode adzuna response")
)

// APIException is the structured error payload the Adzuna API attaches to
// failed requests.
type APIException struct {
	// Exception is the machine readable class of the failure, e.g. AUTH_FAIL.
	Exception string `json:"exception"`
	// Doc links to documentation relevant to the failure.
	Doc string `json:"doc"`
	// Display is a human readable message in English.
	Display string `json:"display"`
}

// APIError represents a non-2xx response from the Adzuna API. Exception is
// nil when the API did not return a structured error body.
type APIError struct {
	StatusCode int
	Exception  *APIException
	// Body holds the raw response body when no structured error was present.
	Body string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Exception != nil {
		return fmt.Sprintf("adzuna API error: status %d: %s: %s", e.StatusCode, e.Exception.Exception, e.Exception.Display)
	}
	return fmt.Sprintf("adzuna API error: status %d", e.StatusCode)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsNotFound checks if the error indicates a not found response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsRateLimited checks if the error indicates the API rate limit was hit.
// The client never retries on its own; callers that want backoff can key
// off this.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}
