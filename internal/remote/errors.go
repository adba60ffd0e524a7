package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingID is returned when the API sends a task without an id.
	ErrMissingID = errors.New("invalid API task response: missing id")
	// ErrCreatedTaskUnknown is returned when a create succeeded but the
	// response gave no way to find the created task.
	ErrCreatedTaskUnknown = errors.New("API did not return a valid task or id after creation")
)

// APIError is a non-2xx response from the remote API.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: API error %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: API error %d: %s", e.Op, e.StatusCode, e.Body)
}
