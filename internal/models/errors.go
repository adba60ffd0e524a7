package models

import (
	"errors"
	"fmt"
)

// ErrTaskNotFound is returned by task stores when an id does not exist.
var ErrTaskNotFound = errors.New("task not found")

// ValidationError reports a task field that failed validation.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
