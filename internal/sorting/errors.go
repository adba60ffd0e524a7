package sorting

import (
	"errors"
	"fmt"
)

// Sentinel errors for strategy selection.
var (
	ErrNilStrategy     = errors.New("sorting strategy is required")
	ErrUnknownStrategy = errors.New("unknown sorting strategy")
)

var (
	errMissingTimestamp = errors.New("missing timestamp")
	errUnknownValue     = errors.New("unknown value")
)

// ValidationError reports a task whose field cannot be compared. No
// ordering is produced when a strategy returns it.
type ValidationError struct {
	TaskID string
	Field  string
	Value  string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("task %s: cannot sort on %s: %v", e.TaskID, e.Field, e.Err)
	}
	return fmt.Sprintf("task %s: cannot sort on %s %q: %v", e.TaskID, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
