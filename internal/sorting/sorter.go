package sorting

import (
	"reflect"

	"github.com/fentz26/taskflow/internal/models"
)

// Sorter delegates sorting to the currently active Strategy.
//
// A Sorter is not safe for concurrent use; owners that share one across
// goroutines must serialize access.
type Sorter struct {
	strategy Strategy
}

// isNil reports whether s is nil or a nil pointer inside the interface.
func isNil(s Strategy) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// NewSorter creates a Sorter bound to the given strategy.
func NewSorter(s Strategy) (*Sorter, error) {
	if isNil(s) {
		return nil, ErrNilStrategy
	}
	return &Sorter{strategy: s}, nil
}

// SetStrategy replaces the active strategy. A nil strategy is rejected and
// leaves the current one in place.
func (s *Sorter) SetStrategy(st Strategy) error {
	if isNil(st) {
		return ErrNilStrategy
	}
	s.strategy = st
	return nil
}

// Strategy returns the active strategy.
func (s *Sorter) Strategy() Strategy {
	return s.strategy
}

// Sort orders tasks with the active strategy.
func (s *Sorter) Sort(tasks []models.Task) ([]models.Task, error) {
	return s.strategy.Sort(tasks)
}
