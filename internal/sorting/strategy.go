// Package sorting orders task lists under interchangeable strategies.
//
// A Strategy is a stateless ordering policy. A Sorter holds the one active
// strategy and delegates to it, so callers can swap the policy at runtime
// and simply sort again. Strategies never mutate their input: every call
// returns a new slice holding the same tasks in a new order.
package sorting

import (
	"cmp"
	"slices"

	"github.com/fentz26/taskflow/internal/models"
)

// Strategy orders a list of tasks.
type Strategy interface {
	// Key is the stable identifier used by the API and the CLI.
	Key() string
	// Name is the human readable label.
	Name() string
	Description() string
	// Sort returns a newly ordered copy of tasks.
	Sort(tasks []models.Task) ([]models.Task, error)
}

// sortKey holds the resolved comparison fields of one task.
type sortKey struct {
	index    int
	deadline int64
	created  int64
	priority int
	status   int
}

// fields selects which task fields a strategy needs resolved.
type fields uint8

const (
	fieldDeadline fields = 1 << iota
	fieldCreated
	fieldPriority
	fieldStatus
)

// resolve computes the sort keys for every task, failing on the first task
// whose needed field cannot be turned into a comparable value.
func resolve(tasks []models.Task, need fields) ([]sortKey, error) {
	keys := make([]sortKey, len(tasks))
	for i, t := range tasks {
		k := sortKey{index: i}
		if need&fieldDeadline != 0 {
			d, err := t.DeadlineTime()
			if err != nil {
				return nil, &ValidationError{TaskID: t.ID, Field: "deadline", Value: t.Deadline, Err: err}
			}
			k.deadline = d.UnixMilli()
		}
		if need&fieldCreated != 0 {
			if t.CreatedAt.IsZero() {
				return nil, &ValidationError{TaskID: t.ID, Field: "created_at", Err: errMissingTimestamp}
			}
			k.created = t.CreatedAt.UnixMilli()
		}
		if need&fieldPriority != 0 {
			if k.priority = t.Priority.Rank(); k.priority == 0 {
				return nil, &ValidationError{TaskID: t.ID, Field: "priority", Value: string(t.Priority), Err: errUnknownValue}
			}
		}
		if need&fieldStatus != 0 {
			if k.status = t.Status.Rank(); k.status == 0 {
				return nil, &ValidationError{TaskID: t.ID, Field: "status", Value: string(t.Status), Err: errUnknownValue}
			}
		}
		keys[i] = k
	}
	return keys, nil
}

// ordered resolves keys, stable-sorts them with cmpFn and materializes the
// result. Ties left by cmpFn keep their input order.
func ordered(tasks []models.Task, need fields, cmpFn func(a, b sortKey) int) ([]models.Task, error) {
	keys, err := resolve(tasks, need)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(keys, cmpFn)

	out := make([]models.Task, len(keys))
	for i, k := range keys {
		out[i] = tasks[k.index]
	}
	return out, nil
}

// PriorityStrategy orders by priority (High first), then earliest deadline.
type PriorityStrategy struct{}

func (PriorityStrategy) Key() string  { return "priority" }
func (PriorityStrategy) Name() string { return "Sort by Priority" }
func (PriorityStrategy) Description() string {
	return "Orders tasks from highest to lowest priority (High, Medium, Low)"
}

func (PriorityStrategy) Sort(tasks []models.Task) ([]models.Task, error) {
	return ordered(tasks, fieldPriority|fieldDeadline, func(a, b sortKey) int {
		if c := cmp.Compare(a.priority, b.priority); c != 0 {
			return c
		}
		return cmp.Compare(a.deadline, b.deadline)
	})
}

// DeadlineStrategy orders by earliest deadline, then priority.
type DeadlineStrategy struct{}

func (DeadlineStrategy) Key() string  { return "deadline" }
func (DeadlineStrategy) Name() string { return "Sort by Deadline" }
func (DeadlineStrategy) Description() string {
	return "Orders tasks by deadline, closest first"
}

func (DeadlineStrategy) Sort(tasks []models.Task) ([]models.Task, error) {
	return ordered(tasks, fieldDeadline|fieldPriority, func(a, b sortKey) int {
		if c := cmp.Compare(a.deadline, b.deadline); c != 0 {
			return c
		}
		return cmp.Compare(a.priority, b.priority)
	})
}

// StatusStrategy orders by status (Pending, In Progress, Completed), then
// earliest deadline.
type StatusStrategy struct{}

func (StatusStrategy) Key() string  { return "status" }
func (StatusStrategy) Name() string { return "Sort by Status" }
func (StatusStrategy) Description() string {
	return "Orders tasks by status (Pending, In Progress, Completed)"
}

func (StatusStrategy) Sort(tasks []models.Task) ([]models.Task, error) {
	return ordered(tasks, fieldStatus|fieldDeadline, func(a, b sortKey) int {
		if c := cmp.Compare(a.status, b.status); c != 0 {
			return c
		}
		return cmp.Compare(a.deadline, b.deadline)
	})
}

// CreationDateStrategy orders by creation time, most recent first. Tasks
// created at the same millisecond keep their input order.
type CreationDateStrategy struct{}

func (CreationDateStrategy) Key() string  { return "created" }
func (CreationDateStrategy) Name() string { return "Sort by Creation Date" }
func (CreationDateStrategy) Description() string {
	return "Orders tasks by creation date, most recent first"
}

func (CreationDateStrategy) Sort(tasks []models.Task) ([]models.Task, error) {
	return ordered(tasks, fieldCreated, func(a, b sortKey) int {
		return cmp.Compare(b.created, a.created)
	})
}

var (
	_ Strategy = PriorityStrategy{}
	_ Strategy = DeadlineStrategy{}
	_ Strategy = StatusStrategy{}
	_ Strategy = CreationDateStrategy{}
)
