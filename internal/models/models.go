// Package models defines the core domain types for taskflow.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the urgency of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities returns every priority in rank order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Rank returns the sort rank of the priority (High=1, Medium=2, Low=3).
// Unknown values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 0
	}
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool { return p.Rank() != 0 }

// Label returns the display label.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return string(p)
	}
}

// ParsePriority parses a priority from its value or label, ignoring case.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// Status is the progress state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Statuses returns every status in rank order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// Rank returns the sort rank of the status (Pending=1, InProgress=2,
// Completed=3). Unknown values rank 0.
func (s Status) Rank() int {
	switch s {
	case StatusPending:
		return 1
	case StatusInProgress:
		return 2
	case StatusCompleted:
		return 3
	default:
		return 0
	}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool { return s.Rank() != 0 }

// Label returns the display label.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// ParseStatus parses a status from its value or label, ignoring case.
// "in progress", "in-progress" and "in_progress" are all accepted.
func ParseStatus(s string) (Status, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	st := Status(norm)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// NextToggleStatus returns the status a task moves to when toggled:
// completed tasks reopen as pending, everything else is completed.
func NextToggleStatus(s Status) Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Task represents a single to-do item.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    string    `json:"deadline"` // ISO-8601 date, e.g. 2025-01-15
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// DeadlineTime resolves the deadline to an instant.
func (t Task) DeadlineTime() (time.Time, error) {
	return ParseDeadline(t.Deadline)
}

// Overdue reports whether the deadline has passed at now while the task is
// still open. An unparseable deadline is never overdue.
func (t Task) Overdue(now time.Time) bool {
	if t.Status == StatusCompleted {
		return false
	}
	d, err := t.DeadlineTime()
	if err != nil {
		return false
	}
	return d.Before(now)
}

var deadlineLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDeadline parses a date-only or timestamp deadline. Date-only values
// and timestamps without a zone resolve in UTC.
func ParseDeadline(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty deadline")
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid deadline %q", s)
}

// TaskInput holds the caller-supplied fields of a new task.
type TaskInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Deadline    string   `json:"deadline"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
}

// Normalize trims text fields and fills in the default priority and status.
func (in *TaskInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Deadline = strings.TrimSpace(in.Deadline)
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	if in.Status == "" {
		in.Status = StatusPending
	}
}

// Validate checks a normalized input.
func (in TaskInput) Validate() error {
	if in.Title == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if _, err := ParseDeadline(in.Deadline); err != nil {
		return &ValidationError{Field: "deadline", Value: in.Deadline, Reason: "must be an ISO-8601 date"}
	}
	if !in.Priority.Valid() {
		return &ValidationError{Field: "priority", Value: string(in.Priority), Reason: "must be high, medium or low"}
	}
	if !in.Status.Valid() {
		return &ValidationError{Field: "status", Value: string(in.Status), Reason: "must be pending, in_progress or completed"}
	}
	return nil
}

// TaskPatch is a partial update; nil fields are left unchanged.
type TaskPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Deadline    *string   `json:"deadline,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Status      *Status   `json:"status,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Deadline == nil && p.Priority == nil && p.Status == nil
}

// Validate checks the fields present in the patch.
func (p TaskPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if p.Deadline != nil {
		if _, err := ParseDeadline(*p.Deadline); err != nil {
			return &ValidationError{Field: "deadline", Value: *p.Deadline, Reason: "must be an ISO-8601 date"}
		}
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return &ValidationError{Field: "priority", Value: string(*p.Priority), Reason: "must be high, medium or low"}
	}
	if p.Status != nil && !p.Status.Valid() {
		return &ValidationError{Field: "status", Value: string(*p.Status), Reason: "must be pending, in_progress or completed"}
	}
	return nil
}

// Apply returns a copy of t with the patch applied.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
	}
	if p.Deadline != nil {
		t.Deadline = strings.TrimSpace(*p.Deadline)
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}
