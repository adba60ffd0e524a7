// Package stats computes summary figures over a task list.
package stats

import (
	"math"
	"time"

	"github.com/fentz26/taskflow/internal/models"
)

// Summary holds the counts shown on the dashboard.
type Summary struct {
	Total            int                     `json:"total"`
	Pending          int                     `json:"pending"`
	InProgress       int                     `json:"in_progress"`
	Completed        int                     `json:"completed"`
	HighPriorityOpen int                     `json:"high_priority_open"`
	OverdueOpen      int                     `json:"overdue_open"`
	ByPriority       map[models.Priority]int `json:"by_priority"`
	ByStatus         map[models.Status]int   `json:"by_status"`
	ProgressPercent  int                     `json:"progress_percent"`
}

// Compute summarizes tasks as of the current time.
func Compute(tasks []models.Task) Summary {
	return ComputeAt(tasks, time.Now())
}

// ComputeAt summarizes tasks, counting overdue ones against now. Every known
// priority and status appears in the distributions, with zero counts where
// no task matches.
func ComputeAt(tasks []models.Task, now time.Time) Summary {
	s := Summary{
		Total:      len(tasks),
		ByPriority: make(map[models.Priority]int, 3),
		ByStatus:   make(map[models.Status]int, 3),
	}
	for _, p := range models.Priorities() {
		s.ByPriority[p] = 0
	}
	for _, st := range models.Statuses() {
		s.ByStatus[st] = 0
	}

	for _, t := range tasks {
		if t.Priority.Valid() {
			s.ByPriority[t.Priority]++
		}
		if t.Status.Valid() {
			s.ByStatus[t.Status]++
		}
		if t.Priority == models.PriorityHigh && t.Status != models.StatusCompleted {
			s.HighPriorityOpen++
		}
		if t.Overdue(now) {
			s.OverdueOpen++
		}
	}

	s.Pending = s.ByStatus[models.StatusPending]
	s.InProgress = s.ByStatus[models.StatusInProgress]
	s.Completed = s.ByStatus[models.StatusCompleted]
	if s.Total > 0 {
		s.ProgressPercent = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}
