package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fentz26/taskflow/internal/models"
	"github.com/google/uuid"
)

// SampleTasks returns the tasks loaded into an empty database on first run.
func SampleTasks() []models.Task {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []models.Task{
		{
			Title:       "Implement authentication",
			Description: "Build user login and registration",
			Deadline:    "2025-01-15",
			Priority:    models.PriorityHigh,
			Status:      models.StatusInProgress,
			CreatedAt:   at("2025-01-01T10:00:00Z"),
		},
		{
			Title:       "Design database",
			Description: "Create the database schema for the project",
			Deadline:    "2025-01-20",
			Priority:    models.PriorityHigh,
			Status:      models.StatusCompleted,
			CreatedAt:   at("2025-01-02T14:30:00Z"),
		},
		{
			Title:       "Document API",
			Description: "Write complete endpoint documentation",
			Deadline:    "2025-02-01",
			Priority:    models.PriorityMedium,
			Status:      models.StatusPending,
			CreatedAt:   at("2025-01-03T09:15:00Z"),
		},
		{
			Title:       "Optimize performance",
			Description: "Improve application load times",
			Deadline:    "2025-02-15",
			Priority:    models.PriorityLow,
			Status:      models.StatusPending,
			CreatedAt:   at("2025-01-04T16:45:00Z"),
		},
		{
			Title:       "Unit tests",
			Description: "Implement a complete test suite",
			Deadline:    "2025-01-25",
			Priority:    models.PriorityMedium,
			Status:      models.StatusInProgress,
			CreatedAt:   at("2025-01-05T11:20:00Z"),
		},
	}
}

// Seed inserts tasks when the database is empty and returns how many were
// written. Tasks without an ID get a fresh one; a zero CreatedAt is stamped
// with the current time.
func (s *Store) Seed(ctx context.Context, tasks []models.Task) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	for _, t := range tasks {
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		t.CreatedAt = t.CreatedAt.UTC()
		if err := s.insert(ctx, tx, &t, now); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return len(tasks), nil
}
