package sorting

import (
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/fentz26/taskflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(id string, p models.Priority, st models.Status, deadline string, created time.Time) models.Task {
	return models.Task{ID: id, Title: "Task " + id, Priority: p, Status: st, Deadline: deadline, CreatedAt: created}
}

func ids(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func sampleTasks() []models.Task {
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	return []models.Task{
		task("1", models.PriorityHigh, models.StatusInProgress, "2025-01-15", base),
		task("2", models.PriorityHigh, models.StatusCompleted, "2025-01-20", base.Add(28*time.Hour)),
		task("3", models.PriorityMedium, models.StatusPending, "2025-02-01", base.Add(47*time.Hour)),
		task("4", models.PriorityLow, models.StatusPending, "2025-02-15", base.Add(78*time.Hour)),
		task("5", models.PriorityMedium, models.StatusInProgress, "2025-01-25", base.Add(97*time.Hour)),
		task("6", models.PriorityLow, models.StatusCompleted, "2025-01-15", base.Add(97*time.Hour)),
	}
}

func TestPriorityStrategy_Example(t *testing.T) {
	in := []models.Task{
		task("A", models.PriorityHigh, models.StatusPending, "2025-02-01", time.Now()),
		task("B", models.PriorityLow, models.StatusPending, "2025-01-01", time.Now()),
		task("C", models.PriorityHigh, models.StatusPending, "2025-01-10", time.Now()),
	}

	got, err := PriorityStrategy{}.Sort(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, ids(got))
}

func TestDeadlineStrategy_TieBreakOnPriority(t *testing.T) {
	in := []models.Task{
		task("D", models.PriorityMedium, models.StatusPending, "2025-03-01", time.Now()),
		task("E", models.PriorityHigh, models.StatusPending, "2025-03-01", time.Now()),
	}

	got, err := DeadlineStrategy{}.Sort(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "D"}, ids(got))
}

func TestDeadlineStrategy_ComparesInstantsNotStrings(t *testing.T) {
	in := []models.Task{
		task("late", models.PriorityLow, models.StatusPending, "2025-03-01T00:00:00Z", time.Now()),
		task("offset", models.PriorityHigh, models.StatusPending, "2025-03-01T01:00:00+01:00", time.Now()),
		task("early", models.PriorityMedium, models.StatusPending, "2025-02-28T23:59:00Z", time.Now()),
	}

	got, err := DeadlineStrategy{}.Sort(in)
	require.NoError(t, err)
	// "offset" resolves to the same instant as "late" and wins on priority.
	assert.Equal(t, []string{"early", "offset", "late"}, ids(got))
}

func TestStatusStrategy_Example(t *testing.T) {
	in := []models.Task{
		task("c", models.PriorityHigh, models.StatusCompleted, "2025-01-01", time.Now()),
		task("p", models.PriorityHigh, models.StatusPending, "2025-01-01", time.Now()),
		task("i", models.PriorityHigh, models.StatusInProgress, "2025-01-01", time.Now()),
	}

	got, err := StatusStrategy{}.Sort(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "i", "c"}, ids(got))
}

func TestStatusStrategy_TieBreakOnDeadline(t *testing.T) {
	got, err := StatusStrategy{}.Sort(sampleTasks())
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4", "1", "5", "6", "2"}, ids(got))
}

func TestCreationDateStrategy_MostRecentFirst(t *testing.T) {
	got, err := CreationDateStrategy{}.Sort(sampleTasks())
	require.NoError(t, err)
	// 5 and 6 share a timestamp and keep input order.
	assert.Equal(t, []string{"5", "6", "4", "3", "2", "1"}, ids(got))
}

func TestStrategies_Properties(t *testing.T) {
	for _, s := range Available() {
		s := s
		t.Run(s.Key(), func(t *testing.T) {
			in := sampleTasks()
			snapshot := ids(in)

			got, err := s.Sort(in)
			require.NoError(t, err)

			// input untouched
			assert.Equal(t, snapshot, ids(in))

			// permutation of the input
			want := append([]string(nil), snapshot...)
			have := ids(got)
			sort.Strings(want)
			sort.Strings(have)
			assert.Equal(t, want, have)

			// deterministic
			again, err := s.Sort(in)
			require.NoError(t, err)
			assert.Equal(t, ids(got), ids(again))

			// idempotent
			resorted, err := s.Sort(got)
			require.NoError(t, err)
			assert.Equal(t, ids(got), ids(resorted))
		})
	}
}

func TestStrategies_EmptyAndSingleton(t *testing.T) {
	one := []models.Task{task("x", models.PriorityLow, models.StatusPending, "2025-01-01", time.Now())}

	for _, s := range Available() {
		got, err := s.Sort(nil)
		require.NoError(t, err, s.Key())
		assert.NotNil(t, got, s.Key())
		assert.Empty(t, got, s.Key())

		got, err = s.Sort(one)
		require.NoError(t, err, s.Key())
		assert.Equal(t, one, got, s.Key())

		got[0].Title = "changed"
		assert.Equal(t, "Task x", one[0].Title, "%s must return a new slice", s.Key())
	}
}

func TestStrategies_RejectMalformedData(t *testing.T) {
	now := time.Now()
	cases := []struct {
		strategy Strategy
		bad      models.Task
		field    string
	}{
		{PriorityStrategy{}, task("bad", models.PriorityHigh, models.StatusPending, "next week", now), "deadline"},
		{PriorityStrategy{}, task("bad", "urgent", models.StatusPending, "2025-01-01", now), "priority"},
		{DeadlineStrategy{}, task("bad", models.PriorityHigh, models.StatusPending, "", now), "deadline"},
		{StatusStrategy{}, task("bad", models.PriorityHigh, "done", "2025-01-01", now), "status"},
		{CreationDateStrategy{}, task("bad", models.PriorityHigh, models.StatusPending, "2025-01-01", time.Time{}), "created_at"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%s", tc.strategy.Key(), tc.field), func(t *testing.T) {
			in := append(sampleTasks(), tc.bad)
			got, err := tc.strategy.Sort(in)
			assert.Nil(t, got)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, "bad", verr.TaskID)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestCreationDateStrategy_IgnoresDeadline(t *testing.T) {
	in := []models.Task{
		task("old", models.PriorityHigh, models.StatusPending, "not a date", time.Unix(100, 0)),
		task("new", models.PriorityHigh, models.StatusPending, "not a date", time.Unix(200, 0)),
	}

	got, err := CreationDateStrategy{}.Sort(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, ids(got))
}
