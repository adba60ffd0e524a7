package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fentz26/taskflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddArgs(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		args     []string
		title    string
		deadline string
		priority models.Priority
		wantErr  bool
	}{
		{"title only", []string{"Buy", "milk"}, "Buy milk", "2025-03-17", models.PriorityMedium, false},
		{"due and priority", []string{"Ship", "due:2025-04-01", "it", "p:high"}, "Ship it", "2025-04-01", models.PriorityHigh, false},
		{"long priority key", []string{"Read", "priority:Low"}, "Read", "2025-03-17", models.PriorityLow, false},
		{"colon in title", []string{"Note:", "call", "Ana"}, "Note: call Ana", "2025-03-17", models.PriorityMedium, false},
		{"missing title", []string{"due:2025-04-01"}, "", "", "", true},
		{"bad deadline", []string{"x", "due:tomorrow"}, "", "", "", true},
		{"bad priority", []string{"x", "p:urgent"}, "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := parseAddArgs(tt.args, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, in.Title)
			assert.Equal(t, tt.deadline, in.Deadline)
			assert.Equal(t, tt.priority, in.Priority)
			assert.Equal(t, models.StatusPending, in.Status)
		})
	}
}

// newTestApp returns an App talking to a seeded API with its initial data
// loaded.
func newTestApp(t *testing.T) *App {
	t.Helper()
	a := New(newTestAPI(t).URL)
	a.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	run(t, a, a.fetchTasks())
	run(t, a, a.fetchStrategies())
	return a
}

// run executes cmd synchronously and feeds its message back into the app.
func run(t *testing.T, a *App, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	a.Update(msg)
	return msg
}

// runBatch executes cmd and every command it batches, feeding each message
// back into the app. Commands returned by those updates are not followed.
func runBatch(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		a.Update(msg)
		return
	}
	for _, c := range batch {
		if c != nil {
			a.Update(c())
		}
	}
}

func TestAppToggleFromDetailRefreshesDetail(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(t, a, cmd)
	require.Equal(t, modeDetail, a.mode)
	require.NotNil(t, a.currentTask)
	require.Equal(t, models.StatusInProgress, a.currentTask.Status)
	id := a.currentTask.ID

	msg := a.executeCommand("done")()
	_, cmd = a.Update(msg)
	runBatch(t, a, cmd)

	assert.Equal(t, modeDetail, a.mode)
	require.NotNil(t, a.currentTask)
	assert.Equal(t, id, a.currentTask.ID)
	assert.Equal(t, models.StatusCompleted, a.currentTask.Status)
	assert.Contains(t, a.View(), "COMPLETED")

	for _, task := range a.tasks {
		if task.ID == id {
			assert.Equal(t, models.StatusCompleted, task.Status)
		}
	}
}

func TestAppOverdueMarkers(t *testing.T) {
	a := newTestApp(t)

	// Every seeded deadline is in early 2025; only the completed one is not overdue.
	view := a.View()
	assert.Equal(t, 4, strings.Count(view, "overdue"))

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(t, a, cmd)
	assert.Contains(t, a.View(), "OVERDUE")

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a.now = func() time.Time { return time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC) }
	assert.NotContains(t, a.View(), "overdue")
}

func TestAppFilterCommands(t *testing.T) {
	a := newTestApp(t)
	require.Len(t, a.tasks, 5)

	run(t, a, a.executeCommand("status pending"))
	assert.Equal(t, models.StatusPending, a.filter.Status)
	assert.Equal(t, []string{"Document API", "Optimize performance"}, titles(a.tasks))

	run(t, a, a.executeCommand("status all"))
	run(t, a, a.executeCommand("priority high"))
	assert.Len(t, a.tasks, 2)

	run(t, a, a.executeCommand("priority all"))
	run(t, a, a.executeCommand("search database"))
	assert.Equal(t, []string{"Design database"}, titles(a.tasks))
	assert.Contains(t, a.View(), `search="database"`)

	run(t, a, a.executeCommand("search"))
	assert.Len(t, a.tasks, 5)
	assert.Equal(t, "Search cleared", a.message)

	assert.Nil(t, a.executeCommand("priority urgent"))
	assert.Contains(t, a.message, "Error")
}

func TestAppTabCyclesStatusFilter(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyTab})
	run(t, a, cmd)
	assert.Equal(t, models.StatusPending, a.filter.Status)

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	run(t, a, cmd)
	assert.Equal(t, models.StatusInProgress, a.filter.Status)
	assert.Equal(t, []string{"Implement authentication", "Unit tests"}, titles(a.tasks))

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	run(t, a, cmd)
	assert.Equal(t, models.Status(""), a.filter.Status)
}

func TestAppCycleStrategy(t *testing.T) {
	a := newTestApp(t)
	active, ok := a.activeStrategy()
	require.True(t, ok)
	assert.Equal(t, "priority", active.Key)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	msg := run(t, a, cmd)
	assert.IsType(t, commandResultMsg{}, msg)
	run(t, a, a.fetchStrategies())
	run(t, a, a.fetchTasks())

	active, _ = a.activeStrategy()
	assert.Equal(t, "deadline", active.Key)
	assert.Equal(t, "Implement authentication", a.tasks[0].Title)
	assert.Contains(t, a.View(), "Sort by Deadline")

	run(t, a, a.executeCommand("sort created"))
	run(t, a, a.fetchStrategies())
	active, _ = a.activeStrategy()
	assert.Equal(t, "created", active.Key)
}

func TestAppAddToggleDelete(t *testing.T) {
	a := newTestApp(t)

	run(t, a, a.executeCommand("add Plan retro due:2025-03-12 p:low"))
	assert.Equal(t, "✓ Created task: Plan retro", a.message)
	run(t, a, a.fetchTasks())
	require.Len(t, a.tasks, 6)

	run(t, a, a.executeCommand("search retro"))
	require.Len(t, a.tasks, 1)
	a.selectedIdx = 0

	run(t, a, a.executeCommand("done"))
	assert.Equal(t, "✓ Plan retro is now Completed", a.message)

	run(t, a, a.executeCommand("delete"))
	assert.Equal(t, "✓ Deleted: Plan retro", a.message)
	run(t, a, a.fetchTasks())
	assert.Empty(t, a.tasks)
	assert.Contains(t, a.View(), "No tasks match")
}

func TestAppDetailAndStats(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeDetail, a.mode)
	run(t, a, cmd)
	require.NotNil(t, a.currentTask)
	assert.Equal(t, a.tasks[0].ID, a.currentTask.ID)
	assert.Contains(t, a.View(), a.currentTask.Title)

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, a.mode)

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, modeStats, a.mode)
	run(t, a, cmd)
	require.NotNil(t, a.summary)
	assert.Equal(t, 5, a.summary.Total)
	assert.Contains(t, a.View(), "Task Statistics")
}

func TestAppUnknownCommand(t *testing.T) {
	a := newTestApp(t)
	assert.Nil(t, a.executeCommand("frobnicate"))
	assert.Contains(t, a.message, "Unknown: frobnicate")
}

func TestSuggestionsStrategies(t *testing.T) {
	a := newTestApp(t)

	a.suggestions.Update("!dead")
	require.True(t, a.suggestions.IsVisible())
	assert.Equal(t, "sort deadline", a.suggestions.Selected().Text)

	a.suggestions.Update("/st")
	require.True(t, a.suggestions.IsVisible())
	assert.Equal(t, "status", a.suggestions.Selected().Text)
	a.suggestions.Next()
	assert.Equal(t, "stats", a.suggestions.Selected().Text)

	a.suggestions.Update("plain text")
	assert.False(t, a.suggestions.IsVisible())
}
