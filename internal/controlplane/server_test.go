package controlplane

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/fentz26/taskflow/internal/models"
	"github.com/fentz26/taskflow/internal/sorting"
	"github.com/fentz26/taskflow/internal/stats"
	"github.com/fentz26/taskflow/internal/store"
)

func TestHealthEndpoint_OK(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()

	// Create a test request
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	// Call the handler
	s.handleHealth(w, req)

	// Check response
	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !health.OK {
		t.Error("Expected health.OK to be true")
	}
	if health.DB != "ok" {
		t.Errorf("Expected DB status 'ok', got '%s'", health.DB)
	}
	if health.Version == "" {
		t.Error("Expected version to be set")
	}
	if health.Time == "" {
		t.Error("Expected time to be set")
	}
}

func TestHealthEndpoint_MethodNotAllowed(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()

	w := do(t, s, http.MethodPost, "/health", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestHealthEndpoint_DBError(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	st, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	service, err := NewService(st, sorting.Default())
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	server := NewServer(service, "127.0.0.1:0")

	// Close the store to simulate DB error
	st.Close()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.handleHealth(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", resp.StatusCode)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if health.OK {
		t.Error("Expected health.OK to be false when DB is down")
	}
	if health.DB == "ok" {
		t.Error("Expected DB status to indicate error")
	}
}

func TestTaskLifecycle(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()

	// Create
	w := do(t, s, http.MethodPost, "/tasks", map[string]string{
		"title":    "Write report",
		"deadline": "2025-03-01",
		"priority": "high",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created models.Task
	decode(t, w, &created)
	if created.ID == "" || created.Status != models.StatusPending {
		t.Errorf("Unexpected created task: %+v", created)
	}

	// Get
	w = do(t, s, http.MethodGet, "/tasks/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	// Patch
	w = do(t, s, http.MethodPatch, "/tasks/"+created.ID, map[string]string{"title": "Write final report"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated models.Task
	decode(t, w, &updated)
	if updated.Title != "Write final report" || updated.Priority != models.PriorityHigh {
		t.Errorf("Unexpected updated task: %+v", updated)
	}

	// Toggle twice
	w = do(t, s, http.MethodPost, "/tasks/"+created.ID+"/toggle", nil)
	decode(t, w, &updated)
	if updated.Status != models.StatusCompleted {
		t.Errorf("Expected completed after toggle, got %s", updated.Status)
	}
	w = do(t, s, http.MethodPost, "/tasks/"+created.ID+"/toggle", nil)
	decode(t, w, &updated)
	if updated.Status != models.StatusPending {
		t.Errorf("Expected pending after second toggle, got %s", updated.Status)
	}

	// Delete
	w = do(t, s, http.MethodDelete, "/tasks/"+created.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", w.Code)
	}
	w = do(t, s, http.MethodGet, "/tasks/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestTaskErrors(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"missing title", http.MethodPost, "/tasks", map[string]string{"deadline": "2025-01-01"}, http.StatusBadRequest},
		{"bad deadline", http.MethodPost, "/tasks", map[string]string{"title": "x", "deadline": "soon"}, http.StatusBadRequest},
		{"bad priority", http.MethodPost, "/tasks", map[string]string{"title": "x", "deadline": "2025-01-01", "priority": "urgent"}, http.StatusBadRequest},
		{"invalid json", http.MethodPost, "/tasks", "not an object", http.StatusBadRequest},
		{"unknown task", http.MethodGet, "/tasks/missing", nil, http.StatusNotFound},
		{"update unknown", http.MethodPut, "/tasks/missing", map[string]string{"title": "x"}, http.StatusNotFound},
		{"empty update", http.MethodPut, "/tasks/missing", map[string]string{}, http.StatusBadRequest},
		{"delete unknown", http.MethodDelete, "/tasks/missing", nil, http.StatusNotFound},
		{"toggle unknown", http.MethodPost, "/tasks/missing/toggle", nil, http.StatusNotFound},
		{"unknown sort", http.MethodGet, "/tasks?sort=alphabetical", nil, http.StatusBadRequest},
		{"bad status filter", http.MethodGet, "/tasks?status=done", nil, http.StatusBadRequest},
		{"unknown strategy", http.MethodPut, "/strategies/active", map[string]string{"key": "random"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Errorf("Expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
			var body errorResponse
			decode(t, w, &body)
			if body.Error == "" {
				t.Error("Expected error message in body")
			}
		})
	}
}

func TestListTasksSortedAndFiltered(t *testing.T) {
	s, st, cleanup := newTestServerWithStore(t)
	defer cleanup()

	if _, err := st.Seed(context.Background(), store.SampleTasks()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	// Default strategy is priority: High before Medium before Low.
	tasks := listTitles(t, s, "/tasks")
	want := []string{"Implement authentication", "Design database", "Unit tests", "Document API", "Optimize performance"}
	assertTitles(t, tasks, want)

	// Per-request strategy does not change the active one.
	tasks = listTitles(t, s, "/tasks?sort=created")
	assertTitles(t, tasks, []string{"Unit tests", "Optimize performance", "Document API", "Design database", "Implement authentication"})

	var active StrategyInfo
	decode(t, do(t, s, http.MethodGet, "/strategies/active", nil), &active)
	if active.Key != "priority" {
		t.Errorf("Expected active strategy to stay priority, got %s", active.Key)
	}

	// Filtered listing keeps the sort order.
	tasks = listTitles(t, s, "/tasks?status=pending&sort=deadline")
	assertTitles(t, tasks, []string{"Document API", "Optimize performance"})

	tasks = listTitles(t, s, "/tasks?q=DATA")
	assertTitles(t, tasks, []string{"Design database"})
}

func TestStrategySwap(t *testing.T) {
	s, st, cleanup := newTestServerWithStore(t)
	defer cleanup()
	st.Seed(context.Background(), store.SampleTasks())

	w := do(t, s, http.MethodPut, "/strategies/active", map[string]string{"key": "status"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var infos []StrategyInfo
	decode(t, do(t, s, http.MethodGet, "/strategies", nil), &infos)
	if len(infos) != 4 {
		t.Fatalf("Expected 4 strategies, got %d", len(infos))
	}
	for _, info := range infos {
		if info.Active != (info.Key == "status") {
			t.Errorf("Strategy %s active=%v", info.Key, info.Active)
		}
	}

	tasks := listTitles(t, s, "/tasks")
	assertTitles(t, tasks, []string{"Document API", "Optimize performance", "Implement authentication", "Unit tests", "Design database"})
}

func TestListTasksMalformedData(t *testing.T) {
	s, st, cleanup := newTestServerWithStore(t)
	defer cleanup()

	// The store does not validate, so a bad deadline can reach the sorter.
	_, err := st.CreateTask(context.Background(), models.TaskInput{
		Title:    "broken",
		Deadline: "someday",
		Priority: models.PriorityLow,
		Status:   models.StatusPending,
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	w := do(t, s, http.MethodGet, "/tasks?sort=deadline", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d: %s", w.Code, w.Body.String())
	}

	// Creation order does not read the deadline.
	w = do(t, s, http.MethodGet, "/tasks?sort=created", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStatsEndpoint(t *testing.T) {
	s, st, cleanup := newTestServerWithStore(t)
	defer cleanup()
	st.Seed(context.Background(), store.SampleTasks())

	var summary stats.Summary
	w := do(t, s, http.MethodGet, "/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	decode(t, w, &summary)

	if summary.Total != 5 || summary.Completed != 1 || summary.InProgress != 2 || summary.Pending != 2 {
		t.Errorf("Unexpected summary: %+v", summary)
	}
	if summary.HighPriorityOpen != 1 {
		t.Errorf("Expected 1 open high priority task, got %d", summary.HighPriorityOpen)
	}
	if summary.ProgressPercent != 20 {
		t.Errorf("Expected 20%% progress, got %d", summary.ProgressPercent)
	}
	// Sample deadlines are all in early 2025; every open one has passed.
	if summary.OverdueOpen != 4 {
		t.Errorf("Expected 4 overdue open tasks, got %d", summary.OverdueOpen)
	}
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if str, ok := body.(string); ok {
			buf.WriteString(str)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response: %v (%s)", err, w.Body.String())
	}
}

func listTitles(t *testing.T, s *Server, path string) []string {
	t.Helper()
	w := do(t, s, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d: %s", path, w.Code, w.Body.String())
	}
	var tasks []models.Task
	decode(t, w, &tasks)
	titles := make([]string, len(tasks))
	for i, task := range tasks {
		titles[i] = task.Title
	}
	return titles
}

func assertTitles(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func newTestServer(t *testing.T) (*Server, func()) {
	s, _, cleanup := newTestServerWithStore(t)
	return s, cleanup
}

func newTestServerWithStore(t *testing.T) (*Server, *store.Store, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	st, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	service, err := NewService(st, sorting.Default())
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	server := NewServer(service, "127.0.0.1:0")

	cleanup := func() {
		st.Close()
	}

	return server, st, cleanup
}
