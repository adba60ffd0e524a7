// Package remote implements a task store backed by the /tareas REST API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/fentz26/taskflow/internal/models"
)

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 10 * time.Second

// Client talks to a remote /tareas API. It satisfies the same method set as
// the SQLite store.
//
// The API does not report creation times, so the client stamps CreatedAt the
// first time it sees an id and reuses that value for as long as it lives.
// Stamps strictly increase, so tasks first seen in one listing keep the
// API's oldest-first order as creation order.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu   sync.Mutex
	seen map[string]time.Time
	last time.Time
	now  func() time.Time
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		seen:       make(map[string]time.Time),
		now:        time.Now,
	}
}

// stamp fills in the first-seen creation time for t.
func (c *Client) stamp(t *models.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	at, ok := c.seen[t.ID]
	if !ok {
		at = c.now().UTC()
		if !at.After(c.last) {
			at = c.last.Add(time.Nanosecond)
		}
		c.last = at
		c.seen[t.ID] = at
	}
	t.CreatedAt = at
}

func (c *Client) forget(id string) {
	c.mu.Lock()
	delete(c.seen, id)
	c.mu.Unlock()
}

func (c *Client) convert(w wireTask) (*models.Task, error) {
	t, err := w.toTask()
	if err != nil {
		return nil, err
	}
	c.stamp(&t)
	return &t, nil
}

func (c *Client) taskURL(id string) string {
	return c.baseURL + "/tareas/" + url.PathEscape(id)
}

// do sends a request and returns the response with its body read.
func (c *Client) do(ctx context.Context, method, target string, payload any) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}
	return resp, data, nil
}

func apiError(op string, resp *http.Response, body []byte) error {
	return &APIError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

func ok(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// ListTasks fetches every task in the order the API returns them.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	resp, body, err := c.do(ctx, http.MethodGet, c.baseURL+"/tareas", nil)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if !ok(resp) {
		return nil, apiError("list tasks", resp, body)
	}

	var items []wireTask
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	tasks := make([]models.Task, 0, len(items))
	for _, w := range items {
		t, err := c.convert(w)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, nil
}

// GetTask fetches one task. It returns nil without error on 404.
func (c *Client) GetTask(ctx context.Context, id string) (*models.Task, error) {
	resp, body, err := c.do(ctx, http.MethodGet, c.taskURL(id), nil)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if !ok(resp) {
		return nil, apiError("get task", resp, body)
	}

	var w wireTask
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	return c.convert(w)
}

// fetch is GetTask for ids the API just reported; a missing task is an
// error here.
func (c *Client) fetch(ctx context.Context, id string) (*models.Task, error) {
	t, err := c.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("fetch task %s: %w", id, models.ErrTaskNotFound)
	}
	return t, nil
}

// CreateTask posts a new task. The API answers creates in several shapes;
// each is tried in turn until the created task is known.
func (c *Client) CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	resp, body, err := c.do(ctx, http.MethodPost, c.baseURL+"/tareas", inputToWire(in))
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	if !ok(resp) {
		return nil, apiError("create task", resp, body)
	}

	if w, found := fullTask(body); found {
		return c.convert(w)
	}

	if id, found := idFromBody(body); found {
		t, err := c.fetch(ctx, id)
		if err == nil {
			return t, nil
		}
		log.Printf("remote: fetch created task %s: %v", id, err)
	}

	if loc := resp.Header.Get("Location"); loc != "" {
		if id := path.Base(strings.TrimRight(loc, "/")); id != "" && id != "." && id != "/" {
			t, err := c.fetch(ctx, id)
			if err == nil {
				return t, nil
			}
			log.Printf("remote: fetch task from Location %q: %v", loc, err)
		}
	}

	if resp.StatusCode == http.StatusCreated {
		tasks, err := c.ListTasks(ctx)
		if err == nil && len(tasks) > 0 {
			latest := tasks[len(tasks)-1]
			return &latest, nil
		}
		if err != nil {
			log.Printf("remote: list tasks after create: %v", err)
		}
	}

	return nil, ErrCreatedTaskUnknown
}

// UpdateTask sends the fields present in patch and returns the updated task.
func (c *Client) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	resp, body, err := c.do(ctx, http.MethodPut, c.taskURL(id), patchToWire(patch))
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrTaskNotFound
	}
	if !ok(resp) {
		return nil, apiError("update task", resp, body)
	}

	if w, found := fullTask(body); found {
		return c.convert(w)
	}
	if other, found := idFromBody(body); found {
		return c.fetch(ctx, other)
	}
	return c.fetch(ctx, id)
}

// DeleteTask removes a task. A 404 maps to models.ErrTaskNotFound.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	resp, body, err := c.do(ctx, http.MethodDelete, c.taskURL(id), nil)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return models.ErrTaskNotFound
	}
	if !ok(resp) {
		return apiError("delete task", resp, body)
	}
	c.forget(id)
	return nil
}

// Count returns the number of tasks the API holds.
func (c *Client) Count(ctx context.Context) (int, error) {
	tasks, err := c.ListTasks(ctx)
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// Ping checks that the API answers the task listing.
func (c *Client) Ping(ctx context.Context) error {
	resp, body, err := c.do(ctx, http.MethodGet, c.baseURL+"/tareas", nil)
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	if !ok(resp) {
		return apiError("ping", resp, body)
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
