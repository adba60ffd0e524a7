package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fentz26/taskflow/internal/controlplane"
	"github.com/fentz26/taskflow/internal/filter"
	"github.com/fentz26/taskflow/internal/models"
	"github.com/fentz26/taskflow/internal/stats"
)

// DefaultClientTimeout is the default timeout for API requests.
const DefaultClientTimeout = 10 * time.Second

// Client wraps HTTP calls to the taskflow API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client with timeout
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultClientTimeout,
		},
	}
}

// do sends a request and decodes a JSON response into out when it is not nil.
func (c *Client) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("API error: %s", apiErr.Error)
		}
		return fmt.Errorf("API error: %s", string(data))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ListTasks fetches tasks matching f, ordered by the active strategy
func (c *Client) ListTasks(f filter.Filter) ([]models.Task, error) {
	path := "/tasks"
	if q := f.Query(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	var tasks []models.Task
	if err := c.do(http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask fetches a single task
func (c *Client) GetTask(id string) (*models.Task, error) {
	var task models.Task
	if err := c.do(http.MethodGet, "/tasks/"+id, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a new task
func (c *Client) CreateTask(in models.TaskInput) (*models.Task, error) {
	var task models.Task
	if err := c.do(http.MethodPost, "/tasks", in, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update
func (c *Client) UpdateTask(id string, patch models.TaskPatch) (*models.Task, error) {
	var task models.Task
	if err := c.do(http.MethodPatch, "/tasks/"+id, patch, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ToggleTask flips a task between completed and pending
func (c *Client) ToggleTask(id string) (*models.Task, error) {
	var task models.Task
	if err := c.do(http.MethodPost, "/tasks/"+id+"/toggle", nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task
func (c *Client) DeleteTask(id string) error {
	return c.do(http.MethodDelete, "/tasks/"+id, nil, nil)
}

// Strategies lists the sorting strategies
func (c *Client) Strategies() ([]controlplane.StrategyInfo, error) {
	var infos []controlplane.StrategyInfo
	if err := c.do(http.MethodGet, "/strategies", nil, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// SetStrategy switches the active sorting strategy
func (c *Client) SetStrategy(key string) (*controlplane.StrategyInfo, error) {
	var info controlplane.StrategyInfo
	body := map[string]string{"key": key}
	if err := c.do(http.MethodPut, "/strategies/active", body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Stats fetches the task summary
func (c *Client) Stats() (*stats.Summary, error) {
	var s stats.Summary
	if err := c.do(http.MethodGet, "/stats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Health reports whether the daemon and its store are up
func (c *Client) Health() (*controlplane.HealthResponse, error) {
	var h controlplane.HealthResponse
	if err := c.do(http.MethodGet, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
