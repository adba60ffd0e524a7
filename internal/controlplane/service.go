// Package controlplane provides the HTTP API and service layer for taskflow.
package controlplane

import (
	"context"
	"fmt"
	"sync"

	"github.com/fentz26/taskflow/internal/filter"
	"github.com/fentz26/taskflow/internal/models"
	"github.com/fentz26/taskflow/internal/sorting"
	"github.com/fentz26/taskflow/internal/stats"
)

// TaskStore is the persistence backend behind the service. Both the SQLite
// store and the remote API client implement it.
type TaskStore interface {
	CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error)
	// GetTask returns nil without error when the task does not exist.
	GetTask(ctx context.Context, id string) (*models.Task, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
	Close() error
}

// ListOptions narrows and orders a task listing.
type ListOptions struct {
	Filter filter.Filter
	// Strategy is a registry key. When empty the active strategy is used.
	Strategy string
}

// StrategyInfo describes a registered strategy.
type StrategyInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func infoFor(st sorting.Strategy, active bool) StrategyInfo {
	return StrategyInfo{
		Key:         st.Key(),
		Name:        st.Name(),
		Description: st.Description(),
		Active:      active,
	}
}

// Service provides the control plane business logic. It owns the task
// store and the sorter holding the active strategy.
type Service struct {
	store TaskStore

	mu     sync.Mutex // guards sorter
	sorter *sorting.Sorter
}

// NewService creates a new control plane service sorting with initial.
func NewService(st TaskStore, initial sorting.Strategy) (*Service, error) {
	if st == nil {
		return nil, ErrNilStore
	}
	sorter, err := sorting.NewSorter(initial)
	if err != nil {
		return nil, err
	}
	return &Service{store: st, sorter: sorter}, nil
}

// --- Task Operations ---

// CreateTask validates and stores a new task.
func (s *Service) CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	task, err := s.store.CreateTask(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// GetTask retrieves a task by ID.
func (s *Service) GetTask(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.store.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// UpdateTask applies a partial update.
func (s *Service) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	task, err := s.store.UpdateTask(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	if err := s.store.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// ToggleTaskStatus marks an open task completed, or reopens a completed one
// as pending.
func (s *Service) ToggleTaskStatus(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	next := models.NextToggleStatus(task.Status)
	return s.UpdateTask(ctx, id, models.TaskPatch{Status: &next})
}

// ListTasks returns the filtered tasks ordered by the requested strategy,
// or the active one. Requesting a strategy does not change the active one.
func (s *Service) ListTasks(ctx context.Context, opts ListOptions) ([]models.Task, error) {
	var strategy sorting.Strategy
	if opts.Strategy != "" {
		st, err := sorting.Lookup(opts.Strategy)
		if err != nil {
			return nil, err
		}
		strategy = st
	}

	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	tasks = opts.Filter.Apply(tasks)

	if strategy != nil {
		return strategy.Sort(tasks)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorter.Sort(tasks)
}

// --- Strategy Operations ---

// Strategies lists the registered strategies, flagging the active one.
func (s *Service) Strategies() []StrategyInfo {
	active := s.ActiveStrategy()
	all := sorting.Available()
	infos := make([]StrategyInfo, len(all))
	for i, st := range all {
		infos[i] = infoFor(st, st.Key() == active.Key)
	}
	return infos
}

// ActiveStrategy returns the strategy currently in use.
func (s *Service) ActiveStrategy() StrategyInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return infoFor(s.sorter.Strategy(), true)
}

// SetStrategy swaps the active strategy by key.
func (s *Service) SetStrategy(key string) (StrategyInfo, error) {
	st, err := sorting.Lookup(key)
	if err != nil {
		return StrategyInfo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sorter.SetStrategy(st); err != nil {
		return StrategyInfo{}, err
	}
	return infoFor(st, true), nil
}

// --- Stats / Health ---

// Stats summarizes every stored task.
func (s *Service) Stats(ctx context.Context) (stats.Summary, error) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return stats.Summary{}, fmt.Errorf("list tasks: %w", err)
	}
	return stats.Compute(tasks), nil
}

// Ping checks the backing store.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
