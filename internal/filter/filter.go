// Package filter narrows task lists by search text, priority and status.
package filter

import (
	"net/url"
	"strings"

	"github.com/fentz26/taskflow/internal/models"
)

// Filter selects tasks. Zero-valued fields match everything.
type Filter struct {
	Search   string          `json:"q,omitempty"`
	Priority models.Priority `json:"priority,omitempty"`
	Status   models.Status   `json:"status,omitempty"`
}

// FromQuery builds a Filter from the q, priority and status query
// parameters. "all" and empty values leave a criterion unset.
func FromQuery(q url.Values) (Filter, error) {
	f := Filter{Search: strings.TrimSpace(q.Get("q"))}

	if v := q.Get("priority"); v != "" && v != "all" {
		p, err := models.ParsePriority(v)
		if err != nil {
			return Filter{}, &models.ValidationError{Field: "priority", Value: v, Reason: "must be high, medium, low or all"}
		}
		f.Priority = p
	}
	if v := q.Get("status"); v != "" && v != "all" {
		st, err := models.ParseStatus(v)
		if err != nil {
			return Filter{}, &models.ValidationError{Field: "status", Value: v, Reason: "must be pending, in_progress, completed or all"}
		}
		f.Status = st
	}
	return f, nil
}

// Active reports whether any criterion is set.
func (f Filter) Active() bool {
	return f.Search != "" || f.Priority != "" || f.Status != ""
}

// Query encodes the filter as URL query parameters.
func (f Filter) Query() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set("q", f.Search)
	}
	if f.Priority != "" {
		v.Set("priority", string(f.Priority))
	}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	return v
}

// Match reports whether t satisfies every criterion. The search text is
// matched case-insensitively against the title and the description.
func (f Filter) Match(t models.Task) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	return true
}

// Apply returns the matching tasks in their original order.
func (f Filter) Apply(tasks []models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
