package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fentz26/taskflow/internal/models"
)

// Wire labels used by the /tareas API.
const (
	prioridadAlta  = "Alta"
	prioridadMedia = "Media"
	prioridadBaja  = "Baja"

	estadoPendiente  = "Pendiente"
	estadoEnProceso  = "En proceso"
	estadoCompletada = "Completada"
)

// wireID accepts both numeric and string ids.
type wireID string

func (id *wireID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = wireID(n.String())
	return nil
}

// wireTask is a task as the /tareas API sends and accepts it. Pointer
// fields distinguish absent values from empty ones.
type wireTask struct {
	ID          *wireID `json:"id,omitempty"`
	Nombre      *string `json:"nombre,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
	FechaLimite *string `json:"fecha_limite,omitempty"`
	Prioridad   *string `json:"prioridad,omitempty"`
	Estado      *string `json:"estado,omitempty"`
}

func priorityToWire(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return prioridadAlta
	case models.PriorityLow:
		return prioridadBaja
	case models.PriorityMedium:
		return prioridadMedia
	default:
		return string(p)
	}
}

// priorityFromWire maps a wire label. Missing values default to Medium;
// unknown labels pass through and are rejected later by validation.
func priorityFromWire(s *string) models.Priority {
	if s == nil || strings.TrimSpace(*s) == "" {
		return models.PriorityMedium
	}
	switch strings.ToLower(strings.TrimSpace(*s)) {
	case "alta", "high":
		return models.PriorityHigh
	case "media", "medium":
		return models.PriorityMedium
	case "baja", "low":
		return models.PriorityLow
	default:
		return models.Priority(*s)
	}
}

func statusToWire(s models.Status) string {
	switch s {
	case models.StatusPending:
		return estadoPendiente
	case models.StatusInProgress:
		return estadoEnProceso
	case models.StatusCompleted:
		return estadoCompletada
	default:
		return string(s)
	}
}

// statusFromWire maps a wire label. Missing values default to Pending.
func statusFromWire(s *string) models.Status {
	if s == nil || strings.TrimSpace(*s) == "" {
		return models.StatusPending
	}
	switch strings.ToLower(strings.TrimSpace(*s)) {
	case "pendiente", "pending":
		return models.StatusPending
	case "en proceso", "en progreso", "in_progress", "in progress":
		return models.StatusInProgress
	case "completada", "completed":
		return models.StatusCompleted
	default:
		return models.Status(*s)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// toTask converts a wire task. CreatedAt is left for the caller to stamp.
func (w wireTask) toTask() (models.Task, error) {
	if w.ID == nil || *w.ID == "" {
		return models.Task{}, ErrMissingID
	}
	return models.Task{
		ID:          string(*w.ID),
		Title:       deref(w.Nombre),
		Description: deref(w.Descripcion),
		Deadline:    deref(w.FechaLimite),
		Priority:    priorityFromWire(w.Prioridad),
		Status:      statusFromWire(w.Estado),
	}, nil
}

func inputToWire(in models.TaskInput) wireTask {
	prioridad := priorityToWire(in.Priority)
	estado := statusToWire(in.Status)
	return wireTask{
		Nombre:      &in.Title,
		Descripcion: &in.Description,
		FechaLimite: &in.Deadline,
		Prioridad:   &prioridad,
		Estado:      &estado,
	}
}

func patchToWire(p models.TaskPatch) wireTask {
	var w wireTask
	if p.Title != nil {
		v := strings.TrimSpace(*p.Title)
		w.Nombre = &v
	}
	if p.Description != nil {
		v := strings.TrimSpace(*p.Description)
		w.Descripcion = &v
	}
	if p.Deadline != nil {
		v := strings.TrimSpace(*p.Deadline)
		w.FechaLimite = &v
	}
	if p.Priority != nil {
		v := priorityToWire(*p.Priority)
		w.Prioridad = &v
	}
	if p.Status != nil {
		v := statusToWire(*p.Status)
		w.Estado = &v
	}
	return w
}

// idFromBody extracts a task id from a response body that is not a full
// task: a bare number, a numeric string, or an object carrying an id.
func idFromBody(body []byte) (string, bool) {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", false
	}
	if isDigits(text) {
		return text, true
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	switch x := v.(type) {
	case json.Number:
		return x.String(), true
	case string:
		if isDigits(x) {
			return x, true
		}
	case map[string]any:
		switch id := x["id"].(type) {
		case json.Number:
			return id.String(), true
		case string:
			if id != "" {
				return id, true
			}
		}
	}
	return "", false
}

// fullTask decodes body as a complete task: an object with both id and
// nombre.
func fullTask(body []byte) (wireTask, bool) {
	var w wireTask
	if err := json.Unmarshal(body, &w); err != nil {
		return wireTask{}, false
	}
	if w.ID == nil || w.Nombre == nil {
		return wireTask{}, false
	}
	return w, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
