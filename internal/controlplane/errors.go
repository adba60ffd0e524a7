package controlplane

import (
	"errors"

	"github.com/fentz26/taskflow/internal/models"
)

// Sentinel errors for control plane operations.
var (
	ErrTaskNotFound = models.ErrTaskNotFound
	ErrEmptyPatch   = errors.New("update has no fields")
	ErrNilStore     = errors.New("nil task store")
)
