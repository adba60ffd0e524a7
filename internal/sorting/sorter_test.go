package sorting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSorter_RequiresStrategy(t *testing.T) {
	s, err := NewSorter(nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrNilStrategy)
}

func TestSorter_RejectsNilPointerStrategy(t *testing.T) {
	s, err := NewSorter((*PriorityStrategy)(nil))
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrNilStrategy)

	s, err = NewSorter(&StatusStrategy{})
	require.NoError(t, err)
	assert.ErrorIs(t, s.SetStrategy((*DeadlineStrategy)(nil)), ErrNilStrategy)
	assert.Equal(t, "status", s.Strategy().Key())

	_, err = s.Sort(sampleTasks())
	assert.NoError(t, err)
}

func TestSorter_SetStrategy(t *testing.T) {
	s, err := NewSorter(PriorityStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "priority", s.Strategy().Key())

	require.NoError(t, s.SetStrategy(DeadlineStrategy{}))
	assert.Equal(t, "deadline", s.Strategy().Key())

	// same strategy again is a no-op
	require.NoError(t, s.SetStrategy(DeadlineStrategy{}))
	assert.Equal(t, "deadline", s.Strategy().Key())

	err = s.SetStrategy(nil)
	assert.True(t, errors.Is(err, ErrNilStrategy))
	assert.Equal(t, "deadline", s.Strategy().Key())
}

func TestSorter_SwapThenSort(t *testing.T) {
	tasks := sampleTasks()

	s, err := NewSorter(PriorityStrategy{})
	require.NoError(t, err)

	first, err := s.Sort(tasks)
	require.NoError(t, err)
	firstIDs := ids(first)

	require.NoError(t, s.SetStrategy(DeadlineStrategy{}))
	second, err := s.Sort(tasks)
	require.NoError(t, err)

	direct, err := DeadlineStrategy{}.Sort(tasks)
	require.NoError(t, err)
	assert.Equal(t, ids(direct), ids(second))

	// earlier results are not affected by the swap
	assert.Equal(t, firstIDs, ids(first))
	assert.Equal(t, []string{"1", "2", "5", "3", "6", "4"}, firstIDs)
}

func TestSorter_PropagatesValidationError(t *testing.T) {
	s, err := NewSorter(DeadlineStrategy{})
	require.NoError(t, err)

	tasks := sampleTasks()
	tasks[2].Deadline = "soon"

	_, err = s.Sort(tasks)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "3", verr.TaskID)
}
