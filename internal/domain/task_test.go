package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTask() Task {
	return Task{
		Title:    "Write report",
		Status:   StatusTodo,
		Priority: PriorityMedium,
		DueDate:  "2025-03-01",
		Email:    "a@x.com",
	}
}

func TestTask_Validate_Success(t *testing.T) {
	task := validTask()
	require.NoError(t, task.Validate())
}

func TestTask_Validate_EmptyTitle(t *testing.T) {
	task := validTask()
	task.Title = "  "
	assert.ErrorIs(t, task.Validate(), ErrEmptyTitle)
}

func TestTask_Validate_TitleAtLimit(t *testing.T) {
	task := validTask()
	task.Title = strings.Repeat("a", TitleMaxLen)
	assert.NoError(t, task.Validate())
}

func TestTask_Validate_TitleOverLimit(t *testing.T) {
	task := validTask()
	task.Title = strings.Repeat("a", TitleMaxLen+1)
	assert.ErrorIs(t, task.Validate(), ErrTitleTooLong)
}

func TestTask_Validate_DescriptionOverLimit(t *testing.T) {
	task := validTask()
	task.Description = strings.Repeat("d", DescriptionMaxLen+1)
	assert.ErrorIs(t, task.Validate(), ErrDescriptionTooLong)
}

func TestTask_Validate_InvalidStatus(t *testing.T) {
	task := validTask()
	task.Status = "Blocked"
	assert.ErrorIs(t, task.Validate(), ErrInvalidStatus)
}

func TestTask_Validate_InvalidPriority(t *testing.T) {
	task := validTask()
	task.Priority = "Urgent"
	assert.ErrorIs(t, task.Validate(), ErrInvalidPriority)
}

func TestTask_IsPlaceholder(t *testing.T) {
	task := validTask()
	task.ID = TempIDPrefix + "1234"
	assert.True(t, task.IsPlaceholder())

	task.ID = "65f1c0ffee"
	assert.False(t, task.IsPlaceholder())
}

func TestFilterByStatus(t *testing.T) {
	tasks := []Task{
		{ID: "1", Title: "a", Status: StatusTodo},
		{ID: "2", Title: "b", Status: StatusInProgress},
		{ID: "3", Title: "c", Status: StatusCompleted},
		{ID: "4", Title: "d", Status: StatusTodo},
	}

	todo := FilterByStatus(tasks, StatusTodo)
	require.Len(t, todo, 2)
	assert.Equal(t, "1", todo[0].ID)
	assert.Equal(t, "4", todo[1].ID)

	done := FilterByStatus(tasks, StatusCompleted)
	require.Len(t, done, 1)
	assert.Equal(t, "3", done[0].ID)

	assert.Empty(t, FilterByStatus(nil, StatusTodo))
}
