package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func seedTask(tasks *testutil.MockTaskService, id, title string, status domain.Status) {
	tasks.Seed(domain.Task{
		ID:       id,
		Title:    title,
		Status:   status,
		Priority: domain.PriorityMedium,
		Email:    "alice@example.com",
	})
}

// =============================================================================
// List Command Tests
// =============================================================================

func TestNewTaskListCommand_Table(t *testing.T) {
	tasks := testutil.NewMockTaskService()
	seedTask(tasks, "t1", "Write report", domain.StatusTodo)
	seedTask(tasks, "t2", "Ship release", domain.StatusCompleted)
	container := signedInContainer(tasks)

	cmd := newTaskListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Write report")
	assert.Contains(t, buf.String(), "Ship release")
	// Completed renders with its display label
	assert.Contains(t, buf.String(), "Done")
}

func TestNewTaskListCommand_StatusFilter(t *testing.T) {
	tasks := testutil.NewMockTaskService()
	seedTask(tasks, "t1", "Write report", domain.StatusTodo)
	seedTask(tasks, "t2", "Ship release", domain.StatusCompleted)
	container := signedInContainer(tasks)

	cmd := newTaskListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--status", "done"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.NotContains(t, buf.String(), "Write report")
	assert.Contains(t, buf.String(), "Ship release")
}

func TestNewTaskListCommand_InvalidStatus(t *testing.T) {
	container := signedInContainer(testutil.NewMockTaskService())

	cmd := newTaskListCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--status", "blocked"})

	err := cmd.Execute()

	require.Error(t, err)
}

func TestNewTaskListCommand_Empty(t *testing.T) {
	container := signedInContainer(testutil.NewMockTaskService())

	cmd := newTaskListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No tasks found")
}

func TestNewTaskListCommand_YAMLFormat(t *testing.T) {
	tasks := testutil.NewMockTaskService()
	seedTask(tasks, "t1", "Write report", domain.StatusTodo)
	container := signedInContainer(tasks)

	cmd := newTaskListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--format", "yaml"})

	err := cmd.Execute()

	require.NoError(t, err)
	var decoded []domain.Task
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Write report", decoded[0].Title)
}

func TestNewTaskListCommand_NotAuthenticated(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskService(), &testutil.MockIdentityProvider{}, &testutil.MockTokenStore{})

	cmd := newTaskListCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

// =============================================================================
// Show Command Tests
// =============================================================================

func TestNewTaskShowCommand(t *testing.T) {
	tasks := testutil.NewMockTaskService()
	seedTask(tasks, "t1", "Write report", domain.StatusInProgress)
	container := signedInContainer(tasks)

	cmd := newTaskShowCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"t1"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Write report")
	assert.Contains(t, buf.String(), "In Progress")
}

func TestNewTaskShowCommand_NotFound(t *testing.T) {
	container := signedInContainer(testutil.NewMockTaskService())

	cmd := newTaskShowCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"missing"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

// =============================================================================
// New Command Tests
// =============================================================================

func TestNewTaskNewCommand_CreateTask(t *testing.T) {
	tasks := testutil.NewMockTaskService()
	container := signedInContainer(tasks)

	cmd := newTaskNewCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--title", "Write report", "--priority", "high"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Created task")
	require.Len(t, tasks.Tasks, 1)
	for _, task := range tasks.Tasks {
		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, domain.StatusTodo, task.Status)
		assert.Equal(t, domain.PriorityHigh, task.Priority)
		assert.Equal(t, "alice@example.com", task.Email)
		assert.False(t, task.IsPlaceholder())
	}
}

func TestNewTaskNewCommand_TitleTooLong(t *testing.T) {
	tasks := testutil.NewMockTaskService()
	container := signedInContainer(tasks)

	cmd := newTaskNewCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--title", strings.Repeat("x", 51)})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrTitleTooLong)
	assert.Empty(t, tasks.Tasks)
}

// =============================================================================
// Edit Command Tests
// =============================================================================

func TestNewTaskEditCommand_PartialFlags(t *testing.T) {
	tasks := testutil.NewMockTaskService()
	tasks.Seed(domain.Task{
		ID:          "t1",
		Title:       "Write report",
		Description: "Quarterly numbers",
		Status:      domain.StatusTodo,
		Priority:    domain.PriorityMedium,
		Email:       "alice@example.com",
	})
	container := signedInContainer(tasks)

	cmd := newTaskEditCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"t1", "--status", "in-progress"})

	err := cmd.Execute()

	assert.NoError(t, err)
	got := tasks.Tasks["t1"]
	assert.Equal(t, domain.StatusInProgress, got.Status)
	// Fields not flagged keep their previous values
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, "Quarterly numbers", got.Description)
}

func TestNewTaskEditCommand_NotFound(t *testing.T) {
	container := signedInContainer(testutil.NewMockTaskService())

	cmd := newTaskEditCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"missing", "--title", "New title"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

// =============================================================================
// Delete Command Tests
// =============================================================================

func TestNewTaskDeleteCommand_Confirmed(t *testing.T) {
	tasks := testutil.NewMockTaskService()
	seedTask(tasks, "t1", "Write report", domain.StatusTodo)
	container := signedInContainer(tasks)

	cmd := newTaskDeleteCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetIn(bytes.NewBufferString("y\n"))
	cmd.SetArgs([]string{"t1"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Deleted task t1")
	assert.Empty(t, tasks.Tasks)
}

func TestNewTaskDeleteCommand_Canceled(t *testing.T) {
	tasks := testutil.NewMockTaskService()
	seedTask(tasks, "t1", "Write report", domain.StatusTodo)
	container := signedInContainer(tasks)

	cmd := newTaskDeleteCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetIn(bytes.NewBufferString("n\n"))
	cmd.SetArgs([]string{"t1"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Canceled")
	// The task is untouched; no delete reached the service
	assert.Len(t, tasks.Tasks, 1)
}

func TestNewTaskDeleteCommand_SkipPrompt(t *testing.T) {
	tasks := testutil.NewMockTaskService()
	seedTask(tasks, "t1", "Write report", domain.StatusTodo)
	container := signedInContainer(tasks)

	cmd := newTaskDeleteCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"t1", "--yes"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Empty(t, tasks.Tasks)
}

func TestNewTaskDeleteCommand_AlreadyGone(t *testing.T) {
	container := signedInContainer(testutil.NewMockTaskService())

	cmd := newTaskDeleteCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"missing", "--yes"})

	err := cmd.Execute()

	require.Error(t, err)
	var serverErr *domain.ServerError
	assert.ErrorAs(t, err, &serverErr)
}
