package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/session"
)

// timestampLayout renders the creation time the way the dashboard
// displays it (locale-style date and time).
const timestampLayout = "1/2/2006, 3:04:05 PM"

// CreateTaskInput contains the parameters for creating a task.
// Fields are ordered to minimize memory padding.
type CreateTaskInput struct {
	Title       string          // Task title (required, <= 50 chars)
	Description string          // Task description (optional, <= 200 chars)
	DueDate     string          // Calendar date, string-encoded
	Status      domain.Status   // One of the fixed status values
	Priority    domain.Priority // One of the fixed priority values
}

// CreateTaskOutput contains the created task with its server-assigned id.
type CreateTaskOutput struct {
	Task domain.Task
}

// CreateTask is the use case for creating a task. Draft builds the
// locally-constructed record used for the optimistic insert; Submit
// sends it to the server. Execute combines both for callers that do not
// render an optimistic copy.
type CreateTask struct {
	api      domain.TaskService
	sessions *session.Store
	clock    domain.Clock
	logger   *slog.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(api domain.TaskService, sessions *session.Store, clock domain.Clock, logger *slog.Logger) *CreateTask {
	return &CreateTask{
		api:      api,
		sessions: sessions,
		clock:    clock,
		logger:   logger,
	}
}

// Draft validates the input and returns the local task record carrying
// a placeholder identifier. No network call is made; invalid input is
// rejected here, before any request.
func (uc *CreateTask) Draft(in CreateTaskInput) (domain.Task, error) {
	email, err := uc.sessions.Email()
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:          domain.TempIDPrefix + uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		Timestamp:   uc.clock.Now().Format(timestampLayout),
		Email:       email,
	}
	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Submit sends a drafted task to the server and returns the stored
// record with the server-assigned identifier.
func (uc *CreateTask) Submit(ctx context.Context, draft domain.Task) (*domain.Task, error) {
	created, err := uc.api.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("task created", "id", created.ID, "title", created.Title)
	}
	return created, nil
}

// Execute drafts and submits in one step.
func (uc *CreateTask) Execute(ctx context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	draft, err := uc.Draft(in)
	if err != nil {
		return nil, err
	}
	created, err := uc.Submit(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &CreateTaskOutput{Task: *created}, nil
}
