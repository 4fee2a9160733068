package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// UpdateTaskInput contains the parameters for a full-record replace.
type UpdateTaskInput struct {
	ID   string      // Server-assigned task identifier
	Task domain.Task // The complete replacement record
}

// UpdateTaskOutput contains the persisted state re-fetched after the
// replace.
type UpdateTaskOutput struct {
	Task domain.Task
}

// UpdateTask is the use case for replacing a task. After a successful
// replace the record is fetched again to confirm the persisted state.
type UpdateTask struct {
	api    domain.TaskService
	logger *slog.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(api domain.TaskService, logger *slog.Logger) *UpdateTask {
	return &UpdateTask{api: api, logger: logger}
}

// Execute validates, replaces, and re-fetches the task.
func (uc *UpdateTask) Execute(ctx context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidTaskID
	}
	if err := in.Task.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.api.Update(ctx, in.ID, in.Task); err != nil {
		return nil, fmt.Errorf("update task %s: %w", in.ID, err)
	}

	confirmed, err := uc.api.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("confirm update of task %s: %w", in.ID, err)
	}

	if uc.logger != nil {
		uc.logger.Info("task updated", "id", in.ID, "status", confirmed.Status)
	}
	return &UpdateTaskOutput{Task: *confirmed}, nil
}
