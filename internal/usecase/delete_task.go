package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	ID string // Server-assigned task identifier
}

// DeleteTask is the use case for deleting a task. Confirmation is the
// caller's responsibility; this runs only after the user has confirmed.
type DeleteTask struct {
	api    domain.TaskService
	logger *slog.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(api domain.TaskService, logger *slog.Logger) *DeleteTask {
	return &DeleteTask{api: api, logger: logger}
}

// Execute deletes the task. A task already gone server-side surfaces
// the server error unchanged; the caller leaves its local list intact.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) error {
	if in.ID == "" {
		return domain.ErrInvalidTaskID
	}
	if err := uc.api.Delete(ctx, in.ID); err != nil {
		return fmt.Errorf("delete task %s: %w", in.ID, err)
	}
	if uc.logger != nil {
		uc.logger.Info("task deleted", "id", in.ID)
	}
	return nil
}
