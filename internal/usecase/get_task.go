package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// GetTaskInput contains the parameters for fetching one task.
type GetTaskInput struct {
	ID string // Server-assigned task identifier
}

// GetTaskOutput contains the fetched task.
type GetTaskOutput struct {
	Task domain.Task
}

// GetTask is the use case for loading a single task by identifier.
type GetTask struct {
	api domain.TaskService
}

// NewGetTask creates a new GetTask use case.
func NewGetTask(api domain.TaskService) *GetTask {
	return &GetTask{api: api}
}

// Execute fetches the task.
func (uc *GetTask) Execute(ctx context.Context, in GetTaskInput) (*GetTaskOutput, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidTaskID
	}
	task, err := uc.api.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch task %s: %w", in.ID, err)
	}
	return &GetTaskOutput{Task: *task}, nil
}
