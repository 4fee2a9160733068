package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/session"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Status *domain.Status // Filter to one status (nil = all)
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []domain.Task // Tasks owned by the signed-in identity
}

// ListTasks is the use case for fetching the signed-in identity's task
// set. The server returns the full set for the email; status filtering
// happens client-side.
type ListTasks struct {
	api      domain.TaskService
	sessions *session.Store
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(api domain.TaskService, sessions *session.Store) *ListTasks {
	return &ListTasks{
		api:      api,
		sessions: sessions,
	}
}

// Execute lists tasks for the current identity. Without an identity it
// fails before issuing any request.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	email, err := uc.sessions.Email()
	if err != nil {
		return nil, err
	}

	tasks, err := uc.api.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}

	if in.Status != nil {
		tasks = domain.FilterByStatus(tasks, *in.Status)
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}
