package tui

import (
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// noticeFor converts an operation failure into the text shown in the
// transient notification bar. All error presentation goes through this
// one mapping; business code decides only what failed, not how it is
// worded.
func noticeFor(err error) string {
	if err == nil {
		return ""
	}

	switch code := domain.AuthCodeOf(err); code {
	case domain.AuthUserNotFound:
		return "User not found. Sign up with 'taskdeck register'."
	case domain.AuthWrongPassword:
		return "Incorrect password, try again."
	case domain.AuthEmailExists:
		return "An account with this email already exists."
	case domain.AuthNetworkFailure:
		return "Could not reach the identity service. Check your connection."
	}

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "Not signed in. Run 'taskdeck login' first."
	case errors.Is(err, domain.ErrEmptyTitle):
		return "Title is required."
	case errors.Is(err, domain.ErrTitleTooLong):
		return "Title is too long (50 characters max)."
	case errors.Is(err, domain.ErrDescriptionTooLong):
		return "Description is too long (200 characters max)."
	case errors.Is(err, domain.ErrTaskNotFound):
		return "Task not found. It may have been deleted elsewhere."
	}

	var serverErr *domain.ServerError
	if errors.As(err, &serverErr) {
		return fmt.Sprintf("The task service rejected the request (status %d).", serverErr.StatusCode)
	}

	var netErr *domain.NetworkError
	if errors.As(err, &netErr) {
		return "Network error. Check your connection and retry."
	}

	return "Something went wrong: " + err.Error()
}
