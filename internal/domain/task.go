// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation limits enforced client-side before any network call.
const (
	TitleMaxLen       = 50
	DescriptionMaxLen = 200
)

// TempIDPrefix marks the placeholder identifier assigned to an optimistic
// insert before the server responds with a real one.
const TempIDPrefix = "temp-"

// Task represents one unit of work owned by a signed-in user.
// Field tags follow the wire shape of the task API (Mongo-style "_id").
type Task struct {
	ID          string   `json:"_id,omitempty" yaml:"id,omitempty"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Status      Status   `json:"status" yaml:"status"`
	Priority    Priority `json:"priority" yaml:"priority"`
	DueDate     string   `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Timestamp   string   `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Email       string   `json:"email" yaml:"email"`
}

// IsPlaceholder reports whether the task carries a client-assigned
// temporary identifier from an optimistic insert.
func (t *Task) IsPlaceholder() bool {
	return strings.HasPrefix(t.ID, TempIDPrefix)
}

// Validate checks the client-side constraints on the task record.
// It never touches the network; callers must reject invalid tasks
// before issuing a request.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if n := utf8.RuneCountInString(t.Title); n > TitleMaxLen {
		return fmt.Errorf("%w: %d characters (max %d)", ErrTitleTooLong, n, TitleMaxLen)
	}
	if n := utf8.RuneCountInString(t.Description); n > DescriptionMaxLen {
		return fmt.Errorf("%w: %d characters (max %d)", ErrDescriptionTooLong, n, DescriptionMaxLen)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	return nil
}

// FilterByStatus returns the tasks whose status equals the given value.
// Order is preserved.
func FilterByStatus(tasks []Task, status Status) []Task {
	var out []Task
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}
