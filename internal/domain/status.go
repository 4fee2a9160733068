package domain

import "fmt"

// Status represents the lifecycle state of a task.
// The values are fixed by the task API; they travel on the wire as-is.
type Status string

const (
	StatusTodo       Status = "To-Do"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// AllStatuses returns all valid status values in display order.
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusCompleted}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	if s == StatusCompleted {
		return "Done"
	}
	return string(s)
}

// ParseStatus accepts either the wire value or the short CLI spelling
// (todo, in-progress, done).
func ParseStatus(s string) (Status, error) {
	switch s {
	case string(StatusTodo), "todo", "to-do":
		return StatusTodo, nil
	case string(StatusInProgress), "in-progress", "in_progress":
		return StatusInProgress, nil
	case string(StatusCompleted), "completed", "done":
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// AllPriorities returns all valid priority values in ascending order.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Rank returns an ordering key for sorting (High first).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// ParsePriority accepts the wire value in any letter case.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case string(PriorityLow), "low":
		return PriorityLow, nil
	case string(PriorityMedium), "medium":
		return PriorityMedium, nil
	case string(PriorityHigh), "high":
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
}
