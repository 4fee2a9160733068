// Package tui provides the terminal dashboard for taskdeck.
package tui

import "github.com/taskdeck/taskdeck/internal/domain"

// Route represents the active dashboard view. The status-filtered
// routes share one view parameterized by status; each route renders
// the subset of the fetched task set matching its status.
type Route int

const (
	RouteTasks      Route = iota // All tasks
	RouteTodo                    // To-Do tasks only
	RouteInProgress              // In Progress tasks only
	RouteDone                    // Completed tasks only
	RouteProfile                 // Signed-in profile
)

// String returns the string representation of the route.
func (r Route) String() string {
	switch r {
	case RouteTasks:
		return "tasks"
	case RouteTodo:
		return "todo"
	case RouteInProgress:
		return "in-progress"
	case RouteDone:
		return "done"
	case RouteProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// Title returns the header label for the route.
func (r Route) Title() string {
	switch r {
	case RouteTasks:
		return "Tasks"
	case RouteTodo:
		return "To-Do"
	case RouteInProgress:
		return "In Progress"
	case RouteDone:
		return "Done"
	case RouteProfile:
		return "Profile"
	default:
		return ""
	}
}

// StatusFilter returns the status this route filters to, or nil for
// routes that show every task.
func (r Route) StatusFilter() *domain.Status {
	switch r {
	case RouteTodo:
		s := domain.StatusTodo
		return &s
	case RouteInProgress:
		s := domain.StatusInProgress
		return &s
	case RouteDone:
		s := domain.StatusCompleted
		return &s
	}
	return nil
}

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal       Mode = iota // Default navigation mode
	ModeFilter                   // Text filtering mode
	ModeConfirm                  // Confirmation dialog mode
	ModeInputTitle               // Title input mode (for new task)
	ModeInputDesc                // Description input mode (for new task)
	ModeInputDue                 // Due date input mode (for new task)
	ModeEdit                     // Task edit form mode
	ModeChangeStatus             // Status picker inside the edit form
	ModeHelp                     // Help overlay mode
	ModeDetail                   // Task detail view mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFilter:
		return "filter"
	case ModeConfirm:
		return "confirm"
	case ModeInputTitle:
		return "input_title"
	case ModeInputDesc:
		return "input_desc"
	case ModeInputDue:
		return "input_due"
	case ModeEdit:
		return "edit"
	case ModeChangeStatus:
		return "change_status"
	case ModeHelp:
		return "help"
	case ModeDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeFilter, ModeInputTitle, ModeInputDesc, ModeInputDue, ModeEdit:
		return true
	case ModeNormal, ModeConfirm, ModeChangeStatus, ModeHelp, ModeDetail:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete task
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "delete"
	}
	return ""
}
