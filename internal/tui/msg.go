package tui

import "github.com/taskdeck/taskdeck/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgSessionRestored is sent after the cached session has been
// re-hydrated. Identity is nil when no valid session exists.
type MsgSessionRestored struct {
	Identity *domain.Identity
}

func (MsgSessionRestored) sealed() {}

// MsgIdentityChanged is sent when the process-wide identity changes
// (sign-in, sign-out, profile update).
type MsgIdentityChanged struct {
	Identity *domain.Identity
}

func (MsgIdentityChanged) sealed() {}

// MsgTasksLoaded is sent when the task set has been fetched.
type MsgTasksLoaded struct {
	Tasks []domain.Task
	Route Route // The route the fetch was issued for
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskCreated is sent when the server confirms a create. LocalID is
// the placeholder identifier the optimistic insert used.
type MsgTaskCreated struct {
	LocalID string
	Task    domain.Task
}

func (MsgTaskCreated) sealed() {}

// MsgCreateFailed is sent when a create fails after the optimistic
// insert. The placeholder under LocalID must be rolled back.
type MsgCreateFailed struct {
	LocalID string
	Err     error
}

func (MsgCreateFailed) sealed() {}

// MsgTaskUpdated is sent when a full-record replace has been confirmed
// by a re-fetch.
type MsgTaskUpdated struct {
	Task domain.Task
}

func (MsgTaskUpdated) sealed() {}

// MsgUpdateFailed is sent when a replace or its confirming re-fetch
// fails. The edit form stays open with its inputs intact.
type MsgUpdateFailed struct {
	Err error
}

func (MsgUpdateFailed) sealed() {}

// MsgTaskDeleted is sent when a task has been deleted server-side.
type MsgTaskDeleted struct {
	TaskID string
}

func (MsgTaskDeleted) sealed() {}

// MsgError is sent when an operation fails. It is converted to a
// user-visible notice at the view boundary.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgNotice is sent to show a transient notification.
type MsgNotice struct {
	Text string
}

func (MsgNotice) sealed() {}

// MsgClearNotice is sent to clear the current notification.
type MsgClearNotice struct{}

func (MsgClearNotice) sealed() {}

// MsgCancelled is sent when a fetch was cancelled by a route change.
// The response is discarded, never applied.
type MsgCancelled struct{}

func (MsgCancelled) sealed() {}
