package tui

import (
	"context"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// noticeTimeout is how long a transient notification stays visible.
const noticeTimeout = 4 * time.Second

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	identity  *domain.Identity

	// Request lifetime. The context is scoped to the current view:
	// changing routes cancels it, and a response that arrives after
	// cancellation is discarded, never applied.
	viewCtx    context.Context
	viewCancel context.CancelFunc

	// State
	tasks   []domain.Task
	notice  string
	editing *domain.Task // Local editable copy held by the edit form

	// Components
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model

	// Input state (large structs)
	titleInput  textinput.Model
	descInput   textinput.Model
	dueInput    textinput.Model
	filterInput textinput.Model

	// Numeric state (smaller types last)
	mode           Mode
	route          Route
	confirmAction  ConfirmAction
	editField      int
	statusCursor   int
	priorityCursor int
	width          int
	height         int
	confirmTaskID  string
	noticeIsError  bool
	boardView      bool
	loading        bool
	loaded         bool
}

// Edit form field indices.
const (
	fieldTitle = iota
	fieldDesc
	fieldDue
	fieldStatus
	fieldPriority
	fieldCount
)

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = domain.TitleMaxLen

	di := textinput.New()
	di.Placeholder = "Task description (optional)"
	di.CharLimit = domain.DescriptionMaxLen

	du := textinput.New()
	du.Placeholder = "Due date, e.g. 2026-09-15 (optional)"
	du.CharLimit = 30

	fi := textinput.New()
	fi.Placeholder = "Filter tasks..."
	fi.CharLimit = 100

	styles := DefaultStyles()
	delegate := newTaskDelegate(styles)
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(true)
	taskList.DisableQuitKeybindings()

	ctx, cancel := context.WithCancel(context.Background())

	return &Model{
		container:   c,
		viewCtx:     ctx,
		viewCancel:  cancel,
		mode:        ModeNormal,
		route:       RouteTasks,
		keys:        DefaultKeyMap(),
		styles:      styles,
		help:        help.New(),
		taskList:    taskList,
		titleInput:  ti,
		descInput:   di,
		dueInput:    du,
		filterInput: fi,
		loading:     true,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.restoreSession()
}

// newViewContext cancels any in-flight request and starts a fresh
// context for the new view.
func (m *Model) newViewContext() {
	m.viewCancel()
	m.viewCtx, m.viewCancel = context.WithCancel(context.Background())
}

// restoreSession returns a command that re-hydrates the cached session.
func (m *Model) restoreSession() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.RestoreSessionUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgSessionRestored{Identity: out.Identity}
	}
}

// loadTasks returns a command that fetches the signed-in identity's
// full task set. The set is fetched once and filtered per route
// client-side.
func (m *Model) loadTasks() tea.Cmd {
	ctx := m.viewCtx
	route := m.route
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{})
		if ctx.Err() != nil {
			return MsgCancelled{}
		}
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, Route: route}
	}
}

// submitCreate returns a command that sends an optimistic draft to the
// server. The draft is already in the in-memory list under its
// placeholder identifier.
func (m *Model) submitCreate(draft domain.Task) tea.Cmd {
	ctx := m.viewCtx
	return func() tea.Msg {
		created, err := m.container.CreateTaskUseCase().Submit(ctx, draft)
		if err != nil {
			return MsgCreateFailed{LocalID: draft.ID, Err: err}
		}
		return MsgTaskCreated{LocalID: draft.ID, Task: *created}
	}
}

// submitUpdate returns a command that sends a full-record replace and
// re-fetches the persisted state.
func (m *Model) submitUpdate(task domain.Task) tea.Cmd {
	ctx := m.viewCtx
	return func() tea.Msg {
		out, err := m.container.UpdateTaskUseCase().Execute(ctx, usecase.UpdateTaskInput{ID: task.ID, Task: task})
		if err != nil {
			return MsgUpdateFailed{Err: err}
		}
		return MsgTaskUpdated{Task: out.Task}
	}
}

// deleteTask returns a command that deletes a task. The confirmation
// dialog has already run by the time this is issued.
func (m *Model) deleteTask(taskID string) tea.Cmd {
	ctx := m.viewCtx
	return func() tea.Msg {
		if err := m.container.DeleteTaskUseCase().Execute(ctx, usecase.DeleteTaskInput{ID: taskID}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: taskID}
	}
}

// clearNoticeAfter schedules the notification to disappear.
func clearNoticeAfter() tea.Cmd {
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return MsgClearNotice{}
	})
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.taskList.SelectedItem() == nil {
		return nil
	}
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		task := ti.task
		return &task
	}
	return nil
}

// visibleTasks returns the task set for the active route, sorted by
// priority then title.
func (m *Model) visibleTasks() []domain.Task {
	tasks := m.tasks
	if status := m.route.StatusFilter(); status != nil {
		tasks = domain.FilterByStatus(tasks, *status)
	}
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ri, rj := sorted[i].Priority.Rank(), sorted[j].Priority.Rank(); ri != rj {
			return ri < rj
		}
		return sorted[i].Title < sorted[j].Title
	})
	return sorted
}

// updateTaskList rebuilds the list items for the active route.
func (m *Model) updateTaskList() {
	visible := m.visibleTasks()
	items := make([]list.Item, 0, len(visible))
	for _, task := range visible {
		items = append(items, taskItem{task: task})
	}
	m.taskList.SetItems(items)
}

// setRoute switches the active view, cancelling any request issued for
// the previous one. The task set is shared across routes, so switching
// only re-filters; no refetch happens.
func (m *Model) setRoute(route Route) {
	if route == m.route {
		return
	}
	m.newViewContext()
	m.route = route
	m.updateTaskList()
	m.taskList.ResetSelected()
}

// replaceTask swaps the task stored under id for the given record.
func (m *Model) replaceTask(id string, task domain.Task) {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks[i] = task
			return
		}
	}
}

// removeTask deletes the task stored under id from the in-memory list.
func (m *Model) removeTask(id string) {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

// resetNewTaskInputs clears the create-form inputs.
func (m *Model) resetNewTaskInputs() {
	m.titleInput.Reset()
	m.descInput.Reset()
	m.dueInput.Reset()
	m.titleInput.Blur()
	m.descInput.Blur()
	m.dueInput.Blur()
}

// startEdit opens the edit form with a local copy of the task.
func (m *Model) startEdit(task domain.Task) {
	copied := task
	m.editing = &copied
	m.mode = ModeEdit
	m.editField = fieldTitle
	m.titleInput.SetValue(task.Title)
	m.descInput.SetValue(task.Description)
	m.dueInput.SetValue(task.DueDate)
	for i, s := range domain.AllStatuses() {
		if s == task.Status {
			m.statusCursor = i
		}
	}
	for i, p := range domain.AllPriorities() {
		if p == task.Priority {
			m.priorityCursor = i
		}
	}
	m.focusEditField()
}

// editedTask assembles the replacement record from the form state.
func (m *Model) editedTask() domain.Task {
	task := *m.editing
	task.Title = m.titleInput.Value()
	task.Description = m.descInput.Value()
	task.DueDate = m.dueInput.Value()
	task.Status = domain.AllStatuses()[m.statusCursor]
	task.Priority = domain.AllPriorities()[m.priorityCursor]
	return task
}

// closeEdit leaves the edit form and clears its state.
func (m *Model) closeEdit() {
	m.editing = nil
	m.mode = ModeNormal
	m.resetNewTaskInputs()
}

// focusEditField moves input focus to the active edit field.
func (m *Model) focusEditField() {
	m.titleInput.Blur()
	m.descInput.Blur()
	m.dueInput.Blur()
	switch m.editField {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldDesc:
		m.descInput.Focus()
	case fieldDue:
		m.dueInput.Focus()
	}
}

// showError surfaces a failure as a transient notification.
func (m *Model) showError(err error) tea.Cmd {
	m.notice = noticeFor(err)
	m.noticeIsError = true
	return clearNoticeAfter()
}

// showNotice surfaces a success message as a transient notification.
func (m *Model) showNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeIsError = false
	return clearNoticeAfter()
}

// updateLayoutSizes propagates the window size to components.
func (m *Model) updateLayoutSizes() {
	listWidth := m.width - 4
	listHeight := m.height - 10
	if listWidth < 40 {
		listWidth = 40
	}
	if listHeight < 5 {
		listHeight = 5
	}
	m.taskList.SetSize(listWidth, listHeight)
}
