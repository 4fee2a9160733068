package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgSessionRestored:
		m.identity = msg.Identity
		if msg.Identity == nil {
			m.loading = false
			return m, nil
		}
		return m, m.loadTasks()

	case MsgIdentityChanged:
		wasSignedOut := m.identity == nil
		m.identity = msg.Identity
		if wasSignedOut && msg.Identity != nil {
			return m, m.loadTasks()
		}
		return m, nil

	case MsgTasksLoaded:
		// A response issued for a view we already left is discarded.
		if msg.Route != m.route {
			return m, nil
		}
		m.tasks = msg.Tasks
		m.loading = false
		m.loaded = true
		m.updateTaskList()
		return m, nil

	case MsgTaskCreated:
		m.replaceTask(msg.LocalID, msg.Task)
		m.updateTaskList()
		return m, m.showNotice("Task created.")

	case MsgCreateFailed:
		// Roll back the optimistic insert.
		m.removeTask(msg.LocalID)
		m.updateTaskList()
		return m, m.showError(msg.Err)

	case MsgTaskUpdated:
		m.replaceTask(msg.Task.ID, msg.Task)
		m.updateTaskList()
		m.closeEdit()
		return m, m.showNotice("Task updated.")

	case MsgUpdateFailed:
		// The form stays open and populated so the edit can be retried.
		return m, m.showError(msg.Err)

	case MsgTaskDeleted:
		m.removeTask(msg.TaskID)
		m.updateTaskList()
		return m, m.showNotice("Task deleted.")

	case MsgError:
		m.loading = false
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, m.showError(msg.Err)

	case MsgNotice:
		return m, m.showNotice(msg.Text)

	case MsgClearNotice:
		m.notice = ""
		m.noticeIsError = false
		return m, nil

	case MsgCancelled:
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeFilter:
		return m.handleFilterMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeInputTitle:
		return m.handleInputTitleMode(msg)
	case ModeInputDesc:
		return m.handleInputDescMode(msg)
	case ModeInputDue:
		return m.handleInputDueMode(msg)
	case ModeEdit:
		return m.handleEditMode(msg)
	case ModeChangeStatus:
		return m.handleChangeStatusMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeDetail:
		return m.handleDetailMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.viewCancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.PrevView):
		return m, m.cycleRoute(-1)

	case key.Matches(msg, m.keys.NextView):
		return m, m.cycleRoute(1)

	case key.Matches(msg, m.keys.GoTasks):
		m.setRoute(RouteTasks)
		return m, nil

	case key.Matches(msg, m.keys.GoTodo):
		m.setRoute(RouteTodo)
		return m, nil

	case key.Matches(msg, m.keys.GoInProgress):
		m.setRoute(RouteInProgress)
		return m, nil

	case key.Matches(msg, m.keys.GoDone):
		m.setRoute(RouteDone)
		return m, nil

	case key.Matches(msg, m.keys.GoProfile):
		m.setRoute(RouteProfile)
		return m, nil

	case key.Matches(msg, m.keys.New):
		if m.identity == nil || m.route == RouteProfile {
			return m, nil
		}
		m.mode = ModeInputTitle
		m.titleInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil || task.IsPlaceholder() {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil || task.IsPlaceholder() {
			return m, nil
		}
		m.startEdit(*task)
		return m, nil

	case key.Matches(msg, m.keys.EditStatus):
		task := m.SelectedTask()
		if task == nil || task.IsPlaceholder() {
			return m, nil
		}
		m.startEdit(*task)
		m.mode = ModeChangeStatus
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.newViewContext()
		m.loading = true
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Filter):
		if m.route == RouteProfile {
			return m, nil
		}
		m.mode = ModeFilter
		m.filterInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		// Presentational only: same in-memory list, no refetch
		m.boardView = !m.boardView
		return m, nil

	case key.Matches(msg, m.keys.Detail), key.Matches(msg, m.keys.Enter):
		if m.SelectedTask() == nil {
			return m, nil
		}
		m.mode = ModeDetail
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

// cycleRoute moves to the neighboring route in display order.
func (m *Model) cycleRoute(delta int) tea.Cmd {
	routes := []Route{RouteTasks, RouteTodo, RouteInProgress, RouteDone, RouteProfile}
	current := 0
	for i, r := range routes {
		if r == m.route {
			current = i
		}
	}
	next := (current + delta + len(routes)) % len(routes)
	m.setRoute(routes[next])
	return nil
}

// handleFilterMode handles keys while the filter input is focused.
func (m *Model) handleFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.taskList.ResetFilter()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.mode = ModeNormal
		m.filterInput.Blur()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	cmds = append(cmds, cmd)
	m.taskList.SetFilterText(m.filterInput.Value())
	return m, tea.Batch(cmds...)
}

// handleConfirmMode handles the yes/no dialog before destructive actions.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		action := m.confirmAction
		taskID := m.confirmTaskID
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmTaskID = ""
		if action == ConfirmDelete {
			return m, m.deleteTask(taskID)
		}
		return m, nil

	default:
		// Anything other than an explicit yes cancels. The list is
		// left untouched and no request is issued.
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmTaskID = ""
		return m, nil
	}
}

// handleInputTitleMode handles the title input for a new task.
func (m *Model) handleInputTitleMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.resetNewTaskInputs()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.titleInput.Value() == "" {
			return m, m.showError(domain.ErrEmptyTitle)
		}
		m.mode = ModeInputDesc
		m.titleInput.Blur()
		m.descInput.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// handleInputDescMode handles the description input for a new task.
func (m *Model) handleInputDescMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeInputTitle
		m.descInput.Blur()
		m.titleInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.mode = ModeInputDue
		m.descInput.Blur()
		m.dueInput.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.descInput, cmd = m.descInput.Update(msg)
	return m, cmd
}

// handleInputDueMode handles the due date input and submits the create.
func (m *Model) handleInputDueMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeInputDesc
		m.dueInput.Blur()
		m.descInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.submitNewTask()
	}

	var cmd tea.Cmd
	m.dueInput, cmd = m.dueInput.Update(msg)
	return m, cmd
}

// submitNewTask validates the draft and performs the optimistic insert.
// Validation failures short-circuit here, before any request; the
// placeholder goes into the in-memory list immediately and is replaced
// or rolled back when the server responds.
func (m *Model) submitNewTask() (tea.Model, tea.Cmd) {
	status := domain.StatusTodo
	if s := m.route.StatusFilter(); s != nil {
		status = *s
	}
	draft, err := m.container.CreateTaskUseCase().Draft(usecase.CreateTaskInput{
		Title:       m.titleInput.Value(),
		Description: m.descInput.Value(),
		DueDate:     m.dueInput.Value(),
		Status:      status,
		Priority:    domain.PriorityLow,
	})
	if err != nil {
		m.mode = ModeInputTitle
		m.descInput.Blur()
		m.dueInput.Blur()
		m.titleInput.Focus()
		return m, m.showError(err)
	}

	m.mode = ModeNormal
	m.resetNewTaskInputs()
	m.tasks = append(m.tasks, draft)
	m.updateTaskList()
	return m, m.submitCreate(draft)
}

// handleEditMode handles the edit form.
func (m *Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		// Failure or cancel leaves the list untouched
		m.closeEdit()
		return m, nil

	case msg.String() == "tab", msg.String() == "down":
		if m.editField == fieldStatus || m.editField == fieldPriority {
			return m.moveEditCursor(1)
		}
		m.editField = (m.editField + 1) % fieldCount
		m.focusEditField()
		return m, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		if m.editField == fieldStatus || m.editField == fieldPriority {
			return m.moveEditCursor(-1)
		}
		m.editField = (m.editField + fieldCount - 1) % fieldCount
		m.focusEditField()
		return m, nil

	case msg.String() == "left", msg.String() == "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		return m.moveEditCursor(delta)

	case key.Matches(msg, m.keys.Enter):
		if m.editField < fieldStatus {
			m.editField++
			m.focusEditField()
			return m, nil
		}
		return m, m.submitUpdate(m.editedTask())
	}

	var cmd tea.Cmd
	switch m.editField {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fieldDesc:
		m.descInput, cmd = m.descInput.Update(msg)
	case fieldDue:
		m.dueInput, cmd = m.dueInput.Update(msg)
	}
	return m, cmd
}

// moveEditCursor moves the status or priority picker in the edit form.
func (m *Model) moveEditCursor(delta int) (tea.Model, tea.Cmd) {
	switch m.editField {
	case fieldStatus:
		n := len(domain.AllStatuses())
		m.statusCursor = (m.statusCursor + delta + n) % n
	case fieldPriority:
		n := len(domain.AllPriorities())
		m.priorityCursor = (m.priorityCursor + delta + n) % n
	case fieldTitle, fieldDesc, fieldDue:
	}
	return m, nil
}

// handleChangeStatusMode handles the quick status picker.
func (m *Model) handleChangeStatusMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeEdit()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		n := len(domain.AllStatuses())
		m.statusCursor = (m.statusCursor + n - 1) % n
		return m, nil

	case key.Matches(msg, m.keys.Down):
		n := len(domain.AllStatuses())
		m.statusCursor = (m.statusCursor + 1) % n
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m, m.submitUpdate(m.editedTask())
	}

	return m, nil
}

// handleHelpMode dismisses the help overlay.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.viewCancel()
		return m, tea.Quit
	default:
		m.mode = ModeNormal
		return m, nil
	}
}

// handleDetailMode handles keys in the detail view.
func (m *Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.viewCancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil || task.IsPlaceholder() {
			return m, nil
		}
		m.startEdit(*task)
		return m, nil

	default:
		m.mode = ModeNormal
		return m, nil
	}
}
