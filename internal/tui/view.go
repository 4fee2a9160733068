package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeDetail:
		content = m.viewDetail()
	case ModeEdit, ModeChangeStatus:
		content = m.viewEdit()
	case ModeNormal, ModeFilter, ModeConfirm, ModeInputTitle, ModeInputDesc, ModeInputDue:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the dashboard view for the active route.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.notice != "" {
		style := m.styles.NoticeMsg
		if m.noticeIsError {
			style = m.styles.ErrorMsg
		}
		b.WriteString(style.Render(m.notice) + "\n\n")
	}

	if m.identity == nil && !m.loading {
		b.WriteString(m.viewSignedOut())
		b.WriteString("\n")
		b.WriteString(m.viewFooter())
		return b.String()
	}

	if m.mode == ModeFilter {
		b.WriteString(m.styles.InputPrompt.Render("Filter: "))
		b.WriteString(m.filterInput.View())
		b.WriteString("\n\n")
	} else if m.filterInput.Value() != "" {
		b.WriteString(m.styles.Footer.Render("Filtered: "+m.filterInput.Value()) + "\n\n")
	}

	if m.route == RouteProfile {
		b.WriteString(m.viewProfile())
	} else {
		if m.loaded {
			b.WriteString(m.viewCountSummary())
			b.WriteString("\n")
		}
		b.WriteString(m.viewTasks())
	}

	switch m.mode {
	case ModeNormal, ModeFilter, ModeHelp, ModeDetail, ModeEdit, ModeChangeStatus:
		// No overlay for these modes
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeInputTitle, ModeInputDesc, ModeInputDue:
		b.WriteString("\n")
		b.WriteString(m.viewNewTaskForm())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the navigation bar with the active route
// highlighted and the signed-in identity on the right.
func (m *Model) viewHeader() string {
	routes := []Route{RouteTasks, RouteTodo, RouteInProgress, RouteDone, RouteProfile}
	parts := make([]string, 0, len(routes))
	for i, r := range routes {
		label := fmt.Sprintf("%d %s", i+1, r.Title())
		if r == m.route {
			parts = append(parts, m.styles.NavActive.Render(label))
		} else {
			parts = append(parts, m.styles.NavIdle.Render(label))
		}
	}
	nav := strings.Join(parts, "  ")

	right := ""
	if m.identity != nil {
		right = m.styles.NavIdle.Render(m.identity.Email)
	}

	headerWidth := m.width - 6
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(nav) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(nav + strings.Repeat(" ", spacing) + right)
}

// viewCountSummary renders per-status totals over the whole task set,
// regardless of the active filter.
func (m *Model) viewCountSummary() string {
	byStatus := make(map[domain.Status]int, len(domain.AllStatuses()))
	for _, task := range m.tasks {
		byStatus[task.Status]++
	}
	parts := make([]string, 0, len(domain.AllStatuses())+1)
	parts = append(parts, fmt.Sprintf("%d total", len(m.tasks)))
	for _, status := range domain.AllStatuses() {
		parts = append(parts, fmt.Sprintf("%d %s", byStatus[status], status.Display()))
	}
	return m.styles.Footer.Render(strings.Join(parts, "  "))
}

// viewTasks renders the task set as a list or a card board.
func (m *Model) viewTasks() string {
	if m.loading && !m.loaded {
		return m.styles.Footer.Render("Loading tasks...")
	}
	visible := m.visibleTasks()
	if len(visible) == 0 {
		return m.viewEmptyState()
	}
	if m.boardView {
		return m.viewBoard()
	}
	return m.taskList.View()
}

// viewEmptyState renders the explicit empty message, distinct from the
// loading state.
func (m *Model) viewEmptyState() string {
	switch m.route {
	case RouteTodo, RouteInProgress, RouteDone:
		return m.styles.Footer.Render(fmt.Sprintf("No %s tasks.", m.route.Title()))
	default:
		return m.styles.Footer.Render("No tasks yet. Press 'n' to create one.")
	}
}

// viewBoard renders the same in-memory set as cards grouped by status.
func (m *Model) viewBoard() string {
	statuses := domain.AllStatuses()
	if s := m.route.StatusFilter(); s != nil {
		statuses = []domain.Status{*s}
	}

	selected := m.SelectedTask()
	columnWidth := (m.width - 10) / len(statuses)
	if columnWidth < 24 {
		columnWidth = 24
	}

	columns := make([]string, 0, len(statuses))
	for _, status := range statuses {
		var col strings.Builder
		grouped := domain.FilterByStatus(m.visibleTasks(), status)
		header := m.styles.StatusStyle(status).Bold(true).Render(
			fmt.Sprintf("%s %s (%d)", StatusIcon(status), status.Display(), len(grouped)))
		col.WriteString(header + "\n")
		for _, task := range grouped {
			style := m.styles.Card
			if selected != nil && selected.ID == task.ID {
				style = m.styles.CardSelected
			}
			title := task.Title
			body := title + "\n" + m.styles.PriorityStyle(task.Priority).Render(string(task.Priority))
			if task.DueDate != "" {
				body += m.styles.TaskDesc.Render("  due " + task.DueDate)
			}
			col.WriteString(style.Width(columnWidth - 4).Render(body) + "\n")
		}
		columns = append(columns, m.styles.CardColumn.Width(columnWidth).Render(col.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// viewProfile renders the signed-in identity.
func (m *Model) viewProfile() string {
	if m.identity == nil {
		return m.viewSignedOut()
	}

	var b strings.Builder
	b.WriteString(m.styles.DetailTitle.Render("Profile") + "\n")
	b.WriteString(m.styles.DetailLabel.Render("Name") + m.styles.DetailValue.Render(m.identity.DisplayName) + "\n")
	b.WriteString(m.styles.DetailLabel.Render("Email") + m.styles.DetailValue.Render(m.identity.Email) + "\n")
	if m.identity.PhotoURL != "" {
		b.WriteString(m.styles.DetailLabel.Render("Photo") + m.styles.DetailValue.Render(m.identity.PhotoURL) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("Update with 'taskdeck profile update'."))
	return b.String()
}

// viewSignedOut renders the prompt shown when no session exists.
func (m *Model) viewSignedOut() string {
	return m.styles.Dialog.Render(
		m.styles.DialogTitle.Render("Not signed in") + "\n\n" +
			"Run 'taskdeck login' in another terminal, then press 'r'.")
}

// viewConfirmDialog renders the yes/no dialog for destructive actions.
func (m *Model) viewConfirmDialog() string {
	title := ""
	for _, task := range m.tasks {
		if task.ID == m.confirmTaskID {
			title = task.Title
		}
	}
	prompt := fmt.Sprintf("Delete %q? This cannot be undone.", title)
	return m.styles.Dialog.Render(
		m.styles.DialogTitle.Render("Confirm delete") + "\n\n" +
			m.styles.DialogPrompt.Render(prompt) + "\n\n" +
			m.styles.HelpKey.Render("y") + m.styles.HelpDesc.Render(" confirm   ") +
			m.styles.HelpKey.Render("any other key") + m.styles.HelpDesc.Render(" cancel"))
}

// viewNewTaskForm renders the three-step create form.
func (m *Model) viewNewTaskForm() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("New task") + "\n\n")
	b.WriteString(m.styles.InputPrompt.Render("Title: ") + m.titleInput.View() + "\n")
	if m.mode == ModeInputDesc || m.mode == ModeInputDue {
		b.WriteString(m.styles.InputPrompt.Render("Description: ") + m.descInput.View() + "\n")
	}
	if m.mode == ModeInputDue {
		b.WriteString(m.styles.InputPrompt.Render("Due: ") + m.dueInput.View() + "\n")
	}
	b.WriteString("\n" + m.styles.HelpDesc.Render("enter next/submit, esc back"))
	return m.styles.Dialog.Render(b.String())
}

// viewEdit renders the edit form over a local copy of the task. The
// full record is replaced on submit.
func (m *Model) viewEdit() string {
	if m.editing == nil {
		return ""
	}

	cursor := func(field int) string {
		if m.editField == field {
			return m.styles.SelectionIndicator.Render("> ")
		}
		return "  "
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	if m.notice != "" {
		style := m.styles.NoticeMsg
		if m.noticeIsError {
			style = m.styles.ErrorMsg
		}
		b.WriteString(style.Render(m.notice) + "\n\n")
	}

	b.WriteString(m.styles.DialogTitle.Render("Edit task") + "\n\n")
	b.WriteString(cursor(fieldTitle) + m.styles.InputPrompt.Render("Title: ") + m.titleInput.View() + "\n")
	b.WriteString(cursor(fieldDesc) + m.styles.InputPrompt.Render("Description: ") + m.descInput.View() + "\n")
	b.WriteString(cursor(fieldDue) + m.styles.InputPrompt.Render("Due: ") + m.dueInput.View() + "\n")

	statuses := make([]string, 0, len(domain.AllStatuses()))
	for i, s := range domain.AllStatuses() {
		label := s.Display()
		if i == m.statusCursor {
			label = "[" + label + "]"
			statuses = append(statuses, m.styles.StatusStyle(s).Bold(true).Render(label))
		} else {
			statuses = append(statuses, m.styles.NavIdle.Render(label))
		}
	}
	b.WriteString(cursor(fieldStatus) + m.styles.InputPrompt.Render("Status: ") + strings.Join(statuses, " ") + "\n")

	priorities := make([]string, 0, len(domain.AllPriorities()))
	for i, p := range domain.AllPriorities() {
		label := string(p)
		if i == m.priorityCursor {
			label = "[" + label + "]"
			priorities = append(priorities, m.styles.PriorityStyle(p).Bold(true).Render(label))
		} else {
			priorities = append(priorities, m.styles.NavIdle.Render(label))
		}
	}
	b.WriteString(cursor(fieldPriority) + m.styles.InputPrompt.Render("Priority: ") + strings.Join(priorities, " ") + "\n")

	b.WriteString("\n" + m.styles.HelpDesc.Render("tab next field, ←/→ pick, enter submit, esc cancel"))
	return b.String()
}

// viewDetail renders the full record of the selected task.
func (m *Model) viewDetail() string {
	task := m.SelectedTask()
	if task == nil {
		return "No task selected"
	}

	var b strings.Builder
	b.WriteString(m.styles.DetailTitle.Render(task.Title) + "\n")
	b.WriteString(m.styles.DetailLabel.Render("Status") +
		m.styles.StatusStyle(task.Status).Render(task.Status.Display()) + "\n")
	b.WriteString(m.styles.DetailLabel.Render("Priority") +
		m.styles.PriorityStyle(task.Priority).Render(string(task.Priority)) + "\n")
	if task.DueDate != "" {
		b.WriteString(m.styles.DetailLabel.Render("Due") + m.styles.DetailValue.Render(task.DueDate) + "\n")
	}
	if task.Timestamp != "" {
		b.WriteString(m.styles.DetailLabel.Render("Created") + m.styles.DetailValue.Render(task.Timestamp) + "\n")
	}
	if task.Description != "" {
		b.WriteString(m.styles.DetailDesc.Render(task.Description) + "\n")
	}
	b.WriteString("\n" + m.styles.HelpDesc.Render("E edit, any other key back"))
	return b.String()
}

// viewHelp renders the expanded keybinding help.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Keybindings") + "\n\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			b.WriteString(m.styles.HelpKey.Render(fmt.Sprintf("%-10s", binding.Help().Key)))
			b.WriteString(m.styles.HelpDesc.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return m.styles.Help.Render(b.String())
}

// viewFooter renders the short help line.
func (m *Model) viewFooter() string {
	return m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}
