package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/taskdeck/taskdeck/internal/domain"
)

type taskItem struct {
	task domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Title
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int {
	return 2
}

func (d taskDelegate) Spacing() int {
	return 1
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	statusIcon := StatusIcon(task.Status)
	statusText := fmt.Sprintf("%-11s", task.Status.Display())
	priorityText := fmt.Sprintf("%-6s", string(task.Priority))

	pending := ""
	if task.IsPlaceholder() {
		pending = "(saving) "
	}

	prefixWidth := 26 + runewidth.StringWidth(pending)
	listWidth := m.Width()
	maxTitleLen := listWidth - prefixWidth - 2
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}

	title := task.Title
	if runewidth.StringWidth(title) > maxTitleLen {
		title = runewidth.Truncate(title, maxTitleLen-3, "...")
	}

	statusStyle := d.styles.StatusStyle(task.Status)
	titleStyle := d.styles.TaskTitle
	indicatorStyle := d.styles.SelectionIndicator
	if selected {
		statusStyle = statusStyle.Bold(true)
		titleStyle = d.styles.TaskTitleSelected
		indicatorStyle = indicatorStyle.Bold(true)
	}

	line := "  " + indicatorStyle.Render(indicatorChar) + " " +
		statusStyle.Render(statusIcon) + " " +
		statusStyle.Render(statusText) + " " +
		d.styles.PriorityStyle(task.Priority).Render(priorityText) + "  "
	if pending != "" {
		line += d.styles.TaskDesc.Render(pending)
	}
	line += titleStyle.Render(title)

	lineWidth := runewidth.StringWidth(line)
	if lineWidth < listWidth {
		line += fmt.Sprintf("%*s", listWidth-lineWidth, "")
	}
	_, _ = fmt.Fprintln(w, line)

	descLine := strings.Repeat(" ", 26)
	if task.Description != "" {
		desc := escapeNewlines(task.Description)
		maxDescLen := listWidth - 28
		if maxDescLen < 10 {
			maxDescLen = 10
		}
		if runewidth.StringWidth(desc) > maxDescLen {
			desc = runewidth.Truncate(desc, maxDescLen-3, "...")
		}
		descLine += desc
	} else if task.DueDate != "" {
		descLine += "due " + task.DueDate
	}
	descStyle := d.styles.TaskDesc
	if selected {
		descStyle = d.styles.TaskDescSelected
	}
	_, _ = fmt.Fprint(w, descStyle.Render(descLine))
}
