package tui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/stretchr/testify/assert"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func newDelegateList(tasks ...domain.Task) list.Model {
	items := make([]list.Item, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, taskItem{task: task})
	}
	l := list.New(items, newTaskDelegate(DefaultStyles()), 80, 20)
	return l
}

func TestTaskDelegate_RenderShowsStatusAndTitle(t *testing.T) {
	task := domain.Task{
		ID:       "t1",
		Title:    "Write report",
		Status:   domain.StatusInProgress,
		Priority: domain.PriorityHigh,
	}
	l := newDelegateList(task)
	d := newTaskDelegate(DefaultStyles())

	var buf bytes.Buffer
	d.Render(&buf, l, 0, taskItem{task: task})

	out := buf.String()
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "In Progress")
	assert.Contains(t, out, "High")
}

func TestTaskDelegate_RenderMarksPlaceholder(t *testing.T) {
	task := domain.Task{
		ID:     domain.TempIDPrefix + "abc",
		Title:  "Optimistic task",
		Status: domain.StatusTodo,
	}
	l := newDelegateList(task)
	d := newTaskDelegate(DefaultStyles())

	var buf bytes.Buffer
	d.Render(&buf, l, 0, taskItem{task: task})

	assert.Contains(t, buf.String(), "(saving)")
}

func TestTaskDelegate_TruncatesLongTitles(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "ab"
	}
	task := domain.Task{ID: "t1", Title: long, Status: domain.StatusTodo}
	l := newDelegateList(task)
	l.SetSize(40, 20)
	d := newTaskDelegate(DefaultStyles())

	var buf bytes.Buffer
	d.Render(&buf, l, 0, taskItem{task: task})

	assert.Contains(t, buf.String(), "...")
}

func TestTaskItem_FilterValue(t *testing.T) {
	item := taskItem{task: domain.Task{Title: "Write report"}}
	assert.Equal(t, "Write report", item.FilterValue())
}
