package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PrevView key.Binding
	NextView key.Binding

	// Routes
	GoTasks      key.Binding // All tasks
	GoTodo       key.Binding // To-Do view
	GoInProgress key.Binding // In Progress view
	GoDone       key.Binding // Done view
	GoProfile    key.Binding // Profile view

	// Task management
	New        key.Binding // Create new task
	Delete     key.Binding // Delete task
	Edit       key.Binding // Edit task
	EditStatus key.Binding // Change task status

	// View
	Refresh key.Binding // Refresh task list
	Filter  key.Binding // Enter filter mode
	Toggle  key.Binding // Toggle list/board rendering
	Help    key.Binding // Show help
	Detail  key.Binding // Toggle detail view

	// General
	Enter   key.Binding // Submit/open
	Quit    key.Binding // Quit application
	Escape  key.Binding // Cancel/back
	Confirm key.Binding // Confirm action (in confirm mode)
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev view"),
		),
		NextView: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next view"),
		),
		GoTasks: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all tasks"),
		),
		GoTodo: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "to-do"),
		),
		GoInProgress: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "in progress"),
		),
		GoDone: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "done"),
		),
		GoProfile: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "profile"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Edit: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "edit task"),
		),
		EditStatus: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "change status"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "list/board"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Detail: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "detail"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.New, k.EditStatus, k.Delete, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevView, k.NextView},                  // Navigation
		{k.GoTasks, k.GoTodo, k.GoInProgress, k.GoDone},         // Routes
		{k.New, k.Edit, k.EditStatus, k.Delete},                 // Task management
		{k.Refresh, k.Filter, k.Toggle, k.Detail, k.Help, k.Quit}, // View & general
	}
}
