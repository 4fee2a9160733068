// Package cli provides the command-line interface for taskdeck.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/tui"
)

// Command group IDs.
const (
	groupAccount = "account"
	groupTask    = "task"
)

// launchDashboardFunc is a function variable for launching the TUI,
// allowing it to be mocked in tests.
var launchDashboardFunc = launchDashboard

// NewRootCommand creates the root command for taskdeck.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Personal task dashboard in the terminal",
		Long: `taskdeck is a terminal dashboard for a remote task service.
Sign in once and manage your tasks from the command line or the
interactive dashboard.

Running taskdeck with no arguments opens the dashboard.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchDashboardFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupAccount, Title: "Account Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
	)

	root.AddCommand(
		newLoginCommand(c),
		newLogoutCommand(c),
		newRegisterCommand(c),
		newProfileCommand(c),
		newTaskCommand(c),
		newConfigCommand(c),
	)

	return root
}

// launchDashboard starts the interactive TUI dashboard. Identity
// changes flow from the session store into the program as messages.
func launchDashboard(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	c.Sessions.Subscribe(func(identity *domain.Identity) {
		p.Send(tui.MsgIdentityChanged{Identity: identity})
	})
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// restoreSession re-hydrates the session from the credential cache and
// fails when no identity results. Task and profile commands call this
// before touching the network.
func restoreSession(cmd *cobra.Command, c *app.Container) error {
	out, err := c.RestoreSessionUseCase().Execute(cmd.Context())
	if err != nil {
		return err
	}
	if out.Identity == nil {
		return domain.ErrNotAuthenticated
	}
	return nil
}
