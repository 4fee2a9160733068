package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage the taskdeck configuration file.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after merging the config file
and TASKDECK_* environment overrides.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			path := filepath.Join(c.ConfigLoader.Dir(), domain.ConfigFileName)
			if _, err := os.Stat(path); err == nil {
				_, _ = fmt.Fprintf(w, "# %s\n", path)
			} else {
				_, _ = fmt.Fprintf(w, "# %s (not found)\n", path)
			}
			if err := toml.NewEncoder(w).Encode(c.Config); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write the current effective configuration to the config file as a
starting point for editing.

Error conditions:
- Config file already exists: error`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := filepath.Join(c.ConfigLoader.Dir(), domain.ConfigFileName)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists: %s", path)
			} else if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := c.ConfigLoader.Save(c.Config); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", path)
			return nil
		},
	}
}
