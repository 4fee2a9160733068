package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
	"gopkg.in/yaml.v3"
)

// Output formats for task list and show.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// newTaskCommand creates the task command and its subcommands.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Short:   "Manage tasks",
		GroupID: groupTask,
	}

	cmd.AddCommand(
		newTaskListCommand(c),
		newTaskShowCommand(c),
		newTaskNewCommand(c),
		newTaskEditCommand(c),
		newTaskDeleteCommand(c),
	)

	return cmd
}

func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status string
		Format string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, c); err != nil {
				return err
			}

			in := usecase.ListTasksInput{}
			if opts.Status != "" {
				status, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				in.Status = &status
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			return printTasks(cmd, out.Tasks, opts.Format)
		},
	}

	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Filter by status (todo|in-progress|done)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatTable, "Output format (table|json|yaml)")

	return cmd
}

func newTaskShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
	}

	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := restoreSession(cmd, c); err != nil {
				return err
			}

			out, err := c.GetTaskUseCase().Execute(cmd.Context(), usecase.GetTaskInput{ID: args[0]})
			if err != nil {
				return err
			}

			switch opts.Format {
			case formatJSON:
				return printJSON(cmd, out.Task)
			case formatYAML:
				return printYAML(cmd, out.Task)
			default:
				printTaskDetail(cmd, out.Task)
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatTable, "Output format (table|json|yaml)")

	return cmd
}

func newTaskNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		DueDate     string
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, c); err != nil {
				return err
			}

			priority := domain.PriorityLow
			if opts.Priority != "" {
				p, err := domain.ParsePriority(opts.Priority)
				if err != nil {
					return err
				}
				priority = p
			}

			out, err := c.CreateTaskUseCase().Execute(cmd.Context(), usecase.CreateTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				Status:      domain.StatusTodo,
				Priority:    priority,
				DueDate:     opts.DueDate,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title (required)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&opts.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Status      string
		Priority    string
		DueDate     string
	}

	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Edit a task",
		Long: `Edit a task. Fields not given as flags keep their current value;
the full task is sent to the server as a replacement.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := restoreSession(cmd, c); err != nil {
				return err
			}

			got, err := c.GetTaskUseCase().Execute(cmd.Context(), usecase.GetTaskInput{ID: args[0]})
			if err != nil {
				return err
			}
			task := got.Task

			if cmd.Flags().Changed("title") {
				task.Title = opts.Title
			}
			if cmd.Flags().Changed("description") {
				task.Description = opts.Description
			}
			if cmd.Flags().Changed("due") {
				task.DueDate = opts.DueDate
			}
			if cmd.Flags().Changed("status") {
				status, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				task.Status = status
			}
			if cmd.Flags().Changed("priority") {
				priority, err := domain.ParsePriority(opts.Priority)
				if err != nil {
					return err
				}
				task.Priority = priority
			}

			out, err := c.UpdateTaskUseCase().Execute(cmd.Context(), usecase.UpdateTaskInput{ID: task.ID, Task: task})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "New status (todo|in-progress|done)")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority (low|medium|high)")
	cmd.Flags().StringVar(&opts.DueDate, "due", "", "New due date (YYYY-MM-DD)")

	return cmd
}

func newTaskDeleteCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Yes bool
	}

	cmd := &cobra.Command{
		Use:     "delete <task-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := restoreSession(cmd, c); err != nil {
				return err
			}

			if !opts.Yes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete task %s?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
					return nil
				}
			}

			if err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{ID: args[0]}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// confirm asks a yes/no question on the command's streams. Anything
// other than "y" or "yes" counts as no.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func printTasks(cmd *cobra.Command, tasks []domain.Task, format string) error {
	switch format {
	case formatJSON:
		return printJSON(cmd, tasks)
	case formatYAML:
		return printYAML(cmd, tasks)
	default:
		printTaskTable(cmd, tasks)
		return nil
	}
}

func printTaskTable(cmd *cobra.Command, tasks []domain.Task) {
	w := cmd.OutOrStdout()
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tPRIORITY\tDUE")
	for _, t := range tasks {
		due := t.DueDate
		if due == "" {
			due = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, t.Status.Display(), t.Priority, due)
	}
	_ = tw.Flush()
}

func printTaskDetail(cmd *cobra.Command, task domain.Task) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "ID:          %s\n", task.ID)
	_, _ = fmt.Fprintf(w, "Title:       %s\n", task.Title)
	_, _ = fmt.Fprintf(w, "Status:      %s\n", task.Status.Display())
	_, _ = fmt.Fprintf(w, "Priority:    %s\n", task.Priority)
	if task.DueDate != "" {
		_, _ = fmt.Fprintf(w, "Due:         %s\n", task.DueDate)
	}
	if task.Description != "" {
		_, _ = fmt.Fprintf(w, "Description: %s\n", task.Description)
	}
	if task.Timestamp != "" {
		_, _ = fmt.Fprintf(w, "Created:     %s\n", task.Timestamp)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer func() { _ = enc.Close() }()
	return enc.Encode(v)
}
