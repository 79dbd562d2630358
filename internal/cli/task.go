package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay4057/task-tracker/internal/app"
	"github.com/vijay4057/task-tracker/internal/domain"
	"github.com/vijay4057/task-tracker/internal/usecase"
)

// newNewCommand creates the new command for creating tasks.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Due         string
		At          string
		Priority    string
		Status      string
		Jira        string
	}

	cmd := &cobra.Command{
		Use:     "new",
		Short:   "Create a new task",
		GroupID: groupTask,
		Long: `Create a new task.

The task starts as 'pending' with priority 'medium' unless overridden.

Examples:
  # Create a bare task
  task-tracker new --title "Write release notes"

  # Create a task due on a date, at a specific time
  task-tracker new --title "Standup prep" --due 2026-09-01 --at 09:00

  # Create a high-priority task linked to a Jira issue
  task-tracker new --title "Fix login bug" --priority high --jira PROJ-42`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.CreateTaskInput{
				Title:        opts.Title,
				Description:  opts.Description,
				TargetTime:   opts.At,
				Status:       opts.Status,
				Priority:     opts.Priority,
				JiraIssueKey: opts.Jira,
			}
			if opts.Due != "" {
				due, err := parseTargetDate(opts.Due)
				if err != nil {
					return err
				}
				input.TargetDate = &due
			}

			out, err := c.CreateTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title (required)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.At, "at", "", "Due time of day (HH:MM)")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority: low, medium, high")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Status: pending, in-progress, completed")
	cmd.Flags().StringVar(&opts.Jira, "jira", "", "Jira issue key to link")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Filter string
		SortBy string
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		GroupID: groupTask,
		Long: `List tasks, optionally filtered and sorted.

Filters: all (default), pending, completed, overdue.
Sort keys: date (default), priority, title.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{
				Filter: opts.Filter,
				SortBy: opts.SortBy,
			})
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found")
				return nil
			}
			printTaskTable(cmd.OutOrStdout(), out.Tasks, c.Clock.Now())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Filter, "filter", "f", "", "Filter: all, pending, completed, overdue")
	cmd.Flags().StringVarP(&opts.SortBy, "sort", "s", "", "Sort by: date, priority, title")

	return cmd
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Show task details",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.GetTaskUseCase().Execute(cmd.Context(), usecase.GetTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			printTask(cmd.OutOrStdout(), out.Task, c.Clock.Now())
			return nil
		},
	}
	return cmd
}

// newEditCommand creates the edit command for partial updates.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Due         string
		At          string
		Priority    string
		Status      string
		ClearDue    bool
	}

	cmd := &cobra.Command{
		Use:     "edit <id>",
		Short:   "Edit task fields",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		Long: `Edit one or more fields of a task. Only the flags you pass change;
everything else is left as is.

Examples:
  task-tracker edit 3 --title "New title"
  task-tracker edit 3 --due 2026-09-15 --at 14:00
  task-tracker edit 3 --clear-due
  task-tracker edit 3 --status in-progress --priority high`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			input := usecase.UpdateTaskInput{TaskID: id, ClearTargetDate: opts.ClearDue}
			flags := cmd.Flags()
			if flags.Changed("title") {
				input.Title = &opts.Title
			}
			if flags.Changed("description") {
				input.Description = &opts.Description
			}
			if flags.Changed("due") {
				due, err := parseTargetDate(opts.Due)
				if err != nil {
					return err
				}
				input.TargetDate = &due
			}
			if flags.Changed("at") {
				input.TargetTime = &opts.At
			}
			if flags.Changed("status") {
				input.Status = &opts.Status
			}
			if flags.Changed("priority") {
				input.Priority = &opts.Priority
			}

			out, err := c.UpdateTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "New description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.At, "at", "", "New due time of day (HH:MM, empty clears)")
	cmd.Flags().BoolVar(&opts.ClearDue, "clear-due", false, "Remove the due date")
	cmd.Flags().StringVar(&opts.Status, "status", "", "New status")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority")

	return cmd
}

// newDoneCommand creates the done command for completing (or reopening) tasks.
func newDoneCommand(c *app.Container) *cobra.Command {
	var reopen bool

	cmd := &cobra.Command{
		Use:     "done <id>",
		Short:   "Mark a task completed",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			status := string(domain.StatusCompleted)
			if reopen {
				status = string(domain.StatusPending)
			}

			out, err := c.UpdateTaskUseCase().Execute(cmd.Context(), usecase.UpdateTaskInput{
				TaskID: id,
				Status: &status,
			})
			if err != nil {
				return err
			}

			if reopen {
				fmt.Fprintf(cmd.OutOrStdout(), "Reopened task #%d: %s\n", out.Task.ID, out.Task.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d: %s\n", out.Task.ID, out.Task.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reopen, "reopen", false, "Set the task back to pending instead")

	return cmd
}

// newDeleteCommand creates the delete command.
func newDeleteCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			if err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}
	return cmd
}
