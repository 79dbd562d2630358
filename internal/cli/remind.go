package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vijay4057/task-tracker/internal/app"
	"github.com/vijay4057/task-tracker/internal/domain"
	"github.com/vijay4057/task-tracker/internal/usecase"
)

// newRemindCommand creates the remind command.
func newRemindCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remind",
		Short:   "Show overdue and upcoming tasks",
		GroupID: groupTime,
		Long: `Show tasks that need attention: overdue tasks, and tasks due within
the next 24 hours. Completed and unscheduled tasks are excluded.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.RemindersUseCase().Execute(cmd.Context(), usecase.RemindersInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			r := out.Reminders
			if len(r.Overdue) == 0 && len(r.Upcoming) == 0 {
				fmt.Fprintln(w, "Nothing due. You're all caught up.")
				return nil
			}

			if len(r.Overdue) > 0 {
				fmt.Fprintln(w, overdueStyle.Render("Overdue:"))
				printReminderList(w, r.Overdue)
			}
			if len(r.Upcoming) > 0 {
				if len(r.Overdue) > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, headerStyle.Render("Due within 24 hours:"))
				printReminderList(w, r.Upcoming)
			}
			return nil
		},
	}
	return cmd
}

func printReminderList(w io.Writer, tasks []*domain.Task) {
	for _, t := range tasks {
		fmt.Fprintf(w, "  #%d %s (%s, %s)\n", t.ID, t.Title, formatDue(t), renderPriority(t.Priority))
	}
}

// newTodayCommand creates the today command.
func newTodayCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "today",
		Short:   "Show tasks due today",
		GroupID: groupTime,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := c.Clock.Now()
			return runOnDate(cmd, c, now.Format(domain.DateLayout))
		},
	}
	return cmd
}

// newOnCommand creates the on command for querying a calendar date.
func newOnCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "on <date>",
		Short:   "Show tasks due on a date",
		GroupID: groupTime,
		Args:    cobra.ExactArgs(1),
		Long: `Show tasks whose target calendar date is the given date, regardless
of time of day.

Example:
  task-tracker on 2026-09-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnDate(cmd, c, args[0])
		},
	}
	return cmd
}

func runOnDate(cmd *cobra.Command, c *app.Container, date string) error {
	out, err := c.TasksOnDateUseCase().Execute(cmd.Context(), usecase.TasksOnDateInput{Date: date})
	if err != nil {
		return err
	}

	if len(out.Tasks) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No tasks due on %s\n", date)
		return nil
	}
	printTaskTable(cmd.OutOrStdout(), out.Tasks, c.Clock.Now())
	return nil
}
