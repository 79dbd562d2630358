package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay4057/task-tracker/internal/app"
)

// newDashboardCommand creates the dashboard command.
func newDashboardCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"stats"},
		Short:   "Show a summary of the task collection",
		GroupID: groupTask,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.StatsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headerStyle.Render("Tasks"))
			fmt.Fprintf(w, "  Total:        %d\n", out.Total)
			fmt.Fprintf(w, "  Pending:      %d\n", out.Pending)
			fmt.Fprintf(w, "  In progress:  %d\n", out.InProgress)
			fmt.Fprintf(w, "  Completed:    %d\n", out.Completed)
			fmt.Fprintln(w)
			fmt.Fprintln(w, headerStyle.Render("Schedule"))
			overdue := fmt.Sprintf("%d", out.Overdue)
			if out.Overdue > 0 {
				overdue = overdueStyle.Render(overdue)
			}
			fmt.Fprintf(w, "  Overdue:      %s\n", overdue)
			fmt.Fprintf(w, "  Next 24h:     %d\n", out.Upcoming)
			fmt.Fprintf(w, "  Due today:    %d\n", out.DueToday)
			fmt.Fprintf(w, "  Done today:   %d\n", out.CompletedToday)
			fmt.Fprintln(w)
			fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Time tracked:"), formatMinutes(out.TotalMinutes))
			return nil
		},
	}
	return cmd
}
