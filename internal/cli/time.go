package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay4057/task-tracker/internal/app"
	"github.com/vijay4057/task-tracker/internal/usecase"
)

// newTimeCommand creates the time command group.
func newTimeCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "time",
		Short:   "Log and inspect tracked time",
		GroupID: groupTime,
	}

	cmd.AddCommand(newTimeLogCommand(c))

	return cmd
}

// newTimeLogCommand creates the time log subcommand.
func newTimeLogCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Minutes int
		Notes   string
		Date    string
	}

	cmd := &cobra.Command{
		Use:   "log <id>",
		Short: "Log time against a task",
		Args:  cobra.ExactArgs(1),
		Long: `Append a time entry to a task's ledger.

The entry and the task's running total are written in one step. If the
task is linked to a Jira issue, the entry is also mirrored as a remote
work log; a remote failure keeps the local entry and is reported as a
warning.

Examples:
  task-tracker time log 3 --minutes 45
  task-tracker time log 3 --minutes 90 --notes "code review" --date 2026-08-28`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			input := usecase.LogTimeInput{
				TaskID:  id,
				Minutes: opts.Minutes,
				Notes:   opts.Notes,
			}
			if opts.Date != "" {
				date, err := parseTargetDate(opts.Date)
				if err != nil {
					return err
				}
				input.Date = &date
			}

			if opts.Minutes <= 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging %d minutes\n", opts.Minutes)
			}

			out, err := c.LogTimeUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Logged %s against task #%d (total %s)\n",
				formatMinutes(out.Entry.Minutes), out.Task.ID, formatMinutes(out.Task.TimeSpent))

			switch {
			case out.Synced:
				fmt.Fprintf(w, "Synced to %s (worklog %s)\n", out.Task.JiraIssueKey, out.WorklogID)
			case out.Linked && out.RemoteErr != nil:
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: local entry saved, but Jira sync failed: %v\n", out.RemoteErr)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Minutes, "minutes", "m", 0, "Minutes to log (required)")
	cmd.Flags().StringVarP(&opts.Notes, "notes", "n", "", "Entry notes")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Entry date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}
