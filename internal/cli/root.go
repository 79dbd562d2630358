// Package cli provides the command-line interface for task-tracker.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay4057/task-tracker/internal/app"
)

// Command group IDs.
const (
	groupSetup   = "setup"
	groupTask    = "task"
	groupTime    = "time"
	groupTracker = "tracker"
)

// NewRootCommand creates the root command for task-tracker.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "task-tracker",
		Short: "Personal task tracker with time logging and Jira sync",
		Long: `task-tracker is a personal task tracker. Tasks carry due dates,
priorities, and a time ledger; views cover reminders, per-date queries,
and a dashboard. Tasks can be linked to Jira issues to create subtasks
and mirror logged time as remote work logs.

All data is stored as a single JSON document under the data directory
(~/.task-tracker by default, override with TASK_TRACKER_DIR).`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup:"},
		&cobra.Group{ID: groupTask, Title: "Tasks:"},
		&cobra.Group{ID: groupTime, Title: "Time:"},
		&cobra.Group{ID: groupTracker, Title: "Jira:"},
	)

	root.AddCommand(
		newInitCommand(c),
		newNewCommand(c),
		newListCommand(c),
		newShowCommand(c),
		newEditCommand(c),
		newDoneCommand(c),
		newDeleteCommand(c),
		newTimeCommand(c),
		newRemindCommand(c),
		newTodayCommand(c),
		newOnCommand(c),
		newDashboardCommand(c),
		newExportCommand(c),
		newImportCommand(c),
		newJiraCommand(c),
	)

	return root
}
