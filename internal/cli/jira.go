package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay4057/task-tracker/internal/app"
	"github.com/vijay4057/task-tracker/internal/usecase"
)

// newJiraCommand creates the jira command group.
func newJiraCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jira",
		Short:   "Work with the linked Jira tracker",
		GroupID: groupTracker,
	}

	cmd.AddCommand(
		newJiraStatusCommand(c),
		newJiraIssueCommand(c),
		newJiraSubtaskCommand(c),
		newJiraLinkCommand(c),
		newJiraWorklogCommand(c),
	)

	return cmd
}

// newJiraStatusCommand creates the jira status subcommand.
func newJiraStatusCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show tracker configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.TrackerStatusUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !out.Configured {
				fmt.Fprintln(w, "Jira is not configured.")
				fmt.Fprintln(w, mutedStyle.Render("Set baseUrl, email, and apiToken in config.toml, or use JIRA_* environment variables."))
				return nil
			}
			fmt.Fprintln(w, "Jira is configured.")
			fmt.Fprintf(w, "  URL:     %s\n", out.BaseURL)
			fmt.Fprintf(w, "  Account: %s\n", out.Account)
			fmt.Fprintf(w, "  Auth:    %s\n", out.AuthMode)
			return nil
		},
	}
	return cmd
}

// newJiraIssueCommand creates the jira issue subcommand.
func newJiraIssueCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue <key>",
		Short: "Show a remote issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.GetRemoteIssueUseCase().Execute(cmd.Context(), usecase.GetRemoteIssueInput{
				IssueKey: args[0],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			issue := out.Issue
			fmt.Fprintf(w, "%s %s\n", headerStyle.Render(issue.Key), issue.Summary)
			fmt.Fprintf(w, "  Status:  %s\n", issue.Status)
			fmt.Fprintf(w, "  Project: %s\n", issue.ProjectKey)
			fmt.Fprintf(w, "  URL:     %s\n", c.Config.Jira.BrowseURL(issue.Key))
			return nil
		},
	}
	return cmd
}

// newJiraSubtaskCommand creates the jira subtask subcommand.
func newJiraSubtaskCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Parent      string
		Title       string
		Description string
		Due         string
		At          string
		Priority    string
		RemoteOnly  bool
		LocalOnly   bool
	}

	cmd := &cobra.Command{
		Use:   "subtask",
		Short: "Create a Jira subtask with a linked local task",
		Long: `Create a subtask under a Jira parent issue and a local task linked to
it. The parent key is validated first; if any remote step fails, no
local task is created.

Examples:
  # Remote subtask plus linked local task
  task-tracker jira subtask --parent PROJ-10 --title "Write docs"

  # Local task linked straight to the parent, no remote subtask
  task-tracker jira subtask --parent PROJ-10 --title "Write docs" --local-only

  # Remote subtask only
  task-tracker jira subtask --parent PROJ-10 --title "Write docs" --remote-only`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.RemoteOnly && opts.LocalOnly {
				return fmt.Errorf("--remote-only and --local-only are mutually exclusive")
			}

			input := usecase.CreateSubtaskInput{
				ParentIssueKey: opts.Parent,
				Title:          opts.Title,
				Description:    opts.Description,
				TargetTime:     opts.At,
				Priority:       opts.Priority,
				CreateRemote:   !opts.LocalOnly,
				CreateLocal:    !opts.RemoteOnly,
			}
			if opts.Due != "" {
				due, err := parseTargetDate(opts.Due)
				if err != nil {
					return err
				}
				input.TargetDate = &due
			}

			out, err := c.CreateSubtaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Parent %s: %s\n", out.Parent.Key, out.Parent.Summary)
			if out.Created != nil {
				fmt.Fprintf(w, "Created subtask %s (%s)\n", out.Created.Key, c.Config.Jira.BrowseURL(out.Created.Key))
			}
			if out.Task != nil {
				fmt.Fprintf(w, "Created task #%d linked to %s\n", out.Task.ID, out.Task.JiraIssueKey)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Parent, "parent", "", "Parent issue key (required)")
	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Subtask title (required)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Subtask description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Local task due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.At, "at", "", "Local task due time (HH:MM)")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Local task priority")
	cmd.Flags().BoolVar(&opts.RemoteOnly, "remote-only", false, "Skip creating the local task")
	cmd.Flags().BoolVar(&opts.LocalOnly, "local-only", false, "Skip creating the remote subtask; link to the parent")
	_ = cmd.MarkFlagRequired("parent")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newJiraLinkCommand creates the jira link subcommand.
func newJiraLinkCommand(c *app.Container) *cobra.Command {
	var unlink bool

	cmd := &cobra.Command{
		Use:   "link <id> [key]",
		Short: "Link a task to a Jira issue",
		Args:  cobra.RangeArgs(1, 2),
		Long: `Link an existing task to a Jira issue. The key is validated against
the tracker before the link is stored.

Examples:
  task-tracker jira link 3 PROJ-42
  task-tracker jira link 3 --unlink`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			var key string
			if len(args) == 2 {
				key = args[1]
			}
			if !unlink && key == "" {
				return fmt.Errorf("issue key required (or pass --unlink)")
			}
			if unlink {
				key = ""
			}

			out, err := c.LinkTaskUseCase().Execute(cmd.Context(), usecase.LinkTaskInput{
				TaskID:   id,
				IssueKey: key,
			})
			if err != nil {
				return err
			}

			if out.Issue == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Unlinked task #%d\n", out.Task.ID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Linked task #%d to %s: %s\n", out.Task.ID, out.Issue.Key, out.Issue.Summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&unlink, "unlink", false, "Remove the issue link")

	return cmd
}

// newJiraWorklogCommand creates the jira worklog subcommand.
func newJiraWorklogCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Minutes   int
		Comment   string
		Started   string
		WorklogID string
	}

	cmd := &cobra.Command{
		Use:   "worklog <key>",
		Short: "Log work directly against a Jira issue",
		Args:  cobra.ExactArgs(1),
		Long: `Post a work log against a Jira issue without touching any local task.
Pass --worklog-id to update an existing work log instead.

Examples:
  task-tracker jira worklog PROJ-42 --minutes 30
  task-tracker jira worklog PROJ-42 --minutes 45 --worklog-id 10001`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.LogRemoteWorkInput{
				IssueKey:  args[0],
				Minutes:   opts.Minutes,
				Comment:   opts.Comment,
				WorklogID: opts.WorklogID,
			}
			if opts.Started != "" {
				started, err := parseTargetDate(opts.Started)
				if err != nil {
					return err
				}
				input.Started = &started
			}

			out, err := c.LogRemoteWorkUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			verb := "Logged"
			if opts.WorklogID != "" {
				verb = "Updated"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s (worklog %s)\n",
				verb, formatMinutes(opts.Minutes), args[0], out.WorklogID)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Minutes, "minutes", "m", 0, "Minutes to log (required)")
	cmd.Flags().StringVar(&opts.Comment, "comment", "", "Work log comment")
	cmd.Flags().StringVar(&opts.Started, "started", "", "Start date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&opts.WorklogID, "worklog-id", "", "Existing work log ID to update")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}
