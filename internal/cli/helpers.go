package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// parseTaskID parses a positional task ID argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task ID %q", arg)
	}
	return id, nil
}

// parseTargetDate accepts YYYY-MM-DD or a full RFC 3339 timestamp.
func parseTargetDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(domain.DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q (expected YYYY-MM-DD or RFC 3339)", s)
}

// formatMinutes renders a minute total as "2h 15m" or "45m".
func formatMinutes(minutes int) string {
	if minutes >= 60 || minutes <= -60 {
		return fmt.Sprintf("%dh %dm", minutes/60, abs(minutes%60))
	}
	return fmt.Sprintf("%dm", minutes)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// formatDue renders the due moment of a task, or "-" when unscheduled.
func formatDue(t *domain.Task) string {
	due, ok := t.DueMoment()
	if !ok {
		return "-"
	}
	if t.TargetTime != "" {
		return due.Format("2006-01-02 15:04")
	}
	return due.Format(domain.DateLayout)
}

// printTaskTable renders tasks as an aligned table with an optional
// overdue badge.
func printTaskTable(w io.Writer, tasks []*domain.Task, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDUE\tPRIORITY\tSTATUS\tTIME\tJIRA")
	for _, t := range tasks {
		due := formatDue(t)
		if t.IsOverdue(now) {
			due += " " + overdueStyle.Render("(overdue)")
		}
		spent := "-"
		if t.TimeSpent != 0 {
			spent = formatMinutes(t.TimeSpent)
		}
		jira := t.JiraIssueKey
		if jira == "" {
			jira = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, due, renderPriority(t.Priority), renderStatus(t.Status), spent, jira)
	}
	_ = tw.Flush()
}

// printTask renders one task in detail, including its time ledger.
func printTask(w io.Writer, t *domain.Task, now time.Time) {
	fmt.Fprintf(w, "%s #%d\n", headerStyle.Render(t.Title), t.ID)
	if t.Description != "" {
		fmt.Fprintln(w, t.Description)
	}
	fmt.Fprintf(w, "Status:   %s\n", renderStatus(t.Status))
	fmt.Fprintf(w, "Priority: %s\n", renderPriority(t.Priority))
	due := formatDue(t)
	if t.IsOverdue(now) {
		due += " " + overdueStyle.Render("(overdue)")
	}
	fmt.Fprintf(w, "Due:      %s\n", due)
	if t.JiraIssueKey != "" {
		fmt.Fprintf(w, "Jira:     %s\n", t.JiraIssueKey)
	}
	fmt.Fprintf(w, "Time:     %s\n", formatMinutes(t.TimeSpent))
	fmt.Fprintf(w, "Created:  %s\n", t.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Updated:  %s\n", t.UpdatedAt.Format("2006-01-02 15:04"))

	if len(t.TimeEntries) > 0 {
		fmt.Fprintln(w, "\nTime entries:")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, e := range t.TimeEntries {
			notes := e.Notes
			if notes == "" {
				notes = "-"
			}
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", e.ID, e.Date.Format("2006-01-02 15:04"), formatMinutes(e.Minutes), notes)
		}
		_ = tw.Flush()
	}
}
