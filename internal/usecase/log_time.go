package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// LogTimeInput contains the parameters for logging time against a task.
// Minutes is accepted as supplied, including zero or negative values;
// validation is a caller concern. Date defaults to the clock's now.
// Fields are ordered to minimize memory padding.
type LogTimeInput struct {
	Date    *time.Time
	Notes   string
	TaskID  int
	Minutes int
}

// LogTimeOutput contains the result of logging time. Local append and
// remote sync are reported separately: RemoteErr set with a non-nil Task
// means degraded success (logged locally, remote sync failed).
type LogTimeOutput struct {
	Task      *domain.Task
	Entry     domain.TimeEntry
	RemoteErr error  // Remote sync failure; the local entry is kept regardless
	WorklogID string // Remote work-log ID when synced
	Linked    bool   // Task carries a remote issue reference
	Synced    bool   // Remote work log was created
}

// LogTime is the use case for the append-and-mirror workflow: the local
// time ledger is authoritative and always written first; mirroring to
// the issue tracker is best effort and never rolls the entry back.
type LogTime struct {
	tasks   domain.TaskRepository
	tracker domain.IssueTracker
	clock   domain.Clock
	logger  domain.Logger
}

// NewLogTime creates a new LogTime use case.
func NewLogTime(tasks domain.TaskRepository, tracker domain.IssueTracker, clock domain.Clock, logger domain.Logger) *LogTime {
	return &LogTime{tasks: tasks, tracker: tracker, clock: clock, logger: logger}
}

// Execute appends the time entry atomically (entry, running total, and
// UpdatedAt in one store mutation), then mirrors it to the linked remote
// issue if any. The store lock is released before the remote call.
func (uc *LogTime) Execute(ctx context.Context, in LogTimeInput) (*LogTimeOutput, error) {
	now := uc.clock.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}

	var entry domain.TimeEntry
	task, err := uc.tasks.Update(in.TaskID, func(t *domain.Task) error {
		entry = t.AppendTimeEntry(in.Minutes, in.Notes, date)
		t.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "time", fmt.Sprintf("logged %dm (total %dm)", in.Minutes, task.TimeSpent))
	}

	out := &LogTimeOutput{Task: task, Entry: entry, Linked: task.IsLinked()}
	if !out.Linked {
		return out, nil
	}

	worklogID, err := uc.tracker.LogWork(ctx, task.JiraIssueKey, in.Minutes*60, in.Notes, &date)
	if err != nil {
		// Degraded success: local state is the source of truth.
		out.RemoteErr = err
		if uc.logger != nil {
			uc.logger.Warn(task.ID, "sync", fmt.Sprintf("worklog sync to %s failed: %v", task.JiraIssueKey, err))
		}
		return out, nil
	}

	out.Synced = true
	out.WorklogID = worklogID
	if uc.logger != nil {
		uc.logger.Info(task.ID, "sync", fmt.Sprintf("worklog %s created on %s", worklogID, task.JiraIssueKey))
	}
	return out, nil
}
