package usecase

import (
	"context"
	"time"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// LogRemoteWorkInput contains the parameters for posting or updating a
// work log directly against a remote issue, without touching the local
// ledger. Fields are ordered to minimize memory padding.
type LogRemoteWorkInput struct {
	Started   *time.Time // Omitted from the payload when nil
	IssueKey  string
	Comment   string // Empty uses the gateway's placeholder
	WorklogID string // Non-empty updates an existing work log
	Minutes   int
}

// LogRemoteWorkOutput contains the remote work-log identifier.
type LogRemoteWorkOutput struct {
	WorklogID string
}

// LogRemoteWork is the use case for tracker-only work logging.
type LogRemoteWork struct {
	tracker domain.IssueTracker
}

// NewLogRemoteWork creates a new LogRemoteWork use case.
func NewLogRemoteWork(tracker domain.IssueTracker) *LogRemoteWork {
	return &LogRemoteWork{tracker: tracker}
}

// Execute posts a new work log, or updates an existing one when a
// worklog ID is supplied.
func (uc *LogRemoteWork) Execute(ctx context.Context, in LogRemoteWorkInput) (*LogRemoteWorkOutput, error) {
	seconds := in.Minutes * 60

	var (
		id  string
		err error
	)
	if in.WorklogID != "" {
		id, err = uc.tracker.UpdateWorklog(ctx, in.IssueKey, in.WorklogID, seconds, in.Comment)
	} else {
		id, err = uc.tracker.LogWork(ctx, in.IssueKey, seconds, in.Comment, in.Started)
	}
	if err != nil {
		return nil, err
	}

	return &LogRemoteWorkOutput{WorklogID: id}, nil
}
