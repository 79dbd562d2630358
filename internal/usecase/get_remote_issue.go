package usecase

import (
	"context"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// GetRemoteIssueInput contains the remote issue key to fetch.
type GetRemoteIssueInput struct {
	IssueKey string
}

// GetRemoteIssueOutput contains the fetched issue metadata.
type GetRemoteIssueOutput struct {
	Issue *domain.RemoteIssue
}

// GetRemoteIssue is the use case for fetching remote issue metadata on
// demand. Nothing is persisted.
type GetRemoteIssue struct {
	tracker domain.IssueTracker
}

// NewGetRemoteIssue creates a new GetRemoteIssue use case.
func NewGetRemoteIssue(tracker domain.IssueTracker) *GetRemoteIssue {
	return &GetRemoteIssue{tracker: tracker}
}

// Execute fetches the issue from the tracker.
func (uc *GetRemoteIssue) Execute(ctx context.Context, in GetRemoteIssueInput) (*GetRemoteIssueOutput, error) {
	issue, err := uc.tracker.GetIssue(ctx, in.IssueKey)
	if err != nil {
		return nil, err
	}
	return &GetRemoteIssueOutput{Issue: issue}, nil
}
