package usecase

import (
	"context"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// LinkTaskInput contains the parameters for linking an existing task to
// a remote issue.
type LinkTaskInput struct {
	IssueKey string // Remote issue to link; empty unlinks
	TaskID   int
}

// LinkTaskOutput contains the linked task and the validated issue.
type LinkTaskOutput struct {
	Task  *domain.Task
	Issue *domain.RemoteIssue // nil when unlinking
}

// LinkTask is the use case for attaching a remote issue reference to an
// existing local task. The key is validated against the tracker before
// the local record changes.
type LinkTask struct {
	tasks   domain.TaskRepository
	tracker domain.IssueTracker
	clock   domain.Clock
	logger  domain.Logger
}

// NewLinkTask creates a new LinkTask use case.
func NewLinkTask(tasks domain.TaskRepository, tracker domain.IssueTracker, clock domain.Clock, logger domain.Logger) *LinkTask {
	return &LinkTask{tasks: tasks, tracker: tracker, clock: clock, logger: logger}
}

// Execute validates the issue key remotely, then stores the reference.
// Validation failure surfaces to the caller with no local side effects.
func (uc *LinkTask) Execute(ctx context.Context, in LinkTaskInput) (*LinkTaskOutput, error) {
	var issue *domain.RemoteIssue
	if in.IssueKey != "" {
		var err error
		issue, err = uc.tracker.GetIssue(ctx, in.IssueKey)
		if err != nil {
			return nil, err
		}
	}

	task, err := uc.tasks.Update(in.TaskID, func(t *domain.Task) error {
		t.JiraIssueKey = in.IssueKey
		t.UpdatedAt = uc.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		if in.IssueKey == "" {
			uc.logger.Info(task.ID, "sync", "unlinked from remote issue")
		} else {
			uc.logger.Info(task.ID, "sync", "linked to "+in.IssueKey)
		}
	}

	return &LinkTaskOutput{Task: task, Issue: issue}, nil
}
