package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// CreateSubtaskInput contains the parameters for the link-and-create
// workflow. Fields are ordered to minimize memory padding.
type CreateSubtaskInput struct {
	TargetDate     *time.Time
	ParentIssueKey string // Remote parent issue (required)
	Title          string // Required; becomes the remote summary
	Description    string
	TargetTime     string
	Priority       string // Defaults to medium
	CreateRemote   bool   // Create the remote subtask (opt-in)
	CreateLocal    bool   // Create the local task
}

// CreateSubtaskOutput contains the workflow result.
type CreateSubtaskOutput struct {
	Task    *domain.Task         // Created local task (nil if CreateLocal was false)
	Parent  *domain.RemoteIssue  // Validated parent issue
	Created *domain.CreatedIssue // Created remote subtask (nil if CreateRemote was false)
}

// CreateSubtask is the link-and-create saga: validate the parent issue,
// optionally create a remote subtask under it, then create a local task
// linked to the result. Remote failure at any step aborts the whole
// workflow with no local task created.
type CreateSubtask struct {
	tasks   domain.TaskRepository
	tracker domain.IssueTracker
	clock   domain.Clock
	logger  domain.Logger
}

// NewCreateSubtask creates a new CreateSubtask use case.
func NewCreateSubtask(tasks domain.TaskRepository, tracker domain.IssueTracker, clock domain.Clock, logger domain.Logger) *CreateSubtask {
	return &CreateSubtask{tasks: tasks, tracker: tracker, clock: clock, logger: logger}
}

// Execute runs the workflow. Gateway calls happen before any store
// mutation, so an abort leaves no partial local state.
func (uc *CreateSubtask) Execute(ctx context.Context, in CreateSubtaskInput) (*CreateSubtaskOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	// Step 1: validate the parent key. No side effects yet.
	parent, err := uc.tracker.GetIssue(ctx, in.ParentIssueKey)
	if err != nil {
		return nil, err
	}

	out := &CreateSubtaskOutput{Parent: parent}

	// Step 2: remote creation, when opted in. Failure aborts everything.
	if in.CreateRemote {
		created, err := uc.tracker.CreateSubtask(ctx, in.ParentIssueKey, in.Title, in.Description)
		if err != nil {
			return nil, err
		}
		out.Created = created
		if uc.logger != nil {
			uc.logger.Info(0, "sync", fmt.Sprintf("created remote subtask %s under %s", created.Key, in.ParentIssueKey))
		}
	}

	// Step 3: local task, linked to the remote key when one was created.
	if in.CreateLocal {
		status, priority, err := resolveStatusPriority("", in.Priority)
		if err != nil {
			return nil, err
		}
		// Link to the created subtask, or straight to the parent when
		// no remote subtask was requested.
		issueKey := in.ParentIssueKey
		if out.Created != nil {
			issueKey = out.Created.Key
		}
		task, err := buildTask(CreateTaskInput{
			Title:        in.Title,
			Description:  in.Description,
			TargetDate:   in.TargetDate,
			TargetTime:   in.TargetTime,
			JiraIssueKey: issueKey,
		}, status, priority, uc.clock.Now())
		if err != nil {
			return nil, err
		}
		if err := uc.tasks.Create(task); err != nil {
			return nil, fmt.Errorf("save task: %w", err)
		}
		out.Task = task
		if uc.logger != nil {
			uc.logger.Info(task.ID, "task", fmt.Sprintf("created from subtask workflow: %q", task.Title))
		}
	}

	return out, nil
}
