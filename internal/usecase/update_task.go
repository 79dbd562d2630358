package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// UpdateTaskInput is an explicit per-field patch: nil pointers leave the
// stored value untouched. The task ID itself is immutable.
// Fields are ordered to minimize memory padding.
type UpdateTaskInput struct {
	Title           *string
	Description     *string
	TargetDate      *time.Time
	TargetTime      *string
	Status          *string
	Priority        *string
	JiraIssueKey    *string
	TaskID          int
	ClearTargetDate bool // Unschedule the task (wins over TargetDate)
}

// HasChanges returns true if the patch touches any field.
func (in UpdateTaskInput) HasChanges() bool {
	return in.Title != nil || in.Description != nil || in.TargetDate != nil ||
		in.ClearTargetDate || in.TargetTime != nil || in.Status != nil ||
		in.Priority != nil || in.JiraIssueKey != nil
}

// UpdateTaskOutput contains the updated task.
type UpdateTaskOutput struct {
	Task *domain.Task
}

// UpdateTask is the use case for partially updating a task.
type UpdateTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *UpdateTask {
	return &UpdateTask{tasks: tasks, clock: clock, logger: logger}
}

// Execute applies the patch in a single read-modify-write of the store
// and refreshes UpdatedAt.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	if !in.HasChanges() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	task, err := uc.tasks.Update(in.TaskID, func(t *domain.Task) error {
		return applyPatch(t, in, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", "updated")
	}

	return &UpdateTaskOutput{Task: task}, nil
}

func applyPatch(t *domain.Task, in UpdateTaskInput, now time.Time) error {
	if in.Title != nil {
		if *in.Title == "" {
			return domain.ErrEmptyTitle
		}
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	switch {
	case in.ClearTargetDate:
		t.TargetDate = nil
		t.TargetTime = ""
	case in.TargetDate != nil:
		t.TargetDate = in.TargetDate
	}
	if in.TargetTime != nil {
		t.TargetTime = *in.TargetTime
	}
	if in.Status != nil {
		s := domain.Status(*in.Status)
		if !s.Valid() {
			return fmt.Errorf("%q: %w", *in.Status, domain.ErrInvalidStatus)
		}
		t.Status = s
	}
	if in.Priority != nil {
		p := domain.Priority(*in.Priority)
		if !p.Valid() {
			return fmt.Errorf("%q: %w", *in.Priority, domain.ErrInvalidPriority)
		}
		t.Priority = p
	}
	if in.JiraIssueKey != nil {
		t.JiraIssueKey = *in.JiraIssueKey
	}
	t.UpdatedAt = now
	return nil
}
