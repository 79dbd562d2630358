package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// CreateTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type CreateTaskInput struct {
	TargetDate   *time.Time // Due date (optional)
	Title        string     // Required
	Description  string     // Optional
	TargetTime   string     // "HH:MM" override (optional)
	Status       string     // Defaults to pending
	Priority     string     // Defaults to medium
	JiraIssueKey string     // Remote issue reference (optional)
}

// CreateTaskOutput contains the result of creating a new task.
type CreateTaskOutput struct {
	Task *domain.Task
}

// CreateTask is the use case for creating a new task.
type CreateTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *CreateTask {
	return &CreateTask{tasks: tasks, clock: clock, logger: logger}
}

// Execute creates a new task with server-assigned ID, timestamps, and
// defaults (status pending, priority medium, empty ledger).
func (uc *CreateTask) Execute(_ context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	status, priority, err := resolveStatusPriority(in.Status, in.Priority)
	if err != nil {
		return nil, err
	}

	task, err := buildTask(in, status, priority, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.tasks.Create(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("created: %q", task.Title))
	}

	return &CreateTaskOutput{Task: task}, nil
}

// buildTask assembles an unsaved task from input fields.
func buildTask(in CreateTaskInput, status domain.Status, priority domain.Priority, now time.Time) (*domain.Task, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	return &domain.Task{
		Title:        in.Title,
		Description:  in.Description,
		TargetDate:   in.TargetDate,
		TargetTime:   in.TargetTime,
		Status:       status,
		Priority:     priority,
		TimeSpent:    0,
		TimeEntries:  []domain.TimeEntry{},
		JiraIssueKey: in.JiraIssueKey,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// resolveStatusPriority applies defaults for empty values and rejects
// unrecognized ones.
func resolveStatusPriority(status, priority string) (domain.Status, domain.Priority, error) {
	s := domain.Status(status)
	if status == "" {
		s = domain.StatusPending
	} else if !s.Valid() {
		return "", "", fmt.Errorf("%q: %w", status, domain.ErrInvalidStatus)
	}

	p := domain.Priority(priority)
	if priority == "" {
		p = domain.PriorityMedium
	} else if !p.Valid() {
		return "", "", fmt.Errorf("%q: %w", priority, domain.ErrInvalidPriority)
	}

	return s, p, nil
}
