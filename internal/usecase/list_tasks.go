package usecase

import (
	"context"
	"fmt"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// ListTasksInput contains the filter and sort for listing tasks.
type ListTasksInput struct {
	Filter string // all, pending, completed, overdue (empty = all)
	SortBy string // date, priority, title (empty = date)
}

// ListTasksOutput contains the filtered, sorted projection.
type ListTasksOutput struct {
	Tasks []*domain.Task
}

// ListTasks is the use case for listing tasks as a read-only view.
type ListTasks struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, clock domain.Clock) *ListTasks {
	return &ListTasks{tasks: tasks, clock: clock}
}

// Execute returns the task collection filtered then stably sorted.
// The overdue filter is evaluated against the clock at call time.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	filter, err := domain.ParseFilter(in.Filter)
	if err != nil {
		return nil, err
	}
	sortBy, err := domain.ParseSortKey(in.SortBy)
	if err != nil {
		return nil, err
	}

	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &ListTasksOutput{
		Tasks: domain.ComposeView(all, filter, sortBy, uc.clock.Now()),
	}, nil
}
