package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// TasksOnDateInput contains the calendar date to query.
type TasksOnDateInput struct {
	Date string // YYYY-MM-DD
}

// TasksOnDateOutput contains the tasks due on the queried date.
type TasksOnDateOutput struct {
	Tasks []*domain.Task
}

// TasksOnDate is the use case for the calendar-date query: all tasks
// whose target calendar date equals the given date, ignoring time of day.
type TasksOnDate struct {
	tasks domain.TaskRepository
}

// NewTasksOnDate creates a new TasksOnDate use case.
func NewTasksOnDate(tasks domain.TaskRepository) *TasksOnDate {
	return &TasksOnDate{tasks: tasks}
}

// Execute returns tasks matching the date in insertion order.
func (uc *TasksOnDate) Execute(_ context.Context, in TasksOnDateInput) (*TasksOnDateOutput, error) {
	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return nil, fmt.Errorf("%q: %w", in.Date, domain.ErrInvalidDate)
	}

	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &TasksOnDateOutput{Tasks: domain.TasksOn(all, in.Date)}, nil
}
