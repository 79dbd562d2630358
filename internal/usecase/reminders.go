package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// RemindersInput contains the parameters for computing reminders.
type RemindersInput struct {
	Now *time.Time // Reference instant; nil = clock now
}

// RemindersOutput contains the overdue/upcoming partition.
type RemindersOutput struct {
	Reminders domain.Reminders
}

// Reminders is the use case for classifying tasks into overdue and
// upcoming buckets.
type Reminders struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewReminders creates a new Reminders use case.
func NewReminders(tasks domain.TaskRepository, clock domain.Clock) *Reminders {
	return &Reminders{tasks: tasks, clock: clock}
}

// Execute partitions the collection relative to the reference instant.
// The result is deterministic for a given instant and store state.
func (uc *Reminders) Execute(_ context.Context, in RemindersInput) (*RemindersOutput, error) {
	now := uc.clock.Now()
	if in.Now != nil {
		now = *in.Now
	}

	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &RemindersOutput{Reminders: domain.Classify(all, now)}, nil
}
