package usecase

import (
	"context"
	"fmt"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// StatsOutput contains dashboard counters computed from the collection.
type StatsOutput struct {
	Total          int
	Pending        int
	InProgress     int
	Completed      int
	Overdue        int
	Upcoming       int
	DueToday       int
	CompletedToday int
	TotalMinutes   int // Sum of tracked time across all tasks
}

// Stats is the use case for the dashboard summary.
type Stats struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewStats creates a new Stats use case.
func NewStats(tasks domain.TaskRepository, clock domain.Clock) *Stats {
	return &Stats{tasks: tasks, clock: clock}
}

// Execute computes counters relative to the clock's now.
func (uc *Stats) Execute(_ context.Context) (*StatsOutput, error) {
	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	now := uc.clock.Now()
	today := now.Format(domain.DateLayout)
	reminders := domain.Classify(all, now)

	out := &StatsOutput{
		Total:    len(all),
		Overdue:  len(reminders.Overdue),
		Upcoming: len(reminders.Upcoming),
	}
	for _, t := range all {
		switch t.Status {
		case domain.StatusPending:
			out.Pending++
		case domain.StatusInProgress:
			out.InProgress++
		case domain.StatusCompleted:
			out.Completed++
			if t.OccursOn(today) {
				out.CompletedToday++
			}
		}
		if t.OccursOn(today) && !t.IsCompleted() {
			out.DueToday++
		}
		out.TotalMinutes += t.TimeSpent
	}

	return out, nil
}
