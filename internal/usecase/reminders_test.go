package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay4057/task-tracker/internal/domain"
	"github.com/vijay4057/task-tracker/internal/testutil"
)

func seedDatedTask(t *testing.T, repo *testutil.MockTaskRepository, title string, due time.Time, at string) *domain.Task {
	t.Helper()
	task := &domain.Task{
		Title:       title,
		TargetDate:  &due,
		TargetTime:  at,
		Status:      domain.StatusPending,
		Priority:    domain.PriorityMedium,
		TimeEntries: []domain.TimeEntry{},
	}
	require.NoError(t, repo.Create(task))
	return task
}

func TestReminders_Partition(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedDatedTask(t, repo, "overdue", testNow.Add(-2*time.Hour), "")
	seedDatedTask(t, repo, "soon", testNow.Add(3*time.Hour), "")
	seedDatedTask(t, repo, "far", testNow.Add(48*time.Hour), "")
	done := seedDatedTask(t, repo, "done", testNow.Add(-24*time.Hour), "")
	done.Status = domain.StatusCompleted

	uc := NewReminders(repo, &testutil.MockClock{NowTime: testNow})
	out, err := uc.Execute(context.Background(), RemindersInput{})
	require.NoError(t, err)

	require.Len(t, out.Reminders.Overdue, 1)
	assert.Equal(t, "overdue", out.Reminders.Overdue[0].Title)
	require.Len(t, out.Reminders.Upcoming, 1)
	assert.Equal(t, "soon", out.Reminders.Upcoming[0].Title)
}

func TestReminders_ExplicitReferenceInstant(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedDatedTask(t, repo, "task", testNow, "")

	uc := NewReminders(repo, &testutil.MockClock{NowTime: testNow.Add(72 * time.Hour)})
	ref := testNow.Add(-time.Hour)
	out, err := uc.Execute(context.Background(), RemindersInput{Now: &ref})
	require.NoError(t, err)

	// Relative to the supplied instant the task is still upcoming.
	assert.Empty(t, out.Reminders.Overdue)
	assert.Len(t, out.Reminders.Upcoming, 1)
}

func TestTasksOnDate(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedDatedTask(t, repo, "morning", time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), "")
	seedDatedTask(t, repo, "evening", time.Date(2024, 1, 10, 21, 0, 0, 0, time.UTC), "")
	seedDatedTask(t, repo, "other day", time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC), "")

	uc := NewTasksOnDate(repo)

	t.Run("matches the calendar date", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), TasksOnDateInput{Date: "2024-01-10"})
		require.NoError(t, err)
		require.Len(t, out.Tasks, 2)
		assert.Equal(t, "morning", out.Tasks[0].Title)
		assert.Equal(t, "evening", out.Tasks[1].Title)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), TasksOnDateInput{Date: "01/10/2024"})
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestStats(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	overdue := seedDatedTask(t, repo, "overdue", testNow.Add(-2*time.Hour), "")
	overdue.AppendTimeEntry(30, "", testNow)
	today := seedDatedTask(t, repo, "today", testNow.Add(3*time.Hour), "")
	today.Status = domain.StatusInProgress
	today.AppendTimeEntry(45, "", testNow)
	doneToday := seedDatedTask(t, repo, "done today", testNow, "")
	doneToday.Status = domain.StatusCompleted

	uc := NewStats(repo, &testutil.MockClock{NowTime: testNow})
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 1, out.Pending)
	assert.Equal(t, 1, out.InProgress)
	assert.Equal(t, 1, out.Completed)
	assert.Equal(t, 1, out.Overdue)
	assert.Equal(t, 1, out.Upcoming)
	assert.Equal(t, 1, out.CompletedToday)
	assert.Equal(t, 75, out.TotalMinutes)
}
