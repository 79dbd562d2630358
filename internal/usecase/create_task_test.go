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

var testNow = time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)

func TestCreateTask_Defaults(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewCreateTask(repo, &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), CreateTaskInput{Title: "Write docs"})
	require.NoError(t, err)

	task := out.Task
	assert.Equal(t, 1, task.ID)
	assert.Equal(t, "Write docs", task.Title)
	assert.Equal(t, domain.StatusPending, task.Status)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Nil(t, task.TargetDate)
	assert.NotNil(t, task.TimeEntries)
	assert.Empty(t, task.TimeEntries)
	assert.Zero(t, task.TimeSpent)
	assert.Equal(t, testNow, task.CreatedAt)
	assert.Equal(t, testNow, task.UpdatedAt)
}

func TestCreateTask_AllFields(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewCreateTask(repo, &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})

	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	out, err := uc.Execute(context.Background(), CreateTaskInput{
		Title:        "Release",
		Description:  "Ship v2",
		TargetDate:   &due,
		TargetTime:   "14:00",
		Status:       "in-progress",
		Priority:     "high",
		JiraIssueKey: "PROJ-7",
	})
	require.NoError(t, err)

	task := out.Task
	assert.Equal(t, domain.StatusInProgress, task.Status)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, "14:00", task.TargetTime)
	assert.Equal(t, "PROJ-7", task.JiraIssueKey)
	require.NotNil(t, task.TargetDate)
	assert.True(t, task.TargetDate.Equal(due))
}

func TestCreateTask_SequentialIDs(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewCreateTask(repo, &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})

	first, err := uc.Execute(context.Background(), CreateTaskInput{Title: "one"})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), CreateTaskInput{Title: "two"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Task.ID)
	assert.Equal(t, 2, second.Task.ID)
}

func TestCreateTask_Validation(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewCreateTask(repo, &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})

	tests := []struct {
		name    string
		input   CreateTaskInput
		wantErr error
	}{
		{name: "empty title", input: CreateTaskInput{}, wantErr: domain.ErrEmptyTitle},
		{name: "bad status", input: CreateTaskInput{Title: "t", Status: "archived"}, wantErr: domain.ErrInvalidStatus},
		{name: "bad priority", input: CreateTaskInput{Title: "t", Priority: "urgent"}, wantErr: domain.ErrInvalidPriority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.Tasks)
		})
	}
}
