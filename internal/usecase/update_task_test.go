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

func seedTask(t *testing.T, repo *testutil.MockTaskRepository, title string) *domain.Task {
	t.Helper()
	created := testNow.Add(-24 * time.Hour)
	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	task := &domain.Task{
		Title:       title,
		Description: "original",
		TargetDate:  &due,
		TargetTime:  "09:00",
		Status:      domain.StatusPending,
		Priority:    domain.PriorityMedium,
		TimeEntries: []domain.TimeEntry{},
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	require.NoError(t, repo.Create(task))
	return task
}

func strPtr(s string) *string { return &s }

func TestUpdateTask_PartialPatch(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	task := seedTask(t, repo, "original title")
	uc := NewUpdateTask(repo, &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), UpdateTaskInput{
		TaskID: task.ID,
		Title:  strPtr("new title"),
	})
	require.NoError(t, err)

	// Only the patched field changes.
	assert.Equal(t, "new title", out.Task.Title)
	assert.Equal(t, "original", out.Task.Description)
	assert.Equal(t, "09:00", out.Task.TargetTime)
	assert.Equal(t, domain.StatusPending, out.Task.Status)
	assert.Equal(t, testNow, out.Task.UpdatedAt)
	assert.NotEqual(t, out.Task.CreatedAt, out.Task.UpdatedAt)
}

func TestUpdateTask_ClearTargetDate(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	task := seedTask(t, repo, "dated")
	uc := NewUpdateTask(repo, &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})

	newDue := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	out, err := uc.Execute(context.Background(), UpdateTaskInput{
		TaskID:          task.ID,
		TargetDate:      &newDue, // clear wins over a new date
		ClearTargetDate: true,
	})
	require.NoError(t, err)
	assert.Nil(t, out.Task.TargetDate)
	assert.Empty(t, out.Task.TargetTime)
}

func TestUpdateTask_EmptyPatchRejected(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedTask(t, repo, "t")
	uc := NewUpdateTask(repo, &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), UpdateTaskInput{TaskID: 1})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}

func TestUpdateTask_Validation(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	task := seedTask(t, repo, "t")
	uc := NewUpdateTask(repo, &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})

	tests := []struct {
		name    string
		input   UpdateTaskInput
		wantErr error
	}{
		{
			name:    "empty title",
			input:   UpdateTaskInput{TaskID: task.ID, Title: strPtr("")},
			wantErr: domain.ErrEmptyTitle,
		},
		{
			name:    "bad status",
			input:   UpdateTaskInput{TaskID: task.ID, Status: strPtr("archived")},
			wantErr: domain.ErrInvalidStatus,
		},
		{
			name:    "bad priority",
			input:   UpdateTaskInput{TaskID: task.ID, Priority: strPtr("urgent")},
			wantErr: domain.ErrInvalidPriority,
		},
		{
			name:    "missing task",
			input:   UpdateTaskInput{TaskID: 99, Title: strPtr("x")},
			wantErr: domain.ErrTaskNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Failed patches leave the task untouched.
	stored, err := repo.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", stored.Title)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestUpdateTask_CompleteAndReopen(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	task := seedTask(t, repo, "t")
	uc := NewUpdateTask(repo, &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), UpdateTaskInput{TaskID: task.ID, Status: strPtr("completed")})
	require.NoError(t, err)
	assert.True(t, out.Task.IsCompleted())

	out, err = uc.Execute(context.Background(), UpdateTaskInput{TaskID: task.ID, Status: strPtr("pending")})
	require.NoError(t, err)
	assert.False(t, out.Task.IsCompleted())
}
