package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay4057/task-tracker/internal/domain"
	"github.com/vijay4057/task-tracker/internal/testutil"
)

func TestLinkTask_ValidatesThenLinks(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedTask(t, repo, "t")
	tracker := testutil.NewMockIssueTracker()
	tracker.Issues["PROJ-42"] = &domain.RemoteIssue{Key: "PROJ-42", Summary: "A bug"}
	uc := NewLinkTask(repo, tracker, &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), LinkTaskInput{TaskID: 1, IssueKey: "PROJ-42"})
	require.NoError(t, err)

	assert.Equal(t, "PROJ-42", out.Task.JiraIssueKey)
	require.NotNil(t, out.Issue)
	assert.Equal(t, "A bug", out.Issue.Summary)
	assert.Equal(t, testNow, out.Task.UpdatedAt)
}

func TestLinkTask_InvalidKeyLeavesTaskUntouched(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	task := seedTask(t, repo, "t")
	tracker := testutil.NewMockIssueTracker()
	uc := NewLinkTask(repo, tracker, &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), LinkTaskInput{TaskID: task.ID, IssueKey: "PROJ-404"})
	assert.ErrorIs(t, err, domain.ErrRemoteNotFound)

	stored, err := repo.Get(task.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.JiraIssueKey)
}

func TestLinkTask_EmptyKeyUnlinksWithoutRemoteCall(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	task := seedTask(t, repo, "t")
	task.JiraIssueKey = "PROJ-42"
	tracker := testutil.NewMockIssueTracker()
	uc := NewLinkTask(repo, tracker, &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), LinkTaskInput{TaskID: task.ID})
	require.NoError(t, err)

	assert.Empty(t, out.Task.JiraIssueKey)
	assert.Nil(t, out.Issue)
	assert.Empty(t, tracker.GetIssueCalls)
}

func TestLinkTask_MissingTask(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	tracker := testutil.NewMockIssueTracker()
	tracker.Issues["PROJ-42"] = &domain.RemoteIssue{Key: "PROJ-42"}
	uc := NewLinkTask(repo, tracker, &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), LinkTaskInput{TaskID: 99, IssueKey: "PROJ-42"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
