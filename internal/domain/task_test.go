package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.Valid(), "status %q", s)
	}
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}

func TestPriority_Valid(t *testing.T) {
	for _, p := range AllPriorities() {
		assert.True(t, p.Valid(), "priority %q", p)
	}
	assert.False(t, Priority("urgent").Valid())
	assert.False(t, Priority("").Valid())
}

func TestPriority_Weight(t *testing.T) {
	assert.Greater(t, PriorityHigh.Weight(), PriorityMedium.Weight())
	assert.Greater(t, PriorityMedium.Weight(), PriorityLow.Weight())
	assert.Greater(t, PriorityLow.Weight(), Priority("urgent").Weight())
}

func TestTask_AppendTimeEntry(t *testing.T) {
	task := &Task{Title: "t", TimeEntries: []TimeEntry{}}
	when := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	t.Run("entry IDs and total accumulate", func(t *testing.T) {
		first := task.AppendTimeEntry(30, "morning", when)
		assert.Equal(t, 1, first.ID)
		assert.Equal(t, 30, task.TimeSpent)

		second := task.AppendTimeEntry(45, "", when.Add(time.Hour))
		assert.Equal(t, 2, second.ID)
		assert.Equal(t, 75, task.TimeSpent)
		require.Len(t, task.TimeEntries, 2)
		assert.Equal(t, "morning", task.TimeEntries[0].Notes)
	})

	t.Run("zero and negative minutes are recorded as given", func(t *testing.T) {
		task.AppendTimeEntry(0, "pause", when)
		assert.Equal(t, 75, task.TimeSpent)

		task.AppendTimeEntry(-15, "correction", when)
		assert.Equal(t, 60, task.TimeSpent)
		assert.Equal(t, 4, task.TimeEntries[3].ID)
	})
}

func TestTask_IsLinked(t *testing.T) {
	assert.False(t, (&Task{}).IsLinked())
	assert.True(t, (&Task{JiraIssueKey: "PROJ-1"}).IsLinked())
}
