// Package domain contains core business entities and interfaces.
package domain

import "time"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"     // Created, not started
	StatusInProgress Status = "in-progress" // Being worked on
	StatusCompleted  Status = "completed"   // Done
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// Valid returns true if the status is a recognized value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// AllPriorities returns all valid priority values.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Valid returns true if the priority is a recognized value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Weight returns the sort weight of the priority (high > medium > low).
// Unrecognized priorities weigh 0 and sort below low.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// TimeEntry is an immutable record of work performed against a task.
// Entries are only ever appended; the parent task's TimeSpent total is
// updated in the same store mutation.
type TimeEntry struct {
	Date    time.Time `json:"date"`    // When the work occurred
	Notes   string    `json:"notes"`   // Free text, may be empty
	ID      int       `json:"id"`      // Unique within the parent task
	Minutes int       `json:"minutes"` // Duration in minutes
}

// Task represents a tracked unit of work.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`            // Refreshed on every mutation
	TargetDate   *time.Time  `json:"targetDate"`           // Due date (nil = unscheduled)
	Title        string      `json:"title"`                // Required
	Description  string      `json:"description"`          // Optional
	TargetTime   string      `json:"targetTime,omitempty"` // "HH:MM" time-of-day override for TargetDate
	Status       Status      `json:"status"`
	Priority     Priority    `json:"priority"`
	JiraIssueKey string      `json:"jiraIssueKey,omitempty"` // Remote issue reference (empty = not linked)
	TimeEntries  []TimeEntry `json:"timeEntries"`            // Insertion order = entry order
	ID           int         `json:"id"`                     // Assigned at creation, immutable
	TimeSpent    int         `json:"timeSpent"`              // Minutes; always sum of TimeEntries
}

// IsCompleted returns true if the task is in the completed state.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsLinked returns true if the task references a remote issue.
func (t *Task) IsLinked() bool {
	return t.JiraIssueKey != ""
}

// AppendTimeEntry appends an immutable time entry and updates the
// running total. The caller is responsible for persisting the task and
// refreshing UpdatedAt in the same store mutation.
func (t *Task) AppendTimeEntry(minutes int, notes string, date time.Time) TimeEntry {
	entry := TimeEntry{
		ID:      len(t.TimeEntries) + 1,
		Minutes: minutes,
		Date:    date,
		Notes:   notes,
	}
	t.TimeEntries = append(t.TimeEntries, entry)
	t.TimeSpent += minutes
	return entry
}
