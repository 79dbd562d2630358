package domain

import (
	"context"
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error

	// IsInitialized checks if the store exists.
	IsInitialized() bool
}

// TaskRepository manages task persistence. The backing store is a single
// document; every mutating method performs an atomic read-modify-write of
// the whole collection.
type TaskRepository interface {
	// List retrieves all tasks in insertion order.
	List() ([]*Task, error)

	// Get retrieves a task by ID. Returns nil if not found.
	Get(id int) (*Task, error)

	// Create assigns the next ID to the task and appends it to the store.
	Create(task *Task) error

	// Update applies fn to the stored task inside a single
	// read-modify-write and returns the updated task.
	// Returns ErrTaskNotFound if the ID does not resolve.
	Update(id int, fn func(*Task) error) (*Task, error)

	// Delete removes a task permanently.
	// Returns ErrTaskNotFound if the ID does not resolve.
	Delete(id int) error

	// Replace swaps the entire collection, reassigning IDs from the
	// store counter. Used by bulk import.
	Replace(tasks []*Task) error
}

// RemoteIssue is remote issue metadata fetched on demand. It is not
// persisted beyond the task's JiraIssueKey reference.
type RemoteIssue struct {
	Key        string // Issue key, e.g. "PROJ-42"
	Summary    string
	Status     string // Remote status display name
	ProjectKey string // Owning project key
}

// IssueType is a remote issue-type definition.
type IssueType struct {
	ID      string
	Name    string
	Subtask bool // True if the type can be created under a parent issue
}

// CreatedIssue is the result of creating a remote subtask.
type CreatedIssue struct {
	Key string // e.g. "PROJ-43"
	ID  string // Remote numeric ID
	URL string // Browse URL, {baseURL}/browse/{key}
}

// IssueTracker is the gateway to the external issue-tracking system.
// Every call is a blocking network operation and must not be made while
// holding the task store's lock. Implementations do not retry.
type IssueTracker interface {
	// Configured reports whether all required credentials are present.
	Configured() bool

	// GetIssue fetches metadata for a remote issue.
	GetIssue(ctx context.Context, key string) (*RemoteIssue, error)

	// GetIssueTypes fetches the issue-type definitions of a project.
	GetIssueTypes(ctx context.Context, projectKey string) ([]IssueType, error)

	// CreateSubtask creates a subtask under the parent issue. The parent's
	// project and its subtask-capable issue type are resolved first; fails
	// with ErrNoSubtaskType if the project has none.
	CreateSubtask(ctx context.Context, parentKey, summary, description string) (*CreatedIssue, error)

	// LogWork posts a work log against an issue and returns the remote
	// work-log ID. An empty comment is replaced by a fixed placeholder;
	// a nil started time is omitted from the payload.
	LogWork(ctx context.Context, issueKey string, timeSpentSeconds int, comment string, started *time.Time) (string, error)

	// UpdateWorklog updates an existing work log.
	UpdateWorklog(ctx context.Context, issueKey, worklogID string, timeSpentSeconds int, comment string) (string, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger provides leveled logging scoped to an optional task.
type Logger interface {
	// Debug logs a debug message. taskID 0 means no task context.
	Debug(taskID int, category, msg string)

	// Info logs an info message.
	Info(taskID int, category, msg string)

	// Warn logs a warning message.
	Warn(taskID int, category, msg string)

	// Error logs an error message.
	Error(taskID int, category, msg string)
}

// ConfigLoader loads configuration from files and the environment.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- file <- env).
	Load() (*Config, error)
}
