// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"time"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is an in-memory test double for
// domain.TaskRepository. Tasks are held in insertion order.
type MockTaskRepository struct {
	Tasks     []*domain.Task
	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
	NextIDN   int
}

// NewMockTaskRepository creates a new MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{NextIDN: 1}
}

// List returns all tasks in insertion order.
func (m *MockTaskRepository) List() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*domain.Task, len(m.Tasks))
	copy(out, m.Tasks)
	return out, nil
}

// Get retrieves a task by ID. Returns nil if not found.
func (m *MockTaskRepository) Get(id int) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, t := range m.Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

// Create assigns the next ID and appends the task.
func (m *MockTaskRepository) Create(task *domain.Task) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	task.ID = m.NextIDN
	m.NextIDN++
	m.Tasks = append(m.Tasks, task)
	return nil
}

// Update applies fn to the stored task.
func (m *MockTaskRepository) Update(id int, fn func(*domain.Task) error) (*domain.Task, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	for _, t := range m.Tasks {
		if t.ID == id {
			if err := fn(t); err != nil {
				return nil, err
			}
			t.ID = id
			return t, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(id int) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i, t := range m.Tasks {
		if t.ID == id {
			m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// Replace swaps the collection, reassigning IDs from the counter.
func (m *MockTaskRepository) Replace(tasks []*domain.Task) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Tasks = nil
	for _, t := range tasks {
		t.ID = m.NextIDN
		m.NextIDN++
		m.Tasks = append(m.Tasks, t)
	}
	return nil
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	InitErr     error
	Initialized bool
	InitCalls   int
}

// Initialize records the call.
func (m *MockStoreInitializer) Initialize() error {
	m.InitCalls++
	if m.InitErr != nil {
		return m.InitErr
	}
	m.Initialized = true
	return nil
}

// IsInitialized reports the configured state.
func (m *MockStoreInitializer) IsInitialized() bool {
	return m.Initialized
}

// MockIssueTracker is a test double for domain.IssueTracker. Calls are
// recorded so tests can assert ordering and payloads.
type MockIssueTracker struct {
	Issues     map[string]*domain.RemoteIssue
	IssueTypes []domain.IssueType
	Created    *domain.CreatedIssue

	GetIssueErr      error
	GetTypesErr      error
	CreateSubtaskErr error
	LogWorkErr       error
	UpdateWorklogErr error

	WorklogIDN string

	GetIssueCalls      []string
	CreateSubtaskCalls []SubtaskCall
	LogWorkCalls       []WorklogCall
	UpdateWorklogCalls []WorklogCall

	NotConfigured bool
}

// SubtaskCall records one CreateSubtask invocation.
type SubtaskCall struct {
	ParentKey   string
	Summary     string
	Description string
}

// WorklogCall records one LogWork or UpdateWorklog invocation.
type WorklogCall struct {
	Started   *time.Time
	IssueKey  string
	Comment   string
	WorklogID string
	Seconds   int
}

// NewMockIssueTracker creates a configured tracker with no issues.
func NewMockIssueTracker() *MockIssueTracker {
	return &MockIssueTracker{
		Issues:     make(map[string]*domain.RemoteIssue),
		WorklogIDN: "10000",
	}
}

// Configured reports the configured state.
func (m *MockIssueTracker) Configured() bool {
	return !m.NotConfigured
}

// GetIssue returns the configured issue or ErrRemoteNotFound.
func (m *MockIssueTracker) GetIssue(_ context.Context, key string) (*domain.RemoteIssue, error) {
	m.GetIssueCalls = append(m.GetIssueCalls, key)
	if m.GetIssueErr != nil {
		return nil, m.GetIssueErr
	}
	issue, ok := m.Issues[key]
	if !ok {
		return nil, domain.ErrRemoteNotFound
	}
	return issue, nil
}

// GetIssueTypes returns the configured type list.
func (m *MockIssueTracker) GetIssueTypes(_ context.Context, _ string) ([]domain.IssueType, error) {
	if m.GetTypesErr != nil {
		return nil, m.GetTypesErr
	}
	return m.IssueTypes, nil
}

// CreateSubtask records the call and returns the configured result.
func (m *MockIssueTracker) CreateSubtask(_ context.Context, parentKey, summary, description string) (*domain.CreatedIssue, error) {
	m.CreateSubtaskCalls = append(m.CreateSubtaskCalls, SubtaskCall{
		ParentKey:   parentKey,
		Summary:     summary,
		Description: description,
	})
	if m.CreateSubtaskErr != nil {
		return nil, m.CreateSubtaskErr
	}
	return m.Created, nil
}

// LogWork records the call and returns the configured worklog ID.
func (m *MockIssueTracker) LogWork(_ context.Context, issueKey string, timeSpentSeconds int, comment string, started *time.Time) (string, error) {
	m.LogWorkCalls = append(m.LogWorkCalls, WorklogCall{
		IssueKey: issueKey,
		Seconds:  timeSpentSeconds,
		Comment:  comment,
		Started:  started,
	})
	if m.LogWorkErr != nil {
		return "", m.LogWorkErr
	}
	return m.WorklogIDN, nil
}

// UpdateWorklog records the call and returns the worklog ID.
func (m *MockIssueTracker) UpdateWorklog(_ context.Context, issueKey, worklogID string, timeSpentSeconds int, comment string) (string, error) {
	m.UpdateWorklogCalls = append(m.UpdateWorklogCalls, WorklogCall{
		IssueKey:  issueKey,
		WorklogID: worklogID,
		Seconds:   timeSpentSeconds,
		Comment:   comment,
	})
	if m.UpdateWorklogErr != nil {
		return "", m.UpdateWorklogErr
	}
	return worklogID, nil
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(int, string, string) {}

// Info discards the message.
func (NopLogger) Info(int, string, string) {}

// Warn discards the message.
func (NopLogger) Warn(int, string, string) {}

// Error discards the message.
func (NopLogger) Error(int, string, string) {}

// Interface assertions.
var (
	_ domain.Clock            = (*MockClock)(nil)
	_ domain.TaskRepository   = (*MockTaskRepository)(nil)
	_ domain.StoreInitializer = (*MockStoreInitializer)(nil)
	_ domain.IssueTracker     = (*MockIssueTracker)(nil)
	_ domain.Logger           = NopLogger{}
)
