// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/vijay4057/task-tracker/internal/domain"
	"github.com/vijay4057/task-tracker/internal/infra/config"
	"github.com/vijay4057/task-tracker/internal/infra/jira"
	"github.com/vijay4057/task-tracker/internal/infra/jsonstore"
	"github.com/vijay4057/task-tracker/internal/infra/logging"
	"github.com/vijay4057/task-tracker/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	StoreInitializer domain.StoreInitializer
	Tracker          domain.IssueTracker
	Clock            domain.Clock
	Logger           domain.Logger

	// Configuration
	Config  *domain.Config
	DataDir string
}

// New creates a new Container, resolving the data directory and loading
// configuration. Incomplete tracker credentials are not an error; tracker
// operations fail fast individually instead.
func New() (*Container, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.NewLoader(dataDir).Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	store := jsonstore.New(filepath.Join(dataDir, domain.StoreFileName))
	logger := logging.New(dataDir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Tasks:            store,
		StoreInitializer: store,
		Tracker:          jira.NewClient(cfg.Jira),
		Clock:            domain.RealClock{},
		Logger:           logger,
		Config:           cfg,
		DataDir:          dataDir,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, tasks domain.TaskRepository, storeInit domain.StoreInitializer, tracker domain.IssueTracker, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:            tasks,
		StoreInitializer: storeInit,
		Tracker:          tracker,
		Clock:            clock,
		Logger:           logger,
		Config:           cfg,
	}
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer)
}

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Tasks, c.Clock, c.Logger)
}

// GetTaskUseCase returns a new GetTask use case.
func (c *Container) GetTaskUseCase() *usecase.GetTask {
	return usecase.NewGetTask(c.Tasks)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Clock)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Tasks, c.Clock, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// LogTimeUseCase returns a new LogTime use case.
func (c *Container) LogTimeUseCase() *usecase.LogTime {
	return usecase.NewLogTime(c.Tasks, c.Tracker, c.Clock, c.Logger)
}

// RemindersUseCase returns a new Reminders use case.
func (c *Container) RemindersUseCase() *usecase.Reminders {
	return usecase.NewReminders(c.Tasks, c.Clock)
}

// TasksOnDateUseCase returns a new TasksOnDate use case.
func (c *Container) TasksOnDateUseCase() *usecase.TasksOnDate {
	return usecase.NewTasksOnDate(c.Tasks)
}

// StatsUseCase returns a new Stats use case.
func (c *Container) StatsUseCase() *usecase.Stats {
	return usecase.NewStats(c.Tasks, c.Clock)
}

// CreateSubtaskUseCase returns a new CreateSubtask use case.
func (c *Container) CreateSubtaskUseCase() *usecase.CreateSubtask {
	return usecase.NewCreateSubtask(c.Tasks, c.Tracker, c.Clock, c.Logger)
}

// LinkTaskUseCase returns a new LinkTask use case.
func (c *Container) LinkTaskUseCase() *usecase.LinkTask {
	return usecase.NewLinkTask(c.Tasks, c.Tracker, c.Clock, c.Logger)
}

// TrackerStatusUseCase returns a new TrackerStatus use case.
func (c *Container) TrackerStatusUseCase() *usecase.TrackerStatus {
	return usecase.NewTrackerStatus(c.Config.Jira)
}

// GetRemoteIssueUseCase returns a new GetRemoteIssue use case.
func (c *Container) GetRemoteIssueUseCase() *usecase.GetRemoteIssue {
	return usecase.NewGetRemoteIssue(c.Tracker)
}

// LogRemoteWorkUseCase returns a new LogRemoteWork use case.
func (c *Container) LogRemoteWorkUseCase() *usecase.LogRemoteWork {
	return usecase.NewLogRemoteWork(c.Tracker)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.Clock, c.Logger)
}
