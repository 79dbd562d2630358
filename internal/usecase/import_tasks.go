package usecase

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// ImportTasksInput contains the YAML document to import.
type ImportTasksInput struct {
	Content []byte
	DryRun  bool // Parse and validate without creating tasks
}

// ImportTasksOutput contains the created (or would-be-created) tasks.
type ImportTasksOutput struct {
	Tasks []*domain.Task
}

// ImportTasks is the use case for bulk-creating tasks from a YAML
// document. IDs, timestamps, and the time ledger are server-assigned;
// any ids or totals present in the document are ignored.
type ImportTasks struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *ImportTasks {
	return &ImportTasks{tasks: tasks, clock: clock, logger: logger}
}

// Execute parses and validates every document entry before creating any
// task, so a malformed entry aborts the import with nothing written.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	var docs []taskDocument
	if err := yaml.Unmarshal(in.Content, &docs); err != nil {
		return nil, fmt.Errorf("parse import document: %w", err)
	}

	now := uc.clock.Now()
	built := make([]*domain.Task, 0, len(docs))
	for i, doc := range docs {
		task, err := fromDocument(doc, now)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		built = append(built, task)
	}

	if in.DryRun {
		return &ImportTasksOutput{Tasks: built}, nil
	}

	for _, task := range built {
		if err := uc.tasks.Create(task); err != nil {
			return nil, fmt.Errorf("save task %q: %w", task.Title, err)
		}
		if uc.logger != nil {
			uc.logger.Info(task.ID, "task", fmt.Sprintf("imported: %q", task.Title))
		}
	}

	return &ImportTasksOutput{Tasks: built}, nil
}

func fromDocument(doc taskDocument, now time.Time) (*domain.Task, error) {
	status, priority, err := resolveStatusPriority(doc.Status, doc.Priority)
	if err != nil {
		return nil, err
	}

	var targetDate *time.Time
	if doc.TargetDate != "" {
		parsed, err := parseImportDate(doc.TargetDate)
		if err != nil {
			return nil, err
		}
		targetDate = &parsed
	}

	return buildTask(CreateTaskInput{
		Title:        doc.Title,
		Description:  doc.Description,
		TargetDate:   targetDate,
		TargetTime:   doc.TargetTime,
		JiraIssueKey: doc.JiraIssueKey,
	}, status, priority, now)
}

// parseImportDate accepts a bare calendar date or a full RFC 3339
// timestamp.
func parseImportDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(domain.DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("cannot parse target date %q", s)
}
