package usecase

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// taskDocument is the YAML representation of a task used by export and
// import. Dates are strings so documents stay hand-editable.
type taskDocument struct {
	Title        string            `yaml:"title"`
	Description  string            `yaml:"description,omitempty"`
	TargetDate   string            `yaml:"targetDate,omitempty"` // YYYY-MM-DD or RFC 3339
	TargetTime   string            `yaml:"targetTime,omitempty"` // HH:MM
	Status       string            `yaml:"status,omitempty"`
	Priority     string            `yaml:"priority,omitempty"`
	JiraIssueKey string            `yaml:"jiraIssueKey,omitempty"`
	TimeEntries  []entryDocument   `yaml:"timeEntries,omitempty"`
	ID           int               `yaml:"id,omitempty"`
	TimeSpent    int               `yaml:"timeSpent,omitempty"`
}

type entryDocument struct {
	Date    string `yaml:"date,omitempty"`
	Notes   string `yaml:"notes,omitempty"`
	Minutes int    `yaml:"minutes"`
}

// ExportTasksOutput contains the serialized collection.
type ExportTasksOutput struct {
	YAML  []byte
	Count int
}

// ExportTasks is the use case for dumping the whole collection as YAML.
type ExportTasks struct {
	tasks domain.TaskRepository
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskRepository) *ExportTasks {
	return &ExportTasks{tasks: tasks}
}

// Execute serializes all tasks in insertion order.
func (uc *ExportTasks) Execute(_ context.Context) (*ExportTasksOutput, error) {
	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	docs := make([]taskDocument, 0, len(all))
	for _, t := range all {
		docs = append(docs, toDocument(t))
	}

	data, err := yaml.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}

	return &ExportTasksOutput{YAML: data, Count: len(docs)}, nil
}

func toDocument(t *domain.Task) taskDocument {
	doc := taskDocument{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		TargetTime:   t.TargetTime,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		JiraIssueKey: t.JiraIssueKey,
		TimeSpent:    t.TimeSpent,
	}
	if t.TargetDate != nil {
		doc.TargetDate = t.TargetDate.Format(time.RFC3339)
	}
	for _, e := range t.TimeEntries {
		doc.TimeEntries = append(doc.TimeEntries, entryDocument{
			Minutes: e.Minutes,
			Date:    e.Date.Format(time.RFC3339),
			Notes:   e.Notes,
		})
	}
	return doc
}
