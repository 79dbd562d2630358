package usecase

import (
	"context"
	"fmt"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// GetTaskInput contains the parameters for fetching a task.
type GetTaskInput struct {
	TaskID int
}

// GetTaskOutput contains the fetched task.
type GetTaskOutput struct {
	Task *domain.Task
}

// GetTask is the use case for fetching a single task.
type GetTask struct {
	tasks domain.TaskRepository
}

// NewGetTask creates a new GetTask use case.
func NewGetTask(tasks domain.TaskRepository) *GetTask {
	return &GetTask{tasks: tasks}
}

// Execute fetches the task by ID.
func (uc *GetTask) Execute(_ context.Context, in GetTaskInput) (*GetTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return &GetTaskOutput{Task: task}, nil
}
