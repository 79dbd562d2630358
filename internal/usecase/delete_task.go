package usecase

import (
	"context"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int
}

// DeleteTask is the use case for permanently deleting a task.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{tasks: tasks, logger: logger}
}

// Execute removes the task from the store. There is no soft delete.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) error {
	if err := uc.tasks.Delete(in.TaskID); err != nil {
		return err
	}
	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", "deleted")
	}
	return nil
}
