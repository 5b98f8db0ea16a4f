package usecase

import (
	"context"
	"log/slog"

	"github.com/runoshun/duke/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Params string // Raw parameter text, reported on failure
	Index  int    // Zero-based task index
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task domain.Task // The removed task
	Size int         // Collection size after the delete
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks  *domain.TaskList
	store  domain.TaskStore
	logger *slog.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks *domain.TaskList, store domain.TaskStore, logger *slog.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		store:  store,
		logger: logger,
	}
}

// Execute removes the task at in.Index and saves the collection.
// Later tasks shift down by one.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task, err := uc.tasks.Delete(in.Index)
	if err != nil {
		return nil, commandError(domain.KindDelete, in.Params, err)
	}

	if err := saveAll(uc.store, uc.tasks); err != nil {
		return nil, err
	}

	uc.logger.Debug("task deleted", "index", in.Index, "size", uc.tasks.Size())
	return &DeleteTaskOutput{Task: task, Size: uc.tasks.Size()}, nil
}
