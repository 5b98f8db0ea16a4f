package usecase

import (
	"context"
	"log/slog"

	"github.com/runoshun/duke/internal/domain"
)

// AddToDoInput contains the parameters for adding a ToDo.
type AddToDoInput struct {
	Description string // Task description (required)
}

// AddToDoOutput contains the result of adding a ToDo.
type AddToDoOutput struct {
	Task *domain.ToDo // The created task
	Size int          // Collection size after the add
}

// AddToDo is the use case for adding a ToDo.
type AddToDo struct {
	tasks  *domain.TaskList
	store  domain.TaskStore
	logger *slog.Logger
}

// NewAddToDo creates a new AddToDo use case.
func NewAddToDo(tasks *domain.TaskList, store domain.TaskStore, logger *slog.Logger) *AddToDo {
	return &AddToDo{
		tasks:  tasks,
		store:  store,
		logger: logger,
	}
}

// Execute appends a ToDo and saves the collection.
func (uc *AddToDo) Execute(_ context.Context, in AddToDoInput) (*AddToDoOutput, error) {
	task, err := uc.tasks.AddToDo(in.Description)
	if err != nil {
		return nil, commandError(domain.KindToDo, in.Description, err)
	}

	if err := saveAll(uc.store, uc.tasks); err != nil {
		return nil, err
	}

	uc.logger.Debug("task added", "kind", domain.KindToDo, "size", uc.tasks.Size())
	return &AddToDoOutput{Task: task, Size: uc.tasks.Size()}, nil
}
