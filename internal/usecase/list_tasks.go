package usecase

import (
	"context"

	"github.com/runoshun/duke/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []domain.Task // Tasks in display order
}

// ListTasks is the use case for listing all tasks.
type ListTasks struct {
	tasks *domain.TaskList
	store domain.TaskStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks *domain.TaskList, store domain.TaskStore) *ListTasks {
	return &ListTasks{
		tasks: tasks,
		store: store,
	}
}

// Execute returns all tasks in order. Like every other command it rewrites
// the collection to storage.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	if err := saveAll(uc.store, uc.tasks); err != nil {
		return nil, err
	}
	return &ListTasksOutput{Tasks: uc.tasks.All()}, nil
}
