package usecase

import (
	"context"
	"log/slog"

	"github.com/runoshun/duke/internal/domain"
)

// MarkDoneInput contains the parameters for marking a task done.
type MarkDoneInput struct {
	Params string // Raw parameter text, reported on failure
	Index  int    // Zero-based task index
}

// MarkDoneOutput contains the result of marking a task done.
type MarkDoneOutput struct {
	Task domain.Task // The task, now done
}

// MarkDone is the use case for marking a task as done.
// Marking an already-done task succeeds.
type MarkDone struct {
	tasks  *domain.TaskList
	store  domain.TaskStore
	logger *slog.Logger
}

// NewMarkDone creates a new MarkDone use case.
func NewMarkDone(tasks *domain.TaskList, store domain.TaskStore, logger *slog.Logger) *MarkDone {
	return &MarkDone{
		tasks:  tasks,
		store:  store,
		logger: logger,
	}
}

// Execute marks the task at in.Index done and saves the collection.
func (uc *MarkDone) Execute(_ context.Context, in MarkDoneInput) (*MarkDoneOutput, error) {
	task, err := uc.tasks.MarkDone(in.Index)
	if err != nil {
		return nil, commandError(domain.KindDone, in.Params, err)
	}

	if err := saveAll(uc.store, uc.tasks); err != nil {
		return nil, err
	}

	uc.logger.Debug("task done", "index", in.Index)
	return &MarkDoneOutput{Task: task}, nil
}
