package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/runoshun/duke/internal/domain"
)

// AddDeadlineInput contains the parameters for adding a Deadline.
// Fields are ordered to minimize memory padding.
type AddDeadlineInput struct {
	Due         time.Time // Due date-time
	Description string    // Task description (required)
	Params      string    // Raw parameter text, reported on failure
}

// AddDeadlineOutput contains the result of adding a Deadline.
type AddDeadlineOutput struct {
	Task *domain.Deadline // The created task
	Size int              // Collection size after the add
}

// AddDeadline is the use case for adding a Deadline.
type AddDeadline struct {
	tasks  *domain.TaskList
	store  domain.TaskStore
	logger *slog.Logger
}

// NewAddDeadline creates a new AddDeadline use case.
func NewAddDeadline(tasks *domain.TaskList, store domain.TaskStore, logger *slog.Logger) *AddDeadline {
	return &AddDeadline{
		tasks:  tasks,
		store:  store,
		logger: logger,
	}
}

// Execute appends a Deadline and saves the collection.
func (uc *AddDeadline) Execute(_ context.Context, in AddDeadlineInput) (*AddDeadlineOutput, error) {
	task, err := uc.tasks.AddDeadline(in.Description, in.Due)
	if err != nil {
		return nil, commandError(domain.KindDeadline, in.Params, err)
	}

	if err := saveAll(uc.store, uc.tasks); err != nil {
		return nil, err
	}

	uc.logger.Debug("task added", "kind", domain.KindDeadline, "size", uc.tasks.Size())
	return &AddDeadlineOutput{Task: task, Size: uc.tasks.Size()}, nil
}
