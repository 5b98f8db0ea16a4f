package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/runoshun/duke/internal/domain"
)

// AddEventInput contains the parameters for adding an Event.
// Fields are ordered to minimize memory padding.
type AddEventInput struct {
	Start       time.Time // Start date-time
	End         time.Time // End date-time (not required to follow Start)
	Description string    // Task description (required)
	Params      string    // Raw parameter text, reported on failure
}

// AddEventOutput contains the result of adding an Event.
type AddEventOutput struct {
	Task *domain.Event // The created task
	Size int           // Collection size after the add
}

// AddEvent is the use case for adding an Event.
type AddEvent struct {
	tasks  *domain.TaskList
	store  domain.TaskStore
	logger *slog.Logger
}

// NewAddEvent creates a new AddEvent use case.
func NewAddEvent(tasks *domain.TaskList, store domain.TaskStore, logger *slog.Logger) *AddEvent {
	return &AddEvent{
		tasks:  tasks,
		store:  store,
		logger: logger,
	}
}

// Execute appends an Event and saves the collection.
func (uc *AddEvent) Execute(_ context.Context, in AddEventInput) (*AddEventOutput, error) {
	task, err := uc.tasks.AddEvent(in.Description, in.Start, in.End)
	if err != nil {
		return nil, commandError(domain.KindEvent, in.Params, err)
	}

	if err := saveAll(uc.store, uc.tasks); err != nil {
		return nil, err
	}

	uc.logger.Debug("task added", "kind", domain.KindEvent, "size", uc.tasks.Size())
	return &AddEventOutput{Task: task, Size: uc.tasks.Size()}, nil
}
