// Package usecase contains application use cases, one per command kind.
package usecase

import (
	"fmt"

	"github.com/runoshun/duke/internal/domain"
)

// saveAll writes the whole collection. Failures are storage errors and are
// fatal for the run; they are never wrapped in a CommandError.
func saveAll(store domain.TaskStore, tasks *domain.TaskList) error {
	if err := store.Save(tasks.All()); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// commandError wraps a task list failure in the (kind, params, message) contract.
func commandError(kind domain.Kind, params string, err error) *domain.CommandError {
	return &domain.CommandError{
		Err:     err,
		Kind:    kind,
		Params:  params,
		Message: err.Error(),
	}
}
