// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"slices"
	"testing"
	"time"

	"github.com/runoshun/duke/internal/domain"
)

// MockTaskStore is a test double for domain.TaskStore.
// It records every snapshot passed to Save.
// Fields are ordered to minimize memory padding.
type MockTaskStore struct {
	LoadErr error
	SaveErr error
	Tasks   []domain.Task   // Returned by Load; replaced by each successful Save
	Saves   [][]domain.Task // Snapshots of every Save call, including failed ones
}

// NewMockTaskStore creates a MockTaskStore that loads tasks.
func NewMockTaskStore(tasks ...domain.Task) *MockTaskStore {
	return &MockTaskStore{Tasks: tasks}
}

// Load returns the configured tasks.
func (m *MockTaskStore) Load() ([]domain.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return slices.Clone(m.Tasks), nil
}

// Save records the snapshot.
func (m *MockTaskStore) Save(tasks []domain.Task) error {
	snapshot := slices.Clone(tasks)
	m.Saves = append(m.Saves, snapshot)
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = snapshot
	return nil
}

// SaveCount returns the number of Save calls.
func (m *MockTaskStore) SaveCount() int {
	return len(m.Saves)
}

// MustDateTime parses s in domain.DateTimeLayout or fails the test.
func MustDateTime(t testing.TB, s string) time.Time {
	t.Helper()
	v, err := domain.ParseDateTime(s)
	if err != nil {
		t.Fatalf("parse date-time %q: %v", s, err)
	}
	return v
}

// MustToDo creates a ToDo or fails the test.
func MustToDo(t testing.TB, desc string, done bool) *domain.ToDo {
	t.Helper()
	task, err := domain.NewToDo(desc, done)
	if err != nil {
		t.Fatalf("new todo %q: %v", desc, err)
	}
	return task
}
