package domain

import (
	"slices"
	"time"
)

// TaskList is the ordered, index-addressed task collection.
// Insertion order is display order and persisted order. Every operation is
// all-or-nothing: a failed call leaves the list untouched.
//
// TaskList is not safe for concurrent use; callers that share one must
// serialize access (see usecase.Interpreter).
type TaskList struct {
	tasks []Task
}

// NewTaskList creates a list seeded with tasks, typically loaded from storage.
func NewTaskList(tasks ...Task) *TaskList {
	return &TaskList{tasks: slices.Clone(tasks)}
}

// AddToDo appends a new, not-done ToDo.
func (l *TaskList) AddToDo(desc string) (*ToDo, error) {
	t, err := NewToDo(desc, false)
	if err != nil {
		return nil, err
	}
	l.tasks = append(l.tasks, t)
	return t, nil
}

// AddDeadline appends a new, not-done Deadline.
func (l *TaskList) AddDeadline(desc string, due time.Time) (*Deadline, error) {
	t, err := NewDeadline(desc, due, false)
	if err != nil {
		return nil, err
	}
	l.tasks = append(l.tasks, t)
	return t, nil
}

// AddEvent appends a new, not-done Event.
func (l *TaskList) AddEvent(desc string, start, end time.Time) (*Event, error) {
	t, err := NewEvent(desc, start, end, false)
	if err != nil {
		return nil, err
	}
	l.tasks = append(l.tasks, t)
	return t, nil
}

// MarkDone marks the task at the zero-based index as done and returns it.
// Marking an already-done task succeeds.
func (l *TaskList) MarkDone(index int) (Task, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	t := l.tasks[index]
	t.markDone()
	return t, nil
}

// Delete removes the task at the zero-based index and returns it.
// Later tasks shift down by one.
func (l *TaskList) Delete(index int) (Task, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	t := l.tasks[index]
	l.tasks = slices.Delete(l.tasks, index, index+1)
	return t, nil
}

// Size returns the number of tasks.
func (l *TaskList) Size() int {
	return len(l.tasks)
}

// All returns the tasks in order. The returned slice is a copy; the tasks
// themselves are shared.
func (l *TaskList) All() []Task {
	return slices.Clone(l.tasks)
}

func (l *TaskList) checkIndex(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return &IndexError{Index: index, Size: len(l.tasks)}
	}
	return nil
}
