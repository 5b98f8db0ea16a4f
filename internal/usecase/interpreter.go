package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/runoshun/duke/internal/domain"
	"github.com/runoshun/duke/internal/parser"
)

// Result is the outcome of one command, ready for rendering.
// Which fields are set depends on Kind:
//   - todo, deadline, event: Task (added), Size
//   - done: Task (now done)
//   - delete: Task (removed), Size
//   - list: Tasks
//   - bye: Exit
//
// Fields are ordered to minimize memory padding.
type Result struct {
	Task  domain.Task
	Tasks []domain.Task
	Kind  domain.Kind
	Size  int
	Exit  bool
}

// Interpreter parses input lines and runs the matching use case.
// Each command, including its save, runs under one lock, so concurrent
// callers never observe or persist a half-applied mutation.
type Interpreter struct {
	addToDo     *AddToDo
	addDeadline *AddDeadline
	addEvent    *AddEvent
	markDone    *MarkDone
	deleteTask  *DeleteTask
	listTasks   *ListTasks
	logger      *slog.Logger
	mu          sync.Mutex
}

// NewInterpreter creates an Interpreter over the given task list and store.
func NewInterpreter(tasks *domain.TaskList, store domain.TaskStore, logger *slog.Logger) *Interpreter {
	return &Interpreter{
		addToDo:     NewAddToDo(tasks, store, logger),
		addDeadline: NewAddDeadline(tasks, store, logger),
		addEvent:    NewAddEvent(tasks, store, logger),
		markDone:    NewMarkDone(tasks, store, logger),
		deleteTask:  NewDeleteTask(tasks, store, logger),
		listTasks:   NewListTasks(tasks, store),
		logger:      logger,
	}
}

// Execute parses line and runs the resulting command.
// Parse failures return *domain.ParseError, execution failures
// *domain.CommandError; anything else (storage) is fatal for the run.
func (it *Interpreter) Execute(ctx context.Context, line string) (*Result, error) {
	cmd, err := parser.Parse(line)
	if err != nil {
		it.logger.Debug("rejected input", "error", err)
		return nil, err
	}
	return it.Run(ctx, cmd)
}

// Run executes an already-parsed command.
func (it *Interpreter) Run(ctx context.Context, cmd domain.Command) (*Result, error) {
	it.mu.Lock()
	defer it.mu.Unlock()

	switch c := cmd.(type) {
	case domain.ToDoCommand:
		out, err := it.addToDo.Execute(ctx, AddToDoInput{Description: c.Description})
		if err != nil {
			return nil, err
		}
		return &Result{Kind: c.Kind(), Task: out.Task, Size: out.Size}, nil

	case domain.DeadlineCommand:
		out, err := it.addDeadline.Execute(ctx, AddDeadlineInput{
			Description: c.Description,
			Due:         c.Due,
			Params:      c.Params,
		})
		if err != nil {
			return nil, err
		}
		return &Result{Kind: c.Kind(), Task: out.Task, Size: out.Size}, nil

	case domain.EventCommand:
		out, err := it.addEvent.Execute(ctx, AddEventInput{
			Description: c.Description,
			Start:       c.Start,
			End:         c.End,
			Params:      c.Params,
		})
		if err != nil {
			return nil, err
		}
		return &Result{Kind: c.Kind(), Task: out.Task, Size: out.Size}, nil

	case domain.DoneCommand:
		out, err := it.markDone.Execute(ctx, MarkDoneInput{Index: c.Index, Params: c.Params})
		if err != nil {
			return nil, err
		}
		return &Result{Kind: c.Kind(), Task: out.Task}, nil

	case domain.DeleteCommand:
		out, err := it.deleteTask.Execute(ctx, DeleteTaskInput{Index: c.Index, Params: c.Params})
		if err != nil {
			return nil, err
		}
		return &Result{Kind: c.Kind(), Task: out.Task, Size: out.Size}, nil

	case domain.ListCommand:
		out, err := it.listTasks.Execute(ctx, ListTasksInput{})
		if err != nil {
			return nil, err
		}
		return &Result{Kind: c.Kind(), Tasks: out.Tasks}, nil

	case domain.ExitCommand:
		return &Result{Kind: c.Kind(), Exit: true}, nil

	default:
		return nil, fmt.Errorf("%w: unsupported command %T", domain.ErrUnknownCommand, cmd)
	}
}
