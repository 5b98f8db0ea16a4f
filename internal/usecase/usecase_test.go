package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/runoshun/duke/internal/domain"
	"github.com/runoshun/duke/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func requireCommandError(t *testing.T, err error) *domain.CommandError {
	t.Helper()
	require.Error(t, err)
	var ce *domain.CommandError
	require.True(t, errors.As(err, &ce), "expected *domain.CommandError, got %T", err)
	return ce
}

func TestAddToDo_Execute_Success(t *testing.T) {
	// Setup
	tasks := domain.NewTaskList(testutil.MustToDo(t, "existing", false))
	store := testutil.NewMockTaskStore()
	uc := NewAddToDo(tasks, store, discardLogger())

	// Execute
	out, err := uc.Execute(context.Background(), AddToDoInput{Description: "read book"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, out.Size)
	assert.Equal(t, "read book", out.Task.Description())
	assert.False(t, out.Task.IsDone())

	// Verify the full collection was saved
	require.Equal(t, 1, store.SaveCount())
	assert.Len(t, store.Tasks, 2)
	assert.Same(t, out.Task, store.Tasks[1])
}

func TestAddToDo_Execute_EmptyDescription(t *testing.T) {
	tasks := domain.NewTaskList()
	store := testutil.NewMockTaskStore()
	uc := NewAddToDo(tasks, store, discardLogger())

	_, err := uc.Execute(context.Background(), AddToDoInput{Description: ""})

	ce := requireCommandError(t, err)
	assert.Equal(t, domain.KindToDo, ce.Kind)
	assert.ErrorIs(t, err, domain.ErrEmptyDescription)
	assert.Equal(t, 0, tasks.Size())
	assert.Equal(t, 0, store.SaveCount(), "failed mutation must not reach save")
}

func TestAddToDo_Execute_SaveError(t *testing.T) {
	tasks := domain.NewTaskList()
	store := testutil.NewMockTaskStore()
	store.SaveErr = domain.ErrStorage
	uc := NewAddToDo(tasks, store, discardLogger())

	_, err := uc.Execute(context.Background(), AddToDoInput{Description: "a"})

	assert.ErrorIs(t, err, domain.ErrStorage)
	var ce *domain.CommandError
	assert.False(t, errors.As(err, &ce), "storage failures are not command errors")
	assert.Contains(t, err.Error(), "save tasks")
}

func TestAddDeadline_Execute(t *testing.T) {
	tasks := domain.NewTaskList()
	store := testutil.NewMockTaskStore()
	uc := NewAddDeadline(tasks, store, discardLogger())
	due := testutil.MustDateTime(t, "01-01-2024 6PM")

	out, err := uc.Execute(context.Background(), AddDeadlineInput{
		Description: "return book",
		Due:         due,
		Params:      "return book /by 01-01-2024 6PM",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Size)
	assert.Equal(t, due, out.Task.Due)
	assert.Equal(t, 1, store.SaveCount())
}

func TestAddEvent_Execute(t *testing.T) {
	tasks := domain.NewTaskList()
	store := testutil.NewMockTaskStore()
	uc := NewAddEvent(tasks, store, discardLogger())
	start := testutil.MustDateTime(t, "01-01-2024 9AM")
	end := testutil.MustDateTime(t, "01-01-2024 5PM")

	out, err := uc.Execute(context.Background(), AddEventInput{
		Description: "fair",
		Start:       start,
		End:         end,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Size)
	assert.Equal(t, start, out.Task.Start)
	assert.Equal(t, end, out.Task.End)
}

func TestMarkDone_Execute_Success(t *testing.T) {
	tasks := domain.NewTaskList(testutil.MustToDo(t, "a", false), testutil.MustToDo(t, "b", false))
	store := testutil.NewMockTaskStore()
	uc := NewMarkDone(tasks, store, discardLogger())

	out, err := uc.Execute(context.Background(), MarkDoneInput{Index: 1, Params: "2"})

	require.NoError(t, err)
	assert.Equal(t, "b", out.Task.Description())
	assert.True(t, out.Task.IsDone())
	assert.Equal(t, 1, store.SaveCount())
	assert.True(t, store.Tasks[1].IsDone())
}

func TestMarkDone_Execute_Idempotent(t *testing.T) {
	tasks := domain.NewTaskList(testutil.MustToDo(t, "a", false))
	store := testutil.NewMockTaskStore()
	uc := NewMarkDone(tasks, store, discardLogger())

	_, err := uc.Execute(context.Background(), MarkDoneInput{Index: 0, Params: "1"})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), MarkDoneInput{Index: 0, Params: "1"})
	require.NoError(t, err)

	assert.Equal(t, store.Saves[0], store.Saves[1])
}

func TestMarkDone_Execute_OutOfRange(t *testing.T) {
	tasks := domain.NewTaskList(testutil.MustToDo(t, "a", false))
	store := testutil.NewMockTaskStore()
	uc := NewMarkDone(tasks, store, discardLogger())

	_, err := uc.Execute(context.Background(), MarkDoneInput{Index: 4, Params: "5"})

	ce := requireCommandError(t, err)
	assert.Equal(t, domain.KindDone, ce.Kind)
	assert.Equal(t, "5", ce.Params)
	assert.Equal(t, "task 5 does not exist (you have 1 tasks)", ce.Message)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Equal(t, 0, store.SaveCount())
}

func TestDeleteTask_Execute_Success(t *testing.T) {
	tasks := domain.NewTaskList(testutil.MustToDo(t, "a", false), testutil.MustToDo(t, "b", false))
	store := testutil.NewMockTaskStore()
	uc := NewDeleteTask(tasks, store, discardLogger())

	out, err := uc.Execute(context.Background(), DeleteTaskInput{Index: 0, Params: "1"})

	require.NoError(t, err)
	assert.Equal(t, "a", out.Task.Description())
	assert.Equal(t, 1, out.Size)
	require.Len(t, store.Tasks, 1)
	assert.Equal(t, "b", store.Tasks[0].Description())
}

func TestDeleteTask_Execute_OutOfRange(t *testing.T) {
	tasks := domain.NewTaskList(testutil.MustToDo(t, "a", false))
	store := testutil.NewMockTaskStore()
	uc := NewDeleteTask(tasks, store, discardLogger())

	_, err := uc.Execute(context.Background(), DeleteTaskInput{Index: -2, Params: "-1"})

	ce := requireCommandError(t, err)
	assert.Equal(t, domain.KindDelete, ce.Kind)
	assert.Equal(t, "-1", ce.Params)
	assert.Equal(t, 1, tasks.Size())
	assert.Equal(t, 0, store.SaveCount())
}

func TestListTasks_Execute(t *testing.T) {
	tasks := domain.NewTaskList(testutil.MustToDo(t, "a", false), testutil.MustToDo(t, "b", true))
	store := testutil.NewMockTaskStore()
	uc := NewListTasks(tasks, store)

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "a", out.Tasks[0].Description())
	assert.True(t, out.Tasks[1].IsDone())
	assert.Equal(t, 1, store.SaveCount())
}
