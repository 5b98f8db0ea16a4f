package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/runoshun/duke/internal/app"
	"github.com/runoshun/duke/internal/domain"
	"github.com/runoshun/duke/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Plain output so assertions can match rendered text.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// mockFactory returns a ContainerFactory backed by store and records the
// options it was called with.
func mockFactory(store *testutil.MockTaskStore, got *app.Options) ContainerFactory {
	return func(opts app.Options) (*app.Container, error) {
		if got != nil {
			*got = opts
		}
		return app.NewWithDeps(nil, store, nil)
	}
}

func runRoot(t *testing.T, factory ContainerFactory, input string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(factory, "test-version")
	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_REPL_AddAndList(t *testing.T) {
	store := testutil.NewMockTaskStore()

	out, _, err := runRoot(t, mockFactory(store, nil), "todo read book\nlist\nbye\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Hello! I'm Duke.")
	assert.Contains(t, out, "Got it. I've added this task:")
	assert.Contains(t, out, "  [T][ ] read book")
	assert.Contains(t, out, "Now you have 1 task in the list.")
	assert.Contains(t, out, "Here are the tasks in your list:")
	assert.Contains(t, out, "1. [T][ ] read book")
	assert.Contains(t, out, "Bye. Hope to see you again soon!")
	require.Len(t, store.Tasks, 1)
}

func TestRoot_REPL_DoneAndDelete(t *testing.T) {
	store := testutil.NewMockTaskStore(
		testutil.MustToDo(t, "a", false),
		testutil.MustToDo(t, "b", false),
	)

	out, _, err := runRoot(t, mockFactory(store, nil), "done 2\ndelete 1\nbye\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Nice! I've marked this task as done:\n  [T][X] b")
	assert.Contains(t, out, "Noted. I've removed this task:\n  [T][ ] a")
	assert.Contains(t, out, "Now you have 1 task in the list.")
	require.Len(t, store.Tasks, 1)
	assert.True(t, store.Tasks[0].IsDone())
}

func TestRoot_REPL_ErrorsAreRecoverable(t *testing.T) {
	store := testutil.NewMockTaskStore()

	out, _, err := runRoot(t, mockFactory(store, nil), "todo\nblah\ndone 4\ntodo ok\nbye\n")

	require.NoError(t, err)
	assert.Contains(t, out, "OOPS!!! ")
	assert.Contains(t, out, "Description of ToDo cannot be empty")
	assert.Contains(t, out, "No such command, please try again with another command.")
	assert.Contains(t, out, "task 4 does not exist (you have 0 tasks)")
	assert.Contains(t, out, "[T][ ] ok")
	assert.Len(t, store.Tasks, 1)
}

func TestRoot_REPL_EmptyList(t *testing.T) {
	out, _, err := runRoot(t, mockFactory(testutil.NewMockTaskStore(), nil), "list\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Your list is empty.")
}

func TestRoot_REPL_EOFSaysFarewell(t *testing.T) {
	out, _, err := runRoot(t, mockFactory(testutil.NewMockTaskStore(), nil), "todo a\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Bye. Hope to see you again soon!")
}

func TestRoot_REPL_BlankLinesIgnored(t *testing.T) {
	out, _, err := runRoot(t, mockFactory(testutil.NewMockTaskStore(), nil), "\n   \nbye\n")

	require.NoError(t, err)
	assert.NotContains(t, out, "OOPS")
}

func TestRoot_REPL_StorageErrorIsFatal(t *testing.T) {
	store := testutil.NewMockTaskStore()
	store.SaveErr = domain.ErrStorage

	out, _, err := runRoot(t, mockFactory(store, nil), "todo a\nlist\nbye\n")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.NotContains(t, out, "Bye. Hope to see you again soon!")
	assert.Equal(t, 1, store.SaveCount(), "session must stop at the first storage failure")
}

func TestRoot_LoadErrorIsReturned(t *testing.T) {
	store := testutil.NewMockTaskStore()
	store.LoadErr = domain.ErrMalformedRecord

	_, _, err := runRoot(t, mockFactory(store, nil), "bye\n")

	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestRoot_FlagsReachFactory(t *testing.T) {
	var got app.Options

	_, _, err := runRoot(t, mockFactory(testutil.NewMockTaskStore(), &got), "bye\n",
		"--config", "/tmp/duke.toml", "--data", "/tmp/duke.txt")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/duke.toml", got.ConfigPath)
	assert.Equal(t, "/tmp/duke.txt", got.DataPath)
}

func TestRoot_PrintsConfigWarnings(t *testing.T) {
	factory := func(app.Options) (*app.Container, error) {
		cfg := domain.NewDefaultConfig()
		cfg.Warnings = []string{"unknown section: extra"}
		return app.NewWithDeps(cfg, testutil.NewMockTaskStore(), nil)
	}

	_, stderr, err := runRoot(t, factory, "bye\n")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown section: extra")
}

func TestRoot_FactoryError(t *testing.T) {
	factory := func(app.Options) (*app.Container, error) {
		return nil, errors.New("boom")
	}

	_, _, err := runRoot(t, factory, "")

	assert.EqualError(t, err, "boom")
}

func TestRoot_Version(t *testing.T) {
	out, _, err := runRoot(t, mockFactory(testutil.NewMockTaskStore(), nil), "", "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "test-version")
}

// Two sessions over the same data file: what the first one adds, the second
// one lists.
func TestRoot_PersistsAcrossSessions(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataPath := filepath.Join(t.TempDir(), "duke.txt")
	factory := ContainerFactory(app.New)

	_, _, err := runRoot(t, factory,
		"todo read book\ndeadline return book /by 01-01-2024 6PM\ndone 1\nbye\n",
		"--data", dataPath)
	require.NoError(t, err)

	content, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	assert.Equal(t, "T | 1 | read book\nD | 0 | return book | 01-01-2024 6PM\n", string(content))

	out, _, err := runRoot(t, factory, "list\nbye\n", "--data", dataPath)
	require.NoError(t, err)
	assert.Contains(t, out, "1. [T][X] read book")
	assert.Contains(t, out, "2. [D][ ] return book (By: 01 Jan, Mon 6PM)")
}
