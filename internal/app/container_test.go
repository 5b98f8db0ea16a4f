package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/duke/internal/domain"
	"github.com/runoshun/duke/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNew_DataFlagOverridesConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataPath := filepath.Join(t.TempDir(), "tasks.txt")
	writeFile(t, dataPath, "T | 0 | read book\n")

	c, err := New(Options{DataPath: dataPath})
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, dataPath, c.Config.Storage.Path)
	assert.Equal(t, 1, c.Tasks.Size())
}

func TestNew_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data", "duke.txt")
	logPath := filepath.Join(dir, "logs", "duke.log")
	configPath := filepath.Join(dir, "config.toml")
	writeFile(t, dataPath, "T | 0 | a\nbroken line\nT | 1 | b\n")
	writeFile(t, configPath, `
[storage]
path = "`+dataPath+`"
on_malformed = "skip"

[log]
level = "debug"
file = "`+logPath+`"
`)

	c, err := New(Options{ConfigPath: configPath})
	require.NoError(t, err)

	assert.Equal(t, 2, c.Tasks.Size(), "malformed line skipped per config")
	require.NoError(t, c.Close())

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "skipping malformed task line")
}

func TestNew_StrictLoadFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataPath := filepath.Join(t.TempDir(), "duke.txt")
	writeFile(t, dataPath, "X | 0 | nope\n")

	_, err := New(Options{DataPath: dataPath})

	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
	assert.Contains(t, err.Error(), `storage.on_malformed = "skip"`)
	assert.Contains(t, err.Error(), dataPath)
}

func TestNew_MissingExplicitConfig(t *testing.T) {
	_, err := New(Options{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")})

	assert.Error(t, err)
}

func TestNew_InterpreterPersists(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataPath := filepath.Join(t.TempDir(), "nested", "duke.txt")

	c, err := New(Options{DataPath: dataPath})
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	_, err = c.Interpreter.Execute(context.Background(), "todo read book")
	require.NoError(t, err)

	content, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	assert.Equal(t, "T | 0 | read book\n", string(content))
}

func TestNew_FreshInstallLeavesDataDirUntouched(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataDir := filepath.Join(t.TempDir(), "nested")

	c, err := New(Options{DataPath: filepath.Join(dataDir, "duke.txt")})
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, 0, c.Tasks.Size())
	assert.NoDirExists(t, dataDir)
}

func TestNewWithDeps_Defaults(t *testing.T) {
	store := testutil.NewMockTaskStore(testutil.MustToDo(t, "a", false))

	c, err := NewWithDeps(nil, store, nil)
	require.NoError(t, err)

	assert.NotNil(t, c.Config)
	assert.NotNil(t, c.Logger)
	assert.Equal(t, 1, c.Tasks.Size())
	assert.NoError(t, c.Close())
}

func TestNewWithDeps_LoadError(t *testing.T) {
	store := testutil.NewMockTaskStore()
	store.LoadErr = domain.ErrStorage

	_, err := NewWithDeps(nil, store, nil)

	assert.ErrorIs(t, err, domain.ErrStorage)
}
