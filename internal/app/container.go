// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/duke/internal/domain"
	"github.com/runoshun/duke/internal/infra/config"
	"github.com/runoshun/duke/internal/infra/linestore"
	"github.com/runoshun/duke/internal/infra/logging"
	"github.com/runoshun/duke/internal/usecase"
)

// Options holds the command-line overrides applied on top of the config file.
type Options struct {
	ConfigPath string // Explicit config file; empty means the default location
	DataPath   string // Overrides storage.path when set
}

// Container provides dependency injection for the application.
// It owns the loaded task list and the interpreter that mutates it.
// Fields are ordered to minimize memory padding.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store domain.TaskStore

	// Pointer fields
	Config      *domain.Config
	Tasks       *domain.TaskList
	Interpreter *usecase.Interpreter
	Logger      *slog.Logger

	closer io.Closer
}

// LoadConfig loads the config file named by opts, or the default one,
// and applies the command-line overrides.
func LoadConfig(opts Options) (*domain.Config, error) {
	var loader domain.ConfigLoader
	if opts.ConfigPath != "" {
		loader = config.NewLoaderWithPath(opts.ConfigPath)
	} else {
		loader = config.NewLoader()
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if opts.DataPath != "" {
		cfg.Storage.Path = opts.DataPath
	}
	return cfg, nil
}

// NewConfigManager returns the manager for the config file named by opts.
func NewConfigManager(opts Options) domain.ConfigManager {
	return config.NewManager(opts.ConfigPath)
}

// New loads configuration, opens the task file and builds the interpreter.
func New(opts Options) (*Container, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	store := linestore.New(cfg.Storage.Path,
		linestore.WithMalformedPolicy(cfg.Storage.OnMalformed),
		linestore.WithLogger(logger),
	)

	c, err := NewWithDeps(cfg, store, logger)
	if err != nil {
		_ = closer.Close()
		if linestore.IsMalformed(err) {
			return nil, fmt.Errorf("%w\nfix the line in %s or set storage.on_malformed = %q", err, store.Path(), domain.MalformedSkip)
		}
		return nil, err
	}
	c.closer = closer
	logger.Debug("container ready", "data", cfg.Storage.Path, "tasks", c.Tasks.Size())
	return c, nil
}

// NewWithDeps creates a Container over the given store. The store is loaded
// once; a load failure is returned as is.
func NewWithDeps(cfg *domain.Config, store domain.TaskStore, logger *slog.Logger) (*Container, error) {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	loaded, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	tasks := domain.NewTaskList(loaded...)

	return &Container{
		Store:       store,
		Config:      cfg,
		Tasks:       tasks,
		Interpreter: usecase.NewInterpreter(tasks, store, logger),
		Logger:      logger,
	}, nil
}

// Close releases resources held by the container, such as the log file.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}
