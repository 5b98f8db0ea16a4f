// Package linestore provides a line-oriented text file implementation of TaskStore.
//
// Each task occupies one line, fields separated by " | ":
//
//	<T|D|E> | <0|1> | <description> [| <date-time>...]
package linestore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/runoshun/duke/internal/domain"
)

// Ensure Store implements domain.TaskStore.
var _ domain.TaskStore = (*Store)(nil)

// Store implements domain.TaskStore using a text file.
// Fields are ordered to minimize memory padding.
type Store struct {
	logger   *slog.Logger
	path     string
	lockPath string
	policy   domain.MalformedPolicy
}

// Option configures a Store.
type Option func(*Store)

// WithMalformedPolicy sets how Load treats undecodable lines.
func WithMalformedPolicy(p domain.MalformedPolicy) Option {
	return func(s *Store) { s.policy = p }
}

// WithLogger sets the logger used to report skipped lines.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first save.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:     path,
		lockPath: path + ".lock",
		policy:   domain.MalformedStrict,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the task file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads all tasks. A missing file yields an empty collection and
// leaves the file system untouched.
// Blank lines are ignored. Under the strict policy the first undecodable line
// fails the load with a *LineError; under the skip policy it is logged and dropped.
func (s *Store) Load() ([]domain.Task, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return []domain.Task{}, nil
	}

	var tasks []domain.Task
	err := s.withLock(syscall.LOCK_SH, func() error {
		content, err := os.ReadFile(s.path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("%w: read task file: %w", domain.ErrStorage, err)
		}
		tasks, err = s.decodeAll(content)
		return err
	})
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// Save overwrites the file with tasks, one line each.
// The file is replaced atomically so a failed save leaves the previous content intact.
func (s *Store) Save(tasks []domain.Task) error {
	var buf bytes.Buffer
	for i, t := range tasks {
		line, err := Encode(t)
		if err != nil {
			return fmt.Errorf("%w: task %d: %w", domain.ErrStorage, i+1, err)
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return s.withLock(syscall.LOCK_EX, func() error {
		return s.write(buf.Bytes())
	})
}

func (s *Store) decodeAll(content []byte) ([]domain.Task, error) {
	var tasks []domain.Task
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		task, err := Decode(text)
		if err != nil {
			lineErr := &LineError{Line: lineNo, Text: text, Err: err}
			if s.policy == domain.MalformedSkip {
				s.logger.Warn("skipping malformed task line", "path", s.path, "line", lineNo, "error", err)
				continue
			}
			return nil, fmt.Errorf("load %s: %w", s.path, lineErr)
		}
		tasks = append(tasks, task)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan task file: %w", domain.ErrStorage, err)
	}
	return tasks, nil
}

func (s *Store) write(content []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: create directory: %w", domain.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", domain.ErrStorage, err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write temp file: %w", domain.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %w", domain.ErrStorage, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("%w: replace task file: %w", domain.ErrStorage, err)
	}
	return nil
}

// withLock executes fn while holding a file lock of the given type.
func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)
	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: create lock directory: %w", domain.ErrStorage, err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("%w: open lock file: %w", domain.ErrStorage, err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("%w: acquire lock: %w", domain.ErrStorage, err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// IsMalformed reports whether err came from an undecodable task line.
func IsMalformed(err error) bool {
	var lineErr *LineError
	return errors.As(err, &lineErr)
}
