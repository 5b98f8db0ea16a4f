package linestore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/duke/internal/domain"
)

// ErrUnencodable is returned for a task whose description cannot be stored on one line.
var ErrUnencodable = errors.New("task cannot be encoded")

const (
	flagDone    = "1"
	flagNotDone = "0"
)

// LineError describes an undecodable line of the task file.
type LineError struct {
	Err  error
	Text string
	Line int // 1-based line number
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Encode renders a task as one line without the trailing newline:
//
//	T | 0 | read book
//	D | 1 | return book | 01-01-2024 6PM
//	E | 0 | book fair | 01-01-2024 9AM | 02-01-2024 5PM
func Encode(task domain.Task) (string, error) {
	if err := domain.ValidateDescription(task.Description()); err != nil {
		return "", fmt.Errorf("encode %q: %w: %w", task.Description(), ErrUnencodable, err)
	}

	done := flagNotDone
	if task.IsDone() {
		done = flagDone
	}
	fields := []string{string(task.Symbol()), done, task.Description()}

	switch t := task.(type) {
	case *domain.ToDo:
	case *domain.Deadline:
		fields = append(fields, domain.FormatDateTime(t.Due))
	case *domain.Event:
		fields = append(fields, domain.FormatDateTime(t.Start), domain.FormatDateTime(t.End))
	default:
		return "", fmt.Errorf("encode: unsupported task type %T", task)
	}

	return strings.Join(fields, domain.FieldSeparator), nil
}

// Decode parses a line produced by Encode.
// Any defect is reported as an error wrapping domain.ErrMalformedRecord.
func Decode(line string) (domain.Task, error) {
	fields := strings.Split(line, domain.FieldSeparator)
	if len(fields) < 3 {
		return nil, malformed("expected at least 3 fields, got %d", len(fields))
	}

	sym, flag, desc := domain.TypeSymbol(fields[0]), fields[1], fields[2]
	var done bool
	switch flag {
	case flagDone:
		done = true
	case flagNotDone:
	default:
		return nil, malformed("done flag must be 0 or 1, got %q", flag)
	}

	var (
		task domain.Task
		err  error
	)
	switch sym {
	case domain.SymbolToDo:
		if len(fields) != 3 {
			return nil, malformed("todo expects 3 fields, got %d", len(fields))
		}
		task, err = domain.NewToDo(desc, done)

	case domain.SymbolDeadline:
		if len(fields) != 4 {
			return nil, malformed("deadline expects 4 fields, got %d", len(fields))
		}
		due, perr := domain.ParseDateTime(fields[3])
		if perr != nil {
			return nil, malformed("due: %v", perr)
		}
		task, err = domain.NewDeadline(desc, due, done)

	case domain.SymbolEvent:
		if len(fields) != 5 {
			return nil, malformed("event expects 5 fields, got %d", len(fields))
		}
		start, perr := domain.ParseDateTime(fields[3])
		if perr != nil {
			return nil, malformed("start: %v", perr)
		}
		end, perr := domain.ParseDateTime(fields[4])
		if perr != nil {
			return nil, malformed("end: %v", perr)
		}
		task, err = domain.NewEvent(desc, start, end, done)

	default:
		return nil, malformed("unknown type symbol %q", sym)
	}

	if err != nil {
		return nil, malformed("%v", err)
	}
	return task, nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrMalformedRecord, fmt.Sprintf(format, args...))
}
