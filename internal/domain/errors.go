package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEmptyDescription       = errors.New("description cannot be empty")
	ErrSeparatorInDescription = errors.New(`description cannot contain "|"`)
	ErrLineBreak              = errors.New("input must be a single line")
	ErrIndexOutOfRange        = errors.New("task index out of range")
	ErrInvalidDateFormat      = errors.New("date time does not match dd-mm-yyyy hAM/PM")
	ErrInvalidDate            = errors.New("not a valid calendar date")
	ErrUnknownCommand         = errors.New("unknown command")
	ErrInvalidParams          = errors.New("invalid command parameters")
	ErrMalformedRecord        = errors.New("malformed task record")
	ErrStorage                = errors.New("storage failure")
	ErrInvalidConfig          = errors.New("invalid configuration")
	ErrConfigExists           = errors.New("config file already exists")
)

// Kind labels a command variant. The labels are part of the error contract
// surfaced to callers and must not change.
type Kind string

const (
	KindToDo     Kind = "todo"
	KindDeadline Kind = "deadline"
	KindEvent    Kind = "event"
	KindDone     Kind = "done"
	KindDelete   Kind = "delete"
	KindList     Kind = "list"
	KindExit     Kind = "bye"
)

// ParseError reports a line that failed grammar or field validation.
// Kind is empty when the line names no known command.
// Fields are ordered to minimize memory padding.
type ParseError struct {
	Err     error  // Underlying cause (ErrUnknownCommand, ErrInvalidDate, ...)
	Kind    Kind   // Command kind being parsed
	Params  string // Raw parameter text after the keyword
	Message string // Human-readable message
}

func (e *ParseError) Error() string {
	if e.Kind == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s: %s", e.Kind, e.Params, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CommandError reports a parsed command that failed during execution,
// e.g. an out-of-range index. The (Kind, Params, Message) triple is the
// stable contract consumed by the display layer.
// Fields are ordered to minimize memory padding.
type CommandError struct {
	Err     error
	Kind    Kind
	Params  string
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Kind, e.Params, e.Message)
}

func (e *CommandError) Unwrap() error { return e.Err }

// IndexError carries the offending index of an out-of-range access.
type IndexError struct {
	Index int // Zero-based index requested
	Size  int // Collection size at the time
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("task %d does not exist (you have %d tasks)", e.Index+1, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
