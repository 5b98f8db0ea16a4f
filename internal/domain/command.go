package domain

import "time"

// Command is a parsed, validated user intent ready for execution.
// It is implemented only by the command types in this file.
type Command interface {
	// Kind returns the command's kind label.
	Kind() Kind

	// RawParams returns the parameter text the command was parsed from.
	RawParams() string

	isCommand()
}

// ToDoCommand adds a ToDo.
type ToDoCommand struct {
	Description string
}

// DeadlineCommand adds a Deadline.
type DeadlineCommand struct {
	Due         time.Time
	Description string
	Params      string
}

// EventCommand adds an Event.
type EventCommand struct {
	Start       time.Time
	End         time.Time
	Description string
	Params      string
}

// DoneCommand marks the task at a zero-based index as done.
// Index may be negative or out of range; the task list rejects it.
type DoneCommand struct {
	Params string
	Index  int
}

// DeleteCommand removes the task at a zero-based index.
type DeleteCommand struct {
	Params string
	Index  int
}

// ListCommand lists all tasks.
type ListCommand struct{}

// ExitCommand ends the session.
type ExitCommand struct{}

func (ToDoCommand) Kind() Kind     { return KindToDo }
func (DeadlineCommand) Kind() Kind { return KindDeadline }
func (EventCommand) Kind() Kind    { return KindEvent }
func (DoneCommand) Kind() Kind     { return KindDone }
func (DeleteCommand) Kind() Kind   { return KindDelete }
func (ListCommand) Kind() Kind     { return KindList }
func (ExitCommand) Kind() Kind     { return KindExit }

// The todo parameter text is the description itself.
func (c ToDoCommand) RawParams() string     { return c.Description }
func (c DeadlineCommand) RawParams() string { return c.Params }
func (c EventCommand) RawParams() string    { return c.Params }
func (c DoneCommand) RawParams() string     { return c.Params }
func (c DeleteCommand) RawParams() string   { return c.Params }
func (ListCommand) RawParams() string       { return "" }
func (ExitCommand) RawParams() string       { return "" }

func (ToDoCommand) isCommand()     {}
func (DeadlineCommand) isCommand() {}
func (EventCommand) isCommand()    {}
func (DoneCommand) isCommand()     {}
func (DeleteCommand) isCommand()   {}
func (ListCommand) isCommand()     {}
func (ExitCommand) isCommand()     {}
