// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// TypeSymbol is the single-letter tag identifying a task variant in persisted form.
type TypeSymbol string

const (
	SymbolToDo     TypeSymbol = "T" // ToDo
	SymbolDeadline TypeSymbol = "D" // Deadline
	SymbolEvent    TypeSymbol = "E" // Event
)

// displayLayout is the date format used when rendering tasks for humans.
// Equivalent to "dd MMM, EEE ha".
const displayLayout = "02 Jan, Mon 3PM"

// Task is a tracked item. It is implemented only by *ToDo, *Deadline and *Event;
// callers dispatch on the concrete type with a type switch.
type Task interface {
	// Description returns the bare description without temporal details.
	Description() string

	// IsDone reports whether the task has been marked done.
	IsDone() bool

	// Symbol returns the variant's type symbol.
	Symbol() TypeSymbol

	// String renders the task for display, e.g. "[D][ ] return book (By: 01 Jan, Mon 6PM)".
	String() string

	markDone()
}

// base holds the fields shared by all task variants.
type base struct {
	desc string
	done bool
}

// Description returns the task description.
func (b *base) Description() string { return b.desc }

// IsDone reports whether the task is done.
func (b *base) IsDone() bool { return b.done }

func (b *base) markDone() { b.done = true }

func (b *base) render(sym TypeSymbol) string {
	mark := " "
	if b.done {
		mark = "X"
	}
	return "[" + string(sym) + "][" + mark + "] " + b.desc
}

// ToDo is a task with only a description and done flag.
type ToDo struct {
	base
}

// NewToDo creates a ToDo. The description must not be empty.
func NewToDo(desc string, done bool) (*ToDo, error) {
	if err := validateDescription(desc); err != nil {
		return nil, err
	}
	return &ToDo{base: base{desc: desc, done: done}}, nil
}

// Symbol returns SymbolToDo.
func (t *ToDo) Symbol() TypeSymbol { return SymbolToDo }

func (t *ToDo) String() string {
	return t.render(SymbolToDo)
}

// Deadline is a task that must be finished by a due date-time.
type Deadline struct {
	Due time.Time
	base
}

// NewDeadline creates a Deadline. The description must not be empty.
func NewDeadline(desc string, due time.Time, done bool) (*Deadline, error) {
	if err := validateDescription(desc); err != nil {
		return nil, err
	}
	return &Deadline{base: base{desc: desc, done: done}, Due: due}, nil
}

// Symbol returns SymbolDeadline.
func (d *Deadline) Symbol() TypeSymbol { return SymbolDeadline }

func (d *Deadline) String() string {
	return d.render(SymbolDeadline) + " (By: " + d.Due.Format(displayLayout) + ")"
}

// Event is a task spanning a start and end date-time.
// Start is not required to precede End.
type Event struct {
	Start time.Time
	End   time.Time
	base
}

// NewEvent creates an Event. The description must not be empty.
func NewEvent(desc string, start, end time.Time, done bool) (*Event, error) {
	if err := validateDescription(desc); err != nil {
		return nil, err
	}
	return &Event{base: base{desc: desc, done: done}, Start: start, End: end}, nil
}

// Symbol returns SymbolEvent.
func (e *Event) Symbol() TypeSymbol { return SymbolEvent }

func (e *Event) String() string {
	return e.render(SymbolEvent) + " (Start: " + e.Start.Format(displayLayout) +
		" | End: " + e.End.Format(displayLayout) + ")"
}

// FieldSeparator separates fields of a persisted task line.
const FieldSeparator = " | "

// Descriptions may contain neither the separator character nor a line break,
// so every valid task encodes to exactly one decodable line.
const (
	separatorChar = "|"
	lineBreaks    = "\r\n"
)

func validateDescription(desc string) error {
	if desc == "" {
		return ErrEmptyDescription
	}
	if strings.Contains(desc, separatorChar) {
		return ErrSeparatorInDescription
	}
	if strings.ContainsAny(desc, lineBreaks) {
		return ErrLineBreak
	}
	return nil
}

// ValidateDescription reports why desc cannot be a task description, or nil.
func ValidateDescription(desc string) error {
	return validateDescription(desc)
}
