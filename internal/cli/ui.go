package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/duke/internal/domain"
	"github.com/runoshun/duke/internal/usecase"
)

// colors is the palette shared by all CLI output.
var colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
}

// styles holds the lipgloss styles used by the renderers below.
var styles = struct {
	Banner   lipgloss.Style
	Prompt   lipgloss.Style
	Header   lipgloss.Style
	Index    lipgloss.Style
	Task     lipgloss.Style
	TaskDone lipgloss.Style
	Count    lipgloss.Style
	ErrorMsg lipgloss.Style
}{
	Banner:   lipgloss.NewStyle().Foreground(colors.Primary).Bold(true),
	Prompt:   lipgloss.NewStyle().Foreground(colors.Primary),
	Header:   lipgloss.NewStyle().Bold(true),
	Index:    lipgloss.NewStyle().Foreground(colors.Muted),
	Task:     lipgloss.NewStyle(),
	TaskDone: lipgloss.NewStyle().Foreground(colors.Success),
	Count:    lipgloss.NewStyle().Foreground(colors.Muted).Italic(true),
	ErrorMsg: lipgloss.NewStyle().Foreground(colors.Error),
}

const (
	promptText   = "> "
	greetingText = "Hello! I'm Duke.\nWhat can I do for you?"
	farewellText = "Bye. Hope to see you again soon!"
)

func renderGreeting(w io.Writer) {
	_, _ = fmt.Fprintln(w, styles.Banner.Render(greetingText))
}

func renderFarewell(w io.Writer) {
	_, _ = fmt.Fprintln(w, styles.Banner.Render(farewellText))
}

func renderPrompt(w io.Writer) {
	_, _ = fmt.Fprint(w, styles.Prompt.Render(promptText))
}

// renderTask renders a task line, highlighting completed tasks.
func renderTask(task domain.Task) string {
	if task.IsDone() {
		return styles.TaskDone.Render(task.String())
	}
	return styles.Task.Render(task.String())
}

func renderCount(size int) string {
	noun := "tasks"
	if size == 1 {
		noun = "task"
	}
	return styles.Count.Render(fmt.Sprintf("Now you have %d %s in the list.", size, noun))
}

// renderResult writes the confirmation for a successful command.
// Exit results print nothing; the caller owns the farewell.
func renderResult(w io.Writer, res *usecase.Result) {
	var b strings.Builder
	switch res.Kind {
	case domain.KindToDo, domain.KindDeadline, domain.KindEvent:
		b.WriteString(styles.Header.Render("Got it. I've added this task:"))
		b.WriteString("\n  " + renderTask(res.Task))
		b.WriteString("\n" + renderCount(res.Size))
	case domain.KindDone:
		b.WriteString(styles.Header.Render("Nice! I've marked this task as done:"))
		b.WriteString("\n  " + renderTask(res.Task))
	case domain.KindDelete:
		b.WriteString(styles.Header.Render("Noted. I've removed this task:"))
		b.WriteString("\n  " + renderTask(res.Task))
		b.WriteString("\n" + renderCount(res.Size))
	case domain.KindList:
		renderList(&b, res.Tasks)
	default:
		return
	}
	_, _ = fmt.Fprintln(w, b.String())
}

func renderList(b *strings.Builder, tasks []domain.Task) {
	if len(tasks) == 0 {
		b.WriteString(styles.Header.Render("Your list is empty."))
		return
	}
	b.WriteString(styles.Header.Render("Here are the tasks in your list:"))
	for i, task := range tasks {
		b.WriteString("\n")
		b.WriteString(styles.Index.Render(fmt.Sprintf("%d.", i+1)))
		b.WriteString(" " + renderTask(task))
	}
}

// renderError writes a recoverable command or parse error.
func renderError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, styles.ErrorMsg.Render("OOPS!!! "+err.Error()))
}
